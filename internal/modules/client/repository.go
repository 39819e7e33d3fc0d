package client

import "context"

// Repository defines data access for clients.
type Repository interface {
	Create(ctx context.Context, c *Client) error
	Update(ctx context.Context, c *Client) error
	Delete(ctx context.Context, id int) error
	GetByID(ctx context.Context, id int) (*Client, error)
	List(ctx context.Context) ([]*Client, error)
	NextID(ctx context.Context) (int, error)
}

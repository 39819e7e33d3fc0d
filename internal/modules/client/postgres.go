package client

import (
	"context"
	"database/sql"
	"encoding/json"
)

type postgresRepo struct{ db *sql.DB }

// NewPostgresRepository creates a PostgreSQL-backed client repository.
// Vehicles are stored as a JSONB column, mirroring the embedded layout of
// the file backend.
func NewPostgresRepository(db *sql.DB) Repository { return &postgresRepo{db: db} }

func (r *postgresRepo) Create(ctx context.Context, c *Client) error {
	vehicles, err := json.Marshal(c.Vehicles)
	if err != nil {
		return err
	}
	_, err = r.db.ExecContext(ctx, `
		INSERT INTO clients (id, name, document, phone, email, address, vehicles)
		VALUES ($1,$2,$3,$4,$5,$6,$7)`,
		c.ID, c.Name, c.Document, c.Phone, c.Email, c.Address, vehicles)
	return err
}

func (r *postgresRepo) Update(ctx context.Context, c *Client) error {
	vehicles, err := json.Marshal(c.Vehicles)
	if err != nil {
		return err
	}
	_, err = r.db.ExecContext(ctx, `
		UPDATE clients
		SET name=$1, document=$2, phone=$3, email=$4, address=$5, vehicles=$6
		WHERE id=$7`,
		c.Name, c.Document, c.Phone, c.Email, c.Address, vehicles, c.ID)
	return err
}

func (r *postgresRepo) Delete(ctx context.Context, id int) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM clients WHERE id=$1`, id)
	return err
}

func scanClient(scan func(...interface{}) error) (*Client, error) {
	c := &Client{}
	var vehicles []byte
	err := scan(&c.ID, &c.Name, &c.Document, &c.Phone, &c.Email, &c.Address, &vehicles)
	if err != nil {
		return nil, err
	}
	if len(vehicles) > 0 {
		if err := json.Unmarshal(vehicles, &c.Vehicles); err != nil {
			return nil, err
		}
	}
	return c, nil
}

func (r *postgresRepo) GetByID(ctx context.Context, id int) (*Client, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, name, document, phone, email, address, vehicles
		FROM clients WHERE id=$1`, id)
	return scanClient(row.Scan)
}

func (r *postgresRepo) List(ctx context.Context) ([]*Client, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, name, document, phone, email, address, vehicles
		FROM clients ORDER BY id ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var clients []*Client
	for rows.Next() {
		c, err := scanClient(rows.Scan)
		if err != nil {
			return nil, err
		}
		clients = append(clients, c)
	}
	return clients, rows.Err()
}

func (r *postgresRepo) NextID(ctx context.Context) (int, error) {
	var next int
	err := r.db.QueryRowContext(ctx,
		`SELECT COALESCE(MAX(id),0)+1 FROM clients`).Scan(&next)
	return next, err
}

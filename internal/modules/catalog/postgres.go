package catalog

import (
	"context"
	"database/sql"
)

type postgresRepo struct{ db *sql.DB }

// NewPostgresRepository creates a PostgreSQL-backed catalog repository.
func NewPostgresRepository(db *sql.DB) Repository { return &postgresRepo{db: db} }

func (r *postgresRepo) Create(ctx context.Context, item *ServiceItem) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO catalog_services (id, description, price)
		VALUES ($1,$2,$3)`,
		item.ID, item.Description, item.Price)
	return err
}

func (r *postgresRepo) Update(ctx context.Context, item *ServiceItem) error {
	_, err := r.db.ExecContext(ctx, `
		UPDATE catalog_services SET description=$1, price=$2 WHERE id=$3`,
		item.Description, item.Price, item.ID)
	return err
}

func (r *postgresRepo) GetByID(ctx context.Context, id int) (*ServiceItem, error) {
	item := &ServiceItem{}
	err := r.db.QueryRowContext(ctx, `
		SELECT id, description, price FROM catalog_services WHERE id=$1`, id).
		Scan(&item.ID, &item.Description, &item.Price)
	if err != nil {
		return nil, err
	}
	return item, nil
}

func (r *postgresRepo) List(ctx context.Context) ([]*ServiceItem, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, description, price FROM catalog_services ORDER BY id ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []*ServiceItem
	for rows.Next() {
		item := &ServiceItem{}
		if err := rows.Scan(&item.ID, &item.Description, &item.Price); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

func (r *postgresRepo) NextID(ctx context.Context) (int, error) {
	var next int
	err := r.db.QueryRowContext(ctx,
		`SELECT COALESCE(MAX(id),0)+1 FROM catalog_services`).Scan(&next)
	return next, err
}

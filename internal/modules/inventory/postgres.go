package inventory

import (
	"context"
	"database/sql"
)

type postgresRepo struct{ db *sql.DB }

// NewPostgresRepository creates a PostgreSQL-backed inventory repository.
func NewPostgresRepository(db *sql.DB) Repository { return &postgresRepo{db: db} }

func (r *postgresRepo) Create(ctx context.Context, p *Product) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO products
		  (id, name, description, cost_price, sale_price, stock_quantity, supplier_id, supplier_name)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8)`,
		p.ID, p.Name, p.Description, p.CostPrice, p.SalePrice,
		p.StockQuantity, p.SupplierID, p.SupplierName)
	return err
}

func (r *postgresRepo) Update(ctx context.Context, p *Product) error {
	_, err := r.db.ExecContext(ctx, `
		UPDATE products
		SET name=$1, description=$2, cost_price=$3, sale_price=$4,
		    stock_quantity=$5, supplier_id=$6, supplier_name=$7
		WHERE id=$8`,
		p.Name, p.Description, p.CostPrice, p.SalePrice,
		p.StockQuantity, p.SupplierID, p.SupplierName, p.ID)
	return err
}

func scanProduct(scan func(...interface{}) error) (*Product, error) {
	p := &Product{}
	err := scan(&p.ID, &p.Name, &p.Description, &p.CostPrice, &p.SalePrice,
		&p.StockQuantity, &p.SupplierID, &p.SupplierName)
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (r *postgresRepo) GetByID(ctx context.Context, id int) (*Product, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, name, description, cost_price, sale_price, stock_quantity, supplier_id, supplier_name
		FROM products WHERE id=$1`, id)
	return scanProduct(row.Scan)
}

func (r *postgresRepo) List(ctx context.Context) ([]*Product, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, name, description, cost_price, sale_price, stock_quantity, supplier_id, supplier_name
		FROM products ORDER BY id ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var products []*Product
	for rows.Next() {
		p, err := scanProduct(rows.Scan)
		if err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, rows.Err()
}

func (r *postgresRepo) NextID(ctx context.Context) (int, error) {
	var next int
	err := r.db.QueryRowContext(ctx,
		`SELECT COALESCE(MAX(id),0)+1 FROM products`).Scan(&next)
	return next, err
}

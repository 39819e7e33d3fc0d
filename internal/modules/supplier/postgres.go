package supplier

import (
	"context"
	"database/sql"
)

type postgresRepo struct{ db *sql.DB }

// NewPostgresRepository creates a PostgreSQL-backed supplier repository.
func NewPostgresRepository(db *sql.DB) Repository { return &postgresRepo{db: db} }

func (r *postgresRepo) Create(ctx context.Context, s *Supplier) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO suppliers (id, trade_name, legal_name, tax_id, phone, address)
		VALUES ($1,$2,$3,$4,$5,$6)`,
		s.ID, s.TradeName, s.LegalName, s.TaxID, s.Phone, s.Address)
	return err
}

func (r *postgresRepo) Update(ctx context.Context, s *Supplier) error {
	_, err := r.db.ExecContext(ctx, `
		UPDATE suppliers
		SET trade_name=$1, legal_name=$2, tax_id=$3, phone=$4, address=$5
		WHERE id=$6`,
		s.TradeName, s.LegalName, s.TaxID, s.Phone, s.Address, s.ID)
	return err
}

func (r *postgresRepo) GetByID(ctx context.Context, id int) (*Supplier, error) {
	s := &Supplier{}
	err := r.db.QueryRowContext(ctx, `
		SELECT id, trade_name, legal_name, tax_id, phone, address
		FROM suppliers WHERE id=$1`, id).
		Scan(&s.ID, &s.TradeName, &s.LegalName, &s.TaxID, &s.Phone, &s.Address)
	if err != nil {
		return nil, err
	}
	return s, nil
}

func (r *postgresRepo) List(ctx context.Context) ([]*Supplier, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, trade_name, legal_name, tax_id, phone, address
		FROM suppliers ORDER BY id ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var suppliers []*Supplier
	for rows.Next() {
		s := &Supplier{}
		if err := rows.Scan(&s.ID, &s.TradeName, &s.LegalName, &s.TaxID, &s.Phone, &s.Address); err != nil {
			return nil, err
		}
		suppliers = append(suppliers, s)
	}
	return suppliers, rows.Err()
}

func (r *postgresRepo) NextID(ctx context.Context) (int, error) {
	var next int
	err := r.db.QueryRowContext(ctx,
		`SELECT COALESCE(MAX(id),0)+1 FROM suppliers`).Scan(&next)
	return next, err
}

package expense

import (
	"context"
	"database/sql"

	"github.com/milhoverde/oficina-backend/internal/storage"
)

type postgresRepo struct{ db *sql.DB }

// NewPostgresRepository creates a PostgreSQL-backed expense repository.
func NewPostgresRepository(db *sql.DB) Repository { return &postgresRepo{db: db} }

func (r *postgresRepo) Create(ctx context.Context, e *Expense) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO expenses (id, description, value, date, category)
		VALUES ($1,$2,$3,$4,$5)`,
		e.ID, e.Description, e.Value, e.Date.Format(storage.DateTimeLayout), e.Category)
	return err
}

func scanExpense(scan func(...interface{}) error) (*Expense, error) {
	e := &Expense{}
	var date string
	if err := scan(&e.ID, &e.Description, &e.Value, &date, &e.Category); err != nil {
		return nil, err
	}
	dt, err := storage.ParseDateTime(date)
	if err != nil {
		return nil, err
	}
	e.Date = dt
	return e, nil
}

func (r *postgresRepo) GetByID(ctx context.Context, id int) (*Expense, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, description, value, date, category FROM expenses WHERE id=$1`, id)
	return scanExpense(row.Scan)
}

func (r *postgresRepo) List(ctx context.Context) ([]*Expense, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, description, value, date, category FROM expenses ORDER BY id ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var expenses []*Expense
	for rows.Next() {
		e, err := scanExpense(rows.Scan)
		if err != nil {
			return nil, err
		}
		expenses = append(expenses, e)
	}
	return expenses, rows.Err()
}

func (r *postgresRepo) NextID(ctx context.Context) (int, error) {
	var next int
	err := r.db.QueryRowContext(ctx,
		`SELECT COALESCE(MAX(id),0)+1 FROM expenses`).Scan(&next)
	return next, err
}

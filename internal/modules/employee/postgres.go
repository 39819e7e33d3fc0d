package employee

import (
	"context"
	"database/sql"
)

type postgresRepo struct{ db *sql.DB }

// NewPostgresRepository creates a PostgreSQL-backed employee repository.
func NewPostgresRepository(db *sql.DB) Repository { return &postgresRepo{db: db} }

func (r *postgresRepo) Create(ctx context.Context, e *Employee) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO employees (id, name, document, password_hash, role, salary)
		VALUES ($1,$2,$3,$4,$5,$6)`,
		e.ID, e.Name, e.Document, e.PasswordHash, e.Role, e.Salary)
	return err
}

func (r *postgresRepo) Update(ctx context.Context, e *Employee) error {
	_, err := r.db.ExecContext(ctx, `
		UPDATE employees
		SET name=$1, document=$2, password_hash=$3, role=$4, salary=$5
		WHERE id=$6`,
		e.Name, e.Document, e.PasswordHash, e.Role, e.Salary, e.ID)
	return err
}

func (r *postgresRepo) Delete(ctx context.Context, id int) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM employees WHERE id=$1`, id)
	return err
}

func scanEmployee(scan func(...interface{}) error) (*Employee, error) {
	e := &Employee{}
	err := scan(&e.ID, &e.Name, &e.Document, &e.PasswordHash, &e.Role, &e.Salary)
	if err != nil {
		return nil, err
	}
	return e, nil
}

func (r *postgresRepo) GetByID(ctx context.Context, id int) (*Employee, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, name, document, password_hash, role, salary
		FROM employees WHERE id=$1`, id)
	return scanEmployee(row.Scan)
}

func (r *postgresRepo) GetByDocument(ctx context.Context, document string) (*Employee, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, name, document, password_hash, role, salary
		FROM employees WHERE document=$1`, document)
	return scanEmployee(row.Scan)
}

func (r *postgresRepo) List(ctx context.Context) ([]*Employee, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, name, document, password_hash, role, salary
		FROM employees ORDER BY id ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var employees []*Employee
	for rows.Next() {
		e, err := scanEmployee(rows.Scan)
		if err != nil {
			return nil, err
		}
		employees = append(employees, e)
	}
	return employees, rows.Err()
}

func (r *postgresRepo) NextID(ctx context.Context) (int, error) {
	var next int
	err := r.db.QueryRowContext(ctx,
		`SELECT COALESCE(MAX(id),0)+1 FROM employees`).Scan(&next)
	return next, err
}

package lift

import (
	"context"
	"database/sql"
)

type postgresRepo struct{ db *sql.DB }

// NewPostgresRepository creates a PostgreSQL-backed lift repository and
// seeds the default pool when the table is empty.
func NewPostgresRepository(db *sql.DB) (Repository, error) {
	r := &postgresRepo{db: db}
	var count int
	if err := db.QueryRow(`SELECT COUNT(*) FROM lifts`).Scan(&count); err != nil {
		return nil, err
	}
	if count == 0 {
		for _, l := range DefaultPool() {
			_, err := db.Exec(
				`INSERT INTO lifts (number, type, occupied) VALUES ($1,$2,$3)`,
				l.Number, l.Type, l.Occupied)
			if err != nil {
				return nil, err
			}
		}
	}
	return r, nil
}

func (r *postgresRepo) GetByNumber(ctx context.Context, number int) (*Lift, error) {
	l := &Lift{}
	err := r.db.QueryRowContext(ctx,
		`SELECT number, type, occupied FROM lifts WHERE number=$1`, number).
		Scan(&l.Number, &l.Type, &l.Occupied)
	if err != nil {
		return nil, err
	}
	return l, nil
}

func (r *postgresRepo) Update(ctx context.Context, l *Lift) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE lifts SET type=$1, occupied=$2 WHERE number=$3`,
		l.Type, l.Occupied, l.Number)
	return err
}

func (r *postgresRepo) List(ctx context.Context) ([]*Lift, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT number, type, occupied FROM lifts ORDER BY number ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var lifts []*Lift
	for rows.Next() {
		l := &Lift{}
		if err := rows.Scan(&l.Number, &l.Type, &l.Occupied); err != nil {
			return nil, err
		}
		lifts = append(lifts, l)
	}
	return lifts, rows.Err()
}

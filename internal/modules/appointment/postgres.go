package appointment

import (
	"context"
	"database/sql"
	"encoding/json"

	"github.com/milhoverde/oficina-backend/internal/modules/lift"
	"github.com/milhoverde/oficina-backend/internal/storage"
)

type postgresRepo struct{ db *sql.DB }

// NewPostgresRepository creates a PostgreSQL-backed appointment
// repository. The vehicle and lift snapshots are stored as JSONB,
// mirroring the embedded layout of the file backend.
func NewPostgresRepository(db *sql.DB) Repository { return &postgresRepo{db: db} }

func encodeAppointment(a *Appointment) (vehicle, assignedLift []byte, date sql.NullString, err error) {
	if vehicle, err = json.Marshal(a.Vehicle); err != nil {
		return
	}
	if a.AssignedLift != nil {
		if assignedLift, err = json.Marshal(a.AssignedLift); err != nil {
			return
		}
	}
	if a.Date != nil && !a.Date.IsZero() {
		date = sql.NullString{String: a.Date.Format(storage.DateTimeLayout), Valid: true}
	}
	return
}

func (r *postgresRepo) Create(ctx context.Context, a *Appointment) error {
	vehicle, assignedLift, date, err := encodeAppointment(a)
	if err != nil {
		return err
	}
	_, err = r.db.ExecContext(ctx, `
		INSERT INTO appointments
		  (id, client_id, client_name, vehicle, date, problem_description,
		   status, mechanic_id, mechanic_name, assigned_lift, cancellation_fee)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11)`,
		a.ID, a.ClientID, a.ClientName, vehicle, date, a.ProblemDescription,
		a.Status, a.MechanicID, a.MechanicName, assignedLift, a.CancellationFee)
	return err
}

func (r *postgresRepo) Update(ctx context.Context, a *Appointment) error {
	vehicle, assignedLift, date, err := encodeAppointment(a)
	if err != nil {
		return err
	}
	_, err = r.db.ExecContext(ctx, `
		UPDATE appointments
		SET client_id=$1, client_name=$2, vehicle=$3, date=$4,
		    problem_description=$5, status=$6, mechanic_id=$7,
		    mechanic_name=$8, assigned_lift=$9, cancellation_fee=$10
		WHERE id=$11`,
		a.ClientID, a.ClientName, vehicle, date, a.ProblemDescription,
		a.Status, a.MechanicID, a.MechanicName, assignedLift, a.CancellationFee, a.ID)
	return err
}

func scanAppointment(scan func(...interface{}) error) (*Appointment, error) {
	a := &Appointment{}
	var vehicle, assignedLift []byte
	var date sql.NullString
	err := scan(&a.ID, &a.ClientID, &a.ClientName, &vehicle, &date,
		&a.ProblemDescription, &a.Status, &a.MechanicID, &a.MechanicName,
		&assignedLift, &a.CancellationFee)
	if err != nil {
		return nil, err
	}
	if len(vehicle) > 0 {
		if err := json.Unmarshal(vehicle, &a.Vehicle); err != nil {
			return nil, err
		}
	}
	if len(assignedLift) > 0 {
		l := &lift.Lift{}
		if err := json.Unmarshal(assignedLift, l); err != nil {
			return nil, err
		}
		a.AssignedLift = l
	}
	if date.Valid {
		dt, err := storage.ParseDateTime(date.String)
		if err != nil {
			return nil, err
		}
		a.Date = &dt
	}
	return a, nil
}

const appointmentColumns = `id, client_id, client_name, vehicle, date,
	problem_description, status, mechanic_id, mechanic_name, assigned_lift,
	cancellation_fee`

func (r *postgresRepo) GetByID(ctx context.Context, id int) (*Appointment, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+appointmentColumns+` FROM appointments WHERE id=$1`, id)
	return scanAppointment(row.Scan)
}

func (r *postgresRepo) List(ctx context.Context) ([]*Appointment, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+appointmentColumns+` FROM appointments ORDER BY id ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var appointments []*Appointment
	for rows.Next() {
		a, err := scanAppointment(rows.Scan)
		if err != nil {
			return nil, err
		}
		appointments = append(appointments, a)
	}
	return appointments, rows.Err()
}

func (r *postgresRepo) NextID(ctx context.Context) (int, error) {
	var next int
	err := r.db.QueryRowContext(ctx,
		`SELECT COALESCE(MAX(id),0)+1 FROM appointments`).Scan(&next)
	return next, err
}

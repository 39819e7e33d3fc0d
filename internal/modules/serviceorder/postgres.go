package serviceorder

import (
	"context"
	"database/sql"
	"encoding/json"

	"github.com/milhoverde/oficina-backend/internal/storage"
)

type postgresRepo struct{ db *sql.DB }

// NewPostgresRepository creates a PostgreSQL-backed order repository.
// Service and part lines are stored as JSONB columns, mirroring the
// embedded layout of the file backend. Timestamps use the application
// wire format so both backends render identically.
func NewPostgresRepository(db *sql.DB) Repository { return &postgresRepo{db: db} }

func (r *postgresRepo) Create(ctx context.Context, o *ServiceOrder) error {
	services, parts, issuedAt, err := encodeOrder(o)
	if err != nil {
		return err
	}
	_, err = r.db.ExecContext(ctx, `
		INSERT INTO service_orders
		  (id, reference, appointment_id, client_name, vehicle_model, vehicle_plate,
		   status, services, parts, total, opened_at, issued_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12)`,
		o.ID, o.Reference, o.AppointmentID, o.ClientName, o.VehicleModel, o.VehiclePlate,
		o.Status, services, parts, o.Total,
		o.OpenedAt.Format(storage.DateTimeLayout), issuedAt)
	return err
}

func (r *postgresRepo) Update(ctx context.Context, o *ServiceOrder) error {
	services, parts, issuedAt, err := encodeOrder(o)
	if err != nil {
		return err
	}
	_, err = r.db.ExecContext(ctx, `
		UPDATE service_orders
		SET status=$1, services=$2, parts=$3, total=$4, issued_at=$5
		WHERE id=$6`,
		o.Status, services, parts, o.Total, issuedAt, o.ID)
	return err
}

func encodeOrder(o *ServiceOrder) (services, parts []byte, issuedAt sql.NullString, err error) {
	if services, err = json.Marshal(o.Services); err != nil {
		return
	}
	if parts, err = json.Marshal(o.Parts); err != nil {
		return
	}
	if o.IssuedAt != nil && !o.IssuedAt.IsZero() {
		issuedAt = sql.NullString{String: o.IssuedAt.Format(storage.DateTimeLayout), Valid: true}
	}
	return
}

func scanOrder(scan func(...interface{}) error) (*ServiceOrder, error) {
	o := &ServiceOrder{}
	var services, parts []byte
	var openedAt string
	var issuedAt sql.NullString
	err := scan(&o.ID, &o.Reference, &o.AppointmentID, &o.ClientName,
		&o.VehicleModel, &o.VehiclePlate, &o.Status, &services, &parts,
		&o.Total, &openedAt, &issuedAt)
	if err != nil {
		return nil, err
	}
	if len(services) > 0 {
		if err := json.Unmarshal(services, &o.Services); err != nil {
			return nil, err
		}
	}
	if len(parts) > 0 {
		if err := json.Unmarshal(parts, &o.Parts); err != nil {
			return nil, err
		}
	}
	if o.OpenedAt, err = storage.ParseDateTime(openedAt); err != nil {
		return nil, err
	}
	if issuedAt.Valid {
		dt, err := storage.ParseDateTime(issuedAt.String)
		if err != nil {
			return nil, err
		}
		o.IssuedAt = &dt
	}
	return o, nil
}

const orderColumns = `id, reference, appointment_id, client_name, vehicle_model,
	vehicle_plate, status, services, parts, total, opened_at, issued_at`

func (r *postgresRepo) GetByID(ctx context.Context, id int) (*ServiceOrder, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+orderColumns+` FROM service_orders WHERE id=$1`, id)
	return scanOrder(row.Scan)
}

func (r *postgresRepo) List(ctx context.Context) ([]*ServiceOrder, error) {
	return r.query(ctx, `SELECT `+orderColumns+` FROM service_orders ORDER BY id ASC`)
}

func (r *postgresRepo) ListByAppointment(ctx context.Context, appointmentID int) ([]*ServiceOrder, error) {
	return r.query(ctx,
		`SELECT `+orderColumns+` FROM service_orders WHERE appointment_id=$1 ORDER BY id ASC`,
		appointmentID)
}

func (r *postgresRepo) query(ctx context.Context, q string, args ...interface{}) ([]*ServiceOrder, error) {
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var orders []*ServiceOrder
	for rows.Next() {
		o, err := scanOrder(rows.Scan)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	return orders, rows.Err()
}

func (r *postgresRepo) NextID(ctx context.Context) (int, error) {
	var next int
	err := r.db.QueryRowContext(ctx,
		`SELECT COALESCE(MAX(id),0)+1 FROM service_orders`).Scan(&next)
	return next, err
}

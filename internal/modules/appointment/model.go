package appointment

import (
	"sort"
	"strings"

	"github.com/milhoverde/oficina-backend/internal/modules/client"
	"github.com/milhoverde/oficina-backend/internal/modules/lift"
	"github.com/milhoverde/oficina-backend/internal/storage"
)

const (
	StatusScheduled        = "SCHEDULED"
	StatusInServiceLift    = "IN_SERVICE_WITH_LIFT"
	StatusInServiceNoLift  = "IN_SERVICE_WITHOUT_LIFT"
	StatusReadyForDelivery = "READY_FOR_DELIVERY"
	StatusDelivered        = "DELIVERED"
	StatusCancelled        = "CANCELLED"
)

// Appointment tracks one vehicle through the shop. Client and vehicle
// data are snapshots taken at booking time; the lift reference is a
// snapshot taken at allocation and is not reconciled when the pool is
// force-released out of band.
type Appointment struct {
	ID                 int               `json:"id"`
	ClientID           int               `json:"client_id"`
	ClientName         string            `json:"client_name"`
	Vehicle            client.Vehicle    `json:"vehicle"`
	Date               *storage.DateTime `json:"date"`
	ProblemDescription string            `json:"problem_description"`
	Status             string            `json:"status"`
	MechanicID         int               `json:"mechanic_id,omitempty"`
	MechanicName       string            `json:"mechanic_name,omitempty"`
	AssignedLift       *lift.Lift        `json:"assigned_lift,omitempty"`
	CancellationFee    float64           `json:"cancellation_fee,omitempty"`
}

// InService reports whether the vehicle is currently being worked on,
// with or without a lift.
func (a *Appointment) InService() bool {
	return strings.HasPrefix(a.Status, "IN_SERVICE")
}

// SortByDate orders appointments chronologically. Appointments without
// a date sort last.
func SortByDate(items []*Appointment) {
	sort.SliceStable(items, func(i, j int) bool {
		di, dj := items[i].Date, items[j].Date
		switch {
		case di == nil || di.IsZero():
			return false
		case dj == nil || dj.IsZero():
			return true
		default:
			return di.Before(dj.Time)
		}
	})
}

// SortByStatus groups appointments by status, case-insensitively.
func SortByStatus(items []*Appointment) {
	sort.SliceStable(items, func(i, j int) bool {
		return strings.ToLower(items[i].Status) < strings.ToLower(items[j].Status)
	})
}

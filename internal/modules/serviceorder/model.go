package serviceorder

import (
	"fmt"
	"math"

	"github.com/milhoverde/oficina-backend/internal/modules/catalog"
	"github.com/milhoverde/oficina-backend/internal/modules/inventory"
	"github.com/milhoverde/oficina-backend/internal/storage"
)

const (
	StatusOpen      = "OPEN"
	StatusFinalized = "FINALIZED"
)

// ServiceOrder is the ledger of work done during one appointment.
// Client, vehicle, service and part data are value snapshots taken the
// moment each line is added; later edits to the source records do not
// flow back into the order.
type ServiceOrder struct {
	ID            int                   `json:"id"`
	Reference     string                `json:"reference"`
	AppointmentID int                   `json:"appointment_id"`
	ClientName    string                `json:"client_name"`
	VehicleModel  string                `json:"vehicle_model"`
	VehiclePlate  string                `json:"vehicle_plate"`
	Status        string                `json:"status"`
	Services      []catalog.ServiceItem `json:"services"`
	Parts         []inventory.Product   `json:"parts"`
	Total         float64               `json:"total"`
	OpenedAt      storage.DateTime      `json:"opened_at"`
	IssuedAt      *storage.DateTime     `json:"issued_at"`
}

// AddService appends a service line and recomputes the total.
func (o *ServiceOrder) AddService(item catalog.ServiceItem) error {
	if o.Status != StatusOpen {
		return fmt.Errorf("order %d is finalized and cannot be changed", o.ID)
	}
	o.Services = append(o.Services, item)
	o.recomputeTotal()
	return nil
}

// AddPart appends a part line and recomputes the total.
func (o *ServiceOrder) AddPart(p inventory.Product) error {
	if o.Status != StatusOpen {
		return fmt.Errorf("order %d is finalized and cannot be changed", o.ID)
	}
	o.Parts = append(o.Parts, p)
	o.recomputeTotal()
	return nil
}

// Finalize closes the order and stamps the issue time. The stamp is
// taken on every call, so repeating it moves IssuedAt forward.
func (o *ServiceOrder) Finalize() {
	o.Status = StatusFinalized
	now := storage.Now()
	o.IssuedAt = &now
}

func (o *ServiceOrder) recomputeTotal() {
	total := 0.0
	for _, s := range o.Services {
		total += s.Price
	}
	for _, p := range o.Parts {
		total += p.SalePrice
	}
	o.Total = round2(total)
}

func round2(v float64) float64 { return math.Round(v*100) / 100 }

package catalog

// AdHocID marks a labor line created directly on a service order.
// Items carrying it never enter the persisted catalog.
const AdHocID = 0

// ServiceItem is a priced service type offered by the workshop.
type ServiceItem struct {
	ID          int     `json:"id"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
}

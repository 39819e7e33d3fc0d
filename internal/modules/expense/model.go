package expense

import "github.com/milhoverde/oficina-backend/internal/storage"

// Expense is an outgoing cost entry used by the balance reports.
type Expense struct {
	ID          int              `json:"id"`
	Description string           `json:"description"`
	Value       float64          `json:"value"`
	Date        storage.DateTime `json:"date"`
	Category    string           `json:"category"`
}

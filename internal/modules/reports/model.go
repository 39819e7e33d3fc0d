package reports

// OrderLine is one finalized order inside a sales report.
type OrderLine struct {
	OrderID    int     `json:"order_id"`
	Reference  string  `json:"reference"`
	ClientName string  `json:"client_name"`
	Total      float64 `json:"total"`
}

// SalesReport totals the finalized orders of a day or month.
type SalesReport struct {
	Period     string      `json:"period"`
	Orders     []OrderLine `json:"orders"`
	OrderCount int         `json:"order_count"`
	Revenue    float64     `json:"revenue"`
}

const (
	ResultProfit    = "PROFIT"
	ResultLoss      = "LOSS"
	ResultBreakEven = "BREAK_EVEN"
)

// BalanceReport sets a month's revenue against its expenses.
type BalanceReport struct {
	Period        string  `json:"period"`
	Revenue       float64 `json:"revenue"`
	TotalExpenses float64 `json:"total_expenses"`
	Result        float64 `json:"result"`
	Status        string  `json:"status"`
}

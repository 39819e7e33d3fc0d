package inventory

// Product is a stocked part. Supplier id and name are captured when the
// product is registered and are not kept in sync with later supplier edits.
type Product struct {
	ID            int     `json:"id"`
	Name          string  `json:"name"`
	Description   string  `json:"description,omitempty"`
	CostPrice     float64 `json:"cost_price"`
	SalePrice     float64 `json:"sale_price"`
	StockQuantity int     `json:"stock_quantity"`
	SupplierID    int     `json:"supplier_id,omitempty"`
	SupplierName  string  `json:"supplier_name,omitempty"`
}

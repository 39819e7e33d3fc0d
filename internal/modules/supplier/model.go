package supplier

// Supplier is a parts supplier the workshop buys inventory from.
type Supplier struct {
	ID        int    `json:"id"`
	TradeName string `json:"trade_name"`
	LegalName string `json:"legal_name,omitempty"`
	TaxID     string `json:"tax_id,omitempty"`
	Phone     string `json:"phone,omitempty"`
	Address   string `json:"address,omitempty"`
}

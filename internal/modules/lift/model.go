package lift

// Lift is one hydraulic lift bay. Number identifies it; Type is a free
// description matched by substring when allocating.
type Lift struct {
	Number   int    `json:"number"`
	Type     string `json:"type"`
	Occupied bool   `json:"occupied"`
}

// DefaultPool is the workshop's stock configuration: one fixed
// alignment lift and two general-purpose ones.
func DefaultPool() []*Lift {
	return []*Lift{
		{Number: 1, Type: "Fixed (Alignment/Balancing)"},
		{Number: 2, Type: "General"},
		{Number: 3, Type: "General"},
	}
}

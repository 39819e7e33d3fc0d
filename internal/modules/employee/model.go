package employee

// Role distinguishes managers from shop-floor mechanics. One entity type
// with a role flag instead of an inheritance chain.
type Role string

const (
	RoleManager  Role = "MANAGER"
	RoleMechanic Role = "MECHANIC"
)

// Employee is a credential-bearing staff record. The password hash is
// persisted with the record; handlers must strip it before responding.
type Employee struct {
	ID           int     `json:"id"`
	Name         string  `json:"name"`
	Document     string  `json:"document"`
	PasswordHash string  `json:"password_hash,omitempty"`
	Role         Role    `json:"role"`
	Salary       float64 `json:"salary,omitempty"`
}

// Sanitized returns a copy safe for HTTP responses.
func (e Employee) Sanitized() Employee {
	e.PasswordHash = ""
	return e
}

// IsManager reports whether the employee carries the manager role.
func (e Employee) IsManager() bool { return e.Role == RoleManager }

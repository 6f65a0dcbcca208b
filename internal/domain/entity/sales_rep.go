package entity

import "time"

// Valid roles for a SalesRep.
const (
	RoleAdmin = "admin"
	RoleRep   = "rep"
)

// DivisionAll gives a rep (always an admin) visibility over every division.
const DivisionAll = "all"

// SalesRep is an app user: a field sales rep or an admin. Identity comes from
// the external auth provider; UserID is its stable subject key. Reps are
// deactivated, never deleted.
type SalesRep struct {
	ID        string
	UserID    string // subject claim from the identity provider, unique
	Name      string
	Role      string // admin | rep
	Division  string // division code, or "all"
	IsActive  bool
	CreatedAt time.Time
}

// IsAdmin reports whether the rep has the admin role.
func (r *SalesRep) IsAdmin() bool {
	return r.Role == RoleAdmin
}

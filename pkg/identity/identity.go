// Package identity models who is calling: an authenticated account or a
// QR-table guest. An Identity value is built once per request by the auth
// middleware (or from request parameters for guests) and passed explicitly
// through every service call; nothing reads caller state from globals.
package identity

const (
	RoleCustomer   = "customer"
	RoleStaff      = "staff"
	RoleAdmin      = "admin"
	RoleSuperadmin = "superadmin"
)

func KnownRole(r string) bool {
	switch r {
	case RoleCustomer, RoleStaff, RoleAdmin, RoleSuperadmin:
		return true
	}
	return false
}

type Identity struct {
	Authenticated bool

	// Set only when Authenticated.
	UserID       uint
	Email        string
	Name         string
	Role         string
	RestaurantID uint // 0 = no restaurant bound to the account

	// Guest hints, taken from request parameters, never from a token.
	TableNumber string
}

// Guest builds an unauthenticated identity from explicit request hints.
func Guest(tableNumber string) Identity {
	return Identity{TableNumber: tableNumber}
}

// IsStaff reports whether the caller may see and mutate everything inside
// their restaurant. Superadmin is included: it is staff everywhere.
func (id Identity) IsStaff() bool {
	if !id.Authenticated {
		return false
	}
	switch id.Role {
	case RoleStaff, RoleAdmin, RoleSuperadmin:
		return true
	}
	return false
}

func (id Identity) IsAdmin() bool {
	return id.Authenticated && (id.Role == RoleAdmin || id.Role == RoleSuperadmin)
}

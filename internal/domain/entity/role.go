// Package entity contains the core business objects of the project.
package entity

// Role represents the access level of a user account.
type Role string

const (
	// RoleRegular is the default role for every registered account.
	RoleRegular Role = "regular"
	// RoleAdmin grants access to admin-gated endpoints. There is no
	// in-band promotion path; admins are seeded out-of-band.
	RoleAdmin Role = "admin"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a known value.
func (r Role) IsValid() bool {
	switch r {
	case RoleRegular, RoleAdmin:
		return true
	default:
		return false
	}
}

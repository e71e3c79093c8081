// Package entity contains the core business objects of the project.
package entity

import "time"

// Contact is an address-book entry owned by a single user. At least one of
// Email or Phone must be set; the delivery layer rejects payloads with
// neither.
type Contact struct {
	ID          int64
	UserID      int64 // Owning user; every query is scoped to this.
	FirstName   string
	LastName    string
	Email       *string
	Phone       *int64 // Digits only, stored as a number.
	BirthDate   time.Time
	Description *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

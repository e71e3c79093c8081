// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"

	"organizer/internal/domain/entity"
)

// ErrContactNotFound is returned when a contact does not exist or is not
// owned by the requesting user; the two cases are indistinguishable to the
// caller by design.
var ErrContactNotFound = errors.New("contact not found")

// ContactFilter narrows List results. Name matches are case-insensitive
// exact matches; the email match is exact.
type ContactFilter struct {
	FirstName string
	LastName  string
	Email     string
	Limit     int
	Offset    int
}

// ContactRepository defines the standard operations for contact persistence.
// Every operation is scoped to the owning user's id.
type ContactRepository interface {
	// List retrieves the user's contacts matching the filter.
	List(ctx context.Context, userID int64, filter ContactFilter) ([]*entity.Contact, error)

	// FindByID retrieves a single contact owned by the user.
	FindByID(ctx context.Context, userID, contactID int64) (*entity.Contact, error)

	// Create persists a new contact and fills in the generated ID.
	Create(ctx context.Context, contact *entity.Contact) error

	// Update persists modified fields of an existing contact.
	Update(ctx context.Context, contact *entity.Contact) error

	// Delete removes a contact owned by the user.
	Delete(ctx context.Context, userID, contactID int64) error

	// UpcomingBirthdays retrieves the user's contacts whose birthday
	// (month/day) falls within the next `days` days, ordered by month and
	// day, with the window wrapping over the year boundary when needed.
	UpcomingBirthdays(ctx context.Context, userID int64, days, limit, offset int) ([]*entity.Contact, error)
}

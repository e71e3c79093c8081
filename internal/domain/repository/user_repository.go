// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers
// and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"organizer/internal/domain/entity"
)

// ErrUserNotFound is a domain-specific error returned when a user is not
// found. Absence is always an explicit value, never a panic or a nil entity.
var ErrUserNotFound = errors.New("user not found")

// UserRepository defines the standard operations for user persistence.
// The application layer depends on this interface, not the concrete
// implementation.
type UserRepository interface {
	// FindByID retrieves a single user by their unique ID.
	FindByID(ctx context.Context, id int64) (*entity.User, error)

	// FindByUsername retrieves a single user by their login name.
	FindByUsername(ctx context.Context, username string) (*entity.User, error)

	// FindByEmail retrieves a single user by their email address.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// Create persists a new user entity and fills in the generated ID.
	Create(ctx context.Context, user *entity.User) error

	// ConfirmEmail flips the email-confirmed flag for the given address.
	// The flip is one-way and safe to repeat.
	ConfirmEmail(ctx context.Context, email string) error

	// UpdateAvatar stores a new avatar URL for the given address and
	// returns the updated user.
	UpdateAvatar(ctx context.Context, email string, url string) (*entity.User, error)
}

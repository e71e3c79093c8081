// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import "time"

// User represents a registered account. The ID is assigned once by the
// database and never reused; username and email are globally unique.
// PasswordHash always holds a bcrypt hash, never the original secret.
type User struct {
	ID             int64     // Numeric identifier assigned at creation.
	Username       string    // Unique login name.
	Email          string    // Unique contact address, also the email-token subject.
	EmailConfirmed bool      // Starts false; flipped true exactly once by email confirmation.
	PasswordHash   string    // bcrypt hash of the password.
	Role           Role      // Defaults to RoleRegular; changed only out-of-band.
	Avatar         *string   // Optional avatar URL (gravatar-derived or uploaded).
	CreatedAt      time.Time // Timestamp of when this account was created.
	UpdatedAt      time.Time // Timestamp of the last modification to this account.
}

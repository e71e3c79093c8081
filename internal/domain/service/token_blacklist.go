package service

import (
	"context"
	"errors"
	"time"
)

// ErrBlacklistUnavailable is returned when the shared revocation store
// cannot be reached. Callers must not interpret it as "revoked" or "not
// revoked"; the session layer fails closed on it.
var ErrBlacklistUnavailable = errors.New("token blacklist unavailable")

// TokenBlacklist records revoked access tokens until their natural expiry.
// It is backed by a cache shared across service instances; this interface is
// the only writer of revocation records.
type TokenBlacklist interface {
	// Revoke marks a token string as revoked for the given remaining
	// lifetime. A non-positive ttl is a no-op: the token is already
	// expired and a record would outlive nothing.
	Revoke(ctx context.Context, token string, ttl time.Duration) error

	// IsRevoked reports whether a token has been revoked, reflecting
	// writes from any service instance.
	IsRevoked(ctx context.Context, token string) (bool, error)
}

package service

import (
	"errors"
	"time"
)

// ErrInvalidToken is returned by token parsing for any signature mismatch,
// structural defect or expired token. Callers cannot (and must not)
// distinguish the cases.
var ErrInvalidToken = errors.New("invalid token")

// TokenClaims is the decoded payload of a signed token.
type TokenClaims struct {
	Subject   string // The user id (access tokens) or email (email tokens).
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// RemainingTTL returns how much lifetime the token has left. Zero or
// negative means the token is already expired and a revocation record
// would be pointless.
func (c *TokenClaims) RemainingTTL(now time.Time) time.Duration {
	return c.ExpiresAt.Sub(now)
}

// TokenService defines the interface for generating and validating signed,
// self-contained, expiring tokens. Implementations are pure and stateless;
// encode/decode are safe for unsynchronized concurrent use.
type TokenService interface {
	// GenerateAccessToken creates a short-lived bearer token whose subject
	// is the user's numeric id encoded as a string.
	GenerateAccessToken(userID int64) (string, error)

	// ParseAccessToken verifies signature, structure and expiry (strict,
	// no leeway). Any failure is reported as ErrInvalidToken.
	ParseAccessToken(tokenString string) (*TokenClaims, error)

	// GenerateEmailToken creates a long-lived token proving control of an
	// email address; the subject is the address itself.
	GenerateEmailToken(email string) (string, error)

	// ParseEmailToken verifies an email-confirmation token and returns the
	// subject address.
	ParseEmailToken(tokenString string) (string, error)
}

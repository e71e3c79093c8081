// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"organizer/internal/domain/entity"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a new account.
type RegisterInput struct {
	Username string
	Email    string
	Password string
	// ConfirmBaseURL is the externally visible base URL used to build the
	// email confirmation link, e.g. "https://api.example.com".
	ConfirmBaseURL string
}

// LoginInput defines the credentials presented at login.
type LoginInput struct {
	Username string
	Password string
}

// --- Output DTOs ---

// RegisterOutput returns the newly created user's basic information.
type RegisterOutput struct {
	User *entity.User
}

// LoginOutput returns the issued access token after a successful login.
type LoginOutput struct {
	AccessToken string
	TokenType   string
}

// AuthUsecase defines the interface for authentication and session operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type AuthUsecase interface {
	// Register creates a new account with a hashed password and sends the
	// confirmation email. Username conflicts are reported before email conflicts.
	Register(ctx context.Context, input RegisterInput) (*RegisterOutput, error)

	// Login authenticates the credentials and issues a bearer access token.
	Login(ctx context.Context, input LoginInput) (*LoginOutput, error)

	// ResolveToken maps a presented access token to the current account.
	// Revoked, malformed, and expired tokens are rejected, as are tokens
	// whose subject no longer resolves to a user.
	ResolveToken(ctx context.Context, token string) (*entity.User, error)

	// RevokeToken places the token on the denylist for its remaining lifetime.
	RevokeToken(ctx context.Context, token string) error
}

package usecase

import (
	"context"
	"io"

	"organizer/internal/domain/entity"
)

// ResendConfirmationInput defines the data for requesting a new confirmation email.
type ResendConfirmationInput struct {
	Email          string
	ConfirmBaseURL string
}

// UpdateAvatarInput defines the data for replacing the current user's avatar.
type UpdateAvatarInput struct {
	Email       string
	Username    string
	ContentType string
	Body        io.Reader
}

// UserUsecase defines the interface for account-related business operations.
type UserUsecase interface {
	// ConfirmEmail consumes an email confirmation token and marks the account
	// confirmed. Confirming an already-confirmed account is not an error.
	ConfirmEmail(ctx context.Context, token string) (string, error)

	// ResendConfirmation sends a fresh confirmation email when the account
	// exists and is not yet confirmed. The reply does not disclose whether
	// the address is registered.
	ResendConfirmation(ctx context.Context, input ResendConfirmationInput) (string, error)

	// UpdateAvatar uploads a new avatar image and stores its public URL.
	UpdateAvatar(ctx context.Context, input UpdateAvatarInput) (*entity.User, error)
}

package impl

import (
	"context"
	"log/slog"
	"time"

	"organizer/internal/domain/entity"
	"organizer/internal/domain/service"
)

const (
	// confirmEmailPath is the route the confirmation link points at; the
	// token is appended as the final path segment.
	confirmEmailPath = "/api/v1/users/confirmed_email/"

	// emailSendTimeout bounds the background confirmation-email delivery.
	emailSendTimeout = 30 * time.Second
)

// dispatchConfirmationEmail issues an email token and delivers the
// confirmation link in the background. Delivery failures are logged, never
// surfaced to the caller.
func dispatchConfirmationEmail(
	logger *slog.Logger,
	tokens service.TokenService,
	sender service.EmailSender,
	user *entity.User,
	baseURL string,
) {
	emailToken, err := tokens.GenerateEmailToken(user.Email)
	if err != nil {
		logger.Error("Failed to generate email confirmation token",
			slog.Int64("userID", user.ID), slog.Any("error", err))

		return
	}

	confirmURL := baseURL + confirmEmailPath + emailToken

	go func() {
		sendCtx, cancel := context.WithTimeout(context.Background(), emailSendTimeout)
		defer cancel()

		if err := sender.SendConfirmation(sendCtx, user.Email, user.Username, confirmURL); err != nil {
			logger.Error("Failed to send confirmation email",
				slog.Int64("userID", user.ID), slog.Any("error", err))
		}
	}()
}

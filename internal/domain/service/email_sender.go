package service

import "context"

// EmailSender delivers account emails. Implementations are called from
// background goroutines; failures are logged by the caller, never surfaced
// to the end user.
type EmailSender interface {
	// SendConfirmation sends an email-confirmation message containing the
	// given confirmation URL to the address.
	SendConfirmation(ctx context.Context, to, username, confirmURL string) error
}

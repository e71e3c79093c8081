package service

import (
	"context"
	"io"
)

// AvatarProvider derives a default avatar URL for an email address
// (gravatar-style). It is strictly best-effort: registration proceeds
// whether or not it succeeds.
type AvatarProvider interface {
	// Generate returns an avatar URL for the address, or an error when the
	// provider is unavailable.
	Generate(email string) (string, error)
}

// AvatarStorage uploads user-provided avatar images to object storage and
// returns a publicly reachable URL.
type AvatarStorage interface {
	// Upload stores the image under a key derived from the username,
	// overwriting any previous upload for the same user.
	Upload(ctx context.Context, username string, contentType string, body io.Reader) (string, error)
}

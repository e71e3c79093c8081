// Package avatar derives default avatar URLs from email addresses.
package avatar

import (
	"crypto/md5" //nolint:gosec // gravatar's addressing scheme is defined over MD5.
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/pkg/errors"

	"organizer/internal/domain/service"
)

const gravatarBaseURL = "https://www.gravatar.com/avatar"

// gravatarProvider implements service.AvatarProvider against gravatar's
// URL scheme: the MD5 hex digest of the trimmed, lowercased address.
type gravatarProvider struct {
	size int
}

// NewGravatarProvider is the constructor for gravatarProvider.
func NewGravatarProvider() service.AvatarProvider {
	return &gravatarProvider{size: 250}
}

// Generate builds the avatar URL for an email address.
func (p *gravatarProvider) Generate(email string) (string, error) {
	normalized := strings.ToLower(strings.TrimSpace(email))
	if normalized == "" {
		return "", errors.New("empty email address")
	}

	digest := md5.Sum([]byte(normalized)) //nolint:gosec

	return fmt.Sprintf("%s/%s?s=%d&d=identicon", gravatarBaseURL, hex.EncodeToString(digest[:]), p.size), nil
}

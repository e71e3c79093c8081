package avatar

import (
	"crypto/md5" //nolint:gosec
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGravatarProvider_Generate(t *testing.T) {
	provider := NewGravatarProvider()

	url, err := provider.Generate("walter@example.com")
	require.NoError(t, err)

	digest := md5.Sum([]byte("walter@example.com")) //nolint:gosec
	assert.Equal(t, "https://www.gravatar.com/avatar/"+hex.EncodeToString(digest[:])+"?s=250&d=identicon", url)
}

// Addresses are trimmed and lowercased before hashing, per gravatar's
// addressing rules.
func TestGravatarProvider_NormalizesAddress(t *testing.T) {
	provider := NewGravatarProvider()

	canonical, err := provider.Generate("walter@example.com")
	require.NoError(t, err)

	messy, err := provider.Generate("  Walter@Example.COM \n")
	require.NoError(t, err)

	assert.Equal(t, canonical, messy)
}

func TestGravatarProvider_EmptyAddress(t *testing.T) {
	provider := NewGravatarProvider()

	_, err := provider.Generate("   ")
	assert.Error(t, err)
}

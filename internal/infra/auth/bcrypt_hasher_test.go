package auth

import (
	"testing"

	"organizer/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newTestHasher(cost int) *bcryptHasher {
	hasher := NewBcryptHasher(&config.Config{
		Auth: &config.AuthConfig{BcryptCost: cost},
	})

	return hasher.(*bcryptHasher)
}

func TestBcryptHasher_HashAndCheck(t *testing.T) {
	hasher := newTestHasher(bcrypt.MinCost)

	hash, err := hasher.Hash("secret")
	require.NoError(t, err)
	assert.NotEqual(t, "secret", hash)

	assert.True(t, hasher.Check("secret", hash))
	assert.False(t, hasher.Check("wrong", hash))
}

// Two hashes of the same password differ because each carries a fresh salt,
// yet both verify.
func TestBcryptHasher_UniqueSalts(t *testing.T) {
	hasher := newTestHasher(bcrypt.MinCost)

	first, err := hasher.Hash("secret")
	require.NoError(t, err)
	second, err := hasher.Hash("secret")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.True(t, hasher.Check("secret", first))
	assert.True(t, hasher.Check("secret", second))
}

func TestBcryptHasher_MalformedHash(t *testing.T) {
	hasher := newTestHasher(bcrypt.MinCost)

	assert.False(t, hasher.Check("secret", ""))
	assert.False(t, hasher.Check("secret", "not-a-bcrypt-hash"))
}

func TestBcryptHasher_ConfiguredCost(t *testing.T) {
	hasher := newTestHasher(bcrypt.MinCost)

	hash, err := hasher.Hash("secret")
	require.NoError(t, err)

	cost, err := bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	assert.Equal(t, bcrypt.MinCost, cost)
}

// A zero or out-of-range configured cost falls back to the bcrypt default.
func TestBcryptHasher_CostFallback(t *testing.T) {
	assert.Equal(t, bcrypt.DefaultCost, newTestHasher(0).cost)
	assert.Equal(t, bcrypt.DefaultCost, newTestHasher(bcrypt.MaxCost+1).cost)
}

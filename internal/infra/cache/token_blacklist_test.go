package cache

import (
	"context"
	"testing"
	"time"

	"organizer/internal/domain/service"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestBlacklist(t *testing.T) (service.TokenBlacklist, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return NewTokenBlacklist(client), mr
}

func TestRedisBlacklist_RevokeAndCheck(t *testing.T) {
	blacklist, mr := newTestBlacklist(t)
	ctx := context.Background()

	revoked, err := blacklist.IsRevoked(ctx, "token-a")
	require.NoError(t, err)
	assert.False(t, revoked)

	require.NoError(t, blacklist.Revoke(ctx, "token-a", time.Minute))

	revoked, err = blacklist.IsRevoked(ctx, "token-a")
	require.NoError(t, err)
	assert.True(t, revoked)

	// Records are namespaced under the bl: prefix.
	assert.True(t, mr.Exists("bl:token-a"))

	// Another token is unaffected.
	revoked, err = blacklist.IsRevoked(ctx, "token-b")
	require.NoError(t, err)
	assert.False(t, revoked)
}

// The revocation record carries the token's remaining lifetime and lapses
// with it.
func TestRedisBlacklist_RecordExpiresWithToken(t *testing.T) {
	blacklist, mr := newTestBlacklist(t)
	ctx := context.Background()

	require.NoError(t, blacklist.Revoke(ctx, "token-a", time.Minute))
	assert.InDelta(t, time.Minute, mr.TTL("bl:token-a"), float64(time.Second))

	mr.FastForward(2 * time.Minute)

	revoked, err := blacklist.IsRevoked(ctx, "token-a")
	require.NoError(t, err)
	assert.False(t, revoked)
}

// Revoking an already-expired token writes nothing.
func TestRedisBlacklist_NonPositiveTTLIsNoop(t *testing.T) {
	blacklist, mr := newTestBlacklist(t)
	ctx := context.Background()

	require.NoError(t, blacklist.Revoke(ctx, "token-a", 0))
	require.NoError(t, blacklist.Revoke(ctx, "token-b", -time.Minute))

	assert.False(t, mr.Exists("bl:token-a"))
	assert.False(t, mr.Exists("bl:token-b"))
}

// Store outages surface as ErrBlacklistUnavailable, never as a revocation
// verdict.
func TestRedisBlacklist_Unavailable(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	blacklist := NewTokenBlacklist(client)
	mr.Close()

	ctx := context.Background()

	_, err := blacklist.IsRevoked(ctx, "token-a")
	assert.ErrorIs(t, err, service.ErrBlacklistUnavailable)

	err = blacklist.Revoke(ctx, "token-a", time.Minute)
	assert.ErrorIs(t, err, service.ErrBlacklistUnavailable)
}

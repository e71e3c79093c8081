package cache

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"

	"organizer/internal/domain/service"
)

// blacklistKeyPrefix namespaces revocation records in the shared cache.
const blacklistKeyPrefix = "bl:"

// redisBlacklist implements service.TokenBlacklist on a shared Redis
// instance so revocations are visible to every service replica.
type redisBlacklist struct {
	client *redis.Client
}

// NewTokenBlacklist is the constructor for redisBlacklist.
func NewTokenBlacklist(client *redis.Client) service.TokenBlacklist {
	return &redisBlacklist{client: client}
}

// Revoke records the token with an expiry equal to its remaining lifetime.
// The record must never outlive the token, so a non-positive ttl writes
// nothing.
func (b *redisBlacklist) Revoke(ctx context.Context, token string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}

	if err := b.client.Set(ctx, blacklistKeyPrefix+token, "1", ttl).Err(); err != nil {
		return errors.Wrapf(service.ErrBlacklistUnavailable, "record revocation: %v", err)
	}

	return nil
}

// IsRevoked reports whether a revocation record exists for the token.
func (b *redisBlacklist) IsRevoked(ctx context.Context, token string) (bool, error) {
	n, err := b.client.Exists(ctx, blacklistKeyPrefix+token).Result()
	if err != nil {
		return false, errors.Wrapf(service.ErrBlacklistUnavailable, "check revocation: %v", err)
	}

	return n > 0, nil
}

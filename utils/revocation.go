package utils

import (
	"context"
	"time"

	"storefront/config"
)

// RevocationStore records logged-out token ids until their natural expiry.
type RevocationStore interface {
	Revoke(ctx context.Context, jti string, ttl time.Duration) error
	IsRevoked(ctx context.Context, jti string) bool
}

// Revocations is the process-wide store. Backed by Redis when configured;
// otherwise a no-op and logout degrades to a client-side token discard.
var Revocations RevocationStore = redisRevocationStore{}

type redisRevocationStore struct{}

func (redisRevocationStore) Revoke(ctx context.Context, jti string, ttl time.Duration) error {
	if config.RedisClient == nil || ttl <= 0 {
		return nil
	}
	return config.RedisClient.Set(ctx, "revoked:"+jti, "1", ttl).Err()
}

func (redisRevocationStore) IsRevoked(ctx context.Context, jti string) bool {
	if config.RedisClient == nil || jti == "" {
		return false
	}
	n, err := config.RedisClient.Exists(ctx, "revoked:"+jti).Result()
	return err == nil && n > 0
}

package repositories

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisTokenRepository stores revoked token IDs with a TTL matching the
// token's remaining lifetime; after expiry the signature check alone rejects
// the token anyway.
type RedisTokenRepository struct {
	client *redis.Client
}

// NoopTokenRepository is used when redis is not configured: nothing is ever
// revoked server-side and logout is a client-side concern.
type NoopTokenRepository struct{}

func NewTokenRepository(client *redis.Client) TokenRepository {
	if client == nil {
		return NoopTokenRepository{}
	}
	return &RedisTokenRepository{client: client}
}

func revocationKey(tokenID string) string {
	return "revoked_token:" + tokenID
}

func (r *RedisTokenRepository) Revoke(ctx context.Context, tokenID string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}
	return r.client.Set(ctx, revocationKey(tokenID), 1, ttl).Err()
}

func (r *RedisTokenRepository) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	n, err := r.client.Exists(ctx, revocationKey(tokenID)).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (NoopTokenRepository) Revoke(context.Context, string, time.Duration) error {
	return nil
}

func (NoopTokenRepository) IsRevoked(context.Context, string) (bool, error) {
	return false, nil
}

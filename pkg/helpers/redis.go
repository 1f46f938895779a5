package helpers

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

const revokedTokenPrefix = "auth:revoked:"

// NewRedisClient initializes a redis client
func NewRedisClient(addr, password string, db int) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
}

// RevocationStore keeps the jti revocation list consulted by the bearer
// guard. Logout writes to it; every guarded request reads it.
type RevocationStore interface {
	Revoke(ctx context.Context, tokenID string, expiresAt time.Time) error
	Revoked(ctx context.Context, tokenID string) bool
}

type redisRevocationStore struct {
	rdb *redis.Client
}

// NewRevocationStore backs the revocation list with Redis. A nil client
// yields a nil store, which callers treat as revocation disabled.
func NewRevocationStore(rdb *redis.Client) RevocationStore {
	if rdb == nil {
		return nil
	}
	return &redisRevocationStore{rdb: rdb}
}

// Revoke records a token id until the token would have expired on its own.
func (s *redisRevocationStore) Revoke(ctx context.Context, tokenID string, expiresAt time.Time) error {
	ttl := time.Until(expiresAt)
	if ttl <= 0 {
		return nil
	}
	return s.rdb.Set(ctx, revokedTokenPrefix+tokenID, "1", ttl).Err()
}

// Revoked reports whether a token id is on the revocation list. Redis
// errors fail open: a broken revocation store must not lock everyone out.
func (s *redisRevocationStore) Revoked(ctx context.Context, tokenID string) bool {
	n, err := s.rdb.Exists(ctx, revokedTokenPrefix+tokenID).Result()
	if err != nil {
		return false
	}
	return n > 0
}

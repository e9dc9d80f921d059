// Package redis provides Redis-backed implementations of shared state
// that must outlive a single process, currently the token revocation
// set. Keys expire with the tokens they revoke, so the set stays
// bounded and works across multiple server instances.
package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/harwick/shelf-api/internal/service/auth"
)

// revocationKeyPrefix namespaces revocation entries in the keyspace.
const revocationKeyPrefix = "revoked_jti:"

// RevocationStore implements auth.RevocationStore on top of Redis.
type RevocationStore struct {
	client *redis.Client
}

// NewRevocationStore creates a revocation store using the given client.
// The caller owns the client's lifecycle.
func NewRevocationStore(client *redis.Client) *RevocationStore {
	if client == nil {
		panic("redis client cannot be nil")
	}
	return &RevocationStore{client: client}
}

// Ensure RevocationStore implements auth.RevocationStore interface
var _ auth.RevocationStore = (*RevocationStore)(nil)

// Revoke implements auth.RevocationStore.Revoke. The entry's TTL is the
// token's remaining lifetime; once the token expires on its own the
// entry disappears with it.
func (s *RevocationStore) Revoke(ctx context.Context, tokenID string, ttl time.Duration) error {
	if ttl <= 0 {
		// The token has already expired; revoking it is a no-op.
		return nil
	}

	if err := s.client.Set(ctx, revocationKeyPrefix+tokenID, "1", ttl).Err(); err != nil {
		return fmt.Errorf("failed to revoke token: %w", err)
	}
	return nil
}

// IsRevoked implements auth.RevocationStore.IsRevoked.
func (s *RevocationStore) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	n, err := s.client.Exists(ctx, revocationKeyPrefix+tokenID).Result()
	if err != nil {
		return false, fmt.Errorf("failed to check token revocation: %w", err)
	}
	return n > 0, nil
}

// Connect opens a Redis client for the given URL (redis://...) and
// verifies connectivity with a short ping.
func Connect(ctx context.Context, url string) (*redis.Client, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("invalid redis URL: %w", err)
	}

	client := redis.NewClient(opts)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to ping redis: %w", err)
	}

	return client, nil
}

package auth

import (
	"context"
	"sync"
	"time"
)

// RevocationStore tracks revoked token IDs (jti claims). A token whose
// jti is in the store is rejected on every gate even though its
// signature and expiry are still technically valid. Entries only need
// to live as long as the token they revoke, so implementations bound
// memory by expiring them with the token.
type RevocationStore interface {
	// Revoke marks the token ID as revoked for the given duration,
	// which should be the token's remaining lifetime.
	Revoke(ctx context.Context, tokenID string, ttl time.Duration) error

	// IsRevoked reports whether the token ID has been revoked.
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}

// MemoryRevocationStore is an in-process RevocationStore backed by a
// mutex-guarded map with per-entry expiry. It is safe for concurrent
// use but does not survive restarts or span multiple server instances;
// deployments with more than one instance should use the Redis-backed
// implementation instead.
type MemoryRevocationStore struct {
	mu      sync.RWMutex
	entries map[string]time.Time // jti -> expiry
}

// NewMemoryRevocationStore creates an empty in-memory revocation store.
func NewMemoryRevocationStore() *MemoryRevocationStore {
	return &MemoryRevocationStore{
		entries: make(map[string]time.Time),
	}
}

// Ensure MemoryRevocationStore implements RevocationStore interface
var _ RevocationStore = (*MemoryRevocationStore)(nil)

// Revoke implements RevocationStore.Revoke.
func (s *MemoryRevocationStore) Revoke(ctx context.Context, tokenID string, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries[tokenID] = time.Now().Add(ttl)
	s.sweepLocked()
	return nil
}

// IsRevoked implements RevocationStore.IsRevoked.
func (s *MemoryRevocationStore) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	s.mu.RLock()
	expiry, ok := s.entries[tokenID]
	s.mu.RUnlock()

	if !ok {
		return false, nil
	}
	if time.Now().After(expiry) {
		// The token the entry revoked has expired on its own; the entry
		// is just garbage now.
		s.mu.Lock()
		delete(s.entries, tokenID)
		s.mu.Unlock()
		return false, nil
	}
	return true, nil
}

// sweepLocked drops expired entries. Caller must hold the write lock.
func (s *MemoryRevocationStore) sweepLocked() {
	now := time.Now()
	for jti, expiry := range s.entries {
		if now.After(expiry) {
			delete(s.entries, jti)
		}
	}
}

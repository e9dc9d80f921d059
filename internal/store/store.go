package store

import (
	"context"

	"github.com/google/uuid"
	"github.com/harwick/shelf-api/internal/domain"
)

// StoreStore defines the interface for store entity persistence.
type StoreStore interface {
	// Create saves a new store.
	// Returns ErrStoreNameExists if the name is already taken.
	Create(ctx context.Context, s *domain.Store) error

	// GetByID retrieves a store by its unique ID, with item and tag
	// summaries populated. Returns ErrStoreNotFound if absent.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Store, error)

	// List retrieves all stores, each with item and tag summaries
	// populated.
	List(ctx context.Context) ([]*domain.Store, error)

	// Delete removes a store by its ID.
	// Returns ErrStoreNotFound if the store does not exist, and
	// ErrForeignKey if items or tags still reference it.
	Delete(ctx context.Context, id uuid.UUID) error
}

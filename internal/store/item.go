package store

import (
	"context"

	"github.com/google/uuid"
	"github.com/harwick/shelf-api/internal/domain"
)

// ItemStore defines the interface for item entity persistence.
type ItemStore interface {
	// Create saves a new item.
	// Returns ErrItemNameExists if the name is already taken, and
	// ErrForeignKey if the referenced store does not exist.
	Create(ctx context.Context, item *domain.Item) error

	// GetByID retrieves an item by its unique ID, with the store summary
	// and tag summaries populated. Returns ErrItemNotFound if absent.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Item, error)

	// List retrieves all items, each with store and tag summaries
	// populated.
	List(ctx context.Context) ([]*domain.Item, error)

	// Update persists the item's name and price.
	// Returns ErrItemNotFound if the item does not exist, and
	// ErrItemNameExists if renaming to a taken name.
	Update(ctx context.Context, item *domain.Item) error

	// Delete removes an item by its ID. Associations to tags are removed
	// with it. Returns ErrItemNotFound if the item does not exist.
	Delete(ctx context.Context, id uuid.UUID) error
}

package store

import (
	"context"

	"github.com/google/uuid"
	"github.com/harwick/shelf-api/internal/domain"
)

// TagStore defines the interface for tag entity persistence, including
// the many-to-many association between items and tags.
type TagStore interface {
	// Create saves a new tag scoped to its store.
	// Returns ErrTagNameExists if the store already has a tag with that
	// name, and ErrForeignKey if the store does not exist.
	Create(ctx context.Context, tag *domain.Tag) error

	// GetByID retrieves a tag by its unique ID, with the store summary
	// and linked item summaries populated. Returns ErrTagNotFound if
	// absent.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Tag, error)

	// ListByStore retrieves all tags belonging to the given store.
	ListByStore(ctx context.Context, storeID uuid.UUID) ([]*domain.Tag, error)

	// ExistsInStore reports whether the store already has a tag with the
	// given name. Used as a fast-path pre-check; the compound unique
	// constraint in storage remains the authority.
	ExistsInStore(ctx context.Context, storeID uuid.UUID, name string) (bool, error)

	// Delete removes a tag by its ID.
	// Returns ErrTagNotFound if the tag does not exist, and ErrTagLinked
	// if one or more items are still linked to it.
	Delete(ctx context.Context, id uuid.UUID) error

	// Link associates a tag with an item. Linking an already-linked pair
	// is a no-op; exactly one association row ever exists per pair.
	// Returns ErrForeignKey if either side does not exist.
	Link(ctx context.Context, itemID, tagID uuid.UUID) error

	// Unlink removes the association between an item and a tag, leaving
	// both entities intact. Returns ErrLinkNotFound if the pair is not
	// linked.
	Unlink(ctx context.Context, itemID, tagID uuid.UUID) error
}

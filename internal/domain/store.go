package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Store validation errors. All wrap ErrValidation so callers can match
// the category without enumerating every failure.
var (
	ErrEmptyStoreName   = fmt.Errorf("%w: store name cannot be empty", ErrValidation)
	ErrStoreNameTooLong = fmt.Errorf("%w: store name must be at most 80 characters", ErrValidation)
)

// maxNameLength is the longest name accepted for stores, items, and tags.
// Matches the column width in the schema.
const maxNameLength = 80

// Store represents a single store in the catalog. A store owns zero or
// more items and zero or more tags; neither can exist without it.
type Store struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Items and Tags are read-only summaries populated by the store
	// layer on reads. They are never consulted on writes.
	Items []*Item `json:"items,omitempty"`
	Tags  []*Tag  `json:"tags,omitempty"`
}

// NewStore creates a new Store with the given name.
// It generates a new UUID and sets the creation/update timestamps.
// Returns an error if validation fails.
func NewStore(name string) (*Store, error) {
	now := time.Now().UTC()
	store := &Store{
		ID:        uuid.New(),
		Name:      name,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := store.Validate(); err != nil {
		return nil, err
	}

	return store, nil
}

// Validate checks if the Store has valid data.
func (s *Store) Validate() error {
	if s.ID == uuid.Nil {
		return ErrInvalidID
	}
	if s.Name == "" {
		return ErrEmptyStoreName
	}
	if len(s.Name) > maxNameLength {
		return ErrStoreNameTooLong
	}
	return nil
}

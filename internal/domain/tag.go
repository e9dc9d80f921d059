package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Tag validation errors. All wrap ErrValidation.
var (
	ErrEmptyTagName   = fmt.Errorf("%w: tag name cannot be empty", ErrValidation)
	ErrTagNameTooLong = fmt.Errorf("%w: tag name must be at most 80 characters", ErrValidation)
	ErrEmptyTagStore  = fmt.Errorf("%w: tag must reference a store", ErrValidation)
)

// Tag represents a label scoped to a single store. Tag names are unique
// within a store but may repeat across stores. Tags attach to items via
// a many-to-many association.
type Tag struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	StoreID   uuid.UUID `json:"-"` // Write-only; the nested store summary is serialized instead
	CreatedAt time.Time `json:"created_at"`

	// Store and Items are read-only summaries populated by the store
	// layer on reads.
	Store *Store  `json:"store,omitempty"`
	Items []*Item `json:"items,omitempty"`
}

// NewTag creates a new Tag scoped to the given store.
// It generates a new UUID and sets the creation timestamp.
// Returns an error if validation fails.
func NewTag(name string, storeID uuid.UUID) (*Tag, error) {
	tag := &Tag{
		ID:        uuid.New(),
		Name:      name,
		StoreID:   storeID,
		CreatedAt: time.Now().UTC(),
	}

	if err := tag.Validate(); err != nil {
		return nil, err
	}

	return tag, nil
}

// Validate checks if the Tag has valid data.
func (t *Tag) Validate() error {
	if t.ID == uuid.Nil {
		return ErrInvalidID
	}
	if t.Name == "" {
		return ErrEmptyTagName
	}
	if len(t.Name) > maxNameLength {
		return ErrTagNameTooLong
	}
	if t.StoreID == uuid.Nil {
		return ErrEmptyTagStore
	}
	return nil
}

package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Item validation errors. All wrap ErrValidation.
var (
	ErrEmptyItemName   = fmt.Errorf("%w: item name cannot be empty", ErrValidation)
	ErrItemNameTooLong = fmt.Errorf("%w: item name must be at most 80 characters", ErrValidation)
	ErrNegativePrice   = fmt.Errorf("%w: item price cannot be negative", ErrValidation)
	ErrEmptyStoreID    = fmt.Errorf("%w: item must reference a store", ErrValidation)
)

// Item represents a single item for sale in a store. Every item belongs
// to exactly one store and carries a fixed-precision price.
type Item struct {
	ID        uuid.UUID       `json:"id"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	StoreID   uuid.UUID       `json:"-"` // Write-only; never serialized back in responses
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`

	// Store and Tags are read-only summaries populated by the store
	// layer on reads.
	Store *Store `json:"store,omitempty"`
	Tags  []*Tag `json:"tags,omitempty"`
}

// NewItem creates a new Item belonging to the given store.
// It generates a new UUID and sets the creation/update timestamps.
// Returns an error if validation fails.
func NewItem(name string, price decimal.Decimal, storeID uuid.UUID) (*Item, error) {
	now := time.Now().UTC()
	item := &Item{
		ID:        uuid.New(),
		Name:      name,
		Price:     price,
		StoreID:   storeID,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := item.Validate(); err != nil {
		return nil, err
	}

	return item, nil
}

// Validate checks if the Item has valid data.
func (i *Item) Validate() error {
	if i.ID == uuid.Nil {
		return ErrInvalidID
	}
	if i.Name == "" {
		return ErrEmptyItemName
	}
	if len(i.Name) > maxNameLength {
		return ErrItemNameTooLong
	}
	if i.Price.IsNegative() {
		return ErrNegativePrice
	}
	if i.StoreID == uuid.Nil {
		return ErrEmptyStoreID
	}
	return nil
}

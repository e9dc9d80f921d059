package domain

import (
	"errors"
	"testing"

	"github.com/google/uuid"
)

func TestNewTag(t *testing.T) {
	storeID := uuid.New()

	tag, err := NewTag("On Sale", storeID)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if tag.ID == uuid.Nil {
		t.Error("Expected non-nil UUID, got nil UUID")
	}
	if tag.Name != "On Sale" {
		t.Errorf("Expected name %q, got %q", "On Sale", tag.Name)
	}
	if tag.StoreID != storeID {
		t.Errorf("Expected store ID %s, got %s", storeID, tag.StoreID)
	}
	if tag.CreatedAt.IsZero() {
		t.Error("Expected non-zero CreatedAt time")
	}

	_, err = NewTag("", storeID)
	if !errors.Is(err, ErrEmptyTagName) {
		t.Errorf("Expected error %v, got %v", ErrEmptyTagName, err)
	}

	_, err = NewTag("On Sale", uuid.Nil)
	if !errors.Is(err, ErrEmptyTagStore) {
		t.Errorf("Expected error %v, got %v", ErrEmptyTagStore, err)
	}
}

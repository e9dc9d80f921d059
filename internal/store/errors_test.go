package store

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEntityNotFoundErrorsWrapErrNotFound(t *testing.T) {
	for _, err := range []error{
		ErrStoreNotFound,
		ErrItemNotFound,
		ErrTagNotFound,
		ErrUserNotFound,
		ErrLinkNotFound,
	} {
		assert.True(t, IsNotFound(err), "expected %v to be a not-found error", err)
	}
}

func TestDuplicateErrorsWrapHierarchy(t *testing.T) {
	for _, err := range []error{
		ErrStoreNameExists,
		ErrItemNameExists,
		ErrTagNameExists,
		ErrUsernameExists,
		ErrEmailExists,
	} {
		assert.True(t, IsDuplicate(err), "expected %v to be a duplicate error", err)
		assert.True(t, IsConstraintViolation(err),
			"expected %v to be a constraint violation", err)
	}
}

func TestForeignKeyIsConstraintButNotDuplicate(t *testing.T) {
	assert.True(t, IsConstraintViolation(ErrForeignKey))
	assert.False(t, IsDuplicate(ErrForeignKey))
	assert.False(t, IsNotFound(ErrForeignKey))
}

func TestWrappedErrorsStillMatch(t *testing.T) {
	wrapped := fmt.Errorf("creating store: %w", ErrStoreNameExists)
	assert.True(t, errors.Is(wrapped, ErrStoreNameExists))
	assert.True(t, IsDuplicate(wrapped))
}

func TestStateErrorsAreDistinct(t *testing.T) {
	assert.False(t, IsNotFound(ErrTagLinked))
	assert.False(t, IsConstraintViolation(ErrTagLinked))
	assert.False(t, IsConstraintViolation(ErrStoreHasDependents))
}

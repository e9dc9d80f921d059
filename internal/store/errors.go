package store

import (
	"errors"
	"fmt"
)

// Common store errors used across all store implementations.
var (
	// ErrNotFound is returned when a requested entity does not exist in
	// the store. Entity-specific variants below wrap it.
	ErrNotFound = errors.New("entity not found")

	// ErrConstraintViolation is the umbrella for storage-level rejections
	// caused by uniqueness or referential-integrity rules. Callers
	// disambiguate by operation context (a duplicate name on create, a
	// missing parent row on insert, dependent rows on delete).
	ErrConstraintViolation = errors.New("constraint violation")

	// ErrDuplicate is returned when an operation would create a duplicate
	// of a unique entity (e.g., a second store with the same name).
	ErrDuplicate = fmt.Errorf("%w: unique", ErrConstraintViolation)

	// ErrForeignKey is returned when an operation would break referential
	// integrity, either by referencing a missing row on insert or by
	// deleting a row that other rows still depend on.
	ErrForeignKey = fmt.Errorf("%w: referential integrity", ErrConstraintViolation)

	// ErrInvalidEntity is returned when an entity fails validation or a
	// check constraint before being stored.
	ErrInvalidEntity = errors.New("invalid entity")

	// ErrTransactionFailed is returned when a transaction fails to commit
	// or an operation within it fails.
	ErrTransactionFailed = errors.New("transaction failed")

	// Entity-specific "not found" errors

	// ErrStoreNotFound indicates that the requested store does not exist.
	ErrStoreNotFound = fmt.Errorf("%w: store", ErrNotFound)

	// ErrItemNotFound indicates that the requested item does not exist.
	ErrItemNotFound = fmt.Errorf("%w: item", ErrNotFound)

	// ErrTagNotFound indicates that the requested tag does not exist.
	ErrTagNotFound = fmt.Errorf("%w: tag", ErrNotFound)

	// ErrUserNotFound indicates that the requested user does not exist.
	ErrUserNotFound = fmt.Errorf("%w: user", ErrNotFound)

	// ErrLinkNotFound indicates that an item/tag association does not exist.
	ErrLinkNotFound = fmt.Errorf("%w: item-tag link", ErrNotFound)

	// Entity-specific "duplicate" errors

	// ErrStoreNameExists indicates a store with the given name already exists.
	ErrStoreNameExists = fmt.Errorf("%w: store name", ErrDuplicate)

	// ErrItemNameExists indicates an item with the given name already exists.
	ErrItemNameExists = fmt.Errorf("%w: item name", ErrDuplicate)

	// ErrTagNameExists indicates the store already has a tag with that name.
	ErrTagNameExists = fmt.Errorf("%w: tag name in store", ErrDuplicate)

	// ErrUsernameExists indicates a user with the given username already exists.
	ErrUsernameExists = fmt.Errorf("%w: username", ErrDuplicate)

	// ErrEmailExists indicates a user with the given email already exists.
	ErrEmailExists = fmt.Errorf("%w: email", ErrDuplicate)

	// State errors

	// ErrTagLinked is returned when deleting a tag that still has linked
	// items. The tag must be unlinked from every item first.
	ErrTagLinked = errors.New("tag is still linked to items")

	// ErrStoreHasDependents is returned when deleting a store that still
	// owns items or tags. No cascade is configured.
	ErrStoreHasDependents = errors.New("store still has items or tags")
)

// IsNotFound reports whether the error is any kind of "not found" error.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsDuplicate reports whether the error is any kind of uniqueness violation.
func IsDuplicate(err error) bool {
	return errors.Is(err, ErrDuplicate)
}

// IsConstraintViolation reports whether the error is a storage-level
// uniqueness or referential-integrity rejection.
func IsConstraintViolation(err error) bool {
	return errors.Is(err, ErrConstraintViolation)
}

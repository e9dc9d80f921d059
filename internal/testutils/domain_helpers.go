package testutils

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/harwick/shelf-api/internal/domain"
)

// MustNewStore creates a valid store entity or fails the test.
func MustNewStore(t *testing.T, name string) *domain.Store {
	t.Helper()
	st, err := domain.NewStore(name)
	require.NoError(t, err, "failed to create test store")
	return st
}

// MustNewItem creates a valid item entity or fails the test.
func MustNewItem(t *testing.T, name string, price string, storeID uuid.UUID) *domain.Item {
	t.Helper()
	p, err := decimal.NewFromString(price)
	require.NoError(t, err, "invalid test price")
	item, err := domain.NewItem(name, p, storeID)
	require.NoError(t, err, "failed to create test item")
	return item
}

// MustNewTag creates a valid tag entity or fails the test.
func MustNewTag(t *testing.T, name string, storeID uuid.UUID) *domain.Tag {
	t.Helper()
	tag, err := domain.NewTag(name, storeID)
	require.NoError(t, err, "failed to create test tag")
	return tag
}

// MustNewUser creates a valid user entity or fails the test. The
// plaintext password is left in place for callers that hash it.
func MustNewUser(t *testing.T, username, email string) *domain.User {
	t.Helper()
	user, err := domain.NewUser(username, email, "password1234")
	require.NoError(t, err, "failed to create test user")
	return user
}

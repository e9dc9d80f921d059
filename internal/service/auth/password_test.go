package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestBcryptHashAndCompare(t *testing.T) {
	// MinCost keeps the test fast; production cost comes from config.
	v := NewBcryptVerifier(bcrypt.MinCost)

	hash, err := v.Hash("correct horse battery staple")
	require.NoError(t, err)
	require.NotEmpty(t, hash)
	assert.NotEqual(t, "correct horse battery staple", hash)

	assert.NoError(t, v.Compare(hash, "correct horse battery staple"))
	assert.Error(t, v.Compare(hash, "wrong password"))
	assert.Error(t, v.Compare("not-a-bcrypt-hash", "anything"))
}

func TestBcryptDefaultCost(t *testing.T) {
	v := NewBcryptVerifier(0)

	hash, err := v.Hash("somepassword")
	require.NoError(t, err)

	cost, err := bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	assert.Equal(t, bcrypt.DefaultCost, cost)
}

func TestBcryptHashesAreSalted(t *testing.T) {
	v := NewBcryptVerifier(bcrypt.MinCost)

	first, err := v.Hash("samepassword")
	require.NoError(t, err)
	second, err := v.Hash("samepassword")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

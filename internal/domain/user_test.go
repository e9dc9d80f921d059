package domain

import (
	"errors"
	"testing"

	"github.com/google/uuid"
)

func TestNewUser(t *testing.T) {
	user, err := NewUser("alice", "alice@example.com", "supersecret")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if user.ID == uuid.Nil {
		t.Error("Expected non-nil UUID, got nil UUID")
	}
	if user.Username != "alice" {
		t.Errorf("Expected username %q, got %q", "alice", user.Username)
	}
	if user.IsAdmin {
		t.Error("Registration must never create admin accounts")
	}
	if user.CreatedAt.IsZero() {
		t.Error("Expected non-zero CreatedAt time")
	}

	_, err = NewUser("", "alice@example.com", "supersecret")
	if !errors.Is(err, ErrEmptyUsername) {
		t.Errorf("Expected error %v, got %v", ErrEmptyUsername, err)
	}

	_, err = NewUser("alice", "not-an-email", "supersecret")
	if !errors.Is(err, ErrInvalidEmail) {
		t.Errorf("Expected error %v, got %v", ErrInvalidEmail, err)
	}

	_, err = NewUser("alice", "alice@example.com", "short")
	if !errors.Is(err, ErrPasswordTooShort) {
		t.Errorf("Expected error %v, got %v", ErrPasswordTooShort, err)
	}
}

func TestUserValidate(t *testing.T) {
	// Users loaded from storage carry only the hash, no plaintext.
	stored := User{
		ID:             uuid.New(),
		Username:       "bob",
		Email:          "bob@example.com",
		HashedPassword: "$2a$10$abcdefghijklmnopqrstuv",
	}
	if err := stored.Validate(); err != nil {
		t.Errorf("Expected no error for stored user, got %v", err)
	}

	neither := stored
	neither.HashedPassword = ""
	if err := neither.Validate(); !errors.Is(err, ErrEmptyPassword) {
		t.Errorf("Expected error %v, got %v", ErrEmptyPassword, err)
	}
}

func TestUserValidationErrorsWrapCategory(t *testing.T) {
	// Every validation sentinel must match ErrValidation so the API
	// boundary can map the whole category to a 400.
	sentinels := []error{
		ErrEmptyUsername,
		ErrEmptyEmail,
		ErrInvalidEmail,
		ErrPasswordTooShort,
		ErrPasswordTooLong,
		ErrEmptyStoreName,
		ErrEmptyItemName,
		ErrNegativePrice,
		ErrEmptyTagName,
	}
	for _, sentinel := range sentinels {
		if !errors.Is(sentinel, ErrValidation) {
			t.Errorf("Expected %v to wrap ErrValidation", sentinel)
		}
	}
}

func TestPasswordLengthErrorsWrapInvalidPassword(t *testing.T) {
	// Length failures are a kind of invalid password, so callers can
	// match the narrower sentinel or the whole category.
	for _, sentinel := range []error{ErrPasswordTooShort, ErrPasswordTooLong} {
		if !errors.Is(sentinel, ErrInvalidPassword) {
			t.Errorf("Expected %v to wrap ErrInvalidPassword", sentinel)
		}
	}
}

func TestValidEmailFormat(t *testing.T) {
	cases := map[string]bool{
		"user@example.com":     true,
		"user@sub.example.com": true,
		"user@localhost":       false,
		"@example.com":         false,
		"user@":                false,
		"userexample.com":      false,
		"user@example.":        false,
	}
	for email, want := range cases {
		if got := validEmailFormat(email); got != want {
			t.Errorf("validEmailFormat(%q) = %v, want %v", email, got, want)
		}
	}
}

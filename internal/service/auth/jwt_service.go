package auth

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/harwick/shelf-api/internal/domain"
)

// JWTService defines operations for managing JWT authentication tokens.
type JWTService interface {
	// GenerateAccessToken creates a signed JWT access token for the
	// user. The fresh flag marks tokens issued directly from a password
	// login; refreshed tokens are never fresh. The user's admin flag is
	// embedded as a claim at issuance.
	GenerateAccessToken(ctx context.Context, user *domain.User, fresh bool) (string, error)

	// ValidateToken validates the provided access token string and
	// extracts the claims. Returns an error if validation fails
	// (expired, invalid signature, wrong token type, etc.).
	ValidateToken(ctx context.Context, tokenString string) (*Claims, error)

	// GenerateRefreshToken creates a signed JWT refresh token for the
	// user. Refresh tokens have a longer lifetime and are exchanged for
	// new (non-fresh) access tokens.
	GenerateRefreshToken(ctx context.Context, user *domain.User) (string, error)

	// ValidateRefreshToken validates the provided refresh token string
	// and extracts the claims.
	ValidateRefreshToken(ctx context.Context, tokenString string) (*Claims, error)
}

// Claims represents the validated claims extracted from a token.
type Claims struct {
	// UserID is the unique identifier of the user the token was issued for.
	UserID uuid.UUID `json:"uid,omitempty"`

	// TokenType indicates the purpose of the token ("access" or "refresh").
	TokenType string `json:"type,omitempty"`

	// Fresh is true only for access tokens issued directly from a
	// password login. Sensitive mutations require a fresh token.
	Fresh bool `json:"fresh,omitempty"`

	// IsAdmin carries the user's admin flag as recorded at issuance.
	IsAdmin bool `json:"adm,omitempty"`

	// Standard registered JWT claims
	Subject   string    `json:"sub,omitempty"`
	IssuedAt  time.Time `json:"iat,omitempty"`
	ExpiresAt time.Time `json:"exp,omitempty"`
	ID        string    `json:"jti,omitempty"`
}

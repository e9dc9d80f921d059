package auth

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/harwick/shelf-api/internal/domain"
)

// MockJWTService is a configurable JWTService implementation for tests.
// Each method delegates to the corresponding Fn field when set and
// falls back to a permissive default otherwise.
type MockJWTService struct {
	GenerateAccessTokenFn  func(ctx context.Context, user *domain.User, fresh bool) (string, error)
	ValidateTokenFn        func(ctx context.Context, tokenString string) (*Claims, error)
	GenerateRefreshTokenFn func(ctx context.Context, user *domain.User) (string, error)
	ValidateRefreshTokenFn func(ctx context.Context, tokenString string) (*Claims, error)
}

// Ensure MockJWTService implements JWTService interface
var _ JWTService = (*MockJWTService)(nil)

// GenerateAccessToken implements JWTService.GenerateAccessToken.
func (m *MockJWTService) GenerateAccessToken(
	ctx context.Context,
	user *domain.User,
	fresh bool,
) (string, error) {
	if m.GenerateAccessTokenFn != nil {
		return m.GenerateAccessTokenFn(ctx, user, fresh)
	}
	return "mock-access-token", nil
}

// ValidateToken implements JWTService.ValidateToken.
func (m *MockJWTService) ValidateToken(ctx context.Context, tokenString string) (*Claims, error) {
	if m.ValidateTokenFn != nil {
		return m.ValidateTokenFn(ctx, tokenString)
	}
	return &Claims{
		UserID:    uuid.New(),
		TokenType: tokenTypeAccess,
		Fresh:     true,
		IssuedAt:  time.Now(),
		ExpiresAt: time.Now().Add(time.Hour),
		ID:        uuid.New().String(),
	}, nil
}

// GenerateRefreshToken implements JWTService.GenerateRefreshToken.
func (m *MockJWTService) GenerateRefreshToken(
	ctx context.Context,
	user *domain.User,
) (string, error) {
	if m.GenerateRefreshTokenFn != nil {
		return m.GenerateRefreshTokenFn(ctx, user)
	}
	return "mock-refresh-token", nil
}

// ValidateRefreshToken implements JWTService.ValidateRefreshToken.
func (m *MockJWTService) ValidateRefreshToken(ctx context.Context, tokenString string) (*Claims, error) {
	if m.ValidateRefreshTokenFn != nil {
		return m.ValidateRefreshTokenFn(ctx, tokenString)
	}
	return &Claims{
		UserID:    uuid.New(),
		TokenType: tokenTypeRefresh,
		IssuedAt:  time.Now(),
		ExpiresAt: time.Now().Add(24 * time.Hour),
		ID:        uuid.New().String(),
	}, nil
}

package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/harwick/shelf-api/internal/api/shared"
	"github.com/harwick/shelf-api/internal/platform/logger"
	"github.com/harwick/shelf-api/internal/redact"
	"github.com/harwick/shelf-api/internal/service/auth"
)

// AuthMiddleware provides the JWT authentication gates. A route is
// protected by chaining Authenticate and then, where the operation
// demands it, RequireFresh or RequireAdmin.
type AuthMiddleware struct {
	jwtService auth.JWTService
	revocation auth.RevocationStore
}

// NewAuthMiddleware creates a new AuthMiddleware with the given dependencies.
func NewAuthMiddleware(jwtService auth.JWTService, revocation auth.RevocationStore) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService: jwtService,
		revocation: revocation,
	}
}

// Authenticate validates the bearer token from the Authorization
// header: signature, expiry, access type, and revocation. On success
// the validated claims are stored in the request context.
func (m *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		token, ok := bearerToken(r)
		if !ok {
			shared.RespondWithError(w, r, http.StatusUnauthorized, "Authorization header required")
			return
		}

		claims, err := m.jwtService.ValidateToken(r.Context(), token)
		if err != nil {
			switch err {
			case auth.ErrExpiredToken:
				shared.RespondWithError(w, r, http.StatusUnauthorized, "Token expired")
			case auth.ErrWrongTokenType:
				shared.RespondWithError(w, r, http.StatusUnauthorized, "Access token required")
			default:
				shared.RespondWithError(w, r, http.StatusUnauthorized, "Invalid token")
			}
			return
		}

		revoked, err := m.revocation.IsRevoked(r.Context(), claims.ID)
		if err != nil {
			// Revocation state unreachable: reject rather than accept a
			// token we cannot vouch for.
			log.Error("failed to check token revocation", "error", redact.Error(err))
			shared.RespondWithError(w, r, http.StatusInternalServerError, "Authentication error")
			return
		}
		if revoked {
			shared.RespondWithError(w, r, http.StatusUnauthorized, "Token has been revoked")
			return
		}

		ctx := context.WithValue(r.Context(), shared.ClaimsContextKey, claims)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireFresh rejects tokens whose fresh claim is false. Fresh tokens
// are only issued at password login, never by refresh. Must run after
// Authenticate.
func (m *AuthMiddleware) RequireFresh(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, ok := GetClaims(r)
		if !ok {
			shared.RespondWithError(w, r, http.StatusUnauthorized, "Authentication required")
			return
		}
		if !claims.Fresh {
			shared.RespondWithError(w, r, http.StatusUnauthorized,
				"Fresh token required; log in again")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// RequireAdmin rejects tokens without the admin claim. Must run after
// Authenticate.
func (m *AuthMiddleware) RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, ok := GetClaims(r)
		if !ok {
			shared.RespondWithError(w, r, http.StatusUnauthorized, "Authentication required")
			return
		}
		if !claims.IsAdmin {
			shared.RespondWithError(w, r, http.StatusUnauthorized, "Admin privilege required")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// GetClaims extracts the validated token claims from the request
// context. Returns false if the request did not pass Authenticate.
func GetClaims(r *http.Request) (*auth.Claims, bool) {
	claims, ok := r.Context().Value(shared.ClaimsContextKey).(*auth.Claims)
	return claims, ok
}

// bearerToken extracts the token from an "Authorization: Bearer x"
// header. Returns false when the header is absent or malformed.
func bearerToken(r *http.Request) (string, bool) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return "", false
	}

	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return "", false
	}
	return parts[1], true
}

package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/harwick/shelf-api/internal/api/middleware"
	"github.com/harwick/shelf-api/internal/api/shared"
	"github.com/harwick/shelf-api/internal/domain"
	"github.com/harwick/shelf-api/internal/events"
	"github.com/harwick/shelf-api/internal/service/auth"
	"github.com/harwick/shelf-api/internal/store"
)

// emailTimeout bounds the background welcome-email send, which outlives
// the registration request.
const emailTimeout = 30 * time.Second

// AuthHandler holds the dependencies for registration, login, and
// token lifecycle endpoints.
type AuthHandler struct {
	users      store.UserStore
	jwtService auth.JWTService
	hasher     auth.PasswordHasher
	verifier   auth.PasswordVerifier
	revocation auth.RevocationStore
	emitter    events.EventEmitter
	validate   *validator.Validate
}

// NewAuthHandler creates a new AuthHandler. The emitter may be nil
// when no registration side effects are configured.
func NewAuthHandler(
	users store.UserStore,
	jwtService auth.JWTService,
	hasher auth.PasswordHasher,
	verifier auth.PasswordVerifier,
	revocation auth.RevocationStore,
	emitter events.EventEmitter,
	validate *validator.Validate,
) *AuthHandler {
	return &AuthHandler{
		users:      users,
		jwtService: jwtService,
		hasher:     hasher,
		verifier:   verifier,
		revocation: revocation,
		emitter:    emitter,
		validate:   validate,
	}
}

// Register handles POST /register requests.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if !DecodeJSON(w, r, h.validate, &req) {
		return
	}

	user, err := domain.NewUser(req.Username, req.Email, req.Password)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	hashed, err := h.hasher.Hash(user.Password)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}
	user.HashedPassword = hashed
	user.Password = ""

	if err := h.users.Create(r.Context(), user); err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	h.emitUserRegistered(r.Context(), user)

	shared.RespondWithJSON(w, r, http.StatusCreated, MessageResponse{
		Message: "User created successfully",
	})
}

// emitUserRegistered publishes the registration event in the
// background. Email delivery must never fail or delay the request.
func (h *AuthHandler) emitUserRegistered(ctx context.Context, user *domain.User) {
	if h.emitter == nil {
		return
	}

	event, err := events.NewEvent(events.TypeUserRegistered, events.UserRegisteredPayload{
		UserID:   user.ID,
		Username: user.Username,
		Email:    user.Email,
	})
	if err != nil {
		slog.Error("failed to build user.registered event",
			"error", err,
			"user_id", user.ID,
			"trace_id", shared.GetTraceID(ctx))
		return
	}

	go func() {
		bgCtx, cancel := context.WithTimeout(context.Background(), emailTimeout)
		defer cancel()
		// Handler failures are logged by the emitter.
		_ = h.emitter.EmitEvent(bgCtx, event)
	}()
}

// Login handles POST /login requests. Unknown usernames and wrong
// passwords produce identical responses so the endpoint cannot be used
// to discover which usernames exist.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if !DecodeJSON(w, r, h.validate, &req) {
		return
	}

	user, err := h.users.GetByUsername(r.Context(), req.Username)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			HandleAPIError(w, r, domain.ErrUnauthorized, "Invalid credentials")
			return
		}
		HandleAPIError(w, r, err, "")
		return
	}

	if err := h.verifier.Compare(user.HashedPassword, req.Password); err != nil {
		HandleAPIError(w, r, domain.ErrUnauthorized, "Invalid credentials")
		return
	}

	accessToken, err := h.jwtService.GenerateAccessToken(r.Context(), user, true)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}
	refreshToken, err := h.jwtService.GenerateRefreshToken(r.Context(), user)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, AuthResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	})
}

// Refresh handles POST /refresh requests. The refresh token arrives in
// the Authorization header and yields a new non-fresh access token; the
// refresh token itself remains valid until it expires.
func (h *AuthHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	tokenString, err := bearerToken(r)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	claims, err := h.jwtService.ValidateRefreshToken(r.Context(), tokenString)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	revoked, err := h.revocation.IsRevoked(r.Context(), claims.ID)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}
	if revoked {
		HandleAPIError(w, r, auth.ErrRevokedToken, "")
		return
	}

	// Re-read the user so a deleted account or changed admin flag is
	// reflected in the new token.
	user, err := h.users.GetByID(r.Context(), claims.UserID)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			HandleAPIError(w, r, auth.ErrInvalidRefreshToken, "")
			return
		}
		HandleAPIError(w, r, err, "")
		return
	}

	accessToken, err := h.jwtService.GenerateAccessToken(r.Context(), user, false)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, RefreshResponse{
		AccessToken: accessToken,
	})
}

// Logout handles POST /logout requests. The presented access token's
// jti is revoked for its remaining lifetime, after which it ages out of
// the revocation set on its own.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.GetClaims(r)
	if !ok {
		HandleAPIError(w, r, auth.ErrMissingToken, "")
		return
	}

	ttl := time.Until(claims.ExpiresAt)
	if err := h.revocation.Revoke(r.Context(), claims.ID, ttl); err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, MessageResponse{
		Message: "Successfully logged out",
	})
}

// GetUser handles GET /user/{user_id} requests.
func (h *AuthHandler) GetUser(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "user_id")
	if !ok {
		return
	}

	user, err := h.users.GetByID(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, newUserResponse(user))
}

// DeleteUser handles DELETE /user/{user_id} requests.
func (h *AuthHandler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "user_id")
	if !ok {
		return
	}

	if err := h.users.Delete(r.Context(), id); err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusNoContent, nil)
}

// bearerToken extracts the token from the Authorization header.
func bearerToken(r *http.Request) (string, error) {
	header := r.Header.Get("Authorization")
	if header == "" {
		return "", auth.ErrMissingToken
	}

	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
		return "", auth.ErrInvalidToken
	}

	return parts[1], nil
}

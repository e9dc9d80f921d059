package api

import (
	"errors"
	"net/http"

	"github.com/harwick/shelf-api/internal/api/shared"
	"github.com/harwick/shelf-api/internal/domain"
	"github.com/harwick/shelf-api/internal/service/auth"
	"github.com/harwick/shelf-api/internal/store"
)

// MapErrorToStatusCode maps internal errors to HTTP status codes. This
// is the single place where the store and auth error taxonomies meet
// the HTTP surface, so no handler invents its own mapping.
func MapErrorToStatusCode(err error) int {
	switch {
	// Authentication errors
	case errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrExpiredToken),
		errors.Is(err, auth.ErrTokenNotYetValid),
		errors.Is(err, auth.ErrMissingToken),
		errors.Is(err, auth.ErrRevokedToken),
		errors.Is(err, auth.ErrInvalidRefreshToken),
		errors.Is(err, auth.ErrExpiredRefreshToken),
		errors.Is(err, auth.ErrWrongTokenType),
		errors.Is(err, auth.ErrNotFresh),
		errors.Is(err, auth.ErrNotAdmin),
		errors.Is(err, domain.ErrUnauthorized):
		return http.StatusUnauthorized

	// Not found errors
	case errors.Is(err, store.ErrNotFound):
		return http.StatusNotFound

	// Uniqueness conflicts are 409 across the board
	case errors.Is(err, store.ErrDuplicate):
		return http.StatusConflict

	// State errors
	case errors.Is(err, store.ErrTagLinked),
		errors.Is(err, store.ErrStoreHasDependents):
		return http.StatusBadRequest

	// Bad request errors
	case errors.Is(err, store.ErrInvalidEntity),
		errors.Is(err, store.ErrForeignKey),
		errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrInvalidID):
		return http.StatusBadRequest

	// Default: internal server error
	default:
		return http.StatusInternalServerError
	}
}

// errorCode picks the machine-readable code for an error, refining the
// status-derived default where the taxonomy is more specific.
func errorCode(err error, status int) string {
	switch {
	case errors.Is(err, store.ErrTagLinked),
		errors.Is(err, store.ErrStoreHasDependents):
		return shared.CodeInvalidState
	default:
		return shared.CodeForStatus(status)
	}
}

// GetSafeErrorMessage returns a sanitized, user-friendly message for
// the error. Internal details never leak through here.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return "An unexpected error occurred"
	}

	switch {
	// Authentication errors
	case errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrExpiredToken),
		errors.Is(err, auth.ErrTokenNotYetValid),
		errors.Is(err, auth.ErrRevokedToken),
		errors.Is(err, auth.ErrMissingToken):
		return "Invalid token"

	case errors.Is(err, auth.ErrInvalidRefreshToken),
		errors.Is(err, auth.ErrExpiredRefreshToken),
		errors.Is(err, auth.ErrWrongTokenType):
		return "Invalid refresh token"

	case errors.Is(err, auth.ErrNotFresh):
		return "Fresh token required; log in again"

	case errors.Is(err, auth.ErrNotAdmin):
		return "Admin privilege required"

	// Not found errors
	case errors.Is(err, store.ErrStoreNotFound):
		return "Store not found"
	case errors.Is(err, store.ErrItemNotFound):
		return "Item not found"
	case errors.Is(err, store.ErrTagNotFound):
		return "Tag not found"
	case errors.Is(err, store.ErrUserNotFound):
		return "User not found"
	case errors.Is(err, store.ErrLinkNotFound):
		return "Item is not linked to that tag"
	case errors.Is(err, store.ErrNotFound):
		return "Resource not found"

	// Conflict errors
	case errors.Is(err, store.ErrStoreNameExists):
		return "A store with that name already exists"
	case errors.Is(err, store.ErrItemNameExists):
		return "An item with that name already exists"
	case errors.Is(err, store.ErrTagNameExists):
		return "A tag with that name already exists in that store"
	case errors.Is(err, store.ErrUsernameExists):
		return "A user with that username already exists"
	case errors.Is(err, store.ErrEmailExists):
		return "A user with that email already exists"

	// State errors
	case errors.Is(err, store.ErrTagLinked):
		return "Tag is still linked to items; unlink it first"
	case errors.Is(err, store.ErrStoreHasDependents),
		errors.Is(err, store.ErrForeignKey):
		return "Operation violates a relationship constraint"

	// Validation errors carry their own safe field message
	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrInvalidID):
		var validationErr *domain.ValidationError
		if errors.As(err, &validationErr) {
			return validationErr.Error()
		}
		return "Invalid request data"

	case errors.Is(err, store.ErrInvalidEntity):
		return "Invalid entity data"

	default:
		return "An unexpected error occurred"
	}
}

// HandleAPIError translates an internal error into the uniform error
// response. When userMessage is empty the safe message derived from the
// error is used.
func HandleAPIError(w http.ResponseWriter, r *http.Request, err error, userMessage string) {
	status := MapErrorToStatusCode(err)
	if userMessage == "" {
		userMessage = GetSafeErrorMessage(err)
	}
	shared.RespondWithErrorAndLog(w, r, status, errorCode(err, status), userMessage, err)
}

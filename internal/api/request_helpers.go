package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/harwick/shelf-api/internal/api/shared"
)

// maxRequestBodyBytes caps request bodies to keep a hostile client from
// exhausting memory on decode.
const maxRequestBodyBytes = 1 << 20 // 1 MiB

// DecodeJSON decodes the request body into dst and validates it with
// the struct's validate tags. On failure it writes the 400 response
// itself and returns false; handlers just return.
func DecodeJSON(w http.ResponseWriter, r *http.Request, validate *validator.Validate, dst interface{}) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBodyBytes)

	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()

	if err := dec.Decode(dst); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, decodeErrorMessage(err))
		return false
	}
	// A request body must be a single JSON object.
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Request body must contain a single JSON object")
		return false
	}

	if err := validate.Struct(dst); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, validationErrorMessage(err))
		return false
	}

	return true
}

// decodeErrorMessage turns json decode failures into messages safe to
// show the client.
func decodeErrorMessage(err error) string {
	var syntaxErr *json.SyntaxError
	var typeErr *json.UnmarshalTypeError
	var maxBytesErr *http.MaxBytesError

	switch {
	case errors.Is(err, io.EOF):
		return "Request body is required"
	case errors.As(err, &syntaxErr):
		return "Request body contains malformed JSON"
	case errors.As(err, &typeErr):
		if typeErr.Field != "" {
			return fmt.Sprintf("Invalid value for field %q", typeErr.Field)
		}
		return "Request body contains an invalid value"
	case errors.As(err, &maxBytesErr):
		return "Request body is too large"
	default:
		return "Invalid request body"
	}
}

// validationErrorMessage reports the first failing field. One error at
// a time keeps the message short and actionable.
func validationErrorMessage(err error) string {
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) || len(validationErrs) == 0 {
		return "Invalid request data"
	}

	fieldErr := validationErrs[0]
	switch fieldErr.Tag() {
	case "required":
		return fmt.Sprintf("Field %q is required", fieldErr.Field())
	case "max":
		return fmt.Sprintf("Field %q exceeds maximum length of %s", fieldErr.Field(), fieldErr.Param())
	case "min":
		return fmt.Sprintf("Field %q must be at least %s characters", fieldErr.Field(), fieldErr.Param())
	case "email":
		return fmt.Sprintf("Field %q must be a valid email address", fieldErr.Field())
	default:
		return fmt.Sprintf("Field %q is invalid", fieldErr.Field())
	}
}

// pathUUID extracts and parses a UUID path parameter. On failure it
// writes the 404 response itself and returns false, so an unparseable
// ID is indistinguishable from a missing resource.
func pathUUID(w http.ResponseWriter, r *http.Request, param string) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, param))
	if err != nil {
		shared.RespondWithError(w, r, http.StatusNotFound, "Resource not found")
		return uuid.Nil, false
	}
	return id, true
}

package api

import (
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/harwick/shelf-api/internal/api/shared"
	"github.com/harwick/shelf-api/internal/domain"
	"github.com/harwick/shelf-api/internal/store"
)

// StoreHandler holds the dependencies for store endpoints.
type StoreHandler struct {
	stores   store.StoreStore
	validate *validator.Validate
}

// NewStoreHandler creates a new StoreHandler.
func NewStoreHandler(stores store.StoreStore, validate *validator.Validate) *StoreHandler {
	return &StoreHandler{
		stores:   stores,
		validate: validate,
	}
}

// Create handles POST /store requests.
func (h *StoreHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateStoreRequest
	if !DecodeJSON(w, r, h.validate, &req) {
		return
	}

	st, err := domain.NewStore(req.Name)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	if err := h.stores.Create(r.Context(), st); err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, newStoreResponse(st))
}

// Get handles GET /store/{store_id} requests.
func (h *StoreHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "store_id")
	if !ok {
		return
	}

	st, err := h.stores.GetByID(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, newStoreResponse(st))
}

// List handles GET /store requests.
func (h *StoreHandler) List(w http.ResponseWriter, r *http.Request) {
	all, err := h.stores.List(r.Context())
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	resp := make([]StoreResponse, 0, len(all))
	for _, st := range all {
		resp = append(resp, newStoreResponse(st))
	}

	shared.RespondWithJSON(w, r, http.StatusOK, resp)
}

// Delete handles DELETE /store/{store_id} requests. A store that still
// has items or tags cannot be deleted.
func (h *StoreHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "store_id")
	if !ok {
		return
	}

	if err := h.stores.Delete(r.Context(), id); err != nil {
		if errors.Is(err, store.ErrForeignKey) {
			HandleAPIError(w, r, store.ErrStoreHasDependents,
				"Store still has items or tags; delete them first")
			return
		}
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusNoContent, nil)
}

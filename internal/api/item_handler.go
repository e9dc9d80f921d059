package api

import (
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/harwick/shelf-api/internal/api/shared"
	"github.com/harwick/shelf-api/internal/domain"
	"github.com/harwick/shelf-api/internal/store"
)

// ItemHandler holds the dependencies for item endpoints.
type ItemHandler struct {
	items    store.ItemStore
	validate *validator.Validate
}

// NewItemHandler creates a new ItemHandler.
func NewItemHandler(items store.ItemStore, validate *validator.Validate) *ItemHandler {
	return &ItemHandler{
		items:    items,
		validate: validate,
	}
}

// Create handles POST /item requests.
func (h *ItemHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateItemRequest
	if !DecodeJSON(w, r, h.validate, &req) {
		return
	}

	item, err := domain.NewItem(req.Name, *req.Price, req.StoreID)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	if err := h.items.Create(r.Context(), item); err != nil {
		// A dangling store_id reads as a missing store, not a malformed
		// request.
		if errors.Is(err, store.ErrForeignKey) {
			HandleAPIError(w, r, store.ErrStoreNotFound, "")
			return
		}
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, newItemResponse(item))
}

// Get handles GET /item/{item_id} requests.
func (h *ItemHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "item_id")
	if !ok {
		return
	}

	item, err := h.items.GetByID(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, newItemResponse(item))
}

// List handles GET /item requests.
func (h *ItemHandler) List(w http.ResponseWriter, r *http.Request) {
	all, err := h.items.List(r.Context())
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	resp := make([]ItemResponse, 0, len(all))
	for _, item := range all {
		resp = append(resp, newItemResponse(item))
	}

	shared.RespondWithJSON(w, r, http.StatusOK, resp)
}

// Update handles PUT /item/{item_id} requests. Fields absent from the
// payload keep their current value; updating a missing item is 404,
// never an implicit create.
func (h *ItemHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "item_id")
	if !ok {
		return
	}

	var req UpdateItemRequest
	if !DecodeJSON(w, r, h.validate, &req) {
		return
	}

	item, err := h.items.GetByID(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	if req.Name != nil {
		item.Name = *req.Name
	}
	if req.Price != nil {
		item.Price = *req.Price
	}

	if err := item.Validate(); err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	if err := h.items.Update(r.Context(), item); err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, newItemResponse(item))
}

// Delete handles DELETE /item/{item_id} requests. Tag associations go
// with the item; the tags themselves survive.
func (h *ItemHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "item_id")
	if !ok {
		return
	}

	if err := h.items.Delete(r.Context(), id); err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusNoContent, nil)
}

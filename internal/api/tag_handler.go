package api

import (
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/harwick/shelf-api/internal/api/shared"
	"github.com/harwick/shelf-api/internal/domain"
	"github.com/harwick/shelf-api/internal/store"
)

// TagHandler holds the dependencies for tag endpoints, including the
// item-tag association routes.
type TagHandler struct {
	tags     store.TagStore
	stores   store.StoreStore
	items    store.ItemStore
	validate *validator.Validate
}

// NewTagHandler creates a new TagHandler.
func NewTagHandler(
	tags store.TagStore,
	stores store.StoreStore,
	items store.ItemStore,
	validate *validator.Validate,
) *TagHandler {
	return &TagHandler{
		tags:     tags,
		stores:   stores,
		items:    items,
		validate: validate,
	}
}

// ListByStore handles GET /store/{store_id}/tag requests.
func (h *TagHandler) ListByStore(w http.ResponseWriter, r *http.Request) {
	storeID, ok := pathUUID(w, r, "store_id")
	if !ok {
		return
	}

	// An empty tag list and a missing store both come back as zero
	// rows, so the store is checked explicitly.
	if _, err := h.stores.GetByID(r.Context(), storeID); err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	tags, err := h.tags.ListByStore(r.Context(), storeID)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	resp := make([]TagResponse, 0, len(tags))
	for _, tag := range tags {
		resp = append(resp, newTagResponse(tag))
	}

	shared.RespondWithJSON(w, r, http.StatusOK, resp)
}

// Create handles POST /store/{store_id}/tag requests. Tag names are
// unique per store, not globally.
func (h *TagHandler) Create(w http.ResponseWriter, r *http.Request) {
	storeID, ok := pathUUID(w, r, "store_id")
	if !ok {
		return
	}

	var req CreateTagRequest
	if !DecodeJSON(w, r, h.validate, &req) {
		return
	}

	// Fast-path duplicate check; the compound unique constraint remains
	// the authority under concurrency.
	exists, err := h.tags.ExistsInStore(r.Context(), storeID, req.Name)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}
	if exists {
		HandleAPIError(w, r, store.ErrTagNameExists, "")
		return
	}

	tag, err := domain.NewTag(req.Name, storeID)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	if err := h.tags.Create(r.Context(), tag); err != nil {
		if errors.Is(err, store.ErrForeignKey) {
			HandleAPIError(w, r, store.ErrStoreNotFound, "")
			return
		}
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, newTagResponse(tag))
}

// Get handles GET /tag/{tag_id} requests.
func (h *TagHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "tag_id")
	if !ok {
		return
	}

	tag, err := h.tags.GetByID(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, newTagResponse(tag))
}

// Delete handles DELETE /tag/{tag_id} requests. A tag that items are
// still linked to cannot be deleted.
func (h *TagHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "tag_id")
	if !ok {
		return
	}

	if err := h.tags.Delete(r.Context(), id); err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusAccepted, MessageResponse{Message: "Tag deleted"})
}

// Link handles POST /item/{item_id}/tag/{tag_id} requests. Linking an
// already-linked pair succeeds without creating a second association.
func (h *TagHandler) Link(w http.ResponseWriter, r *http.Request) {
	itemID, tagID, ok := h.pathPair(w, r)
	if !ok {
		return
	}

	if _, err := h.items.GetByID(r.Context(), itemID); err != nil {
		HandleAPIError(w, r, err, "")
		return
	}
	if _, err := h.tags.GetByID(r.Context(), tagID); err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	if err := h.tags.Link(r.Context(), itemID, tagID); err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	// Re-read the tag so the response reflects the new association.
	tag, err := h.tags.GetByID(r.Context(), tagID)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, newTagResponse(tag))
}

// Unlink handles DELETE /item/{item_id}/tag/{tag_id} requests. Only
// the association is removed; the item and the tag both survive.
func (h *TagHandler) Unlink(w http.ResponseWriter, r *http.Request) {
	itemID, tagID, ok := h.pathPair(w, r)
	if !ok {
		return
	}

	item, err := h.items.GetByID(r.Context(), itemID)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}
	tag, err := h.tags.GetByID(r.Context(), tagID)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	if err := h.tags.Unlink(r.Context(), itemID, tagID); err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, LinkResponse{
		Message: "Item removed from tag",
		Item:    ItemSummary{ID: item.ID, Name: item.Name},
		Tag:     TagSummary{ID: tag.ID, Name: tag.Name},
	})
}

func (h *TagHandler) pathPair(w http.ResponseWriter, r *http.Request) (itemID, tagID uuid.UUID, ok bool) {
	itemID, ok = pathUUID(w, r, "item_id")
	if !ok {
		return
	}
	tagID, ok = pathUUID(w, r, "tag_id")
	return
}

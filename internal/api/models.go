package api

import (
	"time"

	"github.com/google/uuid"
	"github.com/harwick/shelf-api/internal/domain"
	"github.com/shopspring/decimal"
)

// Summary shapes embedded in other responses. Nesting stops at id+name
// to avoid unbounded recursion between stores, items, and tags.

// StoreSummary is the read-only store shape nested in item and tag responses.
type StoreSummary struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

// ItemSummary is the read-only item shape nested in store and tag responses.
type ItemSummary struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

// TagSummary is the read-only tag shape nested in store and item responses.
type TagSummary struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

// Store payloads

// CreateStoreRequest defines the payload for creating a store.
type CreateStoreRequest struct {
	Name string `json:"name" validate:"required,max=80"`
}

// StoreResponse defines the serialized form of a store, with read-only
// item and tag summaries.
type StoreResponse struct {
	ID    uuid.UUID     `json:"id"`
	Name  string        `json:"name"`
	Items []ItemSummary `json:"items"`
	Tags  []TagSummary  `json:"tags"`
}

// Item payloads

// CreateItemRequest defines the payload for creating an item. StoreID
// is write-only: accepted here, never echoed back in responses.
type CreateItemRequest struct {
	Name    string           `json:"name"     validate:"required,max=80"`
	Price   *decimal.Decimal `json:"price"    validate:"required"`
	StoreID uuid.UUID        `json:"store_id" validate:"required"`
}

// UpdateItemRequest defines the payload for partially updating an item.
// Each field is independently present-or-absent; absent fields keep
// their current value.
type UpdateItemRequest struct {
	Name  *string          `json:"name"  validate:"omitempty,max=80"`
	Price *decimal.Decimal `json:"price"`
}

// ItemResponse defines the serialized form of an item. The store is a
// nested read-only summary; the raw store_id foreign key is never
// serialized back.
type ItemResponse struct {
	ID    uuid.UUID       `json:"id"`
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
	Store *StoreSummary   `json:"store,omitempty"`
	Tags  []TagSummary    `json:"tags"`
}

// Tag payloads

// CreateTagRequest defines the payload for creating a tag under a store.
type CreateTagRequest struct {
	Name string `json:"name" validate:"required,max=80"`
}

// TagResponse defines the serialized form of a tag.
type TagResponse struct {
	ID    uuid.UUID     `json:"id"`
	Name  string        `json:"name"`
	Store *StoreSummary `json:"store,omitempty"`
	Items []ItemSummary `json:"items,omitempty"`
}

// LinkResponse confirms an unlink operation, naming both sides of the
// removed association. Both entities remain intact.
type LinkResponse struct {
	Message string       `json:"message"`
	Item    ItemSummary  `json:"item"`
	Tag     TagSummary   `json:"tag"`
}

// User and auth payloads

// RegisterRequest defines the payload for the user registration endpoint.
type RegisterRequest struct {
	Username string `json:"username" validate:"required,max=80"`
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=8,max=72"`
}

// LoginRequest defines the payload for the user login endpoint.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required,min=1"`
}

// AuthResponse defines the successful response for the login endpoint.
type AuthResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// RefreshResponse defines the successful response for the token
// refresh endpoint. The new access token is never fresh.
type RefreshResponse struct {
	AccessToken string `json:"access_token"`
}

// MessageResponse is a bare confirmation payload.
type MessageResponse struct {
	Message string `json:"message"`
}

// UserResponse defines the serialized form of a user. The password and
// its hash are never part of any response.
type UserResponse struct {
	ID        uuid.UUID `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	IsAdmin   bool      `json:"is_admin"`
	CreatedAt time.Time `json:"created_at"`
}

// Mapping helpers from domain entities to response shapes.

func newStoreResponse(st *domain.Store) StoreResponse {
	resp := StoreResponse{
		ID:    st.ID,
		Name:  st.Name,
		Items: make([]ItemSummary, 0, len(st.Items)),
		Tags:  make([]TagSummary, 0, len(st.Tags)),
	}
	for _, item := range st.Items {
		resp.Items = append(resp.Items, ItemSummary{ID: item.ID, Name: item.Name})
	}
	for _, tag := range st.Tags {
		resp.Tags = append(resp.Tags, TagSummary{ID: tag.ID, Name: tag.Name})
	}
	return resp
}

func newItemResponse(item *domain.Item) ItemResponse {
	resp := ItemResponse{
		ID:    item.ID,
		Name:  item.Name,
		Price: item.Price,
		Tags:  make([]TagSummary, 0, len(item.Tags)),
	}
	if item.Store != nil {
		resp.Store = &StoreSummary{ID: item.Store.ID, Name: item.Store.Name}
	}
	for _, tag := range item.Tags {
		resp.Tags = append(resp.Tags, TagSummary{ID: tag.ID, Name: tag.Name})
	}
	return resp
}

func newTagResponse(tag *domain.Tag) TagResponse {
	resp := TagResponse{
		ID:   tag.ID,
		Name: tag.Name,
	}
	if tag.Store != nil {
		resp.Store = &StoreSummary{ID: tag.Store.ID, Name: tag.Store.Name}
	}
	for _, item := range tag.Items {
		resp.Items = append(resp.Items, ItemSummary{ID: item.ID, Name: item.Name})
	}
	return resp
}

func newUserResponse(user *domain.User) UserResponse {
	return UserResponse{
		ID:        user.ID,
		Username:  user.Username,
		Email:     user.Email,
		IsAdmin:   user.IsAdmin,
		CreatedAt: user.CreatedAt,
	}
}

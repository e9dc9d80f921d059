package api

import (
	"context"
	"net/http"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harwick/shelf-api/internal/api/shared"
	"github.com/harwick/shelf-api/internal/domain"
	"github.com/harwick/shelf-api/internal/store"
	"github.com/harwick/shelf-api/internal/testutils"
)

func newStoreTestServer(t *testing.T, stores store.StoreStore) *chi.Mux {
	t.Helper()
	h := NewStoreHandler(stores, validator.New())
	r := chi.NewRouter()
	r.Get("/store", h.List)
	r.Post("/store", h.Create)
	r.Get("/store/{store_id}", h.Get)
	r.Delete("/store/{store_id}", h.Delete)
	return r
}

func TestStoreCreate(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		var created *domain.Store
		stores := &fakeStoreStore{
			CreateFn: func(ctx context.Context, s *domain.Store) error {
				created = s
				return nil
			},
		}
		server := testutils.CreateTestServer(t, newStoreTestServer(t, stores))

		resp := testutils.DoJSON(t, server, http.MethodPost, "/store",
			map[string]string{"name": "Grocery"}, nil)

		require.Equal(t, http.StatusCreated, resp.StatusCode)
		require.NotNil(t, created)
		assert.Equal(t, "Grocery", created.Name)

		var body StoreResponse
		testutils.DecodeResponse(t, resp, &body)
		assert.Equal(t, created.ID, body.ID)
		assert.NotNil(t, body.Items, "items must serialize as an empty array, not null")
		assert.NotNil(t, body.Tags)
	})

	t.Run("duplicate name conflicts", func(t *testing.T) {
		stores := &fakeStoreStore{
			CreateFn: func(ctx context.Context, s *domain.Store) error {
				return store.ErrStoreNameExists
			},
		}
		server := testutils.CreateTestServer(t, newStoreTestServer(t, stores))

		resp := testutils.DoJSON(t, server, http.MethodPost, "/store",
			map[string]string{"name": "Grocery"}, nil)

		testutils.AssertErrorResponse(t, resp, http.StatusConflict, shared.CodeConflict)
	})

	t.Run("missing name", func(t *testing.T) {
		server := testutils.CreateTestServer(t, newStoreTestServer(t, &fakeStoreStore{}))

		resp := testutils.DoJSON(t, server, http.MethodPost, "/store",
			map[string]string{}, nil)

		testutils.AssertErrorResponse(t, resp, http.StatusBadRequest, shared.CodeBadRequest)
	})

	t.Run("empty body", func(t *testing.T) {
		server := testutils.CreateTestServer(t, newStoreTestServer(t, &fakeStoreStore{}))

		resp := testutils.DoJSON(t, server, http.MethodPost, "/store", nil, nil)

		testutils.AssertErrorResponse(t, resp, http.StatusBadRequest, shared.CodeBadRequest)
	})
}

func TestStoreGet(t *testing.T) {
	t.Run("found with nested summaries", func(t *testing.T) {
		st := testutils.MustNewStore(t, "Hardware")
		item := testutils.MustNewItem(t, "Hammer", "9.99", st.ID)
		tag := testutils.MustNewTag(t, "Tools", st.ID)
		st.Items = []*domain.Item{item}
		st.Tags = []*domain.Tag{tag}

		stores := &fakeStoreStore{
			GetByIDFn: func(ctx context.Context, id uuid.UUID) (*domain.Store, error) {
				require.Equal(t, st.ID, id)
				return st, nil
			},
		}
		server := testutils.CreateTestServer(t, newStoreTestServer(t, stores))

		resp := testutils.DoJSON(t, server, http.MethodGet, "/store/"+st.ID.String(), nil, nil)

		require.Equal(t, http.StatusOK, resp.StatusCode)
		var body StoreResponse
		testutils.DecodeResponse(t, resp, &body)
		assert.Equal(t, "Hardware", body.Name)
		require.Len(t, body.Items, 1)
		assert.Equal(t, "Hammer", body.Items[0].Name)
		require.Len(t, body.Tags, 1)
		assert.Equal(t, "Tools", body.Tags[0].Name)
	})

	t.Run("missing store", func(t *testing.T) {
		server := testutils.CreateTestServer(t, newStoreTestServer(t, &fakeStoreStore{}))

		resp := testutils.DoJSON(t, server, http.MethodGet, "/store/"+uuid.NewString(), nil, nil)

		testutils.AssertErrorResponse(t, resp, http.StatusNotFound, shared.CodeNotFound)
	})

	t.Run("malformed id reads as missing", func(t *testing.T) {
		server := testutils.CreateTestServer(t, newStoreTestServer(t, &fakeStoreStore{}))

		resp := testutils.DoJSON(t, server, http.MethodGet, "/store/not-a-uuid", nil, nil)

		testutils.AssertErrorResponse(t, resp, http.StatusNotFound, shared.CodeNotFound)
	})
}

func TestStoreList(t *testing.T) {
	first := testutils.MustNewStore(t, "Alpha")
	second := testutils.MustNewStore(t, "Beta")
	stores := &fakeStoreStore{
		ListFn: func(ctx context.Context) ([]*domain.Store, error) {
			return []*domain.Store{first, second}, nil
		},
	}
	server := testutils.CreateTestServer(t, newStoreTestServer(t, stores))

	resp := testutils.DoJSON(t, server, http.MethodGet, "/store", nil, nil)

	require.Equal(t, http.StatusOK, resp.StatusCode)
	var body []StoreResponse
	testutils.DecodeResponse(t, resp, &body)
	require.Len(t, body, 2)
	assert.Equal(t, "Alpha", body[0].Name)
	assert.Equal(t, "Beta", body[1].Name)
}

func TestStoreDelete(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		stores := &fakeStoreStore{
			DeleteFn: func(ctx context.Context, id uuid.UUID) error { return nil },
		}
		server := testutils.CreateTestServer(t, newStoreTestServer(t, stores))

		resp := testutils.DoJSON(t, server, http.MethodDelete, "/store/"+uuid.NewString(), nil, nil)

		assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	})

	t.Run("store with dependents", func(t *testing.T) {
		stores := &fakeStoreStore{
			DeleteFn: func(ctx context.Context, id uuid.UUID) error {
				return store.ErrForeignKey
			},
		}
		server := testutils.CreateTestServer(t, newStoreTestServer(t, stores))

		resp := testutils.DoJSON(t, server, http.MethodDelete, "/store/"+uuid.NewString(), nil, nil)

		testutils.AssertErrorResponse(t, resp, http.StatusBadRequest, shared.CodeInvalidState)
	})

	t.Run("missing store", func(t *testing.T) {
		server := testutils.CreateTestServer(t, newStoreTestServer(t, &fakeStoreStore{}))

		resp := testutils.DoJSON(t, server, http.MethodDelete, "/store/"+uuid.NewString(), nil, nil)

		testutils.AssertErrorResponse(t, resp, http.StatusNotFound, shared.CodeNotFound)
	})
}

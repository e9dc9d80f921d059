package api

import (
	"context"

	"github.com/google/uuid"

	"github.com/harwick/shelf-api/internal/domain"
	"github.com/harwick/shelf-api/internal/store"
)

// Function-field fakes for the persistence interfaces. Each method
// delegates to its Fn field when set and returns the zero-value
// not-found error otherwise.

type fakeStoreStore struct {
	CreateFn  func(ctx context.Context, s *domain.Store) error
	GetByIDFn func(ctx context.Context, id uuid.UUID) (*domain.Store, error)
	ListFn    func(ctx context.Context) ([]*domain.Store, error)
	DeleteFn  func(ctx context.Context, id uuid.UUID) error
}

var _ store.StoreStore = (*fakeStoreStore)(nil)

func (f *fakeStoreStore) Create(ctx context.Context, s *domain.Store) error {
	if f.CreateFn != nil {
		return f.CreateFn(ctx, s)
	}
	return nil
}

func (f *fakeStoreStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Store, error) {
	if f.GetByIDFn != nil {
		return f.GetByIDFn(ctx, id)
	}
	return nil, store.ErrStoreNotFound
}

func (f *fakeStoreStore) List(ctx context.Context) ([]*domain.Store, error) {
	if f.ListFn != nil {
		return f.ListFn(ctx)
	}
	return nil, nil
}

func (f *fakeStoreStore) Delete(ctx context.Context, id uuid.UUID) error {
	if f.DeleteFn != nil {
		return f.DeleteFn(ctx, id)
	}
	return store.ErrStoreNotFound
}

type fakeItemStore struct {
	CreateFn  func(ctx context.Context, item *domain.Item) error
	GetByIDFn func(ctx context.Context, id uuid.UUID) (*domain.Item, error)
	ListFn    func(ctx context.Context) ([]*domain.Item, error)
	UpdateFn  func(ctx context.Context, item *domain.Item) error
	DeleteFn  func(ctx context.Context, id uuid.UUID) error
}

var _ store.ItemStore = (*fakeItemStore)(nil)

func (f *fakeItemStore) Create(ctx context.Context, item *domain.Item) error {
	if f.CreateFn != nil {
		return f.CreateFn(ctx, item)
	}
	return nil
}

func (f *fakeItemStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Item, error) {
	if f.GetByIDFn != nil {
		return f.GetByIDFn(ctx, id)
	}
	return nil, store.ErrItemNotFound
}

func (f *fakeItemStore) List(ctx context.Context) ([]*domain.Item, error) {
	if f.ListFn != nil {
		return f.ListFn(ctx)
	}
	return nil, nil
}

func (f *fakeItemStore) Update(ctx context.Context, item *domain.Item) error {
	if f.UpdateFn != nil {
		return f.UpdateFn(ctx, item)
	}
	return store.ErrItemNotFound
}

func (f *fakeItemStore) Delete(ctx context.Context, id uuid.UUID) error {
	if f.DeleteFn != nil {
		return f.DeleteFn(ctx, id)
	}
	return store.ErrItemNotFound
}

type fakeTagStore struct {
	CreateFn        func(ctx context.Context, tag *domain.Tag) error
	GetByIDFn       func(ctx context.Context, id uuid.UUID) (*domain.Tag, error)
	ListByStoreFn   func(ctx context.Context, storeID uuid.UUID) ([]*domain.Tag, error)
	ExistsInStoreFn func(ctx context.Context, storeID uuid.UUID, name string) (bool, error)
	DeleteFn        func(ctx context.Context, id uuid.UUID) error
	LinkFn          func(ctx context.Context, itemID, tagID uuid.UUID) error
	UnlinkFn        func(ctx context.Context, itemID, tagID uuid.UUID) error
}

var _ store.TagStore = (*fakeTagStore)(nil)

func (f *fakeTagStore) Create(ctx context.Context, tag *domain.Tag) error {
	if f.CreateFn != nil {
		return f.CreateFn(ctx, tag)
	}
	return nil
}

func (f *fakeTagStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Tag, error) {
	if f.GetByIDFn != nil {
		return f.GetByIDFn(ctx, id)
	}
	return nil, store.ErrTagNotFound
}

func (f *fakeTagStore) ListByStore(ctx context.Context, storeID uuid.UUID) ([]*domain.Tag, error) {
	if f.ListByStoreFn != nil {
		return f.ListByStoreFn(ctx, storeID)
	}
	return nil, nil
}

func (f *fakeTagStore) ExistsInStore(ctx context.Context, storeID uuid.UUID, name string) (bool, error) {
	if f.ExistsInStoreFn != nil {
		return f.ExistsInStoreFn(ctx, storeID, name)
	}
	return false, nil
}

func (f *fakeTagStore) Delete(ctx context.Context, id uuid.UUID) error {
	if f.DeleteFn != nil {
		return f.DeleteFn(ctx, id)
	}
	return store.ErrTagNotFound
}

func (f *fakeTagStore) Link(ctx context.Context, itemID, tagID uuid.UUID) error {
	if f.LinkFn != nil {
		return f.LinkFn(ctx, itemID, tagID)
	}
	return nil
}

func (f *fakeTagStore) Unlink(ctx context.Context, itemID, tagID uuid.UUID) error {
	if f.UnlinkFn != nil {
		return f.UnlinkFn(ctx, itemID, tagID)
	}
	return store.ErrLinkNotFound
}

type fakeUserStore struct {
	CreateFn        func(ctx context.Context, user *domain.User) error
	GetByIDFn       func(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByUsernameFn func(ctx context.Context, username string) (*domain.User, error)
	DeleteFn        func(ctx context.Context, id uuid.UUID) error
}

var _ store.UserStore = (*fakeUserStore)(nil)

func (f *fakeUserStore) Create(ctx context.Context, user *domain.User) error {
	if f.CreateFn != nil {
		return f.CreateFn(ctx, user)
	}
	return nil
}

func (f *fakeUserStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	if f.GetByIDFn != nil {
		return f.GetByIDFn(ctx, id)
	}
	return nil, store.ErrUserNotFound
}

func (f *fakeUserStore) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	if f.GetByUsernameFn != nil {
		return f.GetByUsernameFn(ctx, username)
	}
	return nil, store.ErrUserNotFound
}

func (f *fakeUserStore) Delete(ctx context.Context, id uuid.UUID) error {
	if f.DeleteFn != nil {
		return f.DeleteFn(ctx, id)
	}
	return store.ErrUserNotFound
}

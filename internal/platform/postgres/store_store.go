package postgres

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/harwick/shelf-api/internal/domain"
	"github.com/harwick/shelf-api/internal/store"
)

// PostgresStoreStore implements the store.StoreStore interface using a
// PostgreSQL database as the storage backend.
type PostgresStoreStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresStoreStore creates a new PostgreSQL implementation of the
// StoreStore interface. It accepts a database connection or transaction
// that should be initialized and managed by the caller.
func NewPostgresStoreStore(db store.DBTX, logger *slog.Logger) *PostgresStoreStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresStoreStore{
		db:     db,
		logger: logger.With(slog.String("component", "store_store")),
	}
}

// Ensure PostgresStoreStore implements store.StoreStore interface
var _ store.StoreStore = (*PostgresStoreStore)(nil)

// Create implements store.StoreStore.Create
func (s *PostgresStoreStore) Create(ctx context.Context, st *domain.Store) error {
	if err := st.Validate(); err != nil {
		return fmt.Errorf("%w: %v", store.ErrInvalidEntity, err)
	}

	query := `
		INSERT INTO stores (id, name, created_at, updated_at)
		VALUES ($1, $2, $3, $4)
	`

	_, err := s.db.ExecContext(ctx, query, st.ID, st.Name, st.CreatedAt, st.UpdatedAt)
	if err != nil {
		if IsUniqueViolation(err) {
			return store.ErrStoreNameExists
		}
		s.logger.Error("failed to create store", "error", err, "store_id", st.ID)
		return fmt.Errorf("failed to create store: %w", MapError(err))
	}

	return nil
}

// GetByID implements store.StoreStore.GetByID
func (s *PostgresStoreStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Store, error) {
	query := `
		SELECT id, name, created_at, updated_at
		FROM stores
		WHERE id = $1
	`

	st := &domain.Store{}
	err := s.db.QueryRowContext(ctx, query, id).
		Scan(&st.ID, &st.Name, &st.CreatedAt, &st.UpdatedAt)
	if err != nil {
		if IsNotFound(err) {
			return nil, store.ErrStoreNotFound
		}
		s.logger.Error("failed to get store", "error", err, "store_id", id)
		return nil, fmt.Errorf("failed to get store: %w", MapError(err))
	}

	if err := s.loadChildren(ctx, []*domain.Store{st}); err != nil {
		return nil, err
	}

	return st, nil
}

// List implements store.StoreStore.List
func (s *PostgresStoreStore) List(ctx context.Context) ([]*domain.Store, error) {
	query := `
		SELECT id, name, created_at, updated_at
		FROM stores
		ORDER BY created_at
	`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		s.logger.Error("failed to list stores", "error", err)
		return nil, fmt.Errorf("failed to list stores: %w", MapError(err))
	}
	defer func() { _ = rows.Close() }()

	var stores []*domain.Store
	for rows.Next() {
		st := &domain.Store{}
		if err := rows.Scan(&st.ID, &st.Name, &st.CreatedAt, &st.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan store row: %w", err)
		}
		stores = append(stores, st)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating store rows: %w", err)
	}

	if err := s.loadChildren(ctx, stores); err != nil {
		return nil, err
	}

	return stores, nil
}

// Delete implements store.StoreStore.Delete
func (s *PostgresStoreStore) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM stores WHERE id = $1`

	result, err := s.db.ExecContext(ctx, query, id)
	if err != nil {
		if IsForeignKeyViolation(err) {
			// Items or tags still reference the store; no cascade is
			// configured.
			return store.ErrForeignKey
		}
		s.logger.Error("failed to delete store", "error", err, "store_id", id)
		return fmt.Errorf("failed to delete store: %w", MapError(err))
	}

	return CheckRowsAffected(result, store.ErrStoreNotFound)
}

// loadChildren populates the item and tag summaries for the given
// stores with one query per relation.
func (s *PostgresStoreStore) loadChildren(ctx context.Context, stores []*domain.Store) error {
	if len(stores) == 0 {
		return nil
	}

	byID := make(map[uuid.UUID]*domain.Store, len(stores))
	ids := make([]uuid.UUID, 0, len(stores))
	for _, st := range stores {
		byID[st.ID] = st
		ids = append(ids, st.ID)
	}

	itemQuery := `
		SELECT id, name, store_id
		FROM items
		WHERE store_id = ANY($1)
		ORDER BY created_at
	`
	rows, err := s.db.QueryContext(ctx, itemQuery, ids)
	if err != nil {
		return fmt.Errorf("failed to load store items: %w", MapError(err))
	}
	defer func() { _ = rows.Close() }()

	for rows.Next() {
		item := &domain.Item{}
		if err := rows.Scan(&item.ID, &item.Name, &item.StoreID); err != nil {
			return fmt.Errorf("failed to scan item row: %w", err)
		}
		if parent, ok := byID[item.StoreID]; ok {
			parent.Items = append(parent.Items, item)
		}
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("error iterating item rows: %w", err)
	}

	tagQuery := `
		SELECT id, name, store_id
		FROM tags
		WHERE store_id = ANY($1)
		ORDER BY created_at
	`
	tagRows, err := s.db.QueryContext(ctx, tagQuery, ids)
	if err != nil {
		return fmt.Errorf("failed to load store tags: %w", MapError(err))
	}
	defer func() { _ = tagRows.Close() }()

	for tagRows.Next() {
		tag := &domain.Tag{}
		if err := tagRows.Scan(&tag.ID, &tag.Name, &tag.StoreID); err != nil {
			return fmt.Errorf("failed to scan tag row: %w", err)
		}
		if parent, ok := byID[tag.StoreID]; ok {
			parent.Tags = append(parent.Tags, tag)
		}
	}
	if err := tagRows.Err(); err != nil {
		return fmt.Errorf("error iterating tag rows: %w", err)
	}

	return nil
}

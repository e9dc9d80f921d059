package postgres

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/harwick/shelf-api/internal/domain"
	"github.com/harwick/shelf-api/internal/store"
)

// PostgresItemStore implements the store.ItemStore interface using a
// PostgreSQL database as the storage backend.
type PostgresItemStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresItemStore creates a new PostgreSQL implementation of the
// ItemStore interface.
func NewPostgresItemStore(db store.DBTX, logger *slog.Logger) *PostgresItemStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresItemStore{
		db:     db,
		logger: logger.With(slog.String("component", "item_store")),
	}
}

// Ensure PostgresItemStore implements store.ItemStore interface
var _ store.ItemStore = (*PostgresItemStore)(nil)

// Create implements store.ItemStore.Create
func (s *PostgresItemStore) Create(ctx context.Context, item *domain.Item) error {
	if err := item.Validate(); err != nil {
		return fmt.Errorf("%w: %v", store.ErrInvalidEntity, err)
	}

	query := `
		INSERT INTO items (id, name, price, store_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := s.db.ExecContext(ctx, query,
		item.ID, item.Name, item.Price, item.StoreID, item.CreatedAt, item.UpdatedAt)
	if err != nil {
		if IsUniqueViolation(err) {
			return store.ErrItemNameExists
		}
		if IsForeignKeyViolation(err) {
			// The referenced store does not exist.
			return store.ErrForeignKey
		}
		s.logger.Error("failed to create item", "error", err, "item_id", item.ID)
		return fmt.Errorf("failed to create item: %w", MapError(err))
	}

	return nil
}

// GetByID implements store.ItemStore.GetByID
func (s *PostgresItemStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Item, error) {
	query := `
		SELECT i.id, i.name, i.price, i.store_id, i.created_at, i.updated_at,
		       s.id, s.name
		FROM items i
		JOIN stores s ON s.id = i.store_id
		WHERE i.id = $1
	`

	item := &domain.Item{Store: &domain.Store{}}
	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&item.ID, &item.Name, &item.Price, &item.StoreID,
		&item.CreatedAt, &item.UpdatedAt,
		&item.Store.ID, &item.Store.Name,
	)
	if err != nil {
		if IsNotFound(err) {
			return nil, store.ErrItemNotFound
		}
		s.logger.Error("failed to get item", "error", err, "item_id", id)
		return nil, fmt.Errorf("failed to get item: %w", MapError(err))
	}

	if err := s.loadTags(ctx, []*domain.Item{item}); err != nil {
		return nil, err
	}

	return item, nil
}

// List implements store.ItemStore.List
func (s *PostgresItemStore) List(ctx context.Context) ([]*domain.Item, error) {
	query := `
		SELECT i.id, i.name, i.price, i.store_id, i.created_at, i.updated_at,
		       s.id, s.name
		FROM items i
		JOIN stores s ON s.id = i.store_id
		ORDER BY i.created_at
	`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		s.logger.Error("failed to list items", "error", err)
		return nil, fmt.Errorf("failed to list items: %w", MapError(err))
	}
	defer func() { _ = rows.Close() }()

	var items []*domain.Item
	for rows.Next() {
		item := &domain.Item{Store: &domain.Store{}}
		if err := rows.Scan(
			&item.ID, &item.Name, &item.Price, &item.StoreID,
			&item.CreatedAt, &item.UpdatedAt,
			&item.Store.ID, &item.Store.Name,
		); err != nil {
			return nil, fmt.Errorf("failed to scan item row: %w", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating item rows: %w", err)
	}

	if err := s.loadTags(ctx, items); err != nil {
		return nil, err
	}

	return items, nil
}

// Update implements store.ItemStore.Update
func (s *PostgresItemStore) Update(ctx context.Context, item *domain.Item) error {
	if err := item.Validate(); err != nil {
		return fmt.Errorf("%w: %v", store.ErrInvalidEntity, err)
	}

	query := `
		UPDATE items
		SET name = $1, price = $2, updated_at = $3
		WHERE id = $4
	`

	result, err := s.db.ExecContext(ctx, query,
		item.Name, item.Price, time.Now().UTC(), item.ID)
	if err != nil {
		if IsUniqueViolation(err) {
			return store.ErrItemNameExists
		}
		s.logger.Error("failed to update item", "error", err, "item_id", item.ID)
		return fmt.Errorf("failed to update item: %w", MapError(err))
	}

	return CheckRowsAffected(result, store.ErrItemNotFound)
}

// Delete implements store.ItemStore.Delete
func (s *PostgresItemStore) Delete(ctx context.Context, id uuid.UUID) error {
	// item_tags rows cascade with the item.
	query := `DELETE FROM items WHERE id = $1`

	result, err := s.db.ExecContext(ctx, query, id)
	if err != nil {
		s.logger.Error("failed to delete item", "error", err, "item_id", id)
		return fmt.Errorf("failed to delete item: %w", MapError(err))
	}

	return CheckRowsAffected(result, store.ErrItemNotFound)
}

// loadTags populates the tag summaries for the given items with one
// query over the association table.
func (s *PostgresItemStore) loadTags(ctx context.Context, items []*domain.Item) error {
	if len(items) == 0 {
		return nil
	}

	byID := make(map[uuid.UUID]*domain.Item, len(items))
	ids := make([]uuid.UUID, 0, len(items))
	for _, item := range items {
		byID[item.ID] = item
		ids = append(ids, item.ID)
	}

	query := `
		SELECT it.item_id, t.id, t.name, t.store_id
		FROM item_tags it
		JOIN tags t ON t.id = it.tag_id
		WHERE it.item_id = ANY($1)
		ORDER BY t.created_at
	`

	rows, err := s.db.QueryContext(ctx, query, ids)
	if err != nil {
		return fmt.Errorf("failed to load item tags: %w", MapError(err))
	}
	defer func() { _ = rows.Close() }()

	for rows.Next() {
		var itemID uuid.UUID
		tag := &domain.Tag{}
		if err := rows.Scan(&itemID, &tag.ID, &tag.Name, &tag.StoreID); err != nil {
			return fmt.Errorf("failed to scan item tag row: %w", err)
		}
		if parent, ok := byID[itemID]; ok {
			parent.Tags = append(parent.Tags, tag)
		}
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("error iterating item tag rows: %w", err)
	}

	return nil
}

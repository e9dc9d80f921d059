package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/harwick/shelf-api/internal/domain"
	"github.com/harwick/shelf-api/internal/store"
)

// PostgresTagStore implements the store.TagStore interface using a
// PostgreSQL database as the storage backend.
type PostgresTagStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresTagStore creates a new PostgreSQL implementation of the
// TagStore interface.
func NewPostgresTagStore(db store.DBTX, logger *slog.Logger) *PostgresTagStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresTagStore{
		db:     db,
		logger: logger.With(slog.String("component", "tag_store")),
	}
}

// Ensure PostgresTagStore implements store.TagStore interface
var _ store.TagStore = (*PostgresTagStore)(nil)

// Create implements store.TagStore.Create
func (s *PostgresTagStore) Create(ctx context.Context, tag *domain.Tag) error {
	if err := tag.Validate(); err != nil {
		return fmt.Errorf("%w: %v", store.ErrInvalidEntity, err)
	}

	query := `
		INSERT INTO tags (id, name, store_id, created_at)
		VALUES ($1, $2, $3, $4)
	`

	_, err := s.db.ExecContext(ctx, query, tag.ID, tag.Name, tag.StoreID, tag.CreatedAt)
	if err != nil {
		if IsUniqueViolation(err) {
			// The compound (store_id, name) constraint is the authority;
			// the handler's pre-check is only a fast path.
			return store.ErrTagNameExists
		}
		if IsForeignKeyViolation(err) {
			return store.ErrForeignKey
		}
		s.logger.Error("failed to create tag", "error", err, "tag_id", tag.ID)
		return fmt.Errorf("failed to create tag: %w", MapError(err))
	}

	return nil
}

// GetByID implements store.TagStore.GetByID
func (s *PostgresTagStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Tag, error) {
	query := `
		SELECT t.id, t.name, t.store_id, t.created_at, s.id, s.name
		FROM tags t
		JOIN stores s ON s.id = t.store_id
		WHERE t.id = $1
	`

	tag := &domain.Tag{Store: &domain.Store{}}
	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&tag.ID, &tag.Name, &tag.StoreID, &tag.CreatedAt,
		&tag.Store.ID, &tag.Store.Name,
	)
	if err != nil {
		if IsNotFound(err) {
			return nil, store.ErrTagNotFound
		}
		s.logger.Error("failed to get tag", "error", err, "tag_id", id)
		return nil, fmt.Errorf("failed to get tag: %w", MapError(err))
	}

	itemQuery := `
		SELECT i.id, i.name
		FROM item_tags it
		JOIN items i ON i.id = it.item_id
		WHERE it.tag_id = $1
		ORDER BY i.created_at
	`
	rows, err := s.db.QueryContext(ctx, itemQuery, id)
	if err != nil {
		return nil, fmt.Errorf("failed to load tag items: %w", MapError(err))
	}
	defer func() { _ = rows.Close() }()

	for rows.Next() {
		item := &domain.Item{}
		if err := rows.Scan(&item.ID, &item.Name); err != nil {
			return nil, fmt.Errorf("failed to scan tag item row: %w", err)
		}
		tag.Items = append(tag.Items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating tag item rows: %w", err)
	}

	return tag, nil
}

// ListByStore implements store.TagStore.ListByStore
func (s *PostgresTagStore) ListByStore(ctx context.Context, storeID uuid.UUID) ([]*domain.Tag, error) {
	query := `
		SELECT id, name, store_id, created_at
		FROM tags
		WHERE store_id = $1
		ORDER BY created_at
	`

	rows, err := s.db.QueryContext(ctx, query, storeID)
	if err != nil {
		s.logger.Error("failed to list tags", "error", err, "store_id", storeID)
		return nil, fmt.Errorf("failed to list tags: %w", MapError(err))
	}
	defer func() { _ = rows.Close() }()

	var tags []*domain.Tag
	for rows.Next() {
		tag := &domain.Tag{}
		if err := rows.Scan(&tag.ID, &tag.Name, &tag.StoreID, &tag.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan tag row: %w", err)
		}
		tags = append(tags, tag)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating tag rows: %w", err)
	}

	return tags, nil
}

// ExistsInStore implements store.TagStore.ExistsInStore
func (s *PostgresTagStore) ExistsInStore(ctx context.Context, storeID uuid.UUID, name string) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM tags WHERE store_id = $1 AND name = $2)`

	var exists bool
	if err := s.db.QueryRowContext(ctx, query, storeID, name).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check tag existence: %w", MapError(err))
	}

	return exists, nil
}

// Delete implements store.TagStore.Delete
func (s *PostgresTagStore) Delete(ctx context.Context, id uuid.UUID) error {
	// The guarded delete and the follow-up link check must see the same
	// snapshot, so when the store is backed by a plain connection they
	// run in one transaction. A store already bound to a transaction
	// reuses it.
	if db, ok := s.db.(*sql.DB); ok {
		return store.RunInTransaction(ctx, db, func(ctx context.Context, tx *sql.Tx) error {
			return s.deleteIn(ctx, tx, id)
		})
	}
	return s.deleteIn(ctx, s.db, id)
}

func (s *PostgresTagStore) deleteIn(ctx context.Context, db store.DBTX, id uuid.UUID) error {
	// The guard and the delete run as one statement so a concurrent link
	// cannot slip between a check and the delete. The RESTRICT foreign
	// key on item_tags.tag_id backs this up regardless.
	query := `
		DELETE FROM tags
		WHERE id = $1
		  AND NOT EXISTS (SELECT 1 FROM item_tags WHERE tag_id = $1)
	`

	result, err := db.ExecContext(ctx, query, id)
	if err != nil {
		if IsForeignKeyViolation(err) {
			return store.ErrTagLinked
		}
		s.logger.Error("failed to delete tag", "error", err, "tag_id", id)
		return fmt.Errorf("failed to delete tag: %w", MapError(err))
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		// Either the tag is absent or it still has links; tell them apart.
		var linked bool
		checkQuery := `SELECT EXISTS (SELECT 1 FROM item_tags WHERE tag_id = $1)`
		if err := db.QueryRowContext(ctx, checkQuery, id).Scan(&linked); err != nil {
			return fmt.Errorf("failed to check tag links: %w", MapError(err))
		}
		if linked {
			return store.ErrTagLinked
		}
		return store.ErrTagNotFound
	}

	return nil
}

// Link implements store.TagStore.Link
func (s *PostgresTagStore) Link(ctx context.Context, itemID, tagID uuid.UUID) error {
	// ON CONFLICT DO NOTHING makes linking idempotent: exactly one
	// association row ever exists per pair.
	query := `
		INSERT INTO item_tags (item_id, tag_id)
		VALUES ($1, $2)
		ON CONFLICT (item_id, tag_id) DO NOTHING
	`

	_, err := s.db.ExecContext(ctx, query, itemID, tagID)
	if err != nil {
		if IsForeignKeyViolation(err) {
			return store.ErrForeignKey
		}
		s.logger.Error("failed to link tag to item",
			"error", err, "item_id", itemID, "tag_id", tagID)
		return fmt.Errorf("failed to link tag to item: %w", MapError(err))
	}

	return nil
}

// Unlink implements store.TagStore.Unlink
func (s *PostgresTagStore) Unlink(ctx context.Context, itemID, tagID uuid.UUID) error {
	query := `DELETE FROM item_tags WHERE item_id = $1 AND tag_id = $2`

	result, err := s.db.ExecContext(ctx, query, itemID, tagID)
	if err != nil {
		s.logger.Error("failed to unlink tag from item",
			"error", err, "item_id", itemID, "tag_id", tagID)
		return fmt.Errorf("failed to unlink tag from item: %w", MapError(err))
	}

	return CheckRowsAffected(result, store.ErrLinkNotFound)
}

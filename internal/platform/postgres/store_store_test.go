package postgres

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harwick/shelf-api/internal/store"
	"github.com/harwick/shelf-api/internal/testutils"
)

func newMockStoreStore(t *testing.T) (sqlmock.Sqlmock, *PostgresStoreStore) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return mock, NewPostgresStoreStore(db, testutils.DiscardLogger())
}

func TestStoreStoreCreate(t *testing.T) {
	t.Run("inserts a valid store", func(t *testing.T) {
		mock, stores := newMockStoreStore(t)
		st := testutils.MustNewStore(t, "Groceries")

		mock.ExpectExec("INSERT INTO stores").
			WithArgs(st.ID, st.Name, st.CreatedAt, st.UpdatedAt).
			WillReturnResult(sqlmock.NewResult(0, 1))

		require.NoError(t, stores.Create(context.Background(), st))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("duplicate name maps to store name exists", func(t *testing.T) {
		mock, stores := newMockStoreStore(t)
		st := testutils.MustNewStore(t, "Groceries")

		mock.ExpectExec("INSERT INTO stores").
			WillReturnError(pgError("23505", "stores_name_key"))

		err := stores.Create(context.Background(), st)
		assert.ErrorIs(t, err, store.ErrStoreNameExists)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestStoreStoreDelete(t *testing.T) {
	storeID := uuid.New()

	t.Run("deletes an empty store", func(t *testing.T) {
		mock, stores := newMockStoreStore(t)

		mock.ExpectExec("DELETE FROM stores").
			WithArgs(storeID).
			WillReturnResult(sqlmock.NewResult(0, 1))

		require.NoError(t, stores.Delete(context.Background(), storeID))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("absent store maps to not found", func(t *testing.T) {
		mock, stores := newMockStoreStore(t)

		mock.ExpectExec("DELETE FROM stores").
			WithArgs(storeID).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := stores.Delete(context.Background(), storeID)
		assert.ErrorIs(t, err, store.ErrStoreNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("dependent items block the delete", func(t *testing.T) {
		mock, stores := newMockStoreStore(t)

		mock.ExpectExec("DELETE FROM stores").
			WithArgs(storeID).
			WillReturnError(pgError("23503", "items_store_id_fkey"))

		err := stores.Delete(context.Background(), storeID)
		assert.ErrorIs(t, err, store.ErrForeignKey)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("dependent tags block the delete", func(t *testing.T) {
		mock, stores := newMockStoreStore(t)

		mock.ExpectExec("DELETE FROM stores").
			WithArgs(storeID).
			WillReturnError(pgError("23503", "tags_store_id_fkey"))

		err := stores.Delete(context.Background(), storeID)
		assert.ErrorIs(t, err, store.ErrForeignKey)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

package persistence

import (
	"context"
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/contas/backend/internal/domain/partner"
	"github.com/contas/backend/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newMockCounterpartyRepository creates a GormCounterpartyRepository with a mocked SQL connection
func newMockCounterpartyRepository(t *testing.T) (*GormCounterpartyRepository, sqlmock.Sqlmock, *sql.DB) {
	db, mock, mockDB := newMockDatabase(t)
	return NewGormCounterpartyRepository(db.DB), mock, mockDB
}

func TestGormCounterpartyRepository_FindByID(t *testing.T) {
	t.Run("finds existing counterparty", func(t *testing.T) {
		repo, mock, mockDB := newMockCounterpartyRepository(t)
		defer mockDB.Close()

		mock.ExpectQuery(`SELECT \* FROM "fornecedor_cliente" WHERE id = \$1 ORDER BY .* LIMIT .*`).
			WithArgs(uint(1), 1).
			WillReturnRows(sqlmock.NewRows([]string{"id", "nome"}).AddRow(1, "Acme Ltda"))

		c, err := repo.FindByID(context.Background(), 1)
		require.NoError(t, err)
		assert.Equal(t, uint(1), c.ID)
		assert.Equal(t, "Acme Ltda", c.Name)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("returns ErrNotFound for missing counterparty", func(t *testing.T) {
		repo, mock, mockDB := newMockCounterpartyRepository(t)
		defer mockDB.Close()

		mock.ExpectQuery(`SELECT \* FROM "fornecedor_cliente" WHERE id = \$1 ORDER BY .* LIMIT .*`).
			WithArgs(uint(99), 1).
			WillReturnRows(sqlmock.NewRows([]string{"id", "nome"}))

		c, err := repo.FindByID(context.Background(), 99)
		assert.Nil(t, c)
		assert.ErrorIs(t, err, shared.ErrNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("propagates driver errors", func(t *testing.T) {
		repo, mock, mockDB := newMockCounterpartyRepository(t)
		defer mockDB.Close()

		mock.ExpectQuery(`SELECT \* FROM "fornecedor_cliente"`).WillReturnError(sql.ErrConnDone)

		_, err := repo.FindByID(context.Background(), 1)
		assert.ErrorIs(t, err, sql.ErrConnDone)
	})
}

func TestGormCounterpartyRepository_Delete(t *testing.T) {
	t.Run("returns ErrNotFound when no row is deleted", func(t *testing.T) {
		repo, mock, mockDB := newMockCounterpartyRepository(t)
		defer mockDB.Close()

		mock.ExpectExec(`DELETE FROM "fornecedor_cliente" WHERE id = \$1`).
			WithArgs(uint(5)).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.Delete(context.Background(), 5)
		assert.ErrorIs(t, err, shared.ErrNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGormCounterpartyRepository_SQLite(t *testing.T) {
	ctx := context.Background()

	t.Run("assigns sequential ids starting at one", func(t *testing.T) {
		repo := NewGormCounterpartyRepository(newSQLiteDatabase(t).DB)

		first, err := partner.NewCounterparty("Acme Ltda")
		require.NoError(t, err)
		second, err := partner.NewCounterparty("Beta SA")
		require.NoError(t, err)

		require.NoError(t, repo.Save(ctx, first))
		require.NoError(t, repo.Save(ctx, second))

		assert.Equal(t, uint(1), first.ID)
		assert.Equal(t, uint(2), second.ID)

		all, err := repo.FindAll(ctx)
		require.NoError(t, err)
		require.Len(t, all, 2)
		assert.Equal(t, "Acme Ltda", all[0].Name)
		assert.Equal(t, "Beta SA", all[1].Name)
	})

	t.Run("updates name in place", func(t *testing.T) {
		repo := NewGormCounterpartyRepository(newSQLiteDatabase(t).DB)

		c, err := partner.NewCounterparty("Acme Ltda")
		require.NoError(t, err)
		require.NoError(t, repo.Save(ctx, c))
		require.NoError(t, c.Rename("Acme Comercio"))
		require.NoError(t, repo.Save(ctx, c))

		found, err := repo.FindByID(ctx, c.ID)
		require.NoError(t, err)
		assert.Equal(t, "Acme Comercio", found.Name)
	})

	t.Run("deletes", func(t *testing.T) {
		repo := NewGormCounterpartyRepository(newSQLiteDatabase(t).DB)

		c, err := partner.NewCounterparty("Acme Ltda")
		require.NoError(t, err)
		require.NoError(t, repo.Save(ctx, c))

		require.NoError(t, repo.Delete(ctx, c.ID))

		_, err = repo.FindByID(ctx, c.ID)
		assert.ErrorIs(t, err, shared.ErrNotFound)
		assert.ErrorIs(t, repo.Delete(ctx, c.ID), shared.ErrNotFound)
	})

	t.Run("empty table yields empty slice", func(t *testing.T) {
		repo := NewGormCounterpartyRepository(newSQLiteDatabase(t).DB)

		all, err := repo.FindAll(ctx)
		require.NoError(t, err)
		assert.NotNil(t, all)
		assert.Empty(t, all)
	})
}

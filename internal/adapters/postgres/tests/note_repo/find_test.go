package noterepo_test

import (
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"notevault/internal/adapters/postgres"
	"notevault/internal/domain/entities"
)

func TestNoteRepository_FindByID(t *testing.T) {
	ctx := testContext(t)
	note := testNote()

	t.Run("Успешное получение активной заметки", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		rows := pgxmock.NewRows(noteColumns).
			AddRow(note.ID, note.OwnerID, note.Title, note.Body, note.CreatedAt, note.UpdatedAt)

		mock.ExpectQuery("FROM notes WHERE id").
			WithArgs(note.ID).
			WillReturnRows(rows)

		repo := postgres.NewNoteRepository(mock)

		found, err := repo.FindByID(ctx, note.ID)

		require.NoError(t, err)
		assert.Equal(t, note.ID, found.ID)
		assert.Equal(t, note.Title, found.Title)

		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Заметка не найдена в активном хранилище", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectQuery("FROM notes WHERE id").
			WithArgs("missing-note").
			WillReturnError(pgx.ErrNoRows)

		repo := postgres.NewNoteRepository(mock)

		found, err := repo.FindByID(ctx, "missing-note")

		assert.Nil(t, found)
		assert.ErrorIs(t, err, entities.ErrNoteNotFound)

		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestNoteRepository_FindArchived(t *testing.T) {
	ctx := testContext(t)
	note := testNote()

	t.Run("Успешное получение заметки из архива", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		rows := pgxmock.NewRows(noteColumns).
			AddRow(note.ID, note.OwnerID, note.Title, note.Body, note.CreatedAt, note.UpdatedAt)

		mock.ExpectQuery("FROM removed_notes WHERE id").
			WithArgs(note.ID).
			WillReturnRows(rows)

		repo := postgres.NewNoteRepository(mock)

		found, err := repo.FindArchived(ctx, note.ID)

		require.NoError(t, err)
		assert.Equal(t, note.ID, found.ID)
		assert.Equal(t, note.OwnerID, found.OwnerID)

		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Заметка отсутствует в архиве", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectQuery("FROM removed_notes WHERE id").
			WithArgs("never-deleted").
			WillReturnError(pgx.ErrNoRows)

		repo := postgres.NewNoteRepository(mock)

		found, err := repo.FindArchived(ctx, "never-deleted")

		assert.Nil(t, found)
		assert.ErrorIs(t, err, entities.ErrNoteNotFound)

		require.NoError(t, mock.ExpectationsWereMet())
	})
}

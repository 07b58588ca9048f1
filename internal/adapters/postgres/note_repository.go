package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"notevault/internal/domain/entities"
	"notevault/internal/ports/repositories"
	"notevault/pkg/logger"
)

const noteColumns = "id, owner_id, title, body, created_at, updated_at"

// NoteRepository реализует repositories.NoteRepository поверх Postgres.
// Активные заметки живут в таблице notes, удаленные - в removed_notes
// с тем же идентификатором.
type NoteRepository struct {
	pool PgxPoolInterface
}

// NewNoteRepository создает новый репозиторий заметок.
func NewNoteRepository(pool PgxPoolInterface) repositories.NoteRepository {
	return &NoteRepository{pool: pool}
}

// Insert сохраняет новую заметку; идентификатор назначает база.
func (r *NoteRepository) Insert(ctx context.Context, note *entities.Note) (*entities.Note, error) {
	log := logger.Log(ctx).With(zap.String("repository", "note"), zap.String("method", "Insert"))

	query := `
        INSERT INTO notes (owner_id, title, body)
        VALUES ($1, $2, $3)
        RETURNING ` + noteColumns

	var created entities.Note
	err := r.pool.QueryRow(ctx, query, note.OwnerID, note.Title, note.Body).Scan(
		&created.ID,
		&created.OwnerID,
		&created.Title,
		&created.Body,
		&created.CreatedAt,
		&created.UpdatedAt,
	)

	if err != nil {
		log.Error(ctx, "error inserting note", zap.Error(err))
		return nil, fmt.Errorf("error inserting note: %w", err)
	}

	log.Debug(ctx, "note inserted", zap.String("noteID", created.ID))
	return &created, nil
}

// FindByID возвращает активную заметку по ID.
func (r *NoteRepository) FindByID(ctx context.Context, noteID string) (*entities.Note, error) {
	return r.findIn(ctx, "notes", noteID)
}

// FindArchived возвращает заметку из архива по ID.
func (r *NoteRepository) FindArchived(ctx context.Context, noteID string) (*entities.Note, error) {
	return r.findIn(ctx, "removed_notes", noteID)
}

func (r *NoteRepository) findIn(ctx context.Context, table, noteID string) (*entities.Note, error) {
	log := logger.Log(ctx).With(zap.String("repository", "note"), zap.String("table", table))

	query := fmt.Sprintf("SELECT %s FROM %s WHERE id = $1", noteColumns, table)

	var note entities.Note
	err := r.pool.QueryRow(ctx, query, noteID).Scan(
		&note.ID,
		&note.OwnerID,
		&note.Title,
		&note.Body,
		&note.CreatedAt,
		&note.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			log.Debug(ctx, "note not found", zap.String("noteID", noteID))
			return nil, entities.ErrNoteNotFound
		}
		log.Error(ctx, "error finding note", zap.Error(err))
		return nil, fmt.Errorf("error querying note: %w", err)
	}

	return &note, nil
}

// ListByOwner возвращает активные заметки владельца; пустой ownerID
// означает заметки всех владельцев.
func (r *NoteRepository) ListByOwner(ctx context.Context, ownerID string) ([]*entities.Note, error) {
	log := logger.Log(ctx).With(zap.String("repository", "note"), zap.String("method", "ListByOwner"))

	var (
		rows pgx.Rows
		err  error
	)
	if ownerID == "" {
		rows, err = r.pool.Query(ctx,
			fmt.Sprintf("SELECT %s FROM notes ORDER BY created_at", noteColumns))
	} else {
		rows, err = r.pool.Query(ctx,
			fmt.Sprintf("SELECT %s FROM notes WHERE owner_id = $1 ORDER BY created_at", noteColumns),
			ownerID)
	}
	if err != nil {
		log.Error(ctx, "error listing notes", zap.Error(err))
		return nil, fmt.Errorf("error listing notes: %w", err)
	}
	defer rows.Close()

	notes := make([]*entities.Note, 0)
	for rows.Next() {
		var note entities.Note
		if err := rows.Scan(
			&note.ID,
			&note.OwnerID,
			&note.Title,
			&note.Body,
			&note.CreatedAt,
			&note.UpdatedAt,
		); err != nil {
			log.Error(ctx, "error scanning note", zap.Error(err))
			return nil, fmt.Errorf("error scanning note: %w", err)
		}
		notes = append(notes, &note)
	}

	if err := rows.Err(); err != nil {
		log.Error(ctx, "error iterating rows", zap.Error(err))
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return notes, nil
}

// UpdateFields применяет непустые поля обновления к активной заметке.
func (r *NoteRepository) UpdateFields(ctx context.Context, noteID string, update *entities.NoteUpdate) (*entities.Note, error) {
	log := logger.Log(ctx).With(zap.String("repository", "note"), zap.String("method", "UpdateFields"))

	query := `
        UPDATE notes
        SET title = COALESCE($2, title),
            body = COALESCE($3, body),
            updated_at = now()
        WHERE id = $1
        RETURNING ` + noteColumns

	var updated entities.Note
	err := r.pool.QueryRow(ctx, query, noteID, update.Title, update.Body).Scan(
		&updated.ID,
		&updated.OwnerID,
		&updated.Title,
		&updated.Body,
		&updated.CreatedAt,
		&updated.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			log.Debug(ctx, "note not found for update", zap.String("noteID", noteID))
			return nil, entities.ErrNoteNotFound
		}
		log.Error(ctx, "error updating note", zap.Error(err))
		return nil, fmt.Errorf("error updating note: %w", err)
	}

	return &updated, nil
}

// CopyToArchive записывает копию заметки в архив с сохранением ID
// и исходных временных меток.
func (r *NoteRepository) CopyToArchive(ctx context.Context, note *entities.Note) error {
	return r.copyInto(ctx, "removed_notes", note)
}

// CopyToActive записывает копию архивной заметки в активное хранилище.
func (r *NoteRepository) CopyToActive(ctx context.Context, note *entities.Note) error {
	return r.copyInto(ctx, "notes", note)
}

func (r *NoteRepository) copyInto(ctx context.Context, table string, note *entities.Note) error {
	log := logger.Log(ctx).With(zap.String("repository", "note"), zap.String("table", table))

	query := fmt.Sprintf(`
        INSERT INTO %s (id, owner_id, title, body, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5, $6)`, table)

	_, err := r.pool.Exec(ctx, query,
		note.ID, note.OwnerID, note.Title, note.Body, note.CreatedAt, note.UpdatedAt)
	if err != nil {
		log.Error(ctx, "error copying note", zap.String("noteID", note.ID), zap.Error(err))
		return fmt.Errorf("error copying note into %s: %w", table, err)
	}

	log.Debug(ctx, "note copied", zap.String("noteID", note.ID))
	return nil
}

// RemoveActive удаляет заметку из активного хранилища.
func (r *NoteRepository) RemoveActive(ctx context.Context, noteID string) error {
	return r.removeFrom(ctx, "notes", noteID)
}

// RemoveArchived удаляет заметку из архива.
func (r *NoteRepository) RemoveArchived(ctx context.Context, noteID string) error {
	return r.removeFrom(ctx, "removed_notes", noteID)
}

func (r *NoteRepository) removeFrom(ctx context.Context, table, noteID string) error {
	log := logger.Log(ctx).With(zap.String("repository", "note"), zap.String("table", table))

	result, err := r.pool.Exec(ctx, fmt.Sprintf("DELETE FROM %s WHERE id = $1", table), noteID)
	if err != nil {
		log.Error(ctx, "error deleting note", zap.Error(err))
		return fmt.Errorf("error deleting note from %s: %w", table, err)
	}

	if result.RowsAffected() == 0 {
		log.Debug(ctx, "note not found for deletion", zap.String("noteID", noteID))
		return entities.ErrNoteNotFound
	}

	return nil
}

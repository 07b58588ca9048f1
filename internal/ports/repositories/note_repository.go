package repositories

import (
	"context"

	"notevault/internal/domain/entities"
)

// NoteRepository определяет интерфейс хранилища заметок с архивом
// удаленных. Идентификатор заметки существует не более чем в одном из
// двух хранилищ; перенос выполняет вызывающая сторона в порядке
// copy-then-delete. Отсутствие заметки обозначается entities.ErrNoteNotFound.
type NoteRepository interface {
	// Insert сохраняет новую заметку и возвращает ее с назначенным ID.
	Insert(ctx context.Context, note *entities.Note) (*entities.Note, error)
	// FindByID возвращает активную заметку по ID.
	FindByID(ctx context.Context, noteID string) (*entities.Note, error)
	// ListByOwner возвращает активные заметки владельца.
	// Пустой ownerID означает заметки всех владельцев.
	ListByOwner(ctx context.Context, ownerID string) ([]*entities.Note, error)
	// UpdateFields применяет непустые поля обновления к активной заметке.
	UpdateFields(ctx context.Context, noteID string, update *entities.NoteUpdate) (*entities.Note, error)

	// CopyToArchive записывает копию заметки в архив с сохранением ID.
	CopyToArchive(ctx context.Context, note *entities.Note) error
	// RemoveActive удаляет заметку из активного хранилища.
	RemoveActive(ctx context.Context, noteID string) error
	// FindArchived возвращает заметку из архива по ID.
	FindArchived(ctx context.Context, noteID string) (*entities.Note, error)
	// CopyToActive записывает копию архивной заметки в активное хранилище
	// с сохранением ID.
	CopyToActive(ctx context.Context, note *entities.Note) error
	// RemoveArchived удаляет заметку из архива.
	RemoveArchived(ctx context.Context, noteID string) error
}

package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"notevault/internal/domain/entities"
	"notevault/internal/ports/repositories"
)

// NoteRepository хранит активные и удаленные заметки в памяти.
// Один mutex охраняет оба хранилища, поэтому перенос заметки виден
// атомарно в пределах процесса.
type NoteRepository struct {
	mu      sync.RWMutex
	active  map[string]entities.Note
	removed map[string]entities.Note
}

// NewNoteRepository создает новое хранилище заметок в памяти.
func NewNoteRepository() repositories.NoteRepository {
	return &NoteRepository{
		active:  make(map[string]entities.Note),
		removed: make(map[string]entities.Note),
	}
}

// Insert сохраняет новую заметку с назначенным идентификатором.
func (r *NoteRepository) Insert(_ context.Context, note *entities.Note) (*entities.Note, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	created := *note
	created.ID = uuid.NewString()
	r.active[created.ID] = created

	result := created
	return &result, nil
}

// FindByID возвращает активную заметку по ID.
func (r *NoteRepository) FindByID(_ context.Context, noteID string) (*entities.Note, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	note, ok := r.active[noteID]
	if !ok {
		return nil, entities.ErrNoteNotFound
	}
	return &note, nil
}

// ListByOwner возвращает активные заметки владельца; пустой ownerID
// означает заметки всех владельцев.
func (r *NoteRepository) ListByOwner(_ context.Context, ownerID string) ([]*entities.Note, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	notes := make([]*entities.Note, 0)
	for _, note := range r.active {
		if ownerID != "" && note.OwnerID != ownerID {
			continue
		}
		copied := note
		notes = append(notes, &copied)
	}

	sort.Slice(notes, func(i, j int) bool {
		return notes[i].CreatedAt.Before(notes[j].CreatedAt)
	})

	return notes, nil
}

// UpdateFields применяет непустые поля обновления к активной заметке.
func (r *NoteRepository) UpdateFields(_ context.Context, noteID string, update *entities.NoteUpdate) (*entities.Note, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	note, ok := r.active[noteID]
	if !ok {
		return nil, entities.ErrNoteNotFound
	}

	if update.Title != nil {
		note.Title = *update.Title
	}
	if update.Body != nil {
		note.Body = *update.Body
	}
	note.UpdatedAt = time.Now().UTC()

	r.active[noteID] = note
	return &note, nil
}

// CopyToArchive записывает копию заметки в архив с сохранением ID.
func (r *NoteRepository) CopyToArchive(_ context.Context, note *entities.Note) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.removed[note.ID] = *note
	return nil
}

// RemoveActive удаляет заметку из активного хранилища.
func (r *NoteRepository) RemoveActive(_ context.Context, noteID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.active[noteID]; !ok {
		return entities.ErrNoteNotFound
	}
	delete(r.active, noteID)
	return nil
}

// FindArchived возвращает заметку из архива по ID.
func (r *NoteRepository) FindArchived(_ context.Context, noteID string) (*entities.Note, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	note, ok := r.removed[noteID]
	if !ok {
		return nil, entities.ErrNoteNotFound
	}
	return &note, nil
}

// CopyToActive записывает копию архивной заметки в активное хранилище.
func (r *NoteRepository) CopyToActive(_ context.Context, note *entities.Note) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.active[note.ID] = *note
	return nil
}

// RemoveArchived удаляет заметку из архива.
func (r *NoteRepository) RemoveArchived(_ context.Context, noteID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.removed[noteID]; !ok {
		return entities.ErrNoteNotFound
	}
	delete(r.removed, noteID)
	return nil
}

package app

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"notevault/internal/domain/entities"
	"notevault/internal/domain/policy"
	"notevault/internal/ports/repositories"
	"notevault/pkg/logger"
)

const (
	methodCreateNote  = "CreateNote"
	methodGetNote     = "GetNote"
	methodListNotes   = "ListNotes"
	methodUpdateNote  = "UpdateNote"
	methodDeleteNote  = "DeleteNote"
	methodRestoreNote = "RestoreNote"

	msgNoteCreated      = "note created"
	msgNoteUpdated      = "note updated"
	msgNoteArchived     = "note moved to archive"
	msgNoteRestored     = "note restored from archive"
	msgCreateDenied     = "note creation denied by policy"
	msgAccessDenied     = "note access denied by policy"
	msgListScopeDenied  = "list scope denied by policy"
	msgInvalidNote      = "invalid note payload"
	msgInvalidUpdate    = "invalid note update"
	msgErrInsertNote    = "failed to insert note"
	msgErrFindNote      = "failed to find note"
	msgErrListNotes     = "failed to list notes"
	msgErrUpdateNote    = "failed to update note"
	msgErrArchiveCopy   = "failed to copy note into archive"
	msgErrActiveRemove  = "failed to remove note from active store after archive copy"
	msgErrActiveCopy    = "failed to copy note into active store"
	msgErrArchiveRemove = "failed to remove note from archive after active copy"

	errCtxCreatePolicy   = "checking create permission"
	errCtxReadPolicy     = "checking read permission"
	errCtxModifyPolicy   = "checking modify permission"
	errCtxRestorePolicy  = "checking restore permission"
	errCtxListScope      = "resolving list scope"
	errCtxValidatingNote = "validating note"
	errCtxInsertingNote  = "inserting note"
	errCtxFindingNote    = "finding note"
	errCtxListingNotes   = "listing notes"
	errCtxUpdatingNote   = "updating note"
	errCtxArchivingNote  = "archiving note"
	errCtxRestoringNote  = "restoring note"
)

// NoteUseCase оркестрирует жизненный цикл заметок: создание, чтение,
// обновление и перенос между активным хранилищем и архивом. Каждая
// операция сверяется с пакетом policy до обращения к хранилищу.
type NoteUseCase struct {
	noteRepo repositories.NoteRepository
}

// NewNoteUseCase создает новый экземпляр NoteUseCase.
func NewNoteUseCase(noteRepo repositories.NoteRepository) *NoteUseCase {
	return &NoteUseCase{noteRepo: noteRepo}
}

// CreateNote создает новую заметку. Владельцем становится субъект
// запроса независимо от содержимого запроса.
func (uc *NoteUseCase) CreateNote(ctx context.Context, actor policy.Actor, title, body string) (*entities.Note, error) {
	log := logger.Log(ctx).With(zap.String("method", methodCreateNote), zap.String("actorID", actor.ID))

	if err := policy.CanCreate(actor); err != nil {
		log.Debug(ctx, msgCreateDenied)
		return nil, fmt.Errorf("%s: %w", errCtxCreatePolicy, err)
	}

	note := entities.NewNote(actor.ID, title, body)
	if err := note.Validate(); err != nil {
		log.Debug(ctx, msgInvalidNote, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxValidatingNote, err)
	}

	created, err := uc.noteRepo.Insert(ctx, note)
	if err != nil {
		log.Error(ctx, msgErrInsertNote, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxInsertingNote, err)
	}

	log.Info(ctx, msgNoteCreated, zap.String("noteID", created.ID))
	return created, nil
}

// GetNote возвращает заметку по ID. Несуществующая заметка дает
// ErrNoteNotFound для любого субъекта; проверка доступа выполняется
// только для существующей.
func (uc *NoteUseCase) GetNote(ctx context.Context, actor policy.Actor, noteID string) (*entities.Note, error) {
	log := logger.Log(ctx).With(zap.String("method", methodGetNote), zap.String("noteID", noteID))

	note, err := uc.noteRepo.FindByID(ctx, noteID)
	if err != nil {
		log.Debug(ctx, msgErrFindNote, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxFindingNote, err)
	}

	if err := policy.CanRead(actor, note.OwnerID); err != nil {
		log.Debug(ctx, msgAccessDenied, zap.String("actorID", actor.ID))
		return nil, fmt.Errorf("%s: %w", errCtxReadPolicy, err)
	}

	return note, nil
}

// ListNotes возвращает заметки в области видимости субъекта.
// Пустой список - самостоятельный результат, а не ошибка.
func (uc *NoteUseCase) ListNotes(ctx context.Context, actor policy.Actor, requestedOwner string) ([]*entities.Note, error) {
	log := logger.Log(ctx).With(zap.String("method", methodListNotes), zap.String("actorID", actor.ID))

	scope, err := policy.ListScope(actor, requestedOwner)
	if err != nil {
		log.Debug(ctx, msgListScopeDenied, zap.String("requestedOwner", requestedOwner))
		return nil, fmt.Errorf("%s: %w", errCtxListScope, err)
	}

	notes, err := uc.noteRepo.ListByOwner(ctx, scope)
	if err != nil {
		log.Error(ctx, msgErrListNotes, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxListingNotes, err)
	}

	return notes, nil
}

// UpdateNote применяет частичное обновление заметки. Администраторам
// отказано до поиска заметки; пустое обновление отклоняется до
// обращения к хранилищу.
func (uc *NoteUseCase) UpdateNote(ctx context.Context, actor policy.Actor, noteID string, update *entities.NoteUpdate) (*entities.Note, error) {
	log := logger.Log(ctx).With(zap.String("method", methodUpdateNote), zap.String("noteID", noteID))

	if err := policy.CanModify(actor, ""); err != nil {
		log.Debug(ctx, msgAccessDenied, zap.String("actorID", actor.ID))
		return nil, fmt.Errorf("%s: %w", errCtxModifyPolicy, err)
	}

	if err := update.Validate(); err != nil {
		log.Debug(ctx, msgInvalidUpdate, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxValidatingNote, err)
	}

	note, err := uc.noteRepo.FindByID(ctx, noteID)
	if err != nil {
		log.Debug(ctx, msgErrFindNote, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxFindingNote, err)
	}

	if err := policy.CanModify(actor, note.OwnerID); err != nil {
		log.Debug(ctx, msgAccessDenied, zap.String("actorID", actor.ID))
		return nil, fmt.Errorf("%s: %w", errCtxModifyPolicy, err)
	}

	updated, err := uc.noteRepo.UpdateFields(ctx, noteID, update)
	if err != nil {
		log.Error(ctx, msgErrUpdateNote, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxUpdatingNote, err)
	}

	log.Info(ctx, msgNoteUpdated, zap.String("noteID", updated.ID))
	return updated, nil
}

// DeleteNote переносит заметку в архив в порядке copy-then-delete:
// при неудачном копировании активная заметка остается нетронутой, а
// неудачное удаление после успешной копии оставляет дубликат до
// сверки и никогда не замалчивается.
func (uc *NoteUseCase) DeleteNote(ctx context.Context, actor policy.Actor, noteID string) error {
	log := logger.Log(ctx).With(zap.String("method", methodDeleteNote), zap.String("noteID", noteID))

	if err := policy.CanModify(actor, ""); err != nil {
		log.Debug(ctx, msgAccessDenied, zap.String("actorID", actor.ID))
		return fmt.Errorf("%s: %w", errCtxModifyPolicy, err)
	}

	note, err := uc.noteRepo.FindByID(ctx, noteID)
	if err != nil {
		log.Debug(ctx, msgErrFindNote, zap.Error(err))
		return fmt.Errorf("%s: %w", errCtxFindingNote, err)
	}

	if err := policy.CanModify(actor, note.OwnerID); err != nil {
		log.Debug(ctx, msgAccessDenied, zap.String("actorID", actor.ID))
		return fmt.Errorf("%s: %w", errCtxModifyPolicy, err)
	}

	if err := uc.noteRepo.CopyToArchive(ctx, note); err != nil {
		log.Error(ctx, msgErrArchiveCopy, zap.Error(err))
		return fmt.Errorf("%s: %w", errCtxArchivingNote, err)
	}

	if err := uc.noteRepo.RemoveActive(ctx, noteID); err != nil {
		log.Error(ctx, msgErrActiveRemove, zap.Error(err))
		return fmt.Errorf("%s: %w", errCtxArchivingNote, err)
	}

	log.Info(ctx, msgNoteArchived, zap.String("ownerID", note.OwnerID))
	return nil
}

// RestoreNote возвращает заметку из архива с сохранением идентификатора.
// Порядок симметричен удалению: сначала копия в активное хранилище,
// затем удаление из архива.
func (uc *NoteUseCase) RestoreNote(ctx context.Context, actor policy.Actor, noteID string) (*entities.Note, error) {
	log := logger.Log(ctx).With(zap.String("method", methodRestoreNote), zap.String("noteID", noteID))

	if err := policy.CanRestore(actor); err != nil {
		log.Debug(ctx, msgAccessDenied, zap.String("actorID", actor.ID))
		return nil, fmt.Errorf("%s: %w", errCtxRestorePolicy, err)
	}

	note, err := uc.noteRepo.FindArchived(ctx, noteID)
	if err != nil {
		log.Debug(ctx, msgErrFindNote, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxFindingNote, err)
	}

	if err := uc.noteRepo.CopyToActive(ctx, note); err != nil {
		log.Error(ctx, msgErrActiveCopy, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxRestoringNote, err)
	}

	if err := uc.noteRepo.RemoveArchived(ctx, noteID); err != nil {
		log.Error(ctx, msgErrArchiveRemove, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxRestoringNote, err)
	}

	log.Info(ctx, msgNoteRestored, zap.String("ownerID", note.OwnerID))
	return note, nil
}

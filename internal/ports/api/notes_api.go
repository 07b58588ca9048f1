package api

import (
	"context"

	"notevault/internal/domain/entities"
	"notevault/internal/domain/policy"
)

// NotesAPI определяет операции жизненного цикла заметок, доступные транспорту.
type NotesAPI interface {
	CreateNote(ctx context.Context, actor policy.Actor, title, body string) (*entities.Note, error)
	GetNote(ctx context.Context, actor policy.Actor, noteID string) (*entities.Note, error)
	ListNotes(ctx context.Context, actor policy.Actor, requestedOwner string) ([]*entities.Note, error)
	UpdateNote(ctx context.Context, actor policy.Actor, noteID string, update *entities.NoteUpdate) (*entities.Note, error)
	DeleteNote(ctx context.Context, actor policy.Actor, noteID string) error
	RestoreNote(ctx context.Context, actor policy.Actor, noteID string) (*entities.Note, error)
}

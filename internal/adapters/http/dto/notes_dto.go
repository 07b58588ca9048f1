package dto

import (
	"notevault/internal/domain/entities"
)

// CreateNoteRequest содержит данные для создания заметки.
type CreateNoteRequest struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

// UpdateNoteRequest содержит данные частичного обновления заметки.
// Nil-поле не изменяется.
type UpdateNoteRequest struct {
	Title *string `json:"title"`
	Body  *string `json:"body"`
}

// ToNoteUpdate преобразует запрос в доменное обновление.
func (r *UpdateNoteRequest) ToNoteUpdate() *entities.NoteUpdate {
	return &entities.NoteUpdate{
		Title: r.Title,
		Body:  r.Body,
	}
}

// ListNotesResponse содержит список заметок.
type ListNotesResponse struct {
	Notes      []*entities.Note `json:"notes"`
	TotalCount int              `json:"total_count"`
}

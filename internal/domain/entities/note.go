package entities

import (
	"errors"
	"time"
)

// Ограничения полей заметки.
const (
	MaxTitleLength = 256
	MaxBodyLength  = 65536
)

// Ошибки домена заметок.
var (
	ErrNoteNotFound = errors.New("note not found")
	ErrAccessDenied = errors.New("note access denied")
	ErrEmptyTitle   = errors.New("note title cannot be empty")
	ErrTitleTooLong = errors.New("note title exceeds maximum length")
	ErrBodyTooLong  = errors.New("note body exceeds maximum length")
	ErrEmptyUpdate  = errors.New("update contains no fields")
)

// Note представляет собой заметку. OwnerID устанавливается при создании
// и никогда не изменяется операциями обновления.
type Note struct {
	ID        string    `json:"id"`
	OwnerID   string    `json:"owner"`
	Title     string    `json:"title"`
	Body      string    `json:"body"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewNote создает новую заметку для владельца. Идентификатор назначает хранилище.
func NewNote(ownerID, title, body string) *Note {
	now := time.Now().UTC()
	return &Note{
		OwnerID:   ownerID,
		Title:     title,
		Body:      body,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Validate проверяет ограничения полей заметки.
func (n *Note) Validate() error {
	if n.Title == "" {
		return ErrEmptyTitle
	}
	if len(n.Title) > MaxTitleLength {
		return ErrTitleTooLong
	}
	if len(n.Body) > MaxBodyLength {
		return ErrBodyTooLong
	}
	return nil
}

// NoteUpdate содержит частичное обновление заметки. Nil-поле не изменяется.
type NoteUpdate struct {
	Title *string
	Body  *string
}

// IsEmpty сообщает, что обновление не содержит ни одного поля.
func (u *NoteUpdate) IsEmpty() bool {
	return u.Title == nil && u.Body == nil
}

// Validate проверяет ограничения переданных полей обновления.
func (u *NoteUpdate) Validate() error {
	if u.IsEmpty() {
		return ErrEmptyUpdate
	}
	if u.Title != nil {
		if *u.Title == "" {
			return ErrEmptyTitle
		}
		if len(*u.Title) > MaxTitleLength {
			return ErrTitleTooLong
		}
	}
	if u.Body != nil && len(*u.Body) > MaxBodyLength {
		return ErrBodyTooLong
	}
	return nil
}

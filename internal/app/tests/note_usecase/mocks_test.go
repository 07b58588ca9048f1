package noteusecase_test

import (
	"context"
	"fmt"

	"github.com/stretchr/testify/mock"

	"notevault/internal/domain/entities"
)

const (
	ErrInsertNote     = "failed to insert note"
	ErrFindNoteByID   = "failed to find note by ID"
	ErrListNotes      = "failed to list notes"
	ErrUpdateNote     = "failed to update note"
	ErrFindArchived   = "failed to find archived note"
	ErrCopyToArchive  = "failed to copy note to archive"
	ErrRemoveActive   = "failed to remove active note"
	ErrCopyToActive   = "failed to copy note to active store"
	ErrRemoveArchived = "failed to remove archived note"
)

type mockNoteRepository struct {
	mock.Mock
}

func (m *mockNoteRepository) Insert(ctx context.Context, note *entities.Note) (*entities.Note, error) {
	args := m.Called(ctx, note)
	if args.Get(0) == nil {
		err := args.Error(1)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrInsertNote, err)
		}
		return nil, nil
	}
	return args.Get(0).(*entities.Note), nil
}

func (m *mockNoteRepository) FindByID(ctx context.Context, noteID string) (*entities.Note, error) {
	args := m.Called(ctx, noteID)
	if args.Get(0) == nil {
		err := args.Error(1)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrFindNoteByID, err)
		}
		return nil, nil
	}
	return args.Get(0).(*entities.Note), nil
}

func (m *mockNoteRepository) ListByOwner(ctx context.Context, ownerID string) ([]*entities.Note, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		err := args.Error(1)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrListNotes, err)
		}
		return nil, nil
	}
	return args.Get(0).([]*entities.Note), nil
}

func (m *mockNoteRepository) UpdateFields(ctx context.Context, noteID string, update *entities.NoteUpdate) (*entities.Note, error) {
	args := m.Called(ctx, noteID, update)
	if args.Get(0) == nil {
		err := args.Error(1)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrUpdateNote, err)
		}
		return nil, nil
	}
	return args.Get(0).(*entities.Note), nil
}

func (m *mockNoteRepository) CopyToArchive(ctx context.Context, note *entities.Note) error {
	err := m.Called(ctx, note).Error(0)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrCopyToArchive, err)
	}
	return nil
}

func (m *mockNoteRepository) RemoveActive(ctx context.Context, noteID string) error {
	err := m.Called(ctx, noteID).Error(0)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrRemoveActive, err)
	}
	return nil
}

func (m *mockNoteRepository) FindArchived(ctx context.Context, noteID string) (*entities.Note, error) {
	args := m.Called(ctx, noteID)
	if args.Get(0) == nil {
		err := args.Error(1)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrFindArchived, err)
		}
		return nil, nil
	}
	return args.Get(0).(*entities.Note), nil
}

func (m *mockNoteRepository) CopyToActive(ctx context.Context, note *entities.Note) error {
	err := m.Called(ctx, note).Error(0)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrCopyToActive, err)
	}
	return nil
}

func (m *mockNoteRepository) RemoveArchived(ctx context.Context, noteID string) error {
	err := m.Called(ctx, noteID).Error(0)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrRemoveArchived, err)
	}
	return nil
}

// Package repositories определяет интерфейсы хранилищ сервиса.
package repositories

import (
	"context"

	"notevault/internal/domain/entities"
)

// UserRepository определяет интерфейс хранилища учетных записей.
// Отсутствие пользователя обозначается entities.ErrUserNotFound.
type UserRepository interface {
	Create(ctx context.Context, user *entities.User) (*entities.User, error)
	FindByEmail(ctx context.Context, email string) (*entities.User, error)
	FindByID(ctx context.Context, id string) (*entities.User, error)
}

// Package memory реализует хранилища сервиса в памяти процесса.
// Адаптеры реализуют те же интерфейсы, что и Postgres-хранилища,
// и используются в тестах и локальной разработке.
package memory

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"notevault/internal/domain/entities"
	"notevault/internal/ports/repositories"
)

// UserRepository хранит учетные записи в памяти.
type UserRepository struct {
	mu      sync.RWMutex
	byID    map[string]entities.User
	byEmail map[string]string
}

// NewUserRepository создает новое хранилище учетных записей в памяти.
func NewUserRepository() repositories.UserRepository {
	return &UserRepository{
		byID:    make(map[string]entities.User),
		byEmail: make(map[string]string),
	}
}

// Create создает новую учетную запись с назначенным идентификатором.
func (r *UserRepository) Create(_ context.Context, user *entities.User) (*entities.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byEmail[user.Email]; exists {
		return nil, entities.ErrEmailAlreadyExists
	}

	created := *user
	created.ID = uuid.NewString()
	created.CreatedAt = time.Now().UTC()

	r.byID[created.ID] = created
	r.byEmail[created.Email] = created.ID

	result := created
	return &result, nil
}

// FindByEmail находит учетную запись по email.
func (r *UserRepository) FindByEmail(_ context.Context, email string) (*entities.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.byEmail[email]
	if !ok {
		return nil, entities.ErrUserNotFound
	}

	user := r.byID[id]
	return &user, nil
}

// FindByID находит учетную запись по ID.
func (r *UserRepository) FindByID(_ context.Context, id string) (*entities.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.byID[id]
	if !ok {
		return nil, entities.ErrUserNotFound
	}
	return &user, nil
}

// Package api определяет интерфейсы прикладного слоя для транспортных адаптеров.
package api

import (
	"context"
	"time"

	"notevault/internal/domain/entities"
)

// AuthAPI определяет операции аутентификации, доступные транспорту.
type AuthAPI interface {
	Register(ctx context.Context, email, password string, isAdmin bool) (*entities.User, error)
	Login(ctx context.Context, email, password string) (string, time.Time, error)
	CurrentUser(ctx context.Context, token string) (*entities.User, error)
}

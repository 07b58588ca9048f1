// Package services определяет интерфейсы прикладных сервисов.
package services

import (
	"context"
	"time"
)

// TokenService определяет интерфейс для работы с bearer-токенами.
// Токен несет email субъекта и абсолютный срок действия; отозвать
// выданный токен нельзя, истечение - единственный механизм завершения.
type TokenService interface {
	// Issue выпускает токен для субъекта и возвращает срок его действия.
	Issue(ctx context.Context, email string) (string, time.Time, error)
	// Resolve возвращает email субъекта токена. Искаженный, неподписанный
	// и истекший токены неразличимы: все дают entities.ErrInvalidToken.
	Resolve(ctx context.Context, token string) (string, error)
}

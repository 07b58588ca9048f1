package middleware

import (
	"context"
	"strings"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"notevault/internal/domain/policy"
	"notevault/internal/ports/api"
	"notevault/pkg/logger"
)

// Ключи Locals, заполняемые промежуточным ПО аутентификации.
const (
	ActorKey       = "actor"
	CurrentUserKey = "currentUser"
)

// Константы для логирования.
const (
	LogAuthMiddleware = "auth middleware"

	ErrorNoAuthHeader       = "no authorization header provided"
	ErrorInvalidTokenFormat = "invalid token format"
	ErrorInvalidToken       = "invalid or expired token"
)

// NewAuthMiddleware создает промежуточное ПО, разрешающее bearer-токен
// в субъекта запроса. Отсутствующий, искаженный и истекший токены
// одинаково дают 401.
func NewAuthMiddleware(authAPI api.AuthAPI) fiber.Handler {
	return func(ctx fiber.Ctx) error {
		requestCtx, ok := ctx.Locals(UserContextKey).(context.Context)
		if !ok {
			requestCtx = ctx.Context()
		}
		log := logger.Log(requestCtx).With(zap.String("middleware", "auth"))
		log.Debug(requestCtx, LogAuthMiddleware)

		authHeader := ctx.Get("Authorization")
		if authHeader == "" {
			log.Debug(requestCtx, ErrorNoAuthHeader)
			return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": ErrorNoAuthHeader,
			})
		}

		token, found := strings.CutPrefix(authHeader, "Bearer ")
		if !found {
			log.Debug(requestCtx, ErrorInvalidTokenFormat)
			return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": ErrorInvalidTokenFormat,
			})
		}

		user, err := authAPI.CurrentUser(requestCtx, token)
		if err != nil {
			log.Debug(requestCtx, ErrorInvalidToken, zap.Error(err))
			return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": ErrorInvalidToken,
			})
		}

		ctx.Locals(ActorKey, policy.ActorFromUser(user))
		ctx.Locals(CurrentUserKey, user)

		return ctx.Next()
	}
}

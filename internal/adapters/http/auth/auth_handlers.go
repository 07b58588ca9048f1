// Package auth содержит HTTP-обработчики регистрации и входа.
package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"notevault/internal/adapters/http/dto"
	"notevault/internal/adapters/http/middleware"
	"notevault/internal/domain/entities"
	"notevault/internal/ports/api"
	"notevault/pkg/logger"
)

// Константы ошибок и сообщений для логирования.
const (
	LogHandlerRegister = "handling register request"
	LogHandlerLogin    = "handling login request"
	LogHandlerProfile  = "handling profile request"

	ErrMsgInvalidRequestBody = "invalid request body"

	tokenTypeBearer = "bearer"
)

// Handler обработчик HTTP-запросов аутентификации.
type Handler struct {
	authAPI api.AuthAPI
}

// NewHandler создает новый экземпляр обработчика аутентификации.
func NewHandler(authAPI api.AuthAPI) *Handler {
	return &Handler{authAPI: authAPI}
}

// Register обрабатывает запрос на регистрацию новой учетной записи.
func (h *Handler) Register(ctx fiber.Ctx) error {
	userCtx := requestContext(ctx)
	log := logger.Log(userCtx).With(zap.String("handler", "Handler.Register"))
	log.Debug(userCtx, LogHandlerRegister)

	var req dto.RegisterRequest
	if err := ctx.Bind().Body(&req); err != nil {
		log.Debug(userCtx, ErrMsgInvalidRequestBody, zap.Error(err))
		return sendJSON(ctx, fiber.StatusBadRequest, fiber.Map{"error": ErrMsgInvalidRequestBody})
	}

	user, err := h.authAPI.Register(userCtx, req.Email, req.Password, req.IsAdmin)
	if err != nil {
		log.Debug(userCtx, "registration rejected", zap.Error(err))
		return handleError(ctx, err)
	}

	return sendJSON(ctx, fiber.StatusCreated, dto.NewUserResponse(user))
}

// Login обрабатывает запрос на вход и выпуск токена доступа.
func (h *Handler) Login(ctx fiber.Ctx) error {
	userCtx := requestContext(ctx)
	log := logger.Log(userCtx).With(zap.String("handler", "Handler.Login"))
	log.Debug(userCtx, LogHandlerLogin)

	var req dto.LoginRequest
	if err := ctx.Bind().Body(&req); err != nil {
		log.Debug(userCtx, ErrMsgInvalidRequestBody, zap.Error(err))
		return sendJSON(ctx, fiber.StatusBadRequest, fiber.Map{"error": ErrMsgInvalidRequestBody})
	}

	token, expiresAt, err := h.authAPI.Login(userCtx, req.Email, req.Password)
	if err != nil {
		log.Debug(userCtx, "login rejected", zap.Error(err))
		return handleError(ctx, err)
	}

	return sendJSON(ctx, fiber.StatusOK, dto.TokenResponse{
		AccessToken: token,
		TokenType:   tokenTypeBearer,
		ExpiresAt:   expiresAt,
	})
}

// Profile возвращает учетную запись текущего субъекта.
func (h *Handler) Profile(ctx fiber.Ctx) error {
	userCtx := requestContext(ctx)
	log := logger.Log(userCtx).With(zap.String("handler", "Handler.Profile"))
	log.Debug(userCtx, LogHandlerProfile)

	user, ok := ctx.Locals(middleware.CurrentUserKey).(*entities.User)
	if !ok {
		return sendJSON(ctx, fiber.StatusUnauthorized, fiber.Map{"error": "unauthenticated"})
	}

	return sendJSON(ctx, fiber.StatusOK, dto.NewUserResponse(user))
}

// requestContext извлекает контекст запроса из Locals.
func requestContext(ctx fiber.Ctx) context.Context {
	if userCtx, ok := ctx.Locals(middleware.UserContextKey).(context.Context); ok {
		return userCtx
	}
	return ctx.Context()
}

// sendJSON отправляет ответ с указанным статусом.
func sendJSON(ctx fiber.Ctx, status int, body any) error {
	if err := ctx.Status(status).JSON(body); err != nil {
		return fmt.Errorf("error sending response: %w", err)
	}
	return nil
}

// handleError преобразует доменную ошибку в HTTP-статус.
func handleError(ctx fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, entities.ErrEmailAlreadyExists):
		return sendJSON(ctx, fiber.StatusConflict, fiber.Map{"error": entities.ErrEmailAlreadyExists.Error()})
	case errors.Is(err, entities.ErrInvalidEmail), errors.Is(err, entities.ErrPasswordTooShort):
		return sendJSON(ctx, fiber.StatusBadRequest, fiber.Map{"error": err.Error()})
	case errors.Is(err, entities.ErrInvalidCredentials), errors.Is(err, entities.ErrInvalidToken):
		return sendJSON(ctx, fiber.StatusUnauthorized, fiber.Map{"error": entities.ErrInvalidCredentials.Error()})
	default:
		return sendJSON(ctx, fiber.StatusInternalServerError, fiber.Map{"error": "internal server error"})
	}
}

// Package notes содержит HTTP-обработчики для управления заметками.
package notes

import (
	"context"
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"notevault/internal/adapters/http/dto"
	"notevault/internal/adapters/http/middleware"
	"notevault/internal/domain/entities"
	"notevault/internal/domain/policy"
	"notevault/internal/ports/api"
	"notevault/pkg/logger"
)

// Константы ошибок и сообщений для логирования.
const (
	LogHandlerCreateNote  = "handling create note request"
	LogHandlerGetNote     = "handling get note request"
	LogHandlerListNotes   = "handling list notes request"
	LogHandlerUpdateNote  = "handling update note request"
	LogHandlerDeleteNote  = "handling delete note request"
	LogHandlerRestoreNote = "handling restore note request"

	ErrMsgInvalidNoteID      = "invalid note id"
	ErrMsgInvalidRequestBody = "invalid request body"
	ErrMsgUnauthenticated    = "unauthenticated"
)

// Handler обработчик HTTP-запросов для работы с заметками.
type Handler struct {
	notesAPI api.NotesAPI
}

// NewHandler создает новый экземпляр обработчика заметок.
func NewHandler(notesAPI api.NotesAPI) *Handler {
	return &Handler{notesAPI: notesAPI}
}

// CreateNote обрабатывает запрос на создание новой заметки.
func (h *Handler) CreateNote(ctx fiber.Ctx) error {
	userCtx := requestContext(ctx)
	log := logger.Log(userCtx).With(zap.String("handler", "Handler.CreateNote"))
	log.Debug(userCtx, LogHandlerCreateNote)

	actor, ok := requestActor(ctx)
	if !ok {
		return sendJSON(ctx, fiber.StatusUnauthorized, fiber.Map{"error": ErrMsgUnauthenticated})
	}

	var req dto.CreateNoteRequest
	if err := ctx.Bind().Body(&req); err != nil {
		log.Debug(userCtx, ErrMsgInvalidRequestBody, zap.Error(err))
		return sendJSON(ctx, fiber.StatusBadRequest, fiber.Map{"error": ErrMsgInvalidRequestBody})
	}

	note, err := h.notesAPI.CreateNote(userCtx, actor, req.Title, req.Body)
	if err != nil {
		log.Debug(userCtx, "create note rejected", zap.Error(err))
		return handleError(ctx, err)
	}

	return sendJSON(ctx, fiber.StatusCreated, note)
}

// GetNote обрабатывает запрос на получение заметки по ID.
func (h *Handler) GetNote(ctx fiber.Ctx) error {
	userCtx := requestContext(ctx)
	log := logger.Log(userCtx).With(zap.String("handler", "Handler.GetNote"))
	log.Debug(userCtx, LogHandlerGetNote)

	actor, ok := requestActor(ctx)
	if !ok {
		return sendJSON(ctx, fiber.StatusUnauthorized, fiber.Map{"error": ErrMsgUnauthenticated})
	}

	noteID := ctx.Params("note_id")
	if noteID == "" {
		log.Debug(userCtx, ErrMsgInvalidNoteID)
		return sendJSON(ctx, fiber.StatusBadRequest, fiber.Map{"error": ErrMsgInvalidNoteID})
	}

	note, err := h.notesAPI.GetNote(userCtx, actor, noteID)
	if err != nil {
		log.Debug(userCtx, "get note rejected", zap.Error(err))
		return handleError(ctx, err)
	}

	return sendJSON(ctx, fiber.StatusOK, note)
}

// ListNotes обрабатывает запрос на получение списка заметок.
// Пустой список отдается статусом 204 без тела: это самостоятельный
// результат, а не отсутствие ресурса.
func (h *Handler) ListNotes(ctx fiber.Ctx) error {
	userCtx := requestContext(ctx)
	log := logger.Log(userCtx).With(zap.String("handler", "Handler.ListNotes"))
	log.Debug(userCtx, LogHandlerListNotes)

	actor, ok := requestActor(ctx)
	if !ok {
		return sendJSON(ctx, fiber.StatusUnauthorized, fiber.Map{"error": ErrMsgUnauthenticated})
	}

	requestedOwner := ctx.Query("owner_id", "")

	notes, err := h.notesAPI.ListNotes(userCtx, actor, requestedOwner)
	if err != nil {
		log.Debug(userCtx, "list notes rejected", zap.Error(err))
		return handleError(ctx, err)
	}

	if len(notes) == 0 {
		log.Debug(userCtx, "list is empty")
		return sendStatus(ctx, fiber.StatusNoContent)
	}

	return sendJSON(ctx, fiber.StatusOK, dto.ListNotesResponse{
		Notes:      notes,
		TotalCount: len(notes),
	})
}

// UpdateNote обрабатывает запрос на обновление заметки. PUT и PATCH
// разделяют семантику: применяются только переданные поля.
func (h *Handler) UpdateNote(ctx fiber.Ctx) error {
	userCtx := requestContext(ctx)
	log := logger.Log(userCtx).With(zap.String("handler", "Handler.UpdateNote"))
	log.Debug(userCtx, LogHandlerUpdateNote)

	actor, ok := requestActor(ctx)
	if !ok {
		return sendJSON(ctx, fiber.StatusUnauthorized, fiber.Map{"error": ErrMsgUnauthenticated})
	}

	noteID := ctx.Params("note_id")
	if noteID == "" {
		log.Debug(userCtx, ErrMsgInvalidNoteID)
		return sendJSON(ctx, fiber.StatusBadRequest, fiber.Map{"error": ErrMsgInvalidNoteID})
	}

	var req dto.UpdateNoteRequest
	if err := ctx.Bind().Body(&req); err != nil {
		log.Debug(userCtx, ErrMsgInvalidRequestBody, zap.Error(err))
		return sendJSON(ctx, fiber.StatusBadRequest, fiber.Map{"error": ErrMsgInvalidRequestBody})
	}

	note, err := h.notesAPI.UpdateNote(userCtx, actor, noteID, req.ToNoteUpdate())
	if err != nil {
		log.Debug(userCtx, "update note rejected", zap.Error(err))
		return handleError(ctx, err)
	}

	return sendJSON(ctx, fiber.StatusOK, note)
}

// DeleteNote обрабатывает запрос на мягкое удаление заметки.
func (h *Handler) DeleteNote(ctx fiber.Ctx) error {
	userCtx := requestContext(ctx)
	log := logger.Log(userCtx).With(zap.String("handler", "Handler.DeleteNote"))
	log.Debug(userCtx, LogHandlerDeleteNote)

	actor, ok := requestActor(ctx)
	if !ok {
		return sendJSON(ctx, fiber.StatusUnauthorized, fiber.Map{"error": ErrMsgUnauthenticated})
	}

	noteID := ctx.Params("note_id")
	if noteID == "" {
		log.Debug(userCtx, ErrMsgInvalidNoteID)
		return sendJSON(ctx, fiber.StatusBadRequest, fiber.Map{"error": ErrMsgInvalidNoteID})
	}

	if err := h.notesAPI.DeleteNote(userCtx, actor, noteID); err != nil {
		log.Debug(userCtx, "delete note rejected", zap.Error(err))
		return handleError(ctx, err)
	}

	return sendStatus(ctx, fiber.StatusNoContent)
}

// RestoreNote обрабатывает запрос на восстановление заметки из архива.
func (h *Handler) RestoreNote(ctx fiber.Ctx) error {
	userCtx := requestContext(ctx)
	log := logger.Log(userCtx).With(zap.String("handler", "Handler.RestoreNote"))
	log.Debug(userCtx, LogHandlerRestoreNote)

	actor, ok := requestActor(ctx)
	if !ok {
		return sendJSON(ctx, fiber.StatusUnauthorized, fiber.Map{"error": ErrMsgUnauthenticated})
	}

	noteID := ctx.Params("note_id")
	if noteID == "" {
		log.Debug(userCtx, ErrMsgInvalidNoteID)
		return sendJSON(ctx, fiber.StatusBadRequest, fiber.Map{"error": ErrMsgInvalidNoteID})
	}

	note, err := h.notesAPI.RestoreNote(userCtx, actor, noteID)
	if err != nil {
		log.Debug(userCtx, "restore note rejected", zap.Error(err))
		return handleError(ctx, err)
	}

	return sendJSON(ctx, fiber.StatusCreated, note)
}

// requestContext извлекает контекст запроса из Locals.
func requestContext(ctx fiber.Ctx) context.Context {
	if userCtx, ok := ctx.Locals(middleware.UserContextKey).(context.Context); ok {
		return userCtx
	}
	return ctx.Context()
}

// requestActor извлекает субъекта запроса, разрешенного промежуточным ПО.
func requestActor(ctx fiber.Ctx) (policy.Actor, bool) {
	actor, ok := ctx.Locals(middleware.ActorKey).(policy.Actor)
	return actor, ok
}

// sendJSON отправляет ответ с указанным статусом.
func sendJSON(ctx fiber.Ctx, status int, body any) error {
	if err := ctx.Status(status).JSON(body); err != nil {
		return fmt.Errorf("error sending response: %w", err)
	}
	return nil
}

// sendStatus отправляет ответ без тела.
func sendStatus(ctx fiber.Ctx, status int) error {
	if err := ctx.SendStatus(status); err != nil {
		return fmt.Errorf("error sending response: %w", err)
	}
	return nil
}

// handleError преобразует доменную ошибку в HTTP-статус.
// "Запрещено" и "не найдено" никогда не смешиваются.
func handleError(ctx fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, entities.ErrAccessDenied):
		return sendJSON(ctx, fiber.StatusForbidden, fiber.Map{"error": entities.ErrAccessDenied.Error()})
	case errors.Is(err, entities.ErrNoteNotFound):
		return sendJSON(ctx, fiber.StatusNotFound, fiber.Map{"error": entities.ErrNoteNotFound.Error()})
	case errors.Is(err, entities.ErrEmptyUpdate),
		errors.Is(err, entities.ErrEmptyTitle),
		errors.Is(err, entities.ErrTitleTooLong),
		errors.Is(err, entities.ErrBodyTooLong):
		return sendJSON(ctx, fiber.StatusBadRequest, fiber.Map{"error": err.Error()})
	case errors.Is(err, entities.ErrInvalidToken):
		return sendJSON(ctx, fiber.StatusUnauthorized, fiber.Map{"error": entities.ErrInvalidToken.Error()})
	default:
		return sendJSON(ctx, fiber.StatusInternalServerError, fiber.Map{"error": "internal server error"})
	}
}

package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/shopkhata/billing-service/internal/entities"
	"github.com/shopkhata/billing-service/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
)

type NoteService interface {
	CreateNote(ctx context.Context, note entities.StickyNote) (entities.StickyNote, error)
	NotesByUser(ctx context.Context, userID string) ([]entities.StickyNote, error)
	UpdateNote(ctx context.Context, note entities.StickyNote) (entities.StickyNote, error)
	DeleteNote(ctx context.Context, id, userID string) error
}

type NoteHandler struct {
	logger   *slog.Logger
	validate *validator.Validate
	svc      NoteService
}

func NewNoteHandler(logger *slog.Logger, svc NoteService) *NoteHandler {
	return &NoteHandler{
		logger:   logger.With(slog.String("handler", "sticky_notes")),
		validate: validator.New(),
		svc:      svc,
	}
}

func (h *NoteHandler) Init(r chi.Router) {
	r.Post("/sticky-notes", h.CreateNote)
	r.Get("/sticky-notes", h.NotesByUser)
	r.Put("/sticky-notes", h.UpdateNote)
	r.Delete("/sticky-notes", h.DeleteNote)
}

// CreateNote создаёт черновик заказа.
// @Summary      Создать черновик
// @Description  Создаёт черновик заказа, пустые позиции отбрасываются молча
// @Tags         sticky-notes
// @Accept       json
// @Param        request  body  CreateNoteRequest  true  "Данные черновика"
// @Success      201  {object}  StickyNote
// @Failure      400  {object}  utils.ErrorResponse "Нет ни одной валидной позиции"
// @Failure      500  {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /sticky-notes [post]
func (h *NoteHandler) CreateNote(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req CreateNoteRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	note, err := h.svc.CreateNote(ctx, entities.StickyNote{
		UserID:       req.UserID,
		CustomerID:   req.CustomerID,
		CustomerName: req.CustomerName,
		ShopName:     req.ShopName,
		Items:        NoteItemsJSONToEntity(req.Items),
	})

	if errors.Is(err, entities.ErrNoValidItems) {
		utils.WriteError(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to create sticky note", slog.Any("error", err), slog.String("user_id", req.UserID))
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	notesCreated.Inc()
	utils.WriteJSON(w, NoteEntityToJSON(note), http.StatusCreated)
}

// NotesByUser возвращает черновики пользователя.
// @Summary      Список черновиков
// @Description  Возвращает черновики пользователя, свежие первыми
// @Tags         sticky-notes
// @Param        userId  query  string  true  "Идентификатор пользователя"
// @Success      200  {array}   StickyNote
// @Failure      400  {object}  utils.ValidationErrorResponse "Ошибка валидации"
// @Failure      500  {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /sticky-notes [get]
func (h *NoteHandler) NotesByUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID := r.URL.Query().Get("userId")

	if err := h.validate.Var(userID, "required"); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	notes, err := h.svc.NotesByUser(ctx, userID)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to list sticky notes", slog.Any("error", err), slog.String("user_id", userID))
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	result := make([]StickyNote, 0, len(notes))
	for _, n := range notes {
		result = append(result, NoteEntityToJSON(n))
	}
	utils.WriteJSON(w, result, http.StatusOK)
}

// UpdateNote обновляет черновик целиком.
// @Summary      Обновить черновик
// @Description  Полностью заменяет содержимое черновика, позиции перезаписываются
// @Tags         sticky-notes
// @Accept       json
// @Param        request  body  UpdateNoteRequest  true  "Новое содержимое черновика"
// @Success      200  {object}  StickyNote
// @Failure      400  {object}  utils.ErrorResponse "Нет ни одной валидной позиции"
// @Failure      404  {object}  utils.ErrorResponse "Черновик не найден"
// @Failure      500  {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /sticky-notes [put]
func (h *NoteHandler) UpdateNote(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req UpdateNoteRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	note, err := h.svc.UpdateNote(ctx, entities.StickyNote{
		ID:           req.ID,
		UserID:       req.UserID,
		CustomerID:   req.CustomerID,
		CustomerName: req.CustomerName,
		ShopName:     req.ShopName,
		Items:        NoteItemsJSONToEntity(req.Items),
	})

	switch {
	case errors.Is(err, entities.ErrNoValidItems):
		utils.WriteError(w, err.Error(), http.StatusBadRequest)
		return
	case errors.Is(err, entities.ErrNoteNotFound):
		utils.WriteError(w, err.Error(), http.StatusNotFound)
		return
	case err != nil:
		h.logger.ErrorContext(ctx, "failed to update sticky note", slog.Any("error", err), slog.String("note_id", req.ID))
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, NoteEntityToJSON(note), http.StatusOK)
}

// DeleteNote удаляет черновик.
// @Summary      Удалить черновик
// @Description  Удаляет черновик пользователя вместе с позициями
// @Tags         sticky-notes
// @Accept       json
// @Param        request  body  DeleteNoteRequest  true  "Идентификаторы черновика и пользователя"
// @Success      200  {object}  DeleteNoteResponse
// @Failure      404  {object}  utils.ErrorResponse "Черновик не найден"
// @Failure      500  {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /sticky-notes [delete]
func (h *NoteHandler) DeleteNote(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req DeleteNoteRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	err := h.svc.DeleteNote(ctx, req.ID, req.UserID)

	if errors.Is(err, entities.ErrNoteNotFound) {
		utils.WriteError(w, err.Error(), http.StatusNotFound)
		return
	}
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to delete sticky note", slog.Any("error", err), slog.String("note_id", req.ID))
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, DeleteNoteResponse{Success: true, ID: req.ID}, http.StatusOK)
}

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

type PartnerService interface {
	UpdatePartner(ctx context.Context, upd entities.PartnerUpdate) (entities.DeliveryPartner, error)
	DeletePartner(ctx context.Context, partnerID string, id entities.PartnerIdentity) (string, error)
}

type PartnerHandler struct {
	logger   *slog.Logger
	validate *validator.Validate
	svc      PartnerService
}

func NewPartnerHandler(logger *slog.Logger, svc PartnerService) *PartnerHandler {
	return &PartnerHandler{
		logger:   logger.With(slog.String("handler", "delivery_partners")),
		validate: validator.New(),
		svc:      svc,
	}
}

func (h *PartnerHandler) Init(r chi.Router) {
	r.Patch("/delivery/update", h.UpdatePartner)
	r.Delete("/delivery/delete", h.DeletePartner)
}

// UpdatePartner изменяет партнёра доставки.
// @Summary      Изменить партнёра доставки
// @Description  Обновляет партнёра, запрос должен пройти хотя бы одно правило авторизации
// @Tags         delivery
// @Accept       json
// @Param        request  body  UpdatePartnerRequest  true  "Изменяемые поля и идентификация запрашивающего"
// @Success      200  {object}  UpdatePartnerResponse
// @Failure      400  {object}  utils.ErrorResponse "Неверный статус или нет идентификации"
// @Failure      403  {object}  utils.ErrorResponse "Недостаточно прав"
// @Failure      404  {object}  utils.ErrorResponse "Партнёр не найден"
// @Failure      409  {object}  utils.ErrorResponse "Email уже занят"
// @Failure      500  {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /delivery/update [patch]
func (h *PartnerHandler) UpdatePartner(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req UpdatePartnerRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	identity := entities.PartnerIdentity{
		UserID:  req.UserID,
		AdminID: req.AdminID,
	}
	if req.AdminEmail != nil {
		identity.AdminEmail = *req.AdminEmail
	}

	partner, err := h.svc.UpdatePartner(ctx, entities.PartnerUpdate{
		PartnerID:  req.PartnerID,
		Identity:   identity,
		Name:       req.Name,
		Email:      req.Email,
		Phone:      req.Phone,
		Status:     req.Status,
		AdminEmail: req.AdminEmail,
	})
	if err != nil {
		h.writePartnerError(ctx, w, err, req.PartnerID)
		return
	}

	utils.WriteJSON(w, UpdatePartnerResponse{
		Message: "Partner updated",
		Partner: PartnerEntityToJSON(partner),
	}, http.StatusOK)
}

// DeletePartner удаляет партнёра доставки.
// @Summary      Удалить партнёра доставки
// @Description  Удаляет партнёра, правила авторизации те же, что и при изменении
// @Tags         delivery
// @Accept       json
// @Param        request  body  DeletePartnerRequest  true  "Идентификатор партнёра и идентификация запрашивающего"
// @Success      200  {object}  DeletePartnerResponse
// @Failure      400  {object}  utils.ErrorResponse "Нет идентификации"
// @Failure      403  {object}  utils.ErrorResponse "Недостаточно прав"
// @Failure      404  {object}  utils.ErrorResponse "Партнёр не найден"
// @Failure      500  {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /delivery/delete [delete]
func (h *PartnerHandler) DeletePartner(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req DeletePartnerRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	partnerID, err := h.svc.DeletePartner(ctx, req.PartnerID, entities.PartnerIdentity{
		UserID:     req.UserID,
		AdminID:    req.AdminID,
		AdminEmail: req.AdminEmail,
	})
	if err != nil {
		h.writePartnerError(ctx, w, err, req.PartnerID)
		return
	}

	utils.WriteJSON(w, DeletePartnerResponse{
		Message:   "Partner deleted",
		PartnerID: partnerID,
	}, http.StatusOK)
}

func (h *PartnerHandler) writePartnerError(ctx context.Context, w http.ResponseWriter, err error, partnerID string) {
	switch {
	case errors.Is(err, entities.ErrPartnerNotFound):
		utils.WriteError(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, entities.ErrIdentityRequired), errors.Is(err, entities.ErrInvalidPartnerStatus):
		utils.WriteError(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, entities.ErrNotAuthorized), errors.Is(err, entities.ErrAdminEmailForbidden):
		utils.WriteError(w, err.Error(), http.StatusForbidden)
	case errors.Is(err, entities.ErrPartnerEmailTaken):
		utils.WriteError(w, err.Error(), http.StatusConflict)
	default:
		h.logger.ErrorContext(ctx, "delivery partner operation failed", slog.Any("error", err), slog.String("partner_id", partnerID))
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
	}
}

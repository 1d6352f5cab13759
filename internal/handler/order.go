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

type OrderService interface {
	CreateOrder(ctx context.Context, order entities.Order) (entities.Order, error)
	OrdersByUser(ctx context.Context, userID, status string) ([]entities.Order, error)
	OrderByID(ctx context.Context, orderID, userID string) (entities.Order, error)
	SettleOrder(ctx context.Context, orderID, userID, method string, amount float64) (entities.Order, error)
	DiscardOrder(ctx context.Context, orderID, userID string) (entities.Order, error)
}

type OrderHandler struct {
	logger   *slog.Logger
	validate *validator.Validate
	svc      OrderService
}

func NewOrderHandler(logger *slog.Logger, svc OrderService) *OrderHandler {
	return &OrderHandler{
		logger:   logger.With(slog.String("handler", "orders")),
		validate: validator.New(),
		svc:      svc,
	}
}

func (h *OrderHandler) Init(r chi.Router) {
	r.Post("/orders", h.CreateOrder)
	r.Get("/orders", h.OrdersByUser)
	r.Get("/orders/{order_id}", h.OrderByID)
	r.Patch("/orders", h.UpdateOrder)
}

// CreateOrder создаёт заказ со списанием остатков.
// @Summary      Создать заказ
// @Description  Создаёт заказ, списывает остатки со склада и увеличивает долг покупателя
// @Tags         orders
// @Accept       json
// @Param        request  body  CreateOrderRequest  true  "Данные заказа"
// @Success      201  {object}  OrderResponse
// @Failure      400  {object}  utils.ValidationErrorResponse "Ошибка валидации"
// @Failure      500  {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /orders [post]
func (h *OrderHandler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req CreateOrderRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	order, err := h.svc.CreateOrder(ctx, CreateOrderRequestToEntity(req))
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to create order", slog.Any("error", err), slog.String("order_id", req.OrderID))
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	ordersCreated.Inc()
	utils.WriteJSON(w, OrderResponse{Success: true, Order: OrderEntityToJSON(order)}, http.StatusCreated)
}

// OrdersByUser возвращает заказы пользователя.
// @Summary      Список заказов
// @Description  Возвращает заказы пользователя, свежие первыми, с необязательным фильтром по статусу
// @Tags         orders
// @Param        userId  query  string  true   "Идентификатор пользователя"
// @Param        status  query  string  false  "Фильтр по статусу (Unsettled или settled)"
// @Success      200  {array}   Order
// @Failure      400  {object}  utils.ValidationErrorResponse "Ошибка валидации"
// @Failure      500  {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /orders [get]
func (h *OrderHandler) OrdersByUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID := r.URL.Query().Get("userId")
	status := r.URL.Query().Get("status")

	if err := h.validate.Var(userID, "required"); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	orders, err := h.svc.OrdersByUser(ctx, userID, status)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to list orders", slog.Any("error", err), slog.String("user_id", userID))
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	result := make([]Order, 0, len(orders))
	for _, o := range orders {
		result = append(result, OrderEntityToJSON(o))
	}
	utils.WriteJSON(w, result, http.StatusOK)
}

// OrderByID возвращает заказ по ID.
// @Summary      Получить заказ
// @Description  Возвращает заказ пользователя по идентификатору
// @Tags         orders
// @Param        order_id  path   string  true  "Идентификатор заказа"
// @Param        userId    query  string  true  "Идентификатор пользователя"
// @Success      200  {object}  Order
// @Failure      400  {object}  utils.ValidationErrorResponse "Ошибка валидации"
// @Failure      404  {object}  utils.ErrorResponse "Заказ не найден"
// @Failure      500  {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /orders/{order_id} [get]
func (h *OrderHandler) OrderByID(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	orderID := chi.URLParam(r, "order_id")
	userID := r.URL.Query().Get("userId")

	if err := h.validate.Var(orderID, "required"); err != nil {
		utils.WriteValidationError(w, err)
		return
	}
	if err := h.validate.Var(userID, "required"); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	order, err := h.svc.OrderByID(ctx, orderID, userID)

	if errors.Is(err, entities.ErrOrderNotFound) {
		utils.WriteError(w, "order not found", http.StatusNotFound)
		return
	}

	if err != nil {
		h.logger.ErrorContext(ctx, "failed to get order", slog.Any("error", err), slog.String("order_id", orderID))
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, OrderEntityToJSON(order), http.StatusOK)
}

// UpdateOrder закрывает или отменяет заказ.
// @Summary      Рассчитать или отменить заказ
// @Description  Закрывает заказ с оплатой (settle) или отменяет его с возвратом остатков (discard)
// @Tags         orders
// @Accept       json
// @Param        request  body  UpdateOrderRequest  true  "Действие над заказом"
// @Success      200  {object}  OrderResponse
// @Failure      400  {object}  utils.ErrorResponse "Заказ уже закрыт или неверный способ оплаты"
// @Failure      404  {object}  utils.ErrorResponse "Заказ не найден"
// @Failure      500  {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /orders [patch]
func (h *OrderHandler) UpdateOrder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req UpdateOrderRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	var (
		order entities.Order
		err   error
	)
	switch req.Action {
	case "settle":
		order, err = h.svc.SettleOrder(ctx, req.OrderID, req.UserID, req.Method, req.Amount)
	case "discard":
		order, err = h.svc.DiscardOrder(ctx, req.OrderID, req.UserID)
	}

	switch {
	case errors.Is(err, entities.ErrOrderNotFound):
		utils.WriteError(w, "order not found", http.StatusNotFound)
		return
	case errors.Is(err, entities.ErrOrderSettled):
		utils.WriteError(w, err.Error(), http.StatusBadRequest)
		return
	case errors.Is(err, entities.ErrInvalidSettlementMethod):
		utils.WriteError(w, err.Error(), http.StatusBadRequest)
		return
	case err != nil:
		h.logger.ErrorContext(ctx, "failed to update order",
			slog.Any("error", err),
			slog.String("order_id", req.OrderID),
			slog.String("action", req.Action),
		)
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	if req.Action == "settle" {
		ordersSettled.Inc()
	} else {
		ordersDiscarded.Inc()
	}
	utils.WriteJSON(w, OrderResponse{Success: true, Order: OrderEntityToJSON(order)}, http.StatusOK)
}

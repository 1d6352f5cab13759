package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/shopkhata/billing-service/internal/entities"
	"github.com/shopkhata/billing-service/pkg/trm"
	"github.com/shopkhata/billing-service/pkg/utils"
)

type OrderRepo interface {
	SaveOrder(ctx context.Context, o entities.Order) error
	OrderByID(ctx context.Context, orderID, userID string) (entities.Order, error)
	OrdersByUser(ctx context.Context, userID, status string) ([]entities.Order, error)
	ApplySettlement(ctx context.Context, o entities.Order, entry entities.SettlementEntry) error

	// Инкременты атомарны на уровне строки, несуществующие строки молча пропускаются
	AdjustStock(ctx context.Context, productID, userID string, delta float64) error
	AdjustCustomerBalance(ctx context.Context, customerID string, debit, credit, sales float64) error
	CustomerBalance(ctx context.Context, customerID string) (entities.CustomerBalance, error)
}

type Cache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte)
	Remove(key string)
}

type Publisher interface {
	Publish(ctx context.Context, event entities.OrderEvent) error
}

type orderService struct {
	logger    *slog.Logger
	txManager trm.Manager
	repo      OrderRepo
	cache     Cache
	publisher Publisher
}

func NewOrderService(logger *slog.Logger, txManager trm.Manager, repo OrderRepo, cache Cache, publisher Publisher) *orderService {
	return &orderService{
		logger:    logger.With(slog.String("service", "order")),
		txManager: txManager,
		repo:      repo,
		cache:     cache,
		publisher: publisher,
	}
}

// CreateOrder создаёт заказ, списывает остатки и увеличивает долг покупателя.
// Все записи идут в одной транзакции: частично применённый заказ
// (списанный склад без записанного счёта) невозможен.
func (s *orderService) CreateOrder(ctx context.Context, order entities.Order) (entities.Order, error) {
	now := time.Now()
	order.Status = entities.StatusUnsettled
	order.CreatedAt = now
	order.SettlementMethod = ""
	order.SettlementAmount = 0
	order.SettledAt = time.Time{}
	order.DiscardedAt = time.Time{}
	order.SettlementHistory = []entities.SettlementEntry{{
		Action: entities.ActionCreated,
		At:     now,
	}}

	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		if err := s.repo.SaveOrder(ctx, order); err != nil {
			return fmt.Errorf("failed to save order: %w", err)
		}

		for _, it := range order.StockMovements() {
			if err := s.repo.AdjustStock(ctx, it.ProductID, order.UserID, -it.Quantity); err != nil {
				return fmt.Errorf("failed to decrease stock: %w", err)
			}
		}

		if order.CustomerID != "" && order.Total > 0 {
			if err := s.repo.AdjustCustomerBalance(ctx, order.CustomerID, order.Total, 0, order.Total); err != nil {
				return fmt.Errorf("failed to increase customer debit: %w", err)
			}
		}

		return nil
	})
	if err != nil {
		return entities.Order{}, err
	}

	s.logger.Debug("order created", "order_id", order.OrderID, "user_id", order.UserID)
	s.publish(ctx, entities.OrderEvent{
		Type:    entities.EventOrderCreated,
		OrderID: order.OrderID,
		UserID:  order.UserID,
		Amount:  order.Total,
		At:      now,
	})

	return order, nil
}

// OrdersByUser возвращает заказы пользователя, свежие первыми.
// Фильтр по статусу применяется только для известных значений,
// всё остальное игнорируется, а не отклоняется.
func (s *orderService) OrdersByUser(ctx context.Context, userID, status string) ([]entities.Order, error) {
	if status != entities.StatusUnsettled && status != entities.StatusSettled {
		status = ""
	}
	return s.repo.OrdersByUser(ctx, userID, status)
}

func (s *orderService) OrderByID(ctx context.Context, orderID, userID string) (entities.Order, error) {
	key := cacheKey(userID, orderID)
	if data, ok := s.cache.Get(key); ok {
		var order entities.Order
		if err := order.Unmarshal(data); err != nil {
			s.logger.Error("failed to unmarshal cached order", slog.Any("error", err))
			return entities.Order{}, err
		}
		return order, nil
	}

	var order entities.Order
	fn := func() error {
		var err error
		order, err = s.repo.OrderByID(ctx, orderID, userID)
		return err
	}
	cfg := utils.RetryConfig{
		InitialDelay: 100 * time.Millisecond,
		MaxAttempts:  5,
		Multiplier:   2,
	}
	if err := utils.Retry(cfg, fn, entities.ErrOrderNotFound); err != nil {
		return entities.Order{}, err
	}

	data, err := order.Marshal()
	if err != nil {
		s.logger.Error("failed to marshal order", slog.Any("error", err))
		return entities.Order{}, err
	}
	s.cache.Set(key, data)
	return order, nil
}

// SettleOrder закрывает заказ с указанием способа оплаты.
// Debt оставляет долг как есть; Cash и Bank/UPI гасят долг, а переплата
// уходит в кредит покупателя.
func (s *orderService) SettleOrder(ctx context.Context, orderID, userID, method string, amount float64) (entities.Order, error) {
	if method != entities.MethodCash && method != entities.MethodBankUPI && method != entities.MethodDebt {
		return entities.Order{}, entities.ErrInvalidSettlementMethod
	}

	order, err := s.repo.OrderByID(ctx, orderID, userID)
	if err != nil {
		return entities.Order{}, err
	}
	if order.Status != entities.StatusUnsettled {
		return entities.Order{}, entities.ErrOrderSettled
	}

	payAmount := 0.0
	if method != entities.MethodDebt {
		payAmount = math.Max(0, amount)
	}

	now := time.Now()
	entry := entities.SettlementEntry{
		Action:     entities.ActionSettled,
		Method:     method,
		AmountPaid: payAmount,
		At:         now,
	}

	err = s.txManager.Do(ctx, func(ctx context.Context) error {
		if method != entities.MethodDebt && payAmount > 0 && order.CustomerID != "" {
			if err := s.applyPayment(ctx, order.CustomerID, payAmount); err != nil {
				return err
			}
		}

		order.Status = entities.StatusSettled
		order.SettlementMethod = method
		order.SettlementAmount = payAmount
		order.SettledAt = now
		order.SettlementHistory = append(order.SettlementHistory, entry)

		return s.repo.ApplySettlement(ctx, order, entry)
	})
	if err != nil {
		return entities.Order{}, err
	}

	s.cache.Remove(cacheKey(userID, orderID))
	s.logger.Debug("order settled", "order_id", orderID, "method", method, "amount", payAmount)
	s.publish(ctx, entities.OrderEvent{
		Type:    entities.EventOrderSettled,
		OrderID: orderID,
		UserID:  userID,
		Method:  method,
		Amount:  payAmount,
		At:      now,
	})

	return order, nil
}

// applyPayment гасит долг покупателя. Платёж сначала закрывает debit,
// остаток становится предоплатой (credit).
func (s *orderService) applyPayment(ctx context.Context, customerID string, payAmount float64) error {
	balance, err := s.repo.CustomerBalance(ctx, customerID)
	if errors.Is(err, entities.ErrCustomerNotFound) {
		// покупатель удалён, применять платёж некуда
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to get customer balance: %w", err)
	}

	debitDelta, creditDelta := paymentDeltas(balance.Debit, payAmount)
	if err := s.repo.AdjustCustomerBalance(ctx, customerID, debitDelta, creditDelta, 0); err != nil {
		return fmt.Errorf("failed to apply payment: %w", err)
	}
	return nil
}

func paymentDeltas(debit, payAmount float64) (debitDelta, creditDelta float64) {
	if debit-payAmount >= 0 {
		return -payAmount, 0
	}
	return -debit, payAmount - debit
}

// DiscardOrder отменяет заказ: возвращает остатки на склад, снимает долг
// и закрывает заказ. Все изменения в одной транзакции.
func (s *orderService) DiscardOrder(ctx context.Context, orderID, userID string) (entities.Order, error) {
	order, err := s.repo.OrderByID(ctx, orderID, userID)
	if err != nil {
		return entities.Order{}, err
	}
	if order.Status != entities.StatusUnsettled {
		return entities.Order{}, entities.ErrOrderSettled
	}

	now := time.Now()
	entry := entities.SettlementEntry{
		Action:     entities.ActionDiscarded,
		AmountPaid: 0,
		At:         now,
	}

	err = s.txManager.Do(ctx, func(ctx context.Context) error {
		for _, it := range order.StockMovements() {
			if err := s.repo.AdjustStock(ctx, it.ProductID, order.UserID, it.Quantity); err != nil {
				return fmt.Errorf("failed to restore stock: %w", err)
			}
		}

		if order.CustomerID != "" && order.Total > 0 {
			if err := s.repo.AdjustCustomerBalance(ctx, order.CustomerID, -order.Total, 0, -order.Total); err != nil {
				return fmt.Errorf("failed to revert customer debit: %w", err)
			}
		}

		order.Status = entities.StatusSettled
		order.DiscardedAt = now
		order.SettlementMethod = ""
		order.SettlementAmount = 0
		order.SettledAt = time.Time{}
		order.SettlementHistory = append(order.SettlementHistory, entry)

		return s.repo.ApplySettlement(ctx, order, entry)
	})
	if err != nil {
		return entities.Order{}, err
	}

	s.cache.Remove(cacheKey(userID, orderID))
	s.logger.Debug("order discarded", "order_id", orderID, "user_id", userID)
	s.publish(ctx, entities.OrderEvent{
		Type:    entities.EventOrderDiscarded,
		OrderID: orderID,
		UserID:  userID,
		At:      now,
	})

	return order, nil
}

// publish отправляет событие best-effort: доставка событий не должна
// ломать уже зафиксированный заказ.
func (s *orderService) publish(ctx context.Context, event entities.OrderEvent) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.Publish(ctx, event); err != nil {
		s.logger.Warn("failed to publish order event",
			slog.String("type", event.Type),
			slog.String("order_id", event.OrderID),
			slog.Any("error", err),
		)
	}
}

func cacheKey(userID, orderID string) string {
	return userID + ":" + orderID
}

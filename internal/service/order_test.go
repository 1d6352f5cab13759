package service_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/shopkhata/billing-service/internal/entities"
	"github.com/shopkhata/billing-service/internal/service"
	mocks "github.com/shopkhata/billing-service/internal/service/mocks"
	txMocks "github.com/shopkhata/billing-service/pkg/trm/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type orderService interface {
	CreateOrder(ctx context.Context, order entities.Order) (entities.Order, error)
	OrdersByUser(ctx context.Context, userID, status string) ([]entities.Order, error)
	OrderByID(ctx context.Context, orderID, userID string) (entities.Order, error)
	SettleOrder(ctx context.Context, orderID, userID, method string, amount float64) (entities.Order, error)
	DiscardOrder(ctx context.Context, orderID, userID string) (entities.Order, error)
}

func newOrderService(t *testing.T) (*mocks.MockOrderRepo, *mocks.MockCache, *mocks.MockPublisher, *txMocks.MockManager, orderService) {
	t.Helper()
	orderRepo := mocks.NewMockOrderRepo(t)
	cache := mocks.NewMockCache(t)
	publisher := mocks.NewMockPublisher(t)
	tx := txMocks.NewMockManager(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	svc := service.NewOrderService(logger, tx, orderRepo, cache, publisher)
	return orderRepo, cache, publisher, tx, svc
}

func passthroughTx(tx *txMocks.MockManager) {
	tx.EXPECT().
		Do(mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, cb func(ctx context.Context) error) error {
			return cb(ctx)
		}).Maybe()
}

func TestOrderService_CreateOrder(t *testing.T) {
	dbError := errors.New("db error")

	baseOrder := entities.Order{
		OrderID:    "ord-1",
		UserID:     "user-1",
		CustomerID: "cust-1",
		Total:      250,
		Items: []entities.OrderItem{
			{ProductID: "p1", ProductName: "Rice", Quantity: 2, Unit: "kg"},
			{ProductName: "Custom item", Quantity: 1, Unit: "piece"},
		},
		FreeItems: []entities.OrderItem{
			{ProductID: "p2", ProductName: "Sample", Quantity: 1, Unit: "piece"},
		},
	}

	testCases := []struct {
		name         string
		order        entities.Order
		mockBehavior func(orderRepo *mocks.MockOrderRepo, publisher *mocks.MockPublisher)
		wantErr      error
	}{
		{
			name:  "OK, stock decreased only for linked items",
			order: baseOrder,
			mockBehavior: func(orderRepo *mocks.MockOrderRepo, publisher *mocks.MockPublisher) {
				orderRepo.EXPECT().SaveOrder(mock.Anything, mock.Anything).Return(nil)
				// позиция без productId склад не трогает
				orderRepo.EXPECT().AdjustStock(mock.Anything, "p1", "user-1", -2.0).Return(nil).Once()
				orderRepo.EXPECT().AdjustStock(mock.Anything, "p2", "user-1", -1.0).Return(nil).Once()
				orderRepo.EXPECT().AdjustCustomerBalance(mock.Anything, "cust-1", 250.0, 0.0, 250.0).Return(nil)
				publisher.EXPECT().Publish(mock.Anything, mock.Anything).Return(nil)
			},
		},
		{
			name: "no customer, balance untouched",
			order: entities.Order{
				OrderID: "ord-2",
				UserID:  "user-1",
				Total:   100,
				Items:   []entities.OrderItem{{ProductID: "p1", ProductName: "Rice", Quantity: 1, Unit: "kg"}},
			},
			mockBehavior: func(orderRepo *mocks.MockOrderRepo, publisher *mocks.MockPublisher) {
				orderRepo.EXPECT().SaveOrder(mock.Anything, mock.Anything).Return(nil)
				orderRepo.EXPECT().AdjustStock(mock.Anything, "p1", "user-1", -1.0).Return(nil)
				publisher.EXPECT().Publish(mock.Anything, mock.Anything).Return(nil)
			},
		},
		{
			name:  "SaveOrder fails, nothing published",
			order: baseOrder,
			mockBehavior: func(orderRepo *mocks.MockOrderRepo, publisher *mocks.MockPublisher) {
				orderRepo.EXPECT().SaveOrder(mock.Anything, mock.Anything).Return(dbError)
			},
			wantErr: dbError,
		},
		{
			name:  "AdjustStock fails",
			order: baseOrder,
			mockBehavior: func(orderRepo *mocks.MockOrderRepo, publisher *mocks.MockPublisher) {
				orderRepo.EXPECT().SaveOrder(mock.Anything, mock.Anything).Return(nil)
				orderRepo.EXPECT().AdjustStock(mock.Anything, "p1", "user-1", -2.0).Return(dbError)
			},
			wantErr: dbError,
		},
		{
			name:  "publish failure does not fail the order",
			order: baseOrder,
			mockBehavior: func(orderRepo *mocks.MockOrderRepo, publisher *mocks.MockPublisher) {
				orderRepo.EXPECT().SaveOrder(mock.Anything, mock.Anything).Return(nil)
				orderRepo.EXPECT().AdjustStock(mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil)
				orderRepo.EXPECT().AdjustCustomerBalance(mock.Anything, "cust-1", 250.0, 0.0, 250.0).Return(nil)
				publisher.EXPECT().Publish(mock.Anything, mock.Anything).Return(errors.New("kafka down"))
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			orderRepo, _, publisher, tx, svc := newOrderService(t)
			passthroughTx(tx)
			tc.mockBehavior(orderRepo, publisher)

			got, err := svc.CreateOrder(context.Background(), tc.order)

			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, entities.StatusUnsettled, got.Status)
			require.Len(t, got.SettlementHistory, 1)
			assert.Equal(t, entities.ActionCreated, got.SettlementHistory[0].Action)
		})
	}
}

func TestOrderService_SettleOrder(t *testing.T) {
	unsettled := entities.Order{
		OrderID:    "ord-1",
		UserID:     "user-1",
		CustomerID: "cust-1",
		Total:      100,
		Status:     entities.StatusUnsettled,
	}

	testCases := []struct {
		name         string
		method       string
		amount       float64
		mockBehavior func(orderRepo *mocks.MockOrderRepo, cache *mocks.MockCache, publisher *mocks.MockPublisher)
		wantErr      error
		wantAmount   float64
	}{
		{
			name:   "cash payment within debit",
			method: entities.MethodCash,
			amount: 100,
			mockBehavior: func(orderRepo *mocks.MockOrderRepo, cache *mocks.MockCache, publisher *mocks.MockPublisher) {
				orderRepo.EXPECT().OrderByID(mock.Anything, "ord-1", "user-1").Return(unsettled, nil)
				orderRepo.EXPECT().CustomerBalance(mock.Anything, "cust-1").
					Return(entities.CustomerBalance{CustomerID: "cust-1", Debit: 150}, nil)
				orderRepo.EXPECT().AdjustCustomerBalance(mock.Anything, "cust-1", -100.0, 0.0, 0.0).Return(nil)
				orderRepo.EXPECT().ApplySettlement(mock.Anything, mock.Anything, mock.Anything).Return(nil)
				cache.EXPECT().Remove("user-1:ord-1").Return()
				publisher.EXPECT().Publish(mock.Anything, mock.Anything).Return(nil)
			},
			wantAmount: 100,
		},
		{
			name:   "overpayment becomes credit",
			method: entities.MethodBankUPI,
			amount: 150,
			mockBehavior: func(orderRepo *mocks.MockOrderRepo, cache *mocks.MockCache, publisher *mocks.MockPublisher) {
				orderRepo.EXPECT().OrderByID(mock.Anything, "ord-1", "user-1").Return(unsettled, nil)
				orderRepo.EXPECT().CustomerBalance(mock.Anything, "cust-1").
					Return(entities.CustomerBalance{CustomerID: "cust-1", Debit: 100}, nil)
				// долг гасится полностью, излишек уходит в credit
				orderRepo.EXPECT().AdjustCustomerBalance(mock.Anything, "cust-1", -100.0, 50.0, 0.0).Return(nil)
				orderRepo.EXPECT().ApplySettlement(mock.Anything, mock.Anything, mock.Anything).Return(nil)
				cache.EXPECT().Remove("user-1:ord-1").Return()
				publisher.EXPECT().Publish(mock.Anything, mock.Anything).Return(nil)
			},
			wantAmount: 150,
		},
		{
			name:   "debt keeps debit untouched",
			method: entities.MethodDebt,
			amount: 500,
			mockBehavior: func(orderRepo *mocks.MockOrderRepo, cache *mocks.MockCache, publisher *mocks.MockPublisher) {
				orderRepo.EXPECT().OrderByID(mock.Anything, "ord-1", "user-1").Return(unsettled, nil)
				orderRepo.EXPECT().ApplySettlement(mock.Anything, mock.Anything, mock.Anything).Return(nil)
				cache.EXPECT().Remove("user-1:ord-1").Return()
				publisher.EXPECT().Publish(mock.Anything, mock.Anything).Return(nil)
			},
			wantAmount: 0,
		},
		{
			name:   "customer deleted, payment skipped",
			method: entities.MethodCash,
			amount: 50,
			mockBehavior: func(orderRepo *mocks.MockOrderRepo, cache *mocks.MockCache, publisher *mocks.MockPublisher) {
				orderRepo.EXPECT().OrderByID(mock.Anything, "ord-1", "user-1").Return(unsettled, nil)
				orderRepo.EXPECT().CustomerBalance(mock.Anything, "cust-1").
					Return(entities.CustomerBalance{}, entities.ErrCustomerNotFound)
				orderRepo.EXPECT().ApplySettlement(mock.Anything, mock.Anything, mock.Anything).Return(nil)
				cache.EXPECT().Remove("user-1:ord-1").Return()
				publisher.EXPECT().Publish(mock.Anything, mock.Anything).Return(nil)
			},
			wantAmount: 50,
		},
		{
			name:   "already settled",
			method: entities.MethodCash,
			amount: 100,
			mockBehavior: func(orderRepo *mocks.MockOrderRepo, cache *mocks.MockCache, publisher *mocks.MockPublisher) {
				settled := unsettled
				settled.Status = entities.StatusSettled
				orderRepo.EXPECT().OrderByID(mock.Anything, "ord-1", "user-1").Return(settled, nil)
			},
			wantErr: entities.ErrOrderSettled,
		},
		{
			name:         "invalid method rejected before lookup",
			method:       "Barter",
			amount:       100,
			mockBehavior: func(orderRepo *mocks.MockOrderRepo, cache *mocks.MockCache, publisher *mocks.MockPublisher) {},
			wantErr:      entities.ErrInvalidSettlementMethod,
		},
		{
			name:   "not found",
			method: entities.MethodCash,
			amount: 100,
			mockBehavior: func(orderRepo *mocks.MockOrderRepo, cache *mocks.MockCache, publisher *mocks.MockPublisher) {
				orderRepo.EXPECT().OrderByID(mock.Anything, "ord-1", "user-1").
					Return(entities.Order{}, entities.ErrOrderNotFound)
			},
			wantErr: entities.ErrOrderNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			orderRepo, cache, publisher, tx, svc := newOrderService(t)
			passthroughTx(tx)
			tc.mockBehavior(orderRepo, cache, publisher)

			got, err := svc.SettleOrder(context.Background(), "ord-1", "user-1", tc.method, tc.amount)

			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, entities.StatusSettled, got.Status)
			assert.Equal(t, tc.method, got.SettlementMethod)
			assert.Equal(t, tc.wantAmount, got.SettlementAmount)
			assert.False(t, got.SettledAt.IsZero())
			require.NotEmpty(t, got.SettlementHistory)
			last := got.SettlementHistory[len(got.SettlementHistory)-1]
			assert.Equal(t, entities.ActionSettled, last.Action)
			assert.Equal(t, tc.wantAmount, last.AmountPaid)
		})
	}
}

func TestOrderService_DiscardOrder(t *testing.T) {
	unsettled := entities.Order{
		OrderID:    "ord-1",
		UserID:     "user-1",
		CustomerID: "cust-1",
		Total:      200,
		Status:     entities.StatusUnsettled,
		Items: []entities.OrderItem{
			{ProductID: "p1", ProductName: "Rice", Quantity: 3, Unit: "kg"},
		},
		FreeItems: []entities.OrderItem{
			{ProductID: "p2", ProductName: "Sample", Quantity: 1, Unit: "piece"},
		},
	}

	testCases := []struct {
		name         string
		mockBehavior func(orderRepo *mocks.MockOrderRepo, cache *mocks.MockCache, publisher *mocks.MockPublisher)
		wantErr      error
	}{
		{
			name: "stock restored and debit reverted",
			mockBehavior: func(orderRepo *mocks.MockOrderRepo, cache *mocks.MockCache, publisher *mocks.MockPublisher) {
				orderRepo.EXPECT().OrderByID(mock.Anything, "ord-1", "user-1").Return(unsettled, nil)
				orderRepo.EXPECT().AdjustStock(mock.Anything, "p1", "user-1", 3.0).Return(nil).Once()
				orderRepo.EXPECT().AdjustStock(mock.Anything, "p2", "user-1", 1.0).Return(nil).Once()
				orderRepo.EXPECT().AdjustCustomerBalance(mock.Anything, "cust-1", -200.0, 0.0, -200.0).Return(nil)
				orderRepo.EXPECT().ApplySettlement(mock.Anything, mock.Anything, mock.Anything).Return(nil)
				cache.EXPECT().Remove("user-1:ord-1").Return()
				publisher.EXPECT().Publish(mock.Anything, mock.Anything).Return(nil)
			},
		},
		{
			name: "already settled",
			mockBehavior: func(orderRepo *mocks.MockOrderRepo, cache *mocks.MockCache, publisher *mocks.MockPublisher) {
				settled := unsettled
				settled.Status = entities.StatusSettled
				orderRepo.EXPECT().OrderByID(mock.Anything, "ord-1", "user-1").Return(settled, nil)
			},
			wantErr: entities.ErrOrderSettled,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			orderRepo, cache, publisher, tx, svc := newOrderService(t)
			passthroughTx(tx)
			tc.mockBehavior(orderRepo, cache, publisher)

			got, err := svc.DiscardOrder(context.Background(), "ord-1", "user-1")

			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, entities.StatusSettled, got.Status)
			assert.False(t, got.DiscardedAt.IsZero())
			assert.True(t, got.SettledAt.IsZero())
			assert.Empty(t, got.SettlementMethod)
		})
	}
}

func TestOrderService_OrderByID(t *testing.T) {
	validOrder := entities.Order{OrderID: "ord-1", UserID: "user-1"}
	validData, err := validOrder.Marshal()
	require.NoError(t, err)

	testCases := []struct {
		name         string
		mockBehavior func(orderRepo *mocks.MockOrderRepo, cache *mocks.MockCache)
		wantErr      error
		want         entities.Order
	}{
		{
			name: "success from cache",
			mockBehavior: func(_ *mocks.MockOrderRepo, cache *mocks.MockCache) {
				cache.EXPECT().Get("user-1:ord-1").Return(validData, true).Once()
			},
			want: validOrder,
		},
		{
			name: "success from repo and set to cache",
			mockBehavior: func(orderRepo *mocks.MockOrderRepo, cache *mocks.MockCache) {
				cache.EXPECT().Get("user-1:ord-1").Return(nil, false).Once()
				orderRepo.EXPECT().OrderByID(mock.Anything, "ord-1", "user-1").Return(validOrder, nil).Once()
				cache.EXPECT().Set("user-1:ord-1", validData).Return().Once()
			},
			want: validOrder,
		},
		{
			name: "not found is not retried",
			mockBehavior: func(orderRepo *mocks.MockOrderRepo, cache *mocks.MockCache) {
				cache.EXPECT().Get("user-1:ord-1").Return(nil, false).Once()
				orderRepo.EXPECT().OrderByID(mock.Anything, "ord-1", "user-1").
					Return(entities.Order{}, entities.ErrOrderNotFound).Once()
			},
			wantErr: entities.ErrOrderNotFound,
		},
		{
			name: "second attempt from repo",
			mockBehavior: func(orderRepo *mocks.MockOrderRepo, cache *mocks.MockCache) {
				cache.EXPECT().Get("user-1:ord-1").Return(nil, false).Once()
				orderRepo.EXPECT().OrderByID(mock.Anything, "ord-1", "user-1").
					Return(entities.Order{}, errors.New("some error")).Once()
				orderRepo.EXPECT().OrderByID(mock.Anything, "ord-1", "user-1").
					Return(validOrder, nil).Once()
				cache.EXPECT().Set("user-1:ord-1", validData).Return().Once()
			},
			want: validOrder,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			orderRepo, cache, _, _, svc := newOrderService(t)
			tc.mockBehavior(orderRepo, cache)

			got, err := svc.OrderByID(context.Background(), "ord-1", "user-1")
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestOrderService_OrdersByUser(t *testing.T) {
	testCases := []struct {
		name       string
		status     string
		wantStatus string
	}{
		{name: "unsettled filter passed through", status: entities.StatusUnsettled, wantStatus: entities.StatusUnsettled},
		{name: "settled filter passed through", status: entities.StatusSettled, wantStatus: entities.StatusSettled},
		{name: "unknown status ignored", status: "pending", wantStatus: ""},
		{name: "empty status", status: "", wantStatus: ""},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			orderRepo, _, _, _, svc := newOrderService(t)
			orderRepo.EXPECT().
				OrdersByUser(mock.Anything, "user-1", tc.wantStatus).
				Return([]entities.Order{}, nil).Once()

			_, err := svc.OrdersByUser(context.Background(), "user-1", tc.status)
			require.NoError(t, err)
		})
	}
}

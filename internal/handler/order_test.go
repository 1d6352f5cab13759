package handler_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/shopkhata/billing-service/internal/entities"
	"github.com/shopkhata/billing-service/internal/handler"
	mocks "github.com/shopkhata/billing-service/internal/handler/mocks"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newOrderRouter(t *testing.T) (*mocks.MockOrderService, chi.Router) {
	t.Helper()
	svc := mocks.NewMockOrderService(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	h := handler.NewOrderHandler(logger, svc)

	r := chi.NewRouter()
	h.Init(r)
	return svc, r
}

const createOrderBody = `{
	"userId": "user-1",
	"orderId": "ord-1",
	"serialNumber": "SN-001",
	"shopName": "My Shop",
	"customerId": "cust-1",
	"customerName": "Ram Stores",
	"customerAddress": "Main Road",
	"customerContact": "9999999999",
	"items": [{"productId": "p1", "productName": "Rice", "quantity": 2, "unit": "kg"}],
	"subtotal": 200,
	"discountPercentage": 0,
	"total": 200
}`

func TestOrderHandler_CreateOrder(t *testing.T) {
	testCases := []struct {
		name         string
		body         string
		mockBehavior func(svc *mocks.MockOrderService)
		wantStatus   int
		wantBody     string
	}{
		{
			name: "created",
			body: createOrderBody,
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().
					CreateOrder(mock.Anything, mock.Anything).
					RunAndReturn(func(_ context.Context, o entities.Order) (entities.Order, error) {
						o.Status = entities.StatusUnsettled
						return o, nil
					}).Once()
			},
			wantStatus: http.StatusCreated,
			wantBody:   `"success":true`,
		},
		{
			name:         "missing items",
			body:         `{"userId":"user-1","orderId":"ord-1","serialNumber":"SN-001","shopName":"My Shop","customerId":"cust-1","customerName":"Ram","customerAddress":"a","customerContact":"c","items":[]}`,
			mockBehavior: func(svc *mocks.MockOrderService) {},
			wantStatus:   http.StatusBadRequest,
		},
		{
			name:         "broken json",
			body:         `{`,
			mockBehavior: func(svc *mocks.MockOrderService) {},
			wantStatus:   http.StatusBadRequest,
			wantBody:     `"invalid request body"`,
		},
		{
			name: "internal error",
			body: createOrderBody,
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().
					CreateOrder(mock.Anything, mock.Anything).
					Return(entities.Order{}, errors.New("db error")).Once()
			},
			wantStatus: http.StatusInternalServerError,
			wantBody:   `"internal server error"`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			svc, r := newOrderRouter(t)
			tc.mockBehavior(svc)

			req := httptest.NewRequest(http.MethodPost, "/orders", strings.NewReader(tc.body))
			rr := httptest.NewRecorder()
			r.ServeHTTP(rr, req)

			res := rr.Result()
			defer res.Body.Close()

			body, err := io.ReadAll(res.Body)
			require.NoError(t, err)

			assert.Equal(t, tc.wantStatus, res.StatusCode)
			if tc.wantBody != "" {
				assert.Contains(t, string(body), tc.wantBody)
			}
		})
	}
}

func TestOrderHandler_OrderByID(t *testing.T) {
	validOrder := entities.Order{OrderID: "ord-1", UserID: "user-1", Status: entities.StatusUnsettled}

	testCases := []struct {
		name         string
		target       string
		mockBehavior func(svc *mocks.MockOrderService)
		wantStatus   int
		wantBody     string
	}{
		{
			name:   "success",
			target: "/orders/ord-1?userId=user-1",
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().
					OrderByID(mock.Anything, "ord-1", "user-1").
					Return(validOrder, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"orderId":"ord-1"`,
		},
		{
			name:   "not found",
			target: "/orders/missing?userId=user-1",
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().
					OrderByID(mock.Anything, "missing", "user-1").
					Return(entities.Order{}, entities.ErrOrderNotFound).Once()
			},
			wantStatus: http.StatusNotFound,
			wantBody:   `"order not found"`,
		},
		{
			name:         "missing userId",
			target:       "/orders/ord-1",
			mockBehavior: func(svc *mocks.MockOrderService) {},
			wantStatus:   http.StatusBadRequest,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			svc, r := newOrderRouter(t)
			tc.mockBehavior(svc)

			req := httptest.NewRequest(http.MethodGet, tc.target, nil)
			rr := httptest.NewRecorder()
			r.ServeHTTP(rr, req)

			res := rr.Result()
			defer res.Body.Close()

			body, err := io.ReadAll(res.Body)
			require.NoError(t, err)

			assert.Equal(t, tc.wantStatus, res.StatusCode)
			if tc.wantBody != "" {
				assert.Contains(t, string(body), tc.wantBody)
			}
		})
	}
}

func TestOrderHandler_OrdersByUser(t *testing.T) {
	svc, r := newOrderRouter(t)
	svc.EXPECT().
		OrdersByUser(mock.Anything, "user-1", "Unsettled").
		Return([]entities.Order{{OrderID: "ord-1"}, {OrderID: "ord-2"}}, nil).Once()

	req := httptest.NewRequest(http.MethodGet, "/orders?userId=user-1&status=Unsettled", nil)
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	res := rr.Result()
	defer res.Body.Close()
	require.Equal(t, http.StatusOK, res.StatusCode)

	var orders []map[string]any
	require.NoError(t, json.NewDecoder(res.Body).Decode(&orders))
	require.Len(t, orders, 2)
	assert.Equal(t, "ord-1", orders[0]["orderId"])
}

func TestOrderHandler_UpdateOrder(t *testing.T) {
	settledOrder := entities.Order{
		OrderID:          "ord-1",
		UserID:           "user-1",
		Status:           entities.StatusSettled,
		SettlementMethod: entities.MethodCash,
		SettlementAmount: 100,
	}

	testCases := []struct {
		name         string
		body         string
		mockBehavior func(svc *mocks.MockOrderService)
		wantStatus   int
		wantBody     string
	}{
		{
			name: "settle",
			body: `{"action":"settle","orderId":"ord-1","userId":"user-1","method":"Cash","amount":100}`,
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().
					SettleOrder(mock.Anything, "ord-1", "user-1", "Cash", 100.0).
					Return(settledOrder, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"settlementMethod":"Cash"`,
		},
		{
			name: "discard",
			body: `{"action":"discard","orderId":"ord-1","userId":"user-1"}`,
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().
					DiscardOrder(mock.Anything, "ord-1", "user-1").
					Return(settledOrder, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"success":true`,
		},
		{
			name:         "unknown action",
			body:         `{"action":"refund","orderId":"ord-1","userId":"user-1"}`,
			mockBehavior: func(svc *mocks.MockOrderService) {},
			wantStatus:   http.StatusBadRequest,
		},
		{
			name: "already settled",
			body: `{"action":"settle","orderId":"ord-1","userId":"user-1","method":"Cash","amount":100}`,
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().
					SettleOrder(mock.Anything, "ord-1", "user-1", "Cash", 100.0).
					Return(entities.Order{}, entities.ErrOrderSettled).Once()
			},
			wantStatus: http.StatusBadRequest,
			wantBody:   `"only Unsettled orders can be modified"`,
		},
		{
			name: "invalid method",
			body: `{"action":"settle","orderId":"ord-1","userId":"user-1","method":"Barter","amount":100}`,
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().
					SettleOrder(mock.Anything, "ord-1", "user-1", "Barter", 100.0).
					Return(entities.Order{}, entities.ErrInvalidSettlementMethod).Once()
			},
			wantStatus: http.StatusBadRequest,
			wantBody:   `"invalid settlement method"`,
		},
		{
			name: "not found",
			body: `{"action":"discard","orderId":"missing","userId":"user-1"}`,
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().
					DiscardOrder(mock.Anything, "missing", "user-1").
					Return(entities.Order{}, entities.ErrOrderNotFound).Once()
			},
			wantStatus: http.StatusNotFound,
			wantBody:   `"order not found"`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			svc, r := newOrderRouter(t)
			tc.mockBehavior(svc)

			req := httptest.NewRequest(http.MethodPatch, "/orders", strings.NewReader(tc.body))
			rr := httptest.NewRecorder()
			r.ServeHTTP(rr, req)

			res := rr.Result()
			defer res.Body.Close()

			body, err := io.ReadAll(res.Body)
			require.NoError(t, err)

			assert.Equal(t, tc.wantStatus, res.StatusCode)
			if tc.wantBody != "" {
				assert.Contains(t, string(body), tc.wantBody)
			}
		})
	}
}

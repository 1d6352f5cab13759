package handler_test

import (
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

func newNoteRouter(t *testing.T) (*mocks.MockNoteService, chi.Router) {
	t.Helper()
	svc := mocks.NewMockNoteService(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	h := handler.NewNoteHandler(logger, svc)

	r := chi.NewRouter()
	h.Init(r)
	return svc, r
}

func TestNoteHandler_CreateNote(t *testing.T) {
	validNote := entities.StickyNote{
		ID:            "note-1",
		UserID:        "user-1",
		CustomerName:  "Ram Stores",
		ShopName:      "My Shop",
		Items:         []entities.NoteItem{{ProductName: "Rice", Quantity: 2, Unit: "kg"}},
		TotalQuantity: 2,
	}

	testCases := []struct {
		name         string
		body         string
		mockBehavior func(svc *mocks.MockNoteService)
		wantStatus   int
		wantBody     string
	}{
		{
			name: "created",
			body: `{"userId":"user-1","customerName":"Ram Stores","shopName":"My Shop","items":[{"productName":"Rice","quantity":2,"unit":"kg"}]}`,
			mockBehavior: func(svc *mocks.MockNoteService) {
				svc.EXPECT().
					CreateNote(mock.Anything, mock.Anything).
					Return(validNote, nil).Once()
			},
			wantStatus: http.StatusCreated,
			wantBody:   `"id":"note-1"`,
		},
		{
			name: "no valid items",
			body: `{"userId":"user-1","customerName":"Ram Stores","shopName":"My Shop","items":[{"productName":"","quantity":2}]}`,
			mockBehavior: func(svc *mocks.MockNoteService) {
				svc.EXPECT().
					CreateNote(mock.Anything, mock.Anything).
					Return(entities.StickyNote{}, entities.ErrNoValidItems).Once()
			},
			wantStatus: http.StatusBadRequest,
			wantBody:   `"valid items are required"`,
		},
		{
			name:         "missing customerName",
			body:         `{"userId":"user-1","shopName":"My Shop","items":[{"productName":"Rice","quantity":2}]}`,
			mockBehavior: func(svc *mocks.MockNoteService) {},
			wantStatus:   http.StatusBadRequest,
		},
		{
			name: "internal error",
			body: `{"userId":"user-1","customerName":"Ram Stores","shopName":"My Shop","items":[{"productName":"Rice","quantity":2,"unit":"kg"}]}`,
			mockBehavior: func(svc *mocks.MockNoteService) {
				svc.EXPECT().
					CreateNote(mock.Anything, mock.Anything).
					Return(entities.StickyNote{}, errors.New("db error")).Once()
			},
			wantStatus: http.StatusInternalServerError,
			wantBody:   `"internal server error"`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			svc, r := newNoteRouter(t)
			tc.mockBehavior(svc)

			req := httptest.NewRequest(http.MethodPost, "/sticky-notes", strings.NewReader(tc.body))
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

func TestNoteHandler_UpdateNote(t *testing.T) {
	testCases := []struct {
		name         string
		body         string
		mockBehavior func(svc *mocks.MockNoteService)
		wantStatus   int
		wantBody     string
	}{
		{
			name: "updated",
			body: `{"id":"note-1","userId":"user-1","customerName":"Ram Stores","shopName":"My Shop","items":[{"productName":"Rice","quantity":3,"unit":"kg"}]}`,
			mockBehavior: func(svc *mocks.MockNoteService) {
				svc.EXPECT().
					UpdateNote(mock.Anything, mock.Anything).
					Return(entities.StickyNote{ID: "note-1", TotalQuantity: 3}, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"totalQuantity":3`,
		},
		{
			name: "not found",
			body: `{"id":"missing","userId":"user-1","customerName":"Ram Stores","shopName":"My Shop","items":[{"productName":"Rice","quantity":3,"unit":"kg"}]}`,
			mockBehavior: func(svc *mocks.MockNoteService) {
				svc.EXPECT().
					UpdateNote(mock.Anything, mock.Anything).
					Return(entities.StickyNote{}, entities.ErrNoteNotFound).Once()
			},
			wantStatus: http.StatusNotFound,
			wantBody:   `"sticky note not found or not authorized"`,
		},
		{
			name:         "missing id",
			body:         `{"userId":"user-1","customerName":"Ram Stores","shopName":"My Shop","items":[{"productName":"Rice","quantity":3}]}`,
			mockBehavior: func(svc *mocks.MockNoteService) {},
			wantStatus:   http.StatusBadRequest,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			svc, r := newNoteRouter(t)
			tc.mockBehavior(svc)

			req := httptest.NewRequest(http.MethodPut, "/sticky-notes", strings.NewReader(tc.body))
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

func TestNoteHandler_DeleteNote(t *testing.T) {
	testCases := []struct {
		name         string
		body         string
		mockBehavior func(svc *mocks.MockNoteService)
		wantStatus   int
		wantBody     string
	}{
		{
			name: "deleted",
			body: `{"id":"note-1","userId":"user-1"}`,
			mockBehavior: func(svc *mocks.MockNoteService) {
				svc.EXPECT().DeleteNote(mock.Anything, "note-1", "user-1").Return(nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"id":"note-1"`,
		},
		{
			name: "not found",
			body: `{"id":"missing","userId":"user-1"}`,
			mockBehavior: func(svc *mocks.MockNoteService) {
				svc.EXPECT().
					DeleteNote(mock.Anything, "missing", "user-1").
					Return(entities.ErrNoteNotFound).Once()
			},
			wantStatus: http.StatusNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			svc, r := newNoteRouter(t)
			tc.mockBehavior(svc)

			req := httptest.NewRequest(http.MethodDelete, "/sticky-notes", strings.NewReader(tc.body))
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

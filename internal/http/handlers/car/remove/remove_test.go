package remove

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/magabrotheeeer/car-inventory/internal/http/middlewarectx"
	"github.com/magabrotheeeer/car-inventory/internal/models"
	"github.com/magabrotheeeer/car-inventory/internal/storage"
)

// Мок сервиса с методом Remove
type ServiceMock struct {
	mock.Mock
}

func (m *ServiceMock) Remove(ctx context.Context, username string, id int64) error {
	args := m.Called(ctx, username, id)
	return args.Error(0)
}

func newNoopLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestRemoveHandler_ServeHTTP(t *testing.T) {
	tests := []struct {
		name       string
		id         string
		setupMock  func(m *ServiceMock)
		wantStatus int
		wantBody   string
	}{
		{
			name: "успешное удаление",
			id:   "4",
			setupMock: func(m *ServiceMock) {
				m.On("Remove", mock.Anything, "alice", int64(4)).Return(nil)
			},
			wantStatus: http.StatusNoContent,
		},
		{
			name: "повторное удаление",
			id:   "4",
			setupMock: func(m *ServiceMock) {
				m.On("Remove", mock.Anything, "alice", int64(4)).
					Return(fmt.Errorf("storage.RemoveCar: %w", storage.ErrCarNotFound))
			},
			wantStatus: http.StatusNotFound,
			wantBody:   `{"status":"Error","error":"not found"}`,
		},
		{
			name:       "id не число",
			id:         "x",
			setupMock:  func(_ *ServiceMock) {},
			wantStatus: http.StatusNotFound,
			wantBody:   `{"status":"Error","error":"not found"}`,
		},
		{
			name: "ошибка хранилища",
			id:   "4",
			setupMock: func(m *ServiceMock) {
				m.On("Remove", mock.Anything, "alice", int64(4)).Return(errors.New("db down"))
			},
			wantStatus: http.StatusInternalServerError,
			wantBody:   `{"status":"Error","error":"internal server error"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(ServiceMock)
			tt.setupMock(svc)
			h := New(newNoopLogger(), svc)

			req := httptest.NewRequest(http.MethodDelete, "/cars/"+tt.id+"/", nil)
			rctx := chi.NewRouteContext()
			rctx.URLParams.Add("id", tt.id)
			ctx := context.WithValue(req.Context(), chi.RouteCtxKey, rctx)
			ctx = middlewarectx.WithIdentity(ctx, models.Identity{UserUID: "uid-1", Username: "alice"})
			req = req.WithContext(ctx)

			rr := httptest.NewRecorder()
			h.ServeHTTP(rr, req)

			assert.Equal(t, tt.wantStatus, rr.Code)
			if tt.wantBody == "" {
				assert.Empty(t, rr.Body.String())
			} else {
				assert.JSONEq(t, tt.wantBody, rr.Body.String())
			}
			svc.AssertExpectations(t)
		})
	}
}

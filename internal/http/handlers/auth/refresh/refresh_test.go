package refresh

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/magabrotheeeer/car-inventory/internal/lib/jwt"
)

type ServiceMock struct {
	mock.Mock
}

func (m *ServiceMock) Refresh(ctx context.Context, refreshToken string) (string, time.Time, error) {
	args := m.Called(ctx, refreshToken)
	return args.String(0), args.Get(1).(time.Time), args.Error(2)
}

func newNoopLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestRefreshHandler_ServeHTTP(t *testing.T) {
	exp := time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name       string
		body       string
		setupMock  func(m *ServiceMock)
		wantStatus int
		wantBody   string
	}{
		{
			name: "новый access",
			body: `{"refresh":"refresh-token"}`,
			setupMock: func(m *ServiceMock) {
				m.On("Refresh", mock.Anything, "refresh-token").Return("new-access", exp, nil)
			},
			wantStatus: http.StatusOK,
			wantBody:   `{"status":"OK","data":{"access":"new-access","access_expires_at":"2030-01-01T00:00:00Z"}}`,
		},
		{
			name:       "нет refresh в теле",
			body:       `{}`,
			setupMock:  func(_ *ServiceMock) {},
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"status":"Error","error":"validation failed","fields":{"refresh":["this field is required."]}}`,
		},
		{
			name: "просроченный refresh",
			body: `{"refresh":"old"}`,
			setupMock: func(m *ServiceMock) {
				m.On("Refresh", mock.Anything, "old").
					Return("", time.Time{}, fmt.Errorf("services.auth.Refresh: %w", jwt.ErrTokenExpired))
			},
			wantStatus: http.StatusUnauthorized,
			wantBody:   `{"status":"Error","error":"token expired"}`,
		},
		{
			name: "access вместо refresh",
			body: `{"refresh":"access-token"}`,
			setupMock: func(m *ServiceMock) {
				m.On("Refresh", mock.Anything, "access-token").
					Return("", time.Time{}, fmt.Errorf("services.auth.Refresh: %w", jwt.ErrTokenInvalid))
			},
			wantStatus: http.StatusUnauthorized,
			wantBody:   `{"status":"Error","error":"invalid token"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(ServiceMock)
			tt.setupMock(svc)
			handler := New(newNoopLogger(), svc)

			req := httptest.NewRequest(http.MethodPost, "/token/refresh/", bytes.NewBufferString(tt.body))
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.JSONEq(t, tt.wantBody, rec.Body.String())
			svc.AssertExpectations(t)
		})
	}
}

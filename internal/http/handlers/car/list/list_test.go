package list

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/magabrotheeeer/car-inventory/internal/models"
)

// Мок сервиса с методом List
type ServiceMock struct {
	mock.Mock
}

func (m *ServiceMock) List(ctx context.Context, filter models.CarFilter) ([]*models.Car, error) {
	args := m.Called(ctx, filter)
	cars, _ := args.Get(0).([]*models.Car)
	return cars, args.Error(1)
}

func newNoopLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func ptr[T any](v T) *T { return &v }

func TestParseFilter(t *testing.T) {
	tests := []struct {
		name       string
		query      string
		want       models.CarFilter
		wantFields []string
	}{
		{
			name:  "без параметров",
			query: "",
			want:  models.CarFilter{},
		},
		{
			name:  "фильтры по равенству",
			query: "brand=Toyota&model=Camry&year=2020&mileage=15000&fuel_type=Petrol&transmission=Manual",
			want: models.CarFilter{
				Brand:        ptr("Toyota"),
				Model:        ptr("Camry"),
				Year:         ptr(2020),
				Mileage:      ptr(15000),
				FuelType:     ptr("Petrol"),
				Transmission: ptr("Manual"),
			},
		},
		{
			name:  "поиск сортировка и пагинация",
			query: "search=+cam+&ordering=-price,year,,-&limit=10&offset=20",
			want: models.CarFilter{
				Search: "cam",
				Ordering: []models.OrderField{
					{Column: "price", Desc: true},
					{Column: "year"},
				},
				Limit:  10,
				Offset: 20,
			},
		},
		{
			name:       "нечисловые значения",
			query:      "year=abc&mileage=1.5&price=cheap&limit=x",
			want:       models.CarFilter{},
			wantFields: []string{"year", "mileage", "price", "limit"},
		},
		{
			name:  "верхняя граница INTEGER",
			query: "year=2147483647&mileage=2147483647&limit=2147483647&offset=2147483647",
			want: models.CarFilter{
				Year:    ptr(2147483647),
				Mileage: ptr(2147483647),
				Limit:   2147483647,
				Offset:  2147483647,
			},
		},
		{
			name:       "выход за INTEGER",
			query:      "year=2147483648&mileage=2147483648&limit=2147483648&offset=2147483648",
			want:       models.CarFilter{},
			wantFields: []string{"year", "mileage", "limit", "offset"},
		},
		{
			name:       "ниже INTEGER",
			query:      "year=-2147483649&mileage=-2147483649",
			want:       models.CarFilter{},
			wantFields: []string{"year", "mileage"},
		},
		{
			name:       "отрицательная пагинация",
			query:      "limit=-1&offset=-5",
			want:       models.CarFilter{},
			wantFields: []string{"limit", "offset"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q, err := url.ParseQuery(tt.query)
			require.NoError(t, err)

			got, errs := ParseFilter(q)
			assert.Len(t, errs, len(tt.wantFields))
			for _, f := range tt.wantFields {
				assert.True(t, errs.Has(f), f)
			}
			if len(tt.wantFields) == 0 {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestParseFilter_Price(t *testing.T) {
	got, errs := ParseFilter(url.Values{"price": {"10000.50"}})
	require.Empty(t, errs)
	require.NotNil(t, got.Price)
	assert.True(t, decimal.RequireFromString("10000.5").Equal(*got.Price))
}

func TestListHandler_ServeHTTP(t *testing.T) {
	cars := []*models.Car{
		{ID: 1, Brand: "Toyota", Model: "Camry", Year: 2020, Price: decimal.RequireFromString("20000.00"),
			FuelType: models.FuelPetrol, Transmission: models.TransmissionAutomatic, Mileage: 100},
	}

	tests := []struct {
		name       string
		query      string
		setupMock  func(m *ServiceMock)
		wantStatus int
		wantCount  int
		wantBody   string
	}{
		{
			name:  "успешная выборка",
			query: "?brand=Toyota",
			setupMock: func(m *ServiceMock) {
				m.On("List", mock.Anything, models.CarFilter{Brand: ptr("Toyota")}).Return(cars, nil)
			},
			wantStatus: http.StatusOK,
			wantCount:  1,
		},
		{
			name:  "пустой список",
			query: "?brand=Lada",
			setupMock: func(m *ServiceMock) {
				m.On("List", mock.Anything, models.CarFilter{Brand: ptr("Lada")}).Return(nil, nil)
			},
			wantStatus: http.StatusOK,
			wantCount:  0,
		},
		{
			name:       "некорректный год",
			query:      "?year=abc",
			setupMock:  func(_ *ServiceMock) {},
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"status":"Error","error":"validation failed","fields":{"year":["enter a whole number."]}}`,
		},
		{
			name:       "пробег больше INTEGER",
			query:      "?mileage=2147483648",
			setupMock:  func(_ *ServiceMock) {},
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"status":"Error","error":"validation failed","fields":{"mileage":["ensure this value is less than or equal to 2147483647."]}}`,
		},
		{
			name:  "ошибка хранилища",
			query: "",
			setupMock: func(m *ServiceMock) {
				m.On("List", mock.Anything, models.CarFilter{}).Return(nil, errors.New("db down"))
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

			req := httptest.NewRequest(http.MethodGet, "/cars/"+tt.query, nil)
			rr := httptest.NewRecorder()
			h.ServeHTTP(rr, req)

			assert.Equal(t, tt.wantStatus, rr.Code)
			if tt.wantBody != "" {
				assert.JSONEq(t, tt.wantBody, rr.Body.String())
			} else {
				var body struct {
					Status string       `json:"status"`
					Data   []models.Car `json:"data"`
				}
				require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
				assert.Equal(t, "OK", body.Status)
				assert.Len(t, body.Data, tt.wantCount)
			}
			svc.AssertExpectations(t)
		})
	}
}

// Package list содержит HTTP-обработчик списка автомобилей с фильтрами, поиском и сортировкой.
package list

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/go-chi/chi/middleware"
	"github.com/shopspring/decimal"

	"github.com/magabrotheeeer/car-inventory/internal/http/response"
	"github.com/magabrotheeeer/car-inventory/internal/lib/sl"
	"github.com/magabrotheeeer/car-inventory/internal/lib/validation"
	"github.com/magabrotheeeer/car-inventory/internal/models"
)

const (
	msgInteger  = "enter a whole number."
	msgNumber   = "enter a number."
	msgNegative = "ensure this value is greater than or equal to 0."
)

var (
	msgTooLarge = fmt.Sprintf("ensure this value is less than or equal to %d.", validation.MaxInteger)
	msgTooSmall = fmt.Sprintf("ensure this value is greater than or equal to %d.", math.MinInt32)
)

// Handler обрабатывает GET /cars/.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает выборку списка автомобилей.
type Service interface {
	List(ctx context.Context, filter models.CarFilter) ([]*models.Car, error)
}

// New создает новый экземпляр Handler.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Список автомобилей
// @Description Фильтры по равенству, поиск по марке и модели без учёта регистра, сортировка через ordering (например "-price,year").
// @Tags Cars
// @Produce json
// @Security BearerAuth
// @Param brand query string false "Марка"
// @Param model query string false "Модель"
// @Param year query int false "Год выпуска"
// @Param price query string false "Цена"
// @Param fuel_type query string false "Тип топлива"
// @Param transmission query string false "Коробка передач"
// @Param mileage query int false "Пробег"
// @Param search query string false "Поиск по марке и модели"
// @Param ordering query string false "Поля сортировки через запятую, '-' для убывания"
// @Param limit query int false "Максимум записей"
// @Param offset query int false "Смещение"
// @Success 200 {object} response.Response{data=[]models.Car}
// @Failure 400 {object} response.ValidationErrorResponse "Некорректные параметры"
// @Failure 401 {object} response.ErrorResponse "Не авторизован"
// @Failure 500 {object} response.ErrorResponse "Внутренняя ошибка сервера"
// @Router /cars/ [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.car.list"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	filter, errs := ParseFilter(r.URL.Query())
	if err := errs.Err(); err != nil {
		log.Info("invalid query parameters", sl.Err(err))
		response.Render(w, r, http.StatusBadRequest, response.ValidationError(errs))
		return
	}

	cars, err := h.service.List(r.Context(), filter)
	if err != nil {
		log.Error("failed to list cars", sl.Err(err))
		response.Render(w, r, http.StatusInternalServerError, response.Error(response.MsgInternal))
		return
	}
	if cars == nil {
		cars = []*models.Car{}
	}

	log.Debug("cars listed", slog.Int("count", len(cars)))
	response.Render(w, r, http.StatusOK, response.StatusOKWithData(cars))
}

// ParseFilter разбирает параметры запроса. Пустые параметры не участвуют в фильтрации.
func ParseFilter(q url.Values) (models.CarFilter, validation.FieldErrors) {
	errs := validation.FieldErrors{}
	f := models.CarFilter{
		Brand:        optString(q, "brand"),
		Model:        optString(q, "model"),
		FuelType:     optString(q, "fuel_type"),
		Transmission: optString(q, "transmission"),
		Search:       strings.TrimSpace(q.Get("search")),
		Ordering:     parseOrdering(q.Get("ordering")),
	}
	f.Year = optInt(q, "year", errs)
	f.Mileage = optInt(q, "mileage", errs)

	if v := strings.TrimSpace(q.Get("price")); v != "" {
		price, err := decimal.NewFromString(v)
		if err != nil {
			errs.Add("price", msgNumber)
		} else {
			f.Price = &price
		}
	}

	if n := optInt(q, "limit", errs); n != nil {
		if *n < 0 {
			errs.Add("limit", msgNegative)
		} else {
			f.Limit = *n
		}
	}
	if n := optInt(q, "offset", errs); n != nil {
		if *n < 0 {
			errs.Add("offset", msgNegative)
		} else {
			f.Offset = *n
		}
	}
	return f, errs
}

func optString(q url.Values, key string) *string {
	v := strings.TrimSpace(q.Get(key))
	if v == "" {
		return nil
	}
	return &v
}

func optInt(q url.Values, key string, errs validation.FieldErrors) *int {
	v := strings.TrimSpace(q.Get(key))
	if v == "" {
		return nil
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		errs.Add(key, msgInteger)
		return nil
	}
	if n > validation.MaxInteger {
		errs.Add(key, msgTooLarge)
		return nil
	}
	if n < math.MinInt32 {
		errs.Add(key, msgTooSmall)
		return nil
	}
	i := int(n)
	return &i
}

// parseOrdering разбирает "-price,year". Неизвестные поля отбрасываются хранилищем.
func parseOrdering(raw string) []models.OrderField {
	var fields []models.OrderField
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		desc := strings.HasPrefix(part, "-")
		part = strings.TrimPrefix(part, "-")
		if part == "" {
			continue
		}
		fields = append(fields, models.OrderField{Column: part, Desc: desc})
	}
	return fields
}

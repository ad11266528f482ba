// Package create содержит HTTP-обработчик создания автомобиля.
package create

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/car-inventory/internal/http/middlewarectx"
	"github.com/magabrotheeeer/car-inventory/internal/http/response"
	"github.com/magabrotheeeer/car-inventory/internal/lib/sl"
	"github.com/magabrotheeeer/car-inventory/internal/lib/validation"
	"github.com/magabrotheeeer/car-inventory/internal/models"
)

// Handler обрабатывает POST /cars/.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает создание автомобиля.
type Service interface {
	Create(ctx context.Context, username string, req models.DummyCar) (*models.Car, error)
}

// New создает новый экземпляр Handler.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Добавить автомобиль
// @Description Создаёт запись об автомобиле. year по умолчанию 2000, mileage по умолчанию 1.
// @Tags Cars
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.DummyCar true "Данные автомобиля"
// @Success 201 {object} response.Response{data=models.Car}
// @Failure 400 {object} response.ValidationErrorResponse "Ошибка валидации"
// @Failure 401 {object} response.ErrorResponse "Не авторизован"
// @Failure 500 {object} response.ErrorResponse "Внутренняя ошибка сервера"
// @Router /cars/ [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.car.create"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	identity, ok := middlewarectx.IdentityFromContext(r.Context())
	if !ok {
		log.Error("user identity not found in context")
		response.Render(w, r, http.StatusUnauthorized, response.Error(response.MsgUnauthorized))
		return
	}

	// Пустое тело равносильно пустому объекту.
	var req models.DummyCar
	if err := render.DecodeJSON(r.Body, &req); err != nil && !errors.Is(err, io.EOF) {
		log.Error("failed to decode request body", sl.Err(err))
		response.Render(w, r, http.StatusBadRequest, response.Error(response.MsgDecodeFailed))
		return
	}

	car, err := h.service.Create(r.Context(), identity.Username, req)
	var fieldErrs validation.FieldErrors
	switch {
	case errors.As(err, &fieldErrs):
		log.Info("validation failed", sl.Err(err))
		response.Render(w, r, http.StatusBadRequest, response.ValidationError(fieldErrs))
		return
	case err != nil:
		log.Error("failed to create car", sl.Err(err))
		response.Render(w, r, http.StatusInternalServerError, response.Error(response.MsgInternal))
		return
	}

	log.Info("car created", slog.Int64("id", car.ID))
	response.Render(w, r, http.StatusCreated, response.StatusOKWithData(car))
}

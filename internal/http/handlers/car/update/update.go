// Package update содержит HTTP-обработчик полного (PUT) и частичного (PATCH) обновления автомобиля.
package update

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/car-inventory/internal/http/middlewarectx"
	"github.com/magabrotheeeer/car-inventory/internal/http/response"
	"github.com/magabrotheeeer/car-inventory/internal/lib/sl"
	"github.com/magabrotheeeer/car-inventory/internal/lib/validation"
	"github.com/magabrotheeeer/car-inventory/internal/models"
	"github.com/magabrotheeeer/car-inventory/internal/storage"
)

// Handler обрабатывает PUT и PATCH /cars/{id}/.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает обновление автомобиля.
type Service interface {
	Update(ctx context.Context, username string, id int64, req models.DummyCar, partial bool) (*models.Car, error)
}

// New создает новый экземпляр Handler.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Обновить автомобиль по ID
// @Description PUT требует те же поля, что и создание. PATCH принимает любое подмножество полей.
// @Tags Cars
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID автомобиля"
// @Param request body models.DummyCar true "Данные автомобиля"
// @Success 200 {object} response.Response{data=models.Car}
// @Failure 400 {object} response.ValidationErrorResponse "Ошибка валидации"
// @Failure 401 {object} response.ErrorResponse "Не авторизован"
// @Failure 404 {object} response.ErrorResponse "Не найден"
// @Failure 500 {object} response.ErrorResponse "Внутренняя ошибка сервера"
// @Router /cars/{id}/ [put]
// @Router /cars/{id}/ [patch]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.car.update"

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

	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		log.Info("failed to decode id from url", sl.Err(err))
		response.Render(w, r, http.StatusNotFound, response.Error(response.MsgNotFound))
		return
	}

	// Пустое тело равносильно пустому объекту.
	var req models.DummyCar
	if err := render.DecodeJSON(r.Body, &req); err != nil && !errors.Is(err, io.EOF) {
		log.Error("failed to decode request body", sl.Err(err))
		response.Render(w, r, http.StatusBadRequest, response.Error(response.MsgDecodeFailed))
		return
	}

	partial := r.Method == http.MethodPatch
	car, err := h.service.Update(r.Context(), identity.Username, id, req, partial)
	var fieldErrs validation.FieldErrors
	switch {
	case errors.Is(err, storage.ErrCarNotFound):
		log.Info("car not found", slog.Int64("id", id))
		response.Render(w, r, http.StatusNotFound, response.Error(response.MsgNotFound))
		return
	case errors.As(err, &fieldErrs):
		log.Info("validation failed", sl.Err(err))
		response.Render(w, r, http.StatusBadRequest, response.ValidationError(fieldErrs))
		return
	case err != nil:
		log.Error("failed to update car", sl.Err(err))
		response.Render(w, r, http.StatusInternalServerError, response.Error(response.MsgInternal))
		return
	}

	log.Info("car updated", slog.Int64("id", id), slog.Bool("partial", partial))
	response.Render(w, r, http.StatusOK, response.StatusOKWithData(car))
}

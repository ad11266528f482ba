// Package read содержит HTTP-обработчик чтения автомобиля по ID.
package read

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"

	"github.com/magabrotheeeer/car-inventory/internal/http/response"
	"github.com/magabrotheeeer/car-inventory/internal/lib/sl"
	"github.com/magabrotheeeer/car-inventory/internal/models"
	"github.com/magabrotheeeer/car-inventory/internal/storage"
)

// Handler обрабатывает GET /cars/{id}/.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает чтение автомобиля.
type Service interface {
	Read(ctx context.Context, id int64) (*models.Car, error)
}

// New создает новый экземпляр Handler.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Получить автомобиль по ID
// @Tags Cars
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID автомобиля"
// @Success 200 {object} response.Response{data=models.Car}
// @Failure 401 {object} response.ErrorResponse "Не авторизован"
// @Failure 404 {object} response.ErrorResponse "Не найден"
// @Failure 500 {object} response.ErrorResponse "Внутренняя ошибка сервера"
// @Router /cars/{id}/ [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.car.read"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		log.Info("failed to decode id from url", sl.Err(err))
		response.Render(w, r, http.StatusNotFound, response.Error(response.MsgNotFound))
		return
	}

	car, err := h.service.Read(r.Context(), id)
	switch {
	case errors.Is(err, storage.ErrCarNotFound):
		log.Info("car not found", slog.Int64("id", id))
		response.Render(w, r, http.StatusNotFound, response.Error(response.MsgNotFound))
		return
	case err != nil:
		log.Error("failed to read car", sl.Err(err))
		response.Render(w, r, http.StatusInternalServerError, response.Error(response.MsgInternal))
		return
	}

	response.Render(w, r, http.StatusOK, response.StatusOKWithData(car))
}

// Package remove содержит HTTP-обработчик удаления автомобиля.
package remove

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/car-inventory/internal/http/middlewarectx"
	"github.com/magabrotheeeer/car-inventory/internal/http/response"
	"github.com/magabrotheeeer/car-inventory/internal/lib/sl"
	"github.com/magabrotheeeer/car-inventory/internal/storage"
)

// Handler обрабатывает DELETE /cars/{id}/.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает удаление автомобиля.
type Service interface {
	Remove(ctx context.Context, username string, id int64) error
}

// New создает новый экземпляр Handler.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Удалить автомобиль по ID
// @Tags Cars
// @Security BearerAuth
// @Param id path int true "ID автомобиля"
// @Success 204 "Удалено"
// @Failure 401 {object} response.ErrorResponse "Не авторизован"
// @Failure 404 {object} response.ErrorResponse "Не найден"
// @Failure 500 {object} response.ErrorResponse "Внутренняя ошибка сервера"
// @Router /cars/{id}/ [delete]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.car.remove"

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

	err = h.service.Remove(r.Context(), identity.Username, id)
	switch {
	case errors.Is(err, storage.ErrCarNotFound):
		log.Info("car not found", slog.Int64("id", id))
		response.Render(w, r, http.StatusNotFound, response.Error(response.MsgNotFound))
		return
	case err != nil:
		log.Error("failed to remove car", sl.Err(err))
		response.Render(w, r, http.StatusInternalServerError, response.Error(response.MsgInternal))
		return
	}

	log.Info("car removed", slog.Int64("id", id))
	render.NoContent(w, r)
}

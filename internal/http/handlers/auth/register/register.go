// Package register содержит HTTP-обработчик регистрации пользователя.
package register

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/car-inventory/internal/http/response"
	"github.com/magabrotheeeer/car-inventory/internal/lib/sl"
	"github.com/magabrotheeeer/car-inventory/internal/lib/validation"
	"github.com/magabrotheeeer/car-inventory/internal/models"
	"github.com/magabrotheeeer/car-inventory/internal/services/auth"
)

// Service описывает регистрацию пользователя.
type Service interface {
	Register(ctx context.Context, req auth.RegisterRequest) (*models.User, models.TokenPair, error)
}

// Handler обрабатывает POST /register/.
type Handler struct {
	log     *slog.Logger
	service Service
}

// New создает новый экземпляр Handler.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Регистрация нового пользователя
// @Description Создаёт пользователя и возвращает пару JWT токенов.
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body auth.RegisterRequest true "Данные пользователя"
// @Success 201 {object} response.Response{data=models.AuthResponse}
// @Failure 400 {object} response.ValidationErrorResponse "Ошибка валидации"
// @Failure 500 {object} response.ErrorResponse "Внутренняя ошибка сервера"
// @Router /register/ [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.auth.register"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var req auth.RegisterRequest
	if err := render.DecodeJSON(r.Body, &req); err != nil {
		log.Error("failed to decode request body", sl.Err(err))
		response.Render(w, r, http.StatusBadRequest, response.Error(response.MsgDecodeFailed))
		return
	}
	log.Info("request body decoded", slog.String("username", req.Username))

	user, pair, err := h.service.Register(r.Context(), req)
	var fieldErrs validation.FieldErrors
	switch {
	case errors.As(err, &fieldErrs):
		log.Info("validation failed", sl.Err(err))
		response.Render(w, r, http.StatusBadRequest, response.ValidationError(fieldErrs))
		return
	case err != nil:
		log.Error("registration failed", sl.Err(err))
		response.Render(w, r, http.StatusInternalServerError, response.Error(response.MsgInternal))
		return
	}

	log.Info("user registered", slog.String("username", user.Username))
	response.Render(w, r, http.StatusCreated, response.StatusOKWithData(models.AuthResponse{
		User:  user,
		Token: pair,
	}))
}

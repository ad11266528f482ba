// Package login содержит HTTP-обработчик входа пользователя.
package login

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

// Handler обрабатывает POST /login/.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает проверку учётных данных.
//
// Неверное имя и неверный пароль возвращаются одной ошибкой auth.ErrInvalidCredentials.
type Service interface {
	Login(ctx context.Context, req auth.LoginRequest) (*models.User, models.TokenPair, error)
}

// New создает новый экземпляр Handler с указанными логгером и сервисом аутентификации.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Авторизация пользователя
// @Description Аутентифицирует пользователя по имени и паролю. Возвращает access и refresh токены.
// @Tags Auth
// @Accept  json
// @Produce  json
// @Param request body auth.LoginRequest true "Учетные данные пользователя"
// @Success 200 {object} response.Response{data=models.AuthResponse} "Успешная авторизация"
// @Failure 400 {object} response.ErrorResponse "Неверные учетные данные"
// @Failure 500 {object} response.ErrorResponse "Внутренняя ошибка сервера"
// @Router /login/ [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.auth.login"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var req auth.LoginRequest
	if err := render.DecodeJSON(r.Body, &req); err != nil {
		log.Error("failed to decode request body", sl.Err(err))
		response.Render(w, r, http.StatusBadRequest, response.Error(response.MsgDecodeFailed))
		return
	}

	user, pair, err := h.service.Login(r.Context(), req)
	var fieldErrs validation.FieldErrors
	switch {
	case errors.As(err, &fieldErrs):
		log.Info("validation failed", sl.Err(err))
		response.Render(w, r, http.StatusBadRequest, response.ValidationError(fieldErrs))
		return
	case errors.Is(err, auth.ErrInvalidCredentials):
		log.Info("login failed", slog.String("username", req.Username))
		response.Render(w, r, http.StatusBadRequest, response.Error(auth.ErrInvalidCredentials.Error()))
		return
	case err != nil:
		log.Error("login failed", sl.Err(err))
		response.Render(w, r, http.StatusInternalServerError, response.Error(response.MsgInternal))
		return
	}

	log.Info("login success", slog.String("username", user.Username))
	response.Render(w, r, http.StatusOK, response.StatusOKWithData(models.AuthResponse{
		User:  user,
		Token: pair,
	}))
}

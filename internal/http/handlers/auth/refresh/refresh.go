// Package refresh содержит HTTP-обработчик обмена refresh токена на новый access.
package refresh

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/magabrotheeeer/car-inventory/internal/http/response"
	"github.com/magabrotheeeer/car-inventory/internal/lib/jwt"
	"github.com/magabrotheeeer/car-inventory/internal/lib/sl"
	"github.com/magabrotheeeer/car-inventory/internal/lib/validation"
)

// Request тело запроса.
type Request struct {
	Refresh string `json:"refresh" validate:"required"`
}

// Data тело успешного ответа.
type Data struct {
	Access          string    `json:"access"`
	AccessExpiresAt time.Time `json:"access_expires_at"`
}

// Service выпускает access токен по refresh токену.
type Service interface {
	Refresh(ctx context.Context, refreshToken string) (string, time.Time, error)
}

// Handler обрабатывает POST /token/refresh/.
type Handler struct {
	log      *slog.Logger
	service  Service
	validate *validator.Validate
}

// New создает новый экземпляр Handler.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:      log,
		service:  service,
		validate: validation.New(),
	}
}

// ServeHTTP godoc
// @Summary Обновление access токена
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body Request true "Refresh токен"
// @Success 200 {object} response.Response{data=Data}
// @Failure 400 {object} response.ValidationErrorResponse "Ошибка валидации"
// @Failure 401 {object} response.ErrorResponse "Токен просрочен или недействителен"
// @Router /token/refresh/ [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.auth.refresh"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var req Request
	if err := render.DecodeJSON(r.Body, &req); err != nil {
		log.Error("failed to decode request body", sl.Err(err))
		response.Render(w, r, http.StatusBadRequest, response.Error(response.MsgDecodeFailed))
		return
	}
	if errs := validation.Struct(h.validate, req); len(errs) > 0 {
		log.Info("validation failed", sl.Err(errs))
		response.Render(w, r, http.StatusBadRequest, response.ValidationError(errs))
		return
	}

	access, exp, err := h.service.Refresh(r.Context(), req.Refresh)
	switch {
	case errors.Is(err, jwt.ErrTokenExpired):
		log.Info("refresh token expired")
		response.Render(w, r, http.StatusUnauthorized, response.Error(jwt.ErrTokenExpired.Error()))
		return
	case err != nil:
		log.Info("refresh token rejected", sl.Err(err))
		response.Render(w, r, http.StatusUnauthorized, response.Error(jwt.ErrTokenInvalid.Error()))
		return
	}

	response.Render(w, r, http.StatusOK, response.StatusOKWithData(Data{
		Access:          access,
		AccessExpiresAt: exp,
	}))
}

// Package health содержит HTTP-обработчик проверки состояния сервиса.
package health

import (
	"context"
	"log/slog"
	"net/http"
	"sort"
	"time"

	"github.com/go-chi/chi/middleware"

	"github.com/magabrotheeeer/car-inventory/internal/http/response"
	"github.com/magabrotheeeer/car-inventory/internal/lib/sl"
)

const checkTimeout = 2 * time.Second

// Check проверяет одну зависимость.
type Check func(ctx context.Context) error

// Handler обрабатывает GET /health.
type Handler struct {
	log    *slog.Logger
	checks map[string]Check
}

// Data тело успешного ответа.
type Data struct {
	Status string `json:"status" example:"ok"`
}

// New создает новый экземпляр Handler. checks может быть пустым.
func New(log *slog.Logger, checks map[string]Check) *Handler {
	return &Handler{
		log:    log,
		checks: checks,
	}
}

// ServeHTTP godoc
// @Summary Проверка состояния
// @Description Возвращает 200, если все зависимости доступны, иначе 503 со списком недоступных.
// @Tags Health
// @Produce json
// @Success 200 {object} response.Response{data=health.Data}
// @Failure 503 {object} response.ValidationErrorResponse "Зависимость недоступна"
// @Router /health [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.health"

	ctx, cancel := context.WithTimeout(r.Context(), checkTimeout)
	defer cancel()

	names := make([]string, 0, len(h.checks))
	for name := range h.checks {
		names = append(names, name)
	}
	sort.Strings(names)

	failed := map[string][]string{}
	for _, name := range names {
		if err := h.checks[name](ctx); err != nil {
			h.log.Warn("dependency is unavailable",
				slog.String("op", op),
				slog.String("request_id", middleware.GetReqID(r.Context())),
				slog.String("dependency", name),
				sl.Err(err),
			)
			failed[name] = []string{"unavailable"}
		}
	}

	if len(failed) > 0 {
		response.Render(w, r, http.StatusServiceUnavailable, response.Response{
			Status: response.StatusError,
			Error:  "service unavailable",
			Fields: failed,
		})
		return
	}
	response.Render(w, r, http.StatusOK, response.StatusOKWithData(Data{Status: "ok"}))
}

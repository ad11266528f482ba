package carinventory

import (
	"log/slog"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	// Регистрирует спецификацию Swagger для /docs/*.
	_ "github.com/magabrotheeeer/car-inventory/internal/docs"
	"github.com/magabrotheeeer/car-inventory/internal/http/handlers/auth/login"
	"github.com/magabrotheeeer/car-inventory/internal/http/handlers/auth/refresh"
	"github.com/magabrotheeeer/car-inventory/internal/http/handlers/auth/register"
	"github.com/magabrotheeeer/car-inventory/internal/http/handlers/car/create"
	"github.com/magabrotheeeer/car-inventory/internal/http/handlers/car/list"
	"github.com/magabrotheeeer/car-inventory/internal/http/handlers/car/read"
	"github.com/magabrotheeeer/car-inventory/internal/http/handlers/car/remove"
	"github.com/magabrotheeeer/car-inventory/internal/http/handlers/car/update"
	"github.com/magabrotheeeer/car-inventory/internal/http/handlers/health"
	"github.com/magabrotheeeer/car-inventory/internal/http/middlewarectx"
	"github.com/magabrotheeeer/car-inventory/internal/metrics"
)

// CarService операции над автомобилями, нужные обработчикам.
type CarService interface {
	create.Service
	read.Service
	update.Service
	remove.Service
	list.Service
}

// AuthService операции регистрации, входа и обновления токена.
type AuthService interface {
	register.Service
	login.Service
	refresh.Service
}

// Deps зависимости маршрутов.
type Deps struct {
	Cars     CarService
	Auth     AuthService
	Verifier middlewarectx.Verifier
	Metrics  *metrics.Metrics
	Checks   map[string]health.Check
}

// RegisterRoutes регистрирует все маршруты приложения.
func RegisterRoutes(r chi.Router, logger *slog.Logger, deps Deps) {
	// Глобальные middleware
	r.Use(
		middleware.RequestID,
		middleware.RealIP,
		middleware.Logger,
		middleware.Recoverer,
		deps.Metrics.Middleware,
		middlewarectx.JWTMiddleware(deps.Verifier, deps.Metrics, logger, middlewarectx.PublicPaths),
	)

	// Открытые конечные точки
	r.Post("/register/", register.New(logger, deps.Auth).ServeHTTP)
	r.Post("/login/", login.New(logger, deps.Auth).ServeHTTP)
	r.Post("/token/refresh/", refresh.New(logger, deps.Auth).ServeHTTP)
	r.Get("/health", health.New(logger, deps.Checks).ServeHTTP)
	r.Handle("/metrics", deps.Metrics.Handler())
	r.Get("/docs/*", httpSwagger.WrapHandler)

	// Требуют access токен
	r.Route("/cars", func(r chi.Router) {
		r.Get("/", list.New(logger, deps.Cars).ServeHTTP)
		r.Post("/", create.New(logger, deps.Cars).ServeHTTP)

		upd := update.New(logger, deps.Cars)
		r.Get("/{id}/", read.New(logger, deps.Cars).ServeHTTP)
		r.Put("/{id}/", upd.ServeHTTP)
		r.Patch("/{id}/", upd.ServeHTTP)
		r.Delete("/{id}/", remove.New(logger, deps.Cars).ServeHTTP)
	})
}

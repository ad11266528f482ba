// Package carinventory собирает HTTP-приложение учёта автомобилей:
// хранилище, кэш, публикацию событий, сервисы и маршруты.
package carinventory

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"

	"github.com/magabrotheeeer/car-inventory/internal/cache"
	"github.com/magabrotheeeer/car-inventory/internal/config"
	"github.com/magabrotheeeer/car-inventory/internal/events"
	"github.com/magabrotheeeer/car-inventory/internal/grpc/server"
	"github.com/magabrotheeeer/car-inventory/internal/http/handlers/health"
	"github.com/magabrotheeeer/car-inventory/internal/lib/jwt"
	"github.com/magabrotheeeer/car-inventory/internal/lib/sl"
	"github.com/magabrotheeeer/car-inventory/internal/metrics"
	"github.com/magabrotheeeer/car-inventory/internal/migrations"
	authservice "github.com/magabrotheeeer/car-inventory/internal/services/auth"
	carservice "github.com/magabrotheeeer/car-inventory/internal/services/car"
	"github.com/magabrotheeeer/car-inventory/internal/storage"
)

// App HTTP-сервер и его зависимости.
type App struct {
	cfg        *config.Config
	server     *http.Server
	grpcHealth *server.HealthServer
	logger     *slog.Logger
	db         *storage.Storage
	cache      *cache.Cache
	events     *events.AMQPPublisher
}

// New подключает зависимости и собирает маршруты.
// Redis и RabbitMQ необязательны: без адреса кэш отключается, события отбрасываются.
func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	db, err := storage.New(cfg.StorageConnectionString)
	if err != nil {
		return nil, err
	}
	if err = migrations.Run(db.DB, cfg.MigrationsPath); err != nil {
		_ = db.Close()
		return nil, err
	}

	app := &App{
		cfg:    cfg,
		logger: logger,
		db:     db,
	}

	checks := map[string]health.Check{"postgres": db.Ping}
	var carCache carservice.Cache
	if cfg.AddressRedis != "" {
		app.cache, err = cache.InitServer(ctx, cfg.RedisConnection)
		if err != nil {
			app.close()
			return nil, err
		}
		carCache = app.cache
		checks["redis"] = app.cache.Ping
	} else {
		logger.Warn("redis address is not set, car cache disabled")
	}

	var publisher events.Publisher = events.NopPublisher{}
	if cfg.RabbitMQ.URL != "" {
		app.events, err = events.NewAMQPPublisher(logger, cfg.RabbitMQ)
		if err != nil {
			app.close()
			return nil, err
		}
		publisher = app.events
	} else {
		logger.Warn("rabbitmq url is not set, events disabled")
	}

	jwtMaker, err := jwt.NewJWTMaker(cfg.JWTSecretKey, cfg.AccessTokenTTL, cfg.RefreshTokenTTL)
	if err != nil {
		app.close()
		return nil, err
	}

	carService := carservice.NewService(db, carCache, publisher, logger)
	authService := authservice.NewAuthService(db, jwtMaker, publisher, logger)

	router := chi.NewRouter()
	RegisterRoutes(router, logger, Deps{
		Cars:     carService,
		Auth:     authService,
		Verifier: jwtMaker,
		Metrics:  metrics.New(),
		Checks:   checks,
	})

	app.server = &http.Server{
		Addr:         cfg.AddressHTTP,
		Handler:      router,
		ReadTimeout:  cfg.TimeoutHTTP,
		WriteTimeout: cfg.TimeoutHTTP,
		IdleTimeout:  cfg.IdleTimeout,
	}

	if cfg.GRPCHealthAddress != "" {
		grpcChecks := make(map[string]server.CheckFunc, len(checks))
		for name, check := range checks {
			grpcChecks[name] = server.CheckFunc(check)
		}
		app.grpcHealth = server.NewHealthServer(logger, grpcChecks, 0)
	}

	return app, nil
}

// Run обслуживает запросы до отмены ctx, затем останавливает серверы
// и закрывает соединения.
func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 2)
	go func() {
		a.logger.Info("HTTP server starting on", slog.String("address", a.server.Addr))
		err := a.server.ListenAndServe()
		if errors.Is(err, http.ErrServerClosed) {
			errCh <- nil
		} else {
			errCh <- err
		}
	}()

	grpcCtx, stopGRPC := context.WithCancel(ctx)
	defer stopGRPC()
	grpcDone := make(chan struct{})
	if a.grpcHealth != nil {
		go func() {
			defer close(grpcDone)
			if err := a.grpcHealth.ListenAndServe(grpcCtx, a.cfg.GRPCHealthAddress); err != nil {
				errCh <- err
			}
		}()
	} else {
		close(grpcDone)
	}

	var runErr error
	select {
	case runErr = <-errCh:
	case <-ctx.Done():
	}

	timeoutCtx, cancel := context.WithTimeout(context.Background(), a.cfg.ShutdownTimeout)
	defer cancel()
	a.logger.Info("shutting down servers gracefully")

	stopGRPC()
	<-grpcDone
	if err := a.server.Shutdown(timeoutCtx); err != nil {
		a.logger.Error("failed to shutdown HTTP server", sl.Err(err))
		if runErr == nil {
			runErr = err
		}
	}
	a.close()
	return runErr
}

func (a *App) close() {
	if a.events != nil {
		if err := a.events.Close(); err != nil {
			a.logger.Warn("failed to close rabbitmq connection", sl.Err(err))
		}
	}
	if a.cache != nil {
		if err := a.cache.Close(); err != nil {
			a.logger.Warn("failed to close redis connection", sl.Err(err))
		}
	}
	if err := a.db.Close(); err != nil {
		a.logger.Warn("failed to close database", sl.Err(err))
	}
}

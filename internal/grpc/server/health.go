// Package server реализует gRPC-сервер проверки состояния сервиса (grpc.health.v1).
//
// HealthServer периодически опрашивает зависимости и выставляет статус
// SERVING или NOT_SERVING для общего сервиса "" и для каждой зависимости.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	"github.com/magabrotheeeer/car-inventory/internal/lib/sl"
)

// CheckFunc проверяет доступность зависимости.
type CheckFunc func(ctx context.Context) error

// HealthServer gRPC-сервер со стандартным сервисом health.
type HealthServer struct {
	log      *slog.Logger
	grpc     *grpc.Server
	health   *health.Server
	checks   map[string]CheckFunc
	interval time.Duration
}

// NewHealthServer создаёт сервер. checks задаёт именованные проверки зависимостей.
func NewHealthServer(log *slog.Logger, checks map[string]CheckFunc, interval time.Duration) *HealthServer {
	if interval <= 0 {
		interval = 10 * time.Second
	}
	hs := health.NewServer()
	srv := grpc.NewServer()
	healthpb.RegisterHealthServer(srv, hs)

	return &HealthServer{
		log:      log,
		grpc:     srv,
		health:   hs,
		checks:   checks,
		interval: interval,
	}
}

// Probe выполняет все проверки и обновляет статусы.
func (s *HealthServer) Probe(ctx context.Context) {
	overall := healthpb.HealthCheckResponse_SERVING
	for name, check := range s.checks {
		status := healthpb.HealthCheckResponse_SERVING
		if err := check(ctx); err != nil {
			s.log.Warn("health check failed", slog.String("dependency", name), sl.Err(err))
			status = healthpb.HealthCheckResponse_NOT_SERVING
			overall = healthpb.HealthCheckResponse_NOT_SERVING
		}
		s.health.SetServingStatus(name, status)
	}
	s.health.SetServingStatus("", overall)
}

// Serve принимает соединения на lis до отмены ctx.
func (s *HealthServer) Serve(ctx context.Context, lis net.Listener) error {
	const op = "grpc.server.Serve"

	s.Probe(ctx)
	go s.watch(ctx)

	errCh := make(chan error, 1)
	go func() {
		s.log.Info("gRPC health server starting", slog.String("address", lis.Addr().String()))
		errCh <- s.grpc.Serve(lis)
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, grpc.ErrServerStopped) {
			return fmt.Errorf("%s: %w", op, err)
		}
		return nil
	case <-ctx.Done():
		s.health.Shutdown()
		s.grpc.GracefulStop()
		return nil
	}
}

// ListenAndServe слушает addr и обслуживает запросы до отмены ctx.
func (s *HealthServer) ListenAndServe(ctx context.Context, addr string) error {
	const op = "grpc.server.ListenAndServe"
	lis, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return s.Serve(ctx, lis)
}

func (s *HealthServer) watch(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			probeCtx, cancel := context.WithTimeout(ctx, s.interval)
			s.Probe(probeCtx)
			cancel()
		}
	}
}

package server

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/test/bufconn"

	"github.com/magabrotheeeer/car-inventory/internal/grpc/client"
)

func startServer(t *testing.T, checks map[string]CheckFunc, interval time.Duration) *client.HealthClient {
	t.Helper()
	lis := bufconn.Listen(1024 * 1024)
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	srv := NewHealthServer(log, checks, interval)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Serve(ctx, lis) }()
	t.Cleanup(func() {
		cancel()
		assert.NoError(t, <-done)
	})

	c, err := client.NewHealthClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = c.Close() })
	return c
}

func TestHealthServer_AllServing(t *testing.T) {
	c := startServer(t, map[string]CheckFunc{
		"postgres": func(context.Context) error { return nil },
		"redis":    func(context.Context) error { return nil },
	}, time.Hour)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	for _, service := range []string{"", "postgres", "redis"} {
		ok, err := c.Serving(ctx, service)
		require.NoError(t, err, service)
		assert.True(t, ok, service)
	}

	resp, err := c.Check(ctx, "postgres")
	require.NoError(t, err)
	assert.Equal(t, healthpb.HealthCheckResponse_SERVING, resp.GetStatus())

	_, err = c.Serving(ctx, "unknown")
	assert.Error(t, err)
}

func TestHealthServer_FailingDependency(t *testing.T) {
	c := startServer(t, map[string]CheckFunc{
		"postgres": func(context.Context) error { return nil },
		"redis":    func(context.Context) error { return errors.New("connection refused") },
	}, time.Hour)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	ok, err := c.Serving(ctx, "")
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = c.Serving(ctx, "postgres")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = c.Serving(ctx, "redis")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestHealthServer_RecoversOnNextProbe(t *testing.T) {
	var healthy atomic.Bool
	c := startServer(t, map[string]CheckFunc{
		"postgres": func(context.Context) error {
			if healthy.Load() {
				return nil
			}
			return errors.New("down")
		},
	}, 20*time.Millisecond)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	ok, err := c.Serving(ctx, "")
	require.NoError(t, err)
	assert.False(t, ok)

	healthy.Store(true)
	assert.Eventually(t, func() bool {
		ok, err := c.Serving(ctx, "")
		return err == nil && ok
	}, 2*time.Second, 20*time.Millisecond)
}

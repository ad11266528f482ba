package storage

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/magabrotheeeer/car-inventory/internal/migrations"
	"github.com/magabrotheeeer/car-inventory/internal/models"
)

// setupTestDatabase поднимает контейнер PostgreSQL, применяет миграции
// и возвращает готовое хранилище.
func setupTestDatabase(t *testing.T) *Storage {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	ctx := context.Background()

	pgContainer, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second),
		),
	)
	require.NoError(t, err, "failed to start container")
	t.Cleanup(func() {
		if err := pgContainer.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %s", err)
		}
	})

	connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	storage, err := New(connStr)
	require.NoError(t, err, "failed to create storage")
	t.Cleanup(func() { _ = storage.Close() })

	migrationsPath, err := filepath.Abs("../../migrations")
	require.NoError(t, err)
	require.NoError(t, migrations.Run(storage.DB, migrationsPath))

	return storage
}

// testCar возвращает корректный автомобиль для вставки.
func testCar(brand, model string, year int, price string) models.Car {
	return models.Car{
		Brand:        brand,
		Model:        model,
		Year:         year,
		Price:        decimal.RequireFromString(price),
		FuelType:     models.FuelPetrol,
		Transmission: models.TransmissionManual,
		Mileage:      models.DefaultMileage,
	}
}

// seedCars вставляет автомобили и возвращает их в порядке вставки.
func seedCars(t *testing.T, s *Storage, cars ...models.Car) []*models.Car {
	t.Helper()
	result := make([]*models.Car, 0, len(cars))
	for _, c := range cars {
		created, err := s.CreateCar(context.Background(), c)
		require.NoError(t, err)
		result = append(result, created)
	}
	return result
}

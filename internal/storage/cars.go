package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/magabrotheeeer/car-inventory/internal/models"
)

const carColumns = `id, brand, model, year, price, fuel_type, transmission, mileage`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanCar(row rowScanner) (*models.Car, error) {
	var car models.Car
	if err := row.Scan(&car.ID, &car.Brand, &car.Model, &car.Year, &car.Price,
		&car.FuelType, &car.Transmission, &car.Mileage); err != nil {
		return nil, err
	}
	return &car, nil
}

// CreateCar вставляет автомобиль и возвращает его с назначенным ID.
func (s *Storage) CreateCar(ctx context.Context, car models.Car) (*models.Car, error) {
	const op = "storage.CreateCar"
	if err := checkCtx(ctx, op); err != nil {
		return nil, err
	}

	query := `INSERT INTO cars (brand, model, year, price, fuel_type, transmission, mileage)
			  VALUES ($1, $2, $3, $4, $5, $6, $7)
			  RETURNING ` + carColumns
	created, err := scanCar(s.DB.QueryRowContext(ctx, query,
		car.Brand, car.Model, car.Year, car.Price, car.FuelType, car.Transmission, car.Mileage))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return created, nil
}

// ReadCar возвращает автомобиль по ID или ErrCarNotFound.
func (s *Storage) ReadCar(ctx context.Context, id int64) (*models.Car, error) {
	const op = "storage.ReadCar"
	if err := checkCtx(ctx, op); err != nil {
		return nil, err
	}

	query := `SELECT ` + carColumns + ` FROM cars WHERE id = $1`
	car, err := scanCar(s.DB.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%s: %w", op, ErrCarNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return car, nil
}

// UpdateCar блокирует строку, передаёт текущее состояние в mutate и сохраняет результат
// в одной транзакции. Ошибка mutate откатывает транзакцию и возвращается как есть.
func (s *Storage) UpdateCar(ctx context.Context, id int64, mutate func(car *models.Car) error) (*models.Car, error) {
	const op = "storage.UpdateCar"
	if err := checkCtx(ctx, op); err != nil {
		return nil, err
	}

	var updated *models.Car
	err := s.WithTx(ctx, func(ctx context.Context, tx DBTX) error {
		car, err := scanCar(tx.QueryRowContext(ctx,
			`SELECT `+carColumns+` FROM cars WHERE id = $1 FOR UPDATE`, id))
		if errors.Is(err, sql.ErrNoRows) {
			return ErrCarNotFound
		}
		if err != nil {
			return err
		}

		if err := mutate(car); err != nil {
			return err
		}

		query := `UPDATE cars
				  SET brand = $1, model = $2, year = $3, price = $4,
				      fuel_type = $5, transmission = $6, mileage = $7, updated_at = NOW()
				  WHERE id = $8
				  RETURNING ` + carColumns
		updated, err = scanCar(tx.QueryRowContext(ctx, query,
			car.Brand, car.Model, car.Year, car.Price, car.FuelType, car.Transmission, car.Mileage, id))
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return updated, nil
}

// RemoveCar удаляет автомобиль по ID. Возвращает ErrCarNotFound, если строки не было.
func (s *Storage) RemoveCar(ctx context.Context, id int64) error {
	const op = "storage.RemoveCar"
	if err := checkCtx(ctx, op); err != nil {
		return err
	}

	result, err := s.DB.ExecContext(ctx, `DELETE FROM cars WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("%s: %w", op, ErrCarNotFound)
	}
	return nil
}

// ListCars возвращает автомобили по фильтру.
func (s *Storage) ListCars(ctx context.Context, filter models.CarFilter) ([]*models.Car, error) {
	const op = "storage.ListCars"
	if err := checkCtx(ctx, op); err != nil {
		return nil, err
	}

	query, args := buildListQuery(filter)
	rows, err := s.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	result := make([]*models.Car, 0)
	for rows.Next() {
		car, err := scanCar(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, car)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}

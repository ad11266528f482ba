// Package car содержит бизнес-логику работы с инвентарём автомобилей:
// проверку данных, сохранение, кэширование и публикацию событий.
package car

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/magabrotheeeer/car-inventory/internal/cache"
	"github.com/magabrotheeeer/car-inventory/internal/lib/sl"
	"github.com/magabrotheeeer/car-inventory/internal/lib/validation"
	"github.com/magabrotheeeer/car-inventory/internal/models"
)

// Repository определяет методы для работы с автомобилями в хранилище.
type Repository interface {
	// CreateCar сохраняет автомобиль и возвращает его с назначенным ID.
	CreateCar(ctx context.Context, car models.Car) (*models.Car, error)
	// ReadCar возвращает автомобиль по ID.
	ReadCar(ctx context.Context, id int64) (*models.Car, error)
	// UpdateCar применяет mutate к заблокированной записи в одной транзакции.
	UpdateCar(ctx context.Context, id int64, mutate func(car *models.Car) error) (*models.Car, error)
	// RemoveCar удаляет автомобиль по ID.
	RemoveCar(ctx context.Context, id int64) error
	// ListCars возвращает автомобили по фильтру.
	ListCars(ctx context.Context, filter models.CarFilter) ([]*models.Car, error)
}

// Cache описывает методы для кэширования данных.
type Cache interface {
	// Get пытается получить значение из кеша по ключу.
	Get(ctx context.Context, key string, result any) (bool, error)
	// Version возвращает версию ключа, которая меняется при каждой инвалидации.
	Version(ctx context.Context, key string) (int64, error)
	// SetIfVersion сохраняет значение, если версия ключа не изменилась.
	SetIfVersion(ctx context.Context, key string, version int64, value any) (bool, error)
	// Invalidate удаляет значение из кеша по ключу.
	Invalidate(ctx context.Context, key string) error
}

// Publisher публикует доменные события.
type Publisher interface {
	Publish(ctx context.Context, routingKey string, event any) error
}

// Service реализует операции над автомобилями.
// Ошибки данных возвращаются как validation.FieldErrors, отсутствие записи как storage.ErrCarNotFound.
type Service struct {
	repo      Repository
	cache     Cache
	events    Publisher
	validator *validation.CarValidator
	log       *slog.Logger
}

// NewService создает новый экземпляр Service. cache может быть nil, тогда кэширование отключено.
func NewService(repo Repository, c Cache, events Publisher, log *slog.Logger) *Service {
	if c == nil {
		c = nopCache{}
	}
	return &Service{
		repo:      repo,
		cache:     c,
		events:    events,
		validator: validation.NewCarValidator(),
		log:       log,
	}
}

// Create проверяет данные, подставляет значения по умолчанию и сохраняет автомобиль.
func (s *Service) Create(ctx context.Context, username string, req models.DummyCar) (*models.Car, error) {
	const op = "services.car.Create"

	car := models.NewCar()
	req.Apply(&car)
	if err := s.check(car, validation.Required(req)); err != nil {
		return nil, err
	}

	created, err := s.repo.CreateCar(ctx, car)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	s.log.Info("created new car", slog.Int64("id", created.ID), slog.String("username", username))

	s.publish(ctx, models.EventCarCreated, created.ID, created, username)
	return created, nil
}

// Read возвращает автомобиль по ID, используя кеш или репозиторий.
func (s *Service) Read(ctx context.Context, id int64) (*models.Car, error) {
	const op = "services.car.Read"
	key := cache.CarKey(id)

	var cached models.Car
	found, err := s.cache.Get(ctx, key, &cached)
	if err != nil {
		s.log.Warn("failed to read from cache", slog.String("key", key), sl.Err(err))
	}
	if found {
		return &cached, nil
	}

	// Версия читается до запроса в хранилище: если Update или Remove успеют
	// инвалидировать ключ, устаревшая запись не попадёт в кэш.
	version, verErr := s.cache.Version(ctx, key)
	if verErr != nil {
		s.log.Warn("failed to read cache version", slog.String("key", key), sl.Err(verErr))
	}

	car, err := s.repo.ReadCar(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if verErr == nil {
		stored, err := s.cache.SetIfVersion(ctx, key, version, car)
		if err != nil {
			s.log.Warn("failed to add to cache", slog.String("key", key), sl.Err(err))
		} else if !stored {
			s.log.Debug("skip stale cache fill", slog.String("key", key))
		}
	}
	return car, nil
}

// Update изменяет автомобиль. При partial=false обязательны те же поля, что и при создании,
// year и mileage сохраняют текущие значения, если не переданы.
// Слияние и проверка выполняются под блокировкой записи.
func (s *Service) Update(ctx context.Context, username string, id int64, req models.DummyCar, partial bool) (*models.Car, error) {
	const op = "services.car.Update"

	updated, err := s.repo.UpdateCar(ctx, id, func(car *models.Car) error {
		required := validation.FieldErrors{}
		if !partial {
			required = validation.Required(req)
		}
		req.Apply(car)
		return s.check(*car, required)
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	s.log.Info("updated car", slog.Int64("id", id), slog.String("username", username))

	s.invalidate(ctx, id)
	s.publish(ctx, models.EventCarUpdated, id, updated, username)
	return updated, nil
}

// Remove удаляет автомобиль по ID и инвалидирует кеш.
func (s *Service) Remove(ctx context.Context, username string, id int64) error {
	const op = "services.car.Remove"

	if err := s.repo.RemoveCar(ctx, id); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	s.log.Info("removed car", slog.Int64("id", id), slog.String("username", username))

	s.invalidate(ctx, id)
	s.publish(ctx, models.EventCarDeleted, id, nil, username)
	return nil
}

// List возвращает автомобили по фильтру.
func (s *Service) List(ctx context.Context, filter models.CarFilter) ([]*models.Car, error) {
	const op = "services.car.List"

	cars, err := s.repo.ListCars(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return cars, nil
}

// check объединяет ошибки обязательных полей с ошибками правил.
// Для поля без значения остаётся только сообщение об обязательности.
func (s *Service) check(car models.Car, required validation.FieldErrors) error {
	errs := validation.FieldErrors{}
	errs.Merge(required)
	for field, msgs := range s.validator.Validate(car) {
		if !required.Has(field) {
			errs[field] = append(errs[field], msgs...)
		}
	}
	return errs.Err()
}

func (s *Service) invalidate(ctx context.Context, id int64) {
	key := cache.CarKey(id)
	if err := s.cache.Invalidate(ctx, key); err != nil {
		s.log.Warn("failed to remove from cache", slog.String("key", key), sl.Err(err))
	}
}

func (s *Service) publish(ctx context.Context, key string, id int64, car *models.Car, username string) {
	event := models.CarEvent{
		Type:       key,
		CarID:      id,
		Car:        car,
		Username:   username,
		OccurredAt: time.Now().UTC(),
	}
	if err := s.events.Publish(ctx, key, event); err != nil {
		s.log.Warn("failed to publish event", slog.String("routing_key", key), sl.Err(err))
	}
}

type nopCache struct{}

func (nopCache) Get(context.Context, string, any) (bool, error) { return false, nil }
func (nopCache) Version(context.Context, string) (int64, error) { return 0, nil }
func (nopCache) SetIfVersion(context.Context, string, int64, any) (bool, error) {
	return false, nil
}
func (nopCache) Invalidate(context.Context, string) error { return nil }

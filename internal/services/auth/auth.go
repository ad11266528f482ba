// Package auth содержит логику бизнес-уровня для регистрации, входа и обновления токенов.
package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/go-playground/validator"

	"github.com/magabrotheeeer/car-inventory/internal/lib/jwt"
	"github.com/magabrotheeeer/car-inventory/internal/lib/password"
	"github.com/magabrotheeeer/car-inventory/internal/lib/sl"
	"github.com/magabrotheeeer/car-inventory/internal/lib/validation"
	"github.com/magabrotheeeer/car-inventory/internal/models"
	"github.com/magabrotheeeer/car-inventory/internal/storage"
)

// ErrInvalidCredentials общий ответ на неизвестного пользователя и неверный пароль.
var ErrInvalidCredentials = errors.New("invalid credentials")

const msgUserExists = "a user with that username already exists."

// UserRepository описывает контракт для работы с пользователями в базе данных.
type UserRepository interface {
	// RegisterUser сохраняет нового пользователя. Занятое имя возвращается как storage.ErrUserExists.
	RegisterUser(ctx context.Context, user models.User) (*models.User, error)

	// GetUserByUsername возвращает пользователя по имени или storage.ErrUserNotFound.
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)
}

// Publisher публикует доменные события.
type Publisher interface {
	Publish(ctx context.Context, routingKey string, event any) error
}

// RegisterRequest данные регистрации.
type RegisterRequest struct {
	Username string `json:"username" validate:"required,max=150,username" example:"alice"`
	Email    string `json:"email" validate:"required,email,max=254" example:"alice@example.com"`
	Password string `json:"password" validate:"required" example:"Str0ngP@ss"`
}

// LoginRequest данные входа.
type LoginRequest struct {
	Username string `json:"username" validate:"required" example:"alice"`
	Password string `json:"password" validate:"required" example:"Str0ngP@ss"`
}

// AuthService отвечает за регистрацию, вход и обновление access токена.
type AuthService struct {
	users    UserRepository
	jwtMaker jwt.Maker
	policy   password.Policy
	validate *validator.Validate
	events   Publisher
	log      *slog.Logger
}

// NewAuthService создает новый экземпляр AuthService.
func NewAuthService(users UserRepository, jwtMaker jwt.Maker, events Publisher, log *slog.Logger) *AuthService {
	return &AuthService{
		users:    users,
		jwtMaker: jwtMaker,
		policy:   password.DefaultPolicy(),
		validate: validation.New(),
		events:   events,
		log:      log,
	}
}

// Register проверяет данные, создаёт пользователя и выдаёт пару токенов.
// Ошибки данных возвращаются как validation.FieldErrors.
func (s *AuthService) Register(ctx context.Context, req RegisterRequest) (*models.User, models.TokenPair, error) {
	const op = "services.auth.Register"

	req.Username = strings.TrimSpace(req.Username)
	req.Email = strings.TrimSpace(req.Email)

	errs := validation.Struct(s.validate, req)
	if req.Password != "" {
		for _, problem := range s.policy.Check(req.Password, req.Username, req.Email) {
			errs.Add("password", problem)
		}
	}
	if err := errs.Err(); err != nil {
		return nil, models.TokenPair{}, err
	}

	hashed, err := password.GetHash(req.Password)
	if err != nil {
		return nil, models.TokenPair{}, fmt.Errorf("%s: %w", op, err)
	}

	user, err := s.users.RegisterUser(ctx, models.User{
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: hashed,
	})
	if errors.Is(err, storage.ErrUserExists) {
		return nil, models.TokenPair{}, validation.FieldErrors{"username": {msgUserExists}}
	}
	if err != nil {
		return nil, models.TokenPair{}, fmt.Errorf("%s: %w", op, err)
	}

	pair, err := s.jwtMaker.Issue(user.Identity())
	if err != nil {
		return nil, models.TokenPair{}, fmt.Errorf("%s: %w", op, err)
	}

	s.log.Info("user registered", slog.String("username", user.Username))
	s.publish(ctx, models.EventUserRegistered, models.UserEvent{
		Type:       models.EventUserRegistered,
		UserUID:    user.UUID,
		Username:   user.Username,
		Email:      user.Email,
		OccurredAt: time.Now().UTC(),
	})
	return user, pair, nil
}

// Login проверяет пароль пользователя и выдаёт новую пару токенов.
// Для неизвестного имени тоже выполняется сравнение bcrypt, чтобы время ответа не выдавало,
// существует ли пользователь.
func (s *AuthService) Login(ctx context.Context, req LoginRequest) (*models.User, models.TokenPair, error) {
	const op = "services.auth.Login"

	req.Username = strings.TrimSpace(req.Username)
	if err := validation.Struct(s.validate, req).Err(); err != nil {
		return nil, models.TokenPair{}, err
	}

	user, err := s.users.GetUserByUsername(ctx, req.Username)
	if errors.Is(err, storage.ErrUserNotFound) {
		_ = password.CompareDummy(req.Password)
		return nil, models.TokenPair{}, ErrInvalidCredentials
	}
	if err != nil {
		return nil, models.TokenPair{}, fmt.Errorf("%s: %w", op, err)
	}

	if err := password.CompareHash(user.PasswordHash, req.Password); err != nil {
		if !errors.Is(err, password.ErrMismatch) {
			s.log.Error("failed to compare password hash", sl.Op(op), sl.Err(err))
		}
		return nil, models.TokenPair{}, ErrInvalidCredentials
	}

	pair, err := s.jwtMaker.Issue(user.Identity())
	if err != nil {
		return nil, models.TokenPair{}, fmt.Errorf("%s: %w", op, err)
	}
	return user, pair, nil
}

// Refresh выпускает новый access токен по действующему refresh токену.
// Ошибки проверки токена возвращаются как jwt.ErrTokenExpired или jwt.ErrTokenInvalid.
func (s *AuthService) Refresh(_ context.Context, refreshToken string) (string, time.Time, error) {
	const op = "services.auth.Refresh"

	access, exp, err := s.jwtMaker.Refresh(refreshToken)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("%s: %w", op, err)
	}
	return access, exp, nil
}

func (s *AuthService) publish(ctx context.Context, key string, event any) {
	if err := s.events.Publish(ctx, key, event); err != nil {
		s.log.Warn("failed to publish event", slog.String("routing_key", key), sl.Err(err))
	}
}

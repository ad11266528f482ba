// Package jwt реализует выпуск и проверку пары JWT токенов (access + refresh).
//
// Оба токена подписываются HS256 общим секретом процесса и содержат
// идентичность пользователя, тип токена, jti и время истечения.
// Access живёт меньше refresh; refresh используется только для выпуска нового access.
package jwt

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/magabrotheeeer/car-inventory/internal/models"
)

// Issuer значение claim iss.
const Issuer = "car-inventory"

// Ошибки проверки токена. Вызывающая сторона трактует обе как «не аутентифицирован».
var (
	ErrTokenExpired = errors.New("token expired")
	ErrTokenInvalid = errors.New("invalid token")
)

// Maker описывает выпуск и проверку токенов.
type Maker interface {
	// Issue выпускает пару токенов для пользователя.
	Issue(identity models.Identity) (models.TokenPair, error)
	// Verify проверяет подпись, срок и тип токена.
	Verify(tokenStr string, want TokenType) (*CustomClaims, error)
	// Refresh выпускает новый access по действующему refresh.
	Refresh(refreshToken string) (string, time.Time, error)
}

// MakerImpl реализует Maker с секретным ключом и двумя временами жизни.
type MakerImpl struct {
	secretKey  []byte
	accessTTL  time.Duration
	refreshTTL time.Duration
	now        func() time.Time
}

// NewJWTMaker создаёт MakerImpl. access TTL должен быть строго меньше refresh TTL.
func NewJWTMaker(secretKey string, accessTTL, refreshTTL time.Duration) (*MakerImpl, error) {
	const op = "jwt.NewJWTMaker"
	if secretKey == "" {
		return nil, fmt.Errorf("%s: empty secret key", op)
	}
	if accessTTL <= 0 || refreshTTL <= 0 {
		return nil, fmt.Errorf("%s: token ttl must be positive", op)
	}
	if accessTTL >= refreshTTL {
		return nil, fmt.Errorf("%s: access ttl %s must be shorter than refresh ttl %s", op, accessTTL, refreshTTL)
	}
	return &MakerImpl{
		secretKey:  []byte(secretKey),
		accessTTL:  accessTTL,
		refreshTTL: refreshTTL,
		now:        time.Now,
	}, nil
}

// Issue выпускает пару токенов для пользователя.
func (m *MakerImpl) Issue(identity models.Identity) (models.TokenPair, error) {
	const op = "jwt.Issue"
	now := m.now()

	access, accessExp, err := m.sign(identity, TokenTypeAccess, now, m.accessTTL)
	if err != nil {
		return models.TokenPair{}, fmt.Errorf("%s: %w", op, err)
	}
	refresh, _, err := m.sign(identity, TokenTypeRefresh, now, m.refreshTTL)
	if err != nil {
		return models.TokenPair{}, fmt.Errorf("%s: %w", op, err)
	}
	return models.TokenPair{
		Access:          access,
		Refresh:         refresh,
		AccessExpiresAt: accessExp,
	}, nil
}

// Verify разбирает токен и проверяет подпись, метод, срок, издателя и тип.
// Возвращает ErrTokenExpired или ErrTokenInvalid.
func (m *MakerImpl) Verify(tokenStr string, want TokenType) (*CustomClaims, error) {
	const op = "jwt.Verify"
	claims := &CustomClaims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(_ *jwt.Token) (any, error) {
		return m.secretKey, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(Issuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(m.now),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, fmt.Errorf("%s: %w", op, ErrTokenExpired)
		}
		return nil, fmt.Errorf("%s: %w: %v", op, ErrTokenInvalid, err)
	}
	if !token.Valid || claims.TokenType != want || claims.UserUID == "" {
		return nil, fmt.Errorf("%s: %w", op, ErrTokenInvalid)
	}
	return claims, nil
}

// Refresh проверяет refresh-токен и выпускает новый access для той же идентичности.
// Сам refresh-токен не заменяется.
func (m *MakerImpl) Refresh(refreshToken string) (string, time.Time, error) {
	const op = "jwt.Refresh"
	claims, err := m.Verify(refreshToken, TokenTypeRefresh)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("%s: %w", op, err)
	}
	access, exp, err := m.sign(claims.Identity(), TokenTypeAccess, m.now(), m.accessTTL)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("%s: %w", op, err)
	}
	return access, exp, nil
}

func (m *MakerImpl) sign(identity models.Identity, typ TokenType, now time.Time, ttl time.Duration) (string, time.Time, error) {
	exp := now.Add(ttl)
	claims := CustomClaims{
		UserUID:   identity.UserUID,
		Username:  identity.Username,
		TokenType: typ,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   identity.UserUID,
			Issuer:    Issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(exp),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(m.secretKey)
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, exp, nil
}

package jwt

import (
	"github.com/golang-jwt/jwt/v5"

	"github.com/magabrotheeeer/car-inventory/internal/models"
)

// TokenType назначение токена.
type TokenType string

// Типы токенов пары.
const (
	TokenTypeAccess  TokenType = "access"
	TokenTypeRefresh TokenType = "refresh"
)

// CustomClaims описывает данные, хранящиеся в JWT.
type CustomClaims struct {
	UserUID              string    `json:"user_id"`
	Username             string    `json:"username"`
	TokenType            TokenType `json:"token_type"`
	jwt.RegisteredClaims           // ExpiresAt, IssuedAt, ID (jti), Subject, Issuer
}

// Identity возвращает идентичность пользователя, к которой привязан токен.
func (c *CustomClaims) Identity() models.Identity {
	return models.Identity{UserUID: c.UserUID, Username: c.Username}
}

// Package middlewarectx содержит HTTP middleware для проверки JWT токенов.
//
// JWTMiddleware пропускает публичные пути без проверки. Для остальных путей
// требует заголовок "Authorization: Bearer <access token>", проверяет подпись,
// срок и тип токена и кладёт идентичность пользователя в контекст запроса.
//
// В случае ошибки проверки возвращает HTTP 401 Unauthorized с сообщением об ошибке.
package middlewarectx

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/middleware"

	"github.com/magabrotheeeer/car-inventory/internal/http/response"
	"github.com/magabrotheeeer/car-inventory/internal/lib/jwt"
	"github.com/magabrotheeeer/car-inventory/internal/lib/sl"
	"github.com/magabrotheeeer/car-inventory/internal/models"
)

// Key тип для ключей контекста HTTP-запроса.
type Key string

const (
	// User ключ для имени пользователя в контексте
	User Key = "username"
	// UserUID ключ для идентификатора пользователя в контексте
	UserUID Key = "user_uid"
)

// Причины отказа для метрик.
const (
	ReasonMissing = "missing"
	ReasonExpired = "expired"
	ReasonInvalid = "invalid"
)

// Verifier проверяет токен ожидаемого типа.
type Verifier interface {
	Verify(tokenStr string, want jwt.TokenType) (*jwt.CustomClaims, error)
}

// FailureRecorder учитывает отказы аутентификации.
type FailureRecorder interface {
	AuthFailure(reason string)
}

// PublicPaths пути, доступные без токена. Путь с завершающей "*" задаёт префикс.
var PublicPaths = []string{
	"/register/",
	"/login/",
	"/token/refresh/",
	"/health",
	"/metrics",
	"/docs/*",
}

// IsPublic сообщает, доступен ли путь без аутентификации.
func IsPublic(path string, public []string) bool {
	for _, p := range public {
		if prefix, ok := strings.CutSuffix(p, "*"); ok {
			if strings.HasPrefix(path, prefix) {
				return true
			}
			continue
		}
		if path == p {
			return true
		}
	}
	return false
}

// JWTMiddleware возвращает HTTP middleware, который проверяет access токен в заголовке Authorization.
// failures может быть nil.
func JWTMiddleware(verifier Verifier, failures FailureRecorder, log *slog.Logger, public []string) func(http.Handler) http.Handler {
	reject := func(w http.ResponseWriter, r *http.Request, reason, msg string) {
		if failures != nil {
			failures.AuthFailure(reason)
		}
		response.Render(w, r, http.StatusUnauthorized, response.Error(msg))
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if IsPublic(r.URL.Path, public) {
				next.ServeHTTP(w, r)
				return
			}

			const op = "middlewarectx.JWTMiddleware"
			log := log.With(
				slog.String("op", op),
				slog.String("request_id", middleware.GetReqID(r.Context())),
			)

			tokenStr, ok := bearerToken(r.Header.Get("Authorization"))
			if !ok {
				log.Warn("missing or invalid authorization header")
				reject(w, r, ReasonMissing, "authentication credentials were not provided")
				return
			}

			claims, err := verifier.Verify(tokenStr, jwt.TokenTypeAccess)
			if errors.Is(err, jwt.ErrTokenExpired) {
				log.Warn("expired token", sl.Err(err))
				reject(w, r, ReasonExpired, jwt.ErrTokenExpired.Error())
				return
			}
			if err != nil {
				log.Warn("invalid token", sl.Err(err))
				reject(w, r, ReasonInvalid, jwt.ErrTokenInvalid.Error())
				return
			}

			next.ServeHTTP(w, r.WithContext(WithIdentity(r.Context(), claims.Identity())))
		})
	}
}

// WithIdentity кладёт идентичность пользователя в контекст.
func WithIdentity(ctx context.Context, identity models.Identity) context.Context {
	ctx = context.WithValue(ctx, User, identity.Username)
	return context.WithValue(ctx, UserUID, identity.UserUID)
}

// IdentityFromContext достаёт идентичность пользователя, положенную JWTMiddleware.
func IdentityFromContext(ctx context.Context) (models.Identity, bool) {
	username, _ := ctx.Value(User).(string)
	uid, _ := ctx.Value(UserUID).(string)
	if username == "" || uid == "" {
		return models.Identity{}, false
	}
	return models.Identity{UserUID: uid, Username: username}, true
}

func bearerToken(header string) (string, bool) {
	scheme, token, ok := strings.Cut(header, " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}

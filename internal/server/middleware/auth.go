package middleware

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/iudanet/gatekeeper/internal/server/cookies"
	"github.com/iudanet/gatekeeper/internal/server/jwt"
)

// Ключи контекста с данными аутентифицированного пользователя
const (
	UserIDKey contextKey = "user_id"
	EmailKey  contextKey = "email"
	RoleKey   contextKey = "role"
)

// Auth создает middleware для защищенных маршрутов: читает токен из
// session cookie, проверяет его и кладет claims в контекст.
// Маршруты sign-up/sign-in/sign-out им не оборачиваются.
func Auth(logger *slog.Logger, tokens *jwt.Service, cm *cookies.Manager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tokenString, ok := cm.Get(r, cookies.TokenCookieName)
			if !ok {
				logger.Warn("Missing session cookie")
				http.Error(w, "Unauthorized: missing token", http.StatusUnauthorized)
				return
			}

			claims, err := tokens.ValidateToken(tokenString)
			if err != nil {
				logger.Warn("Invalid session token", "error", err)
				http.Error(w, "Unauthorized: invalid token", http.StatusUnauthorized)
				return
			}

			ctx := context.WithValue(r.Context(), UserIDKey, claims.UserID)
			ctx = context.WithValue(ctx, EmailKey, claims.Email)
			ctx = context.WithValue(ctx, RoleKey, claims.Role)

			logger.Debug("User authenticated",
				"user_id", claims.UserID, "email", claims.Email)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// Package jwt issues and verifies the signed session tokens.
//
// Tokens expire 24 hours after issuance. Note that the session cookie
// carrying the token lives only 15 minutes (see the cookies package);
// the mismatch is documented behavior and is kept as is.
package jwt

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/iudanet/gatekeeper/internal/models"
)

const (
	// TokenTTL срок действия access token
	TokenTTL = 24 * time.Hour

	issuer = "gatekeeper"
)

// ErrInvalidToken возвращается при любой ошибке проверки токена.
// Намеренно не различает "истек" и "подделан", чтобы не давать
// вызывающей стороне oracle.
var ErrInvalidToken = errors.New("invalid token")

// Claims представляет JWT claims для нашего приложения
type Claims struct {
	UserID int64       `json:"user_id"`
	Email  string      `json:"email"`
	Role   models.Role `json:"role"`
	jwt.RegisteredClaims
}

// Service provides token generation and validation
type Service struct {
	secret []byte
	ttl    time.Duration
}

// NewService creates a new JWT service.
// secret should be a cryptographically secure random string.
func NewService(secret string) *Service {
	return &Service{
		secret: []byte(secret),
		ttl:    TokenTTL,
	}
}

// GenerateToken создает подписанный токен для пользователя
func (s *Service) GenerateToken(user *models.User) (string, error) {
	now := time.Now()

	claims := Claims{
		UserID: user.ID,
		Email:  user.Email,
		Role:   user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    issuer,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return tokenString, nil
}

// ValidateToken валидирует и парсит токен.
// Любая причина отказа (подпись, структура, срок действия)
// приводит к ErrInvalidToken.
func (s *Service) ValidateToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		// Проверяем что используется правильный алгоритм подписи
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}

	return claims, nil
}

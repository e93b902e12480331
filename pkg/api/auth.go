// Package api contains request and response types for the HTTP API.
package api

import "github.com/iudanet/gatekeeper/internal/models"

// SignUpRequest представляет запрос на регистрацию
type SignUpRequest struct {
	Name     string `json:"name" validate:"required,min=1,max=255"`
	Email    string `json:"email" validate:"required,email,max=255"`
	Password string `json:"password" validate:"required,min=8,max=72"`
	Role     string `json:"role,omitempty" validate:"omitempty,oneof=user admin"`
}

// SignInRequest представляет запрос на вход
type SignInRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// AuthResponse возвращается при успешном sign-up/sign-in
type AuthResponse struct {
	Message string            `json:"message"`
	User    models.PublicUser `json:"user"`
}

// MessageResponse представляет ответ с единственным сообщением
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse представляет ответ с ошибкой
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

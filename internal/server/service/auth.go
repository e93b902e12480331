// Package service implements the authentication use cases on top of
// the user storage and the password hasher.
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/iudanet/gatekeeper/internal/crypto"
	"github.com/iudanet/gatekeeper/internal/models"
	"github.com/iudanet/gatekeeper/internal/server/storage"
)

// Ошибки уровня бизнес-логики
var (
	// ErrUserAlreadyExists пользователь с таким email уже зарегистрирован
	ErrUserAlreadyExists = errors.New("user already exists")

	// ErrUserNotFound пользователь с таким email не найден
	ErrUserNotFound = errors.New("user not found")

	// ErrInvalidCredentials пароль не совпадает с сохраненным хешем
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// AuthService реализует сценарии регистрации и аутентификации
type AuthService struct {
	logger *slog.Logger
	users  storage.UserStorage
}

// NewAuthService creates a new authentication service
func NewAuthService(logger *slog.Logger, users storage.UserStorage) *AuthService {
	return &AuthService{
		logger: logger,
		users:  users,
	}
}

// CreateUser регистрирует нового пользователя.
// Возвращает ErrUserAlreadyExists, если email уже занят.
// role по умолчанию — user.
func (s *AuthService) CreateUser(ctx context.Context, name, email, password string, role models.Role) (*models.User, error) {
	if role == "" {
		role = models.RoleUser
	}

	// Предварительная проверка. Гонку двух конкурентных регистраций
	// с одним email разрешает уникальный индекс в хранилище.
	_, err := s.users.GetUserByEmail(ctx, email)
	if err == nil {
		return nil, ErrUserAlreadyExists
	}
	if !errors.Is(err, storage.ErrUserNotFound) {
		return nil, fmt.Errorf("failed to check existing user: %w", err)
	}

	hash, err := crypto.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		Role:         role,
	}

	created, err := s.users.CreateUser(ctx, user)
	if err != nil {
		if errors.Is(err, storage.ErrUserAlreadyExists) {
			return nil, ErrUserAlreadyExists
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	s.logger.InfoContext(ctx, "user created",
		slog.String("email", created.Email),
		slog.String("role", string(created.Role)))

	return created, nil
}

// AuthenticateUser проверяет учетные данные пользователя.
// Внутри различает ErrUserNotFound и ErrInvalidCredentials;
// наружу (в HTTP) обе ошибки должны отображаться одинаково.
func (s *AuthService) AuthenticateUser(ctx context.Context, email, password string) (*models.User, error) {
	user, err := s.users.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, storage.ErrUserNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	if !crypto.VerifyPassword(password, user.PasswordHash) {
		return nil, ErrInvalidCredentials
	}

	s.logger.InfoContext(ctx, "user authenticated",
		slog.String("email", user.Email),
		slog.String("role", string(user.Role)))

	return user, nil
}

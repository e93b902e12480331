package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/iudanet/gatekeeper/internal/models"
	"github.com/iudanet/gatekeeper/internal/server/cookies"
	"github.com/iudanet/gatekeeper/internal/server/jwt"
	"github.com/iudanet/gatekeeper/internal/server/service"
	"github.com/iudanet/gatekeeper/internal/validation"
	"github.com/iudanet/gatekeeper/pkg/api"
)

// AuthHandler обрабатывает запросы авторизации
type AuthHandler struct {
	logger  *slog.Logger
	auth    *service.AuthService
	tokens  *jwt.Service
	cookies *cookies.Manager
}

// NewAuthHandler создает новый handler для авторизации
func NewAuthHandler(logger *slog.Logger, auth *service.AuthService, tokens *jwt.Service, cm *cookies.Manager) *AuthHandler {
	return &AuthHandler{
		logger:  logger,
		auth:    auth,
		tokens:  tokens,
		cookies: cm,
	}
}

// SignUp обрабатывает POST /api/v1/auth/sign-up
// Регистрация нового пользователя
func (h *AuthHandler) SignUp(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req api.SignUpRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.ErrorContext(ctx, "failed to decode sign-up request", slog.Any("error", err))
		h.sendError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if err := validation.Struct(&req); err != nil {
		h.logger.WarnContext(ctx, "invalid sign-up request", slog.Any("error", err))
		h.sendError(w, err.Error(), http.StatusBadRequest)
		return
	}

	user, err := h.auth.CreateUser(ctx, req.Name, req.Email, req.Password, models.Role(req.Role))
	if err != nil {
		if errors.Is(err, service.ErrUserAlreadyExists) {
			h.logger.WarnContext(ctx, "user already exists", slog.String("email", req.Email))
			h.sendError(w, "user with this email already exists", http.StatusConflict)
			return
		}
		h.logger.ErrorContext(ctx, "failed to create user", slog.Any("error", err))
		h.sendError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	if err := h.issueSession(w, user); err != nil {
		h.logger.ErrorContext(ctx, "failed to issue token", slog.Any("error", err))
		h.sendError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	resp := api.AuthResponse{
		Message: "User registered successfully",
		User:    user.Public(),
	}

	h.sendJSON(w, resp, http.StatusCreated)
}

// SignIn обрабатывает POST /api/v1/auth/sign-in
// Аутентификация пользователя
func (h *AuthHandler) SignIn(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req api.SignInRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.ErrorContext(ctx, "failed to decode sign-in request", slog.Any("error", err))
		h.sendError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if err := validation.Struct(&req); err != nil {
		h.logger.WarnContext(ctx, "invalid sign-in request", slog.Any("error", err))
		h.sendError(w, err.Error(), http.StatusBadRequest)
		return
	}

	user, err := h.auth.AuthenticateUser(ctx, req.Email, req.Password)
	if err != nil {
		// Обе причины отказа отдаются одним и тем же телом,
		// чтобы не раскрывать, существует ли email (user enumeration).
		// Внутренние логи при этом различают их.
		switch {
		case errors.Is(err, service.ErrUserNotFound):
			h.logger.WarnContext(ctx, "sign-in failed: user not found", slog.String("email", req.Email))
			h.sendError(w, "invalid email or password", http.StatusUnauthorized)
			return
		case errors.Is(err, service.ErrInvalidCredentials):
			h.logger.WarnContext(ctx, "sign-in failed: invalid password", slog.String("email", req.Email))
			h.sendError(w, "invalid email or password", http.StatusUnauthorized)
			return
		default:
			h.logger.ErrorContext(ctx, "failed to authenticate user", slog.Any("error", err))
			h.sendError(w, "internal server error", http.StatusInternalServerError)
			return
		}
	}

	if err := h.issueSession(w, user); err != nil {
		h.logger.ErrorContext(ctx, "failed to issue token", slog.Any("error", err))
		h.sendError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	resp := api.AuthResponse{
		Message: "Signed in successfully",
		User:    user.Public(),
	}

	h.sendJSON(w, resp, http.StatusOK)
}

// SignOut обрабатывает POST /api/v1/auth/sign-out
// Выход пользователя: просто сбрасывает session cookie.
// Отвечает 200 независимо от того, была ли сессия.
func (h *AuthHandler) SignOut(w http.ResponseWriter, r *http.Request) {
	h.cookies.Clear(w, cookies.TokenCookieName, nil)

	resp := api.MessageResponse{
		Message: "Signed out successfully",
	}

	h.sendJSON(w, resp, http.StatusOK)
}

// issueSession подписывает токен для пользователя и прикрепляет его
// к ответу в session cookie
func (h *AuthHandler) issueSession(w http.ResponseWriter, user *models.User) error {
	token, err := h.tokens.GenerateToken(user)
	if err != nil {
		return err
	}

	h.cookies.Set(w, cookies.TokenCookieName, token, nil)

	return nil
}

// sendJSON отправляет JSON ответ
func (h *AuthHandler) sendJSON(w http.ResponseWriter, data interface{}, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.logger.Error("failed to encode JSON response", slog.Any("error", err))
	}
}

// sendError отправляет JSON ответ с ошибкой
func (h *AuthHandler) sendError(w http.ResponseWriter, message string, statusCode int) {
	resp := api.ErrorResponse{
		Error:   http.StatusText(statusCode),
		Message: message,
	}
	h.sendJSON(w, resp, statusCode)
}

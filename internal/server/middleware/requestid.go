package middleware

import (
	"context"
	"net/http"

	"github.com/google/uuid"
)

type contextKey string

// requestIDKey ключ контекста для request ID
const requestIDKey contextKey = "request_id"

// RequestIDHeader имя заголовка с идентификатором запроса
const RequestIDHeader = "X-Request-Id"

// RequestID создает middleware, присваивающее каждому запросу UUID.
// Идентификатор кладется в контекст и дублируется в заголовок ответа.
// Если клиент прислал свой X-Request-Id, он сохраняется.
func RequestID() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := r.Header.Get(RequestIDHeader)
			if id == "" {
				id = uuid.New().String()
			}

			w.Header().Set(RequestIDHeader, id)

			ctx := context.WithValue(r.Context(), requestIDKey, id)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequestIDFromContext возвращает request ID из контекста,
// пустую строку если его там нет
func RequestIDFromContext(ctx context.Context) string {
	if id, ok := ctx.Value(requestIDKey).(string); ok {
		return id
	}
	return ""
}

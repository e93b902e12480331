// Package cookies manages the session cookie that transports the
// signed token between server and browser.
package cookies

import (
	"net/http"
	"time"
)

// TokenCookieName имя cookie с токеном сессии
const TokenCookieName = "token"

// MaxAge срок жизни cookie. Короче срока жизни самого токена (24h) —
// расхождение задокументировано и сохранено намеренно.
const MaxAge = 15 * time.Minute

// Manager строит опции session cookie в зависимости от окружения
type Manager struct {
	secure bool
}

// NewManager creates a cookie manager.
// secure should be true in production so the cookie is only sent over TLS.
func NewManager(secure bool) *Manager {
	return &Manager{secure: secure}
}

// Options представляет переопределяемые атрибуты cookie
type Options struct {
	MaxAge   time.Duration
	HTTPOnly *bool
}

// base возвращает cookie с базовыми атрибутами:
// HttpOnly, SameSite=Strict, Secure в production, MaxAge 15 минут.
func (m *Manager) base(name, value string) *http.Cookie {
	return &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		MaxAge:   int(MaxAge.Seconds()),
		HttpOnly: true,
		Secure:   m.secure,
		SameSite: http.SameSiteStrictMode,
	}
}

func (m *Manager) apply(c *http.Cookie, overrides *Options) *http.Cookie {
	if overrides == nil {
		return c
	}
	if overrides.MaxAge != 0 {
		c.MaxAge = int(overrides.MaxAge.Seconds())
	}
	if overrides.HTTPOnly != nil {
		c.HttpOnly = *overrides.HTTPOnly
	}
	return c
}

// Set прикрепляет cookie к ответу, накладывая overrides поверх базовых опций
func (m *Manager) Set(w http.ResponseWriter, name, value string, overrides *Options) {
	http.SetCookie(w, m.apply(m.base(name, value), overrides))
}

// Clear просит клиента удалить cookie (немедленное истечение)
func (m *Manager) Clear(w http.ResponseWriter, name string, overrides *Options) {
	c := m.apply(m.base(name, ""), overrides)
	c.MaxAge = -1
	c.Expires = time.Unix(0, 0)
	http.SetCookie(w, c)
}

// Get читает значение cookie из входящего запроса.
// Возвращает пустую строку и false, если cookie отсутствует.
func (m *Manager) Get(r *http.Request, name string) (string, bool) {
	c, err := r.Cookie(name)
	if err != nil {
		return "", false
	}
	return c.Value, true
}

// Package config загружает конфигурацию сервера из переменных окружения.
package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Environments
const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

// DefaultJWTSecret заглушка, используемая когда JWT_SECRET не задан.
// НЕБЕЗОПАСНА для production: любой, кто знает это значение, может
// подделывать токены. Приложение громко логирует её использование
// при старте, но не отказывается работать — поведение сохранено
// как задокументированное.
const DefaultJWTSecret = "insecure-dev-secret-change-me"

// Config хранит конфигурацию сервера
type Config struct {
	// Address адрес и порт HTTP сервера
	Address string

	// DatabaseDSN строка подключения к БД.
	// postgres:// или postgresql:// — PostgreSQL (pgx),
	// всё остальное трактуется как путь к файлу SQLite.
	DatabaseDSN string

	// JWTSecret секрет для подписи токенов
	JWTSecret string

	// Environment окружение: development или production.
	// Влияет на Secure-атрибут cookie и формат логов.
	Environment string
}

// Load читает конфигурацию из окружения.
// Файл .env, если он есть, подхватывается автоматически.
func Load() *Config {
	// .env опционален, ошибка отсутствия файла игнорируется
	_ = godotenv.Load()

	return &Config{
		Address:     getEnv("ADDRESS", ":8080"),
		DatabaseDSN: getEnv("DATABASE_DSN", "gatekeeper.db"),
		JWTSecret:   getEnv("JWT_SECRET", DefaultJWTSecret),
		Environment: getEnv("ENVIRONMENT", EnvDevelopment),
	}
}

// IsProduction reports whether the server runs in production mode.
func (c *Config) IsProduction() bool {
	return c.Environment == EnvProduction
}

// UsesDefaultSecret reports whether the insecure placeholder secret is in use.
func (c *Config) UsesDefaultSecret() bool {
	return c.JWTSecret == DefaultJWTSecret
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

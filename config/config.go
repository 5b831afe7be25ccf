package config

import (
	"os"
	"strconv"
)

// Config carries all runtime settings, loaded from the environment once at
// startup. Defaults are suitable for local development.
type Config struct {
	Port        string
	Env         string // "development" or "production"
	PostgresURI string
	RedisAddr   string

	JWTSecret string

	UploadDir string
	BaseURL   string

	FrontendURL string

	AdminEmail    string
	AdminPassword string

	RateLimitMax int
}

func Load() *Config {
	cfg := &Config{
		Port:          getEnv("PORT", "5000"),
		Env:           getEnv("APP_ENV", "development"),
		PostgresURI:   os.Getenv("POSTGRES_URI"),
		RedisAddr:     os.Getenv("REDIS_ADDR"),
		JWTSecret:     os.Getenv("JWT_SECRET"),
		UploadDir:     getEnv("UPLOAD_DIR", "uploads/images"),
		BaseURL:       os.Getenv("BACKEND_BASE_URL"),
		FrontendURL:   getEnv("FRONTEND_URL", "http://localhost:3000"),
		AdminEmail:    getEnv("ADMIN_EMAIL", "admin@example.com"),
		AdminPassword: getEnv("ADMIN_PASSWORD", "admin123"),
	}

	if cfg.Production() {
		cfg.RateLimitMax = getEnvInt("RATE_LIMIT_MAX", 100)
	} else {
		cfg.RateLimitMax = getEnvInt("RATE_LIMIT_MAX", 1000)
	}

	return cfg
}

func (c *Config) Production() bool { return c.Env == "production" }

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

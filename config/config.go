// Package config centralizes environment-backed configuration. Everything is
// read once at startup and treated as read-only afterwards; there is no
// reload path.
//
// Database candidates are tried in a fixed priority order:
//
//	DATABASE_URL       — direct connection string
//	DATABASE_POOL_URL  — pooled connection string
//	POSTGRES_URL       — generic URL
//
// Unset candidates are skipped. With none set the store reports itself
// unavailable explicitly — there are no built-in fallback credentials.
package config

import (
	"os"
	"strconv"
	"time"

	"solcraft-backend/storage"
)

type Config struct {
	Port           string
	AllowedOrigins string

	// Session tokens
	JWTSecret string
	TokenTTL  time.Duration

	// Persistence
	DBCandidates   []storage.Candidate
	ConnectTimeout time.Duration

	// SMTP (optional; email is best-effort)
	SMTPHost string
	SMTPPort int
	SMTPUser string
	SMTPPass string
	SMTPFrom string
}

// Load reads the environment and applies defaults.
func Load() Config {
	cfg := Config{
		Port:           getEnv("PORT", "5000"),
		AllowedOrigins: getEnv("ALLOWED_ORIGINS", "http://localhost:3000"),
		JWTSecret:      getEnv("JWT_SECRET", ""),
		TokenTTL:       time.Duration(getEnvInt("TOKEN_TTL_HOURS", 24)) * time.Hour,
		ConnectTimeout: time.Duration(getEnvInt("DB_CONNECT_TIMEOUT_SECONDS", 5)) * time.Second,
		SMTPHost:       getEnv("SMTP_HOST", "smtp.gmail.com"),
		SMTPPort:       getEnvInt("SMTP_PORT", 587),
		SMTPUser:       getEnv("SMTP_USER", ""),
		SMTPPass:       getEnv("SMTP_PASS", ""),
		SMTPFrom:       getEnv("SMTP_FROM", ""),
	}

	for _, c := range []storage.Candidate{
		{Name: "direct", DSN: os.Getenv("DATABASE_URL")},
		{Name: "pooled", DSN: os.Getenv("DATABASE_POOL_URL")},
		{Name: "generic", DSN: os.Getenv("POSTGRES_URL")},
	} {
		if c.DSN != "" {
			cfg.DBCandidates = append(cfg.DBCandidates, c)
		}
	}

	return cfg
}

func getEnv(key, def string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v, ok := os.LookupEnv(key); ok {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

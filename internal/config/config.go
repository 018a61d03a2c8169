package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

// DefaultJWTSecret is the development fallback. Production deployments set
// JWT_SECRET explicitly; main logs a warning when the fallback is in use.
const DefaultJWTSecret = "arogyamitra-secret-key-2026"

type Config struct {
	// Server
	Port        string
	CORSOrigins string

	// Database (single SQLite file)
	DBPath string

	// JWT
	JWTSecret string
	// JWTExpiry of zero issues tokens without an exp claim: a session then
	// stays valid until the user row disappears. Expiry is opt-in via
	// JWT_EXPIRY (e.g. "168h").
	JWTExpiry time.Duration

	// Gemini provider
	GeminiAPIKey string
	GeminiAPIURL string
	GeminiModel  string
	AITimeout    time.Duration
}

func Load() *Config {
	// .env is optional; real env vars take precedence.
	_ = godotenv.Load()

	return &Config{
		Port:        getEnv("PORT", "3000"),
		CORSOrigins: getEnv("CORS_ORIGINS", "*"),

		DBPath: getEnv("DB_PATH", "arogyamitra.db"),

		JWTSecret: getEnv("JWT_SECRET", DefaultJWTSecret),
		JWTExpiry: parseDuration(os.Getenv("JWT_EXPIRY"), 0),

		GeminiAPIKey: getEnv("GEMINI_API_KEY", ""),
		GeminiAPIURL: getEnv("GEMINI_API_URL", "https://generativelanguage.googleapis.com/v1beta"),
		GeminiModel:  getEnv("GEMINI_MODEL", "gemini-2.0-flash"),
		AITimeout:    parseDuration(getEnv("AI_TIMEOUT", "60s"), 60*time.Second),
	}
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func parseDuration(s string, fallback time.Duration) time.Duration {
	if s == "" {
		return fallback
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return fallback
	}
	return d
}

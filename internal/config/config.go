package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

const defaultTokenTTL = 24 * time.Hour

// Config holds the runtime settings shared by the server and client binaries.
type Config struct {
	Addr         string        // HTTP listen address for the server.
	DBPath       string        // Path of the sqlite database file.
	JWTSecret    string        // HMAC secret for session tokens.
	TokenTTL     time.Duration // Session token lifetime.
	AssistantURL string        // Optional chat-assistant endpoint; empty disables the feature.
}

// Load reads configuration from a .env file (if present) and the environment.
func Load() Config {
	_ = godotenv.Load()

	cfg := Config{
		Addr:         getEnv("ADDR", ":8080"),
		DBPath:       getEnv("DB_PATH", "quiz.db"),
		JWTSecret:    getEnv("JWT_SECRET", "dev-secret-change-me"),
		AssistantURL: os.Getenv("ASSISTANT_URL"),
	}

	ttl, err := time.ParseDuration(getEnv("TOKEN_TTL", defaultTokenTTL.String()))
	if err != nil || ttl <= 0 {
		ttl = defaultTokenTTL
	}
	cfg.TokenTTL = ttl

	return cfg
}

func getEnv(key, defaultValue string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return defaultValue
}

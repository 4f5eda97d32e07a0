package config

import (
	"testing"
	"time"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{"ADDR", "DB_PATH", "JWT_SECRET", "TOKEN_TTL", "ASSISTANT_URL"} {
		t.Setenv(key, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg := Load()
	if cfg.Addr != ":8080" {
		t.Fatalf("Addr = %q", cfg.Addr)
	}
	if cfg.DBPath != "quiz.db" {
		t.Fatalf("DBPath = %q", cfg.DBPath)
	}
	if cfg.TokenTTL != 24*time.Hour {
		t.Fatalf("TokenTTL = %v", cfg.TokenTTL)
	}
	if cfg.AssistantURL != "" {
		t.Fatalf("AssistantURL = %q, want empty", cfg.AssistantURL)
	}
}

func TestLoadFromEnvironment(t *testing.T) {
	clearEnv(t)
	t.Setenv("ADDR", ":9090")
	t.Setenv("DB_PATH", "/tmp/other.db")
	t.Setenv("TOKEN_TTL", "45m")
	t.Setenv("ASSISTANT_URL", "http://assistant.local/ask")

	cfg := Load()
	if cfg.Addr != ":9090" || cfg.DBPath != "/tmp/other.db" {
		t.Fatalf("cfg = %+v", cfg)
	}
	if cfg.TokenTTL != 45*time.Minute {
		t.Fatalf("TokenTTL = %v", cfg.TokenTTL)
	}
	if cfg.AssistantURL != "http://assistant.local/ask" {
		t.Fatalf("AssistantURL = %q", cfg.AssistantURL)
	}
}

func TestLoadRejectsBadTTL(t *testing.T) {
	clearEnv(t)
	t.Setenv("TOKEN_TTL", "soon")

	if cfg := Load(); cfg.TokenTTL != 24*time.Hour {
		t.Fatalf("TokenTTL = %v, want the default", cfg.TokenTTL)
	}
}

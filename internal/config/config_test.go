package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("ENV", "")
	t.Setenv("LOG_LEVEL", "")
	t.Setenv("EXECUTE_MODE", "")
	t.Setenv("N8N_BASE_URL", "")
	cfg := Load()
	if cfg.Port != "8080" {
		t.Fatalf("expected default port, got %s", cfg.Port)
	}
	if cfg.Env != "development" {
		t.Fatalf("expected default env, got %s", cfg.Env)
	}
	if cfg.ExecuteMode != "rules" {
		t.Fatalf("expected default execute mode, got %s", cfg.ExecuteMode)
	}
	if cfg.N8NBaseURL != "" {
		t.Fatalf("expected empty n8n base url, got %s", cfg.N8NBaseURL)
	}
	if cfg.SimulateThinking {
		t.Fatalf("expected simulated thinking disabled by default")
	}
	if cfg.RelayTimeout != 15*time.Second {
		t.Fatalf("expected default relay timeout, got %s", cfg.RelayTimeout)
	}
	if len(cfg.CORSAllowedOrigins) != 1 || cfg.CORSAllowedOrigins[0] != "*" {
		t.Fatalf("expected wildcard CORS default, got %v", cfg.CORSAllowedOrigins)
	}
	if cfg.IsProduction() {
		t.Fatalf("development env should not report production")
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("ENV", "production")
	t.Setenv("EXECUTE_MODE", "LLM")
	t.Setenv("SIMULATE_THINKING", "true")
	t.Setenv("THINKING_MAX_DELAY", "5s")
	t.Setenv("N8N_BASE_URL", "https://n8n.example.com")
	t.Setenv("N8N_WEBHOOK_SECRET", "s3cret")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://automari.com, https://demo.automari.com")
	cfg := Load()
	if cfg.Port != "9090" {
		t.Fatalf("expected override port, got %s", cfg.Port)
	}
	if !cfg.IsProduction() {
		t.Fatalf("expected production env")
	}
	if cfg.ExecuteMode != "llm" {
		t.Fatalf("expected normalized execute mode, got %s", cfg.ExecuteMode)
	}
	if !cfg.SimulateThinking {
		t.Fatalf("expected simulated thinking enabled")
	}
	if cfg.ThinkingMaxDelay != 5*time.Second {
		t.Fatalf("expected thinking delay override, got %s", cfg.ThinkingMaxDelay)
	}
	if cfg.N8NWebhookSecret != "s3cret" {
		t.Fatalf("expected webhook secret override")
	}
	if len(cfg.CORSAllowedOrigins) != 2 || cfg.CORSAllowedOrigins[1] != "https://demo.automari.com" {
		t.Fatalf("expected trimmed CORS origins, got %v", cfg.CORSAllowedOrigins)
	}
}

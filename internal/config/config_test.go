package config

import "testing"

func TestGetEnv(t *testing.T) {
	t.Setenv("CFG_VALUE", "custom")
	if got := getEnv("CFG_VALUE", "default"); got != "custom" {
		t.Fatalf("getEnv returned %q, want custom", got)
	}

	// Empty environment value should fall back to default
	t.Setenv("CFG_EMPTY", "")
	if got := getEnv("CFG_EMPTY", "fallback"); got != "fallback" {
		t.Fatalf("getEnv returned %q, want fallback", got)
	}
}

func TestGetEnvInt(t *testing.T) {
	t.Setenv("CFG_INT", "480")
	if got := getEnvInt("CFG_INT", 420); got != 480 {
		t.Fatalf("getEnvInt returned %d, want 480", got)
	}

	t.Setenv("CFG_INT", "not-a-number")
	if got := getEnvInt("CFG_INT", 420); got != 420 {
		t.Fatalf("getEnvInt returned %d, want fallback 420", got)
	}

	t.Setenv("CFG_INT", "")
	if got := getEnvInt("CFG_INT", 420); got != 420 {
		t.Fatalf("getEnvInt returned %d, want fallback 420", got)
	}
}

func TestLoad(t *testing.T) {
	// Ensure defaults when env vars are empty.
	t.Setenv("PORT", "")
	t.Setenv("LOG_LEVEL", "")
	t.Setenv("DATASET_SOURCE", "")
	t.Setenv("DATASET_PATH", "")
	t.Setenv("DATASET_STRICT", "")
	t.Setenv("DATABASE_URL", "")
	t.Setenv("TARGET_SLEEP_MINUTES", "")
	t.Setenv("QUOTES_PATH", "")
	t.Setenv("OPENAI_API_KEY", "")
	t.Setenv("OPENAI_INSIGHTS_MODEL", "")

	cfg := Load()
	if cfg.Port != "8080" || cfg.LogLevel != "info" {
		t.Fatalf("defaults not applied: %+v", cfg)
	}
	if cfg.DatasetSource != SourceCSV || cfg.DatasetPath == "" {
		t.Fatalf("dataset defaults not applied: %+v", cfg)
	}
	if !cfg.DatasetStrict {
		t.Fatalf("expected strict loading by default")
	}
	if cfg.TargetSleepMinutes != 420 {
		t.Fatalf("expected default target 420, got %d", cfg.TargetSleepMinutes)
	}

	// Custom values override defaults
	t.Setenv("PORT", "9090")
	t.Setenv("DATASET_SOURCE", "postgres")
	t.Setenv("DATASET_STRICT", "false")
	t.Setenv("DATABASE_URL", "postgres://example")
	t.Setenv("TARGET_SLEEP_MINUTES", "450")
	t.Setenv("OPENAI_API_KEY", "key")
	t.Setenv("OPENAI_INSIGHTS_MODEL", "model")

	cfg = Load()
	if cfg.Port != "9090" || cfg.DatasetSource != SourcePostgres || cfg.DatasetStrict {
		t.Fatalf("env overrides not applied: %+v", cfg)
	}
	if cfg.DatabaseURL != "postgres://example" || cfg.TargetSleepMinutes != 450 {
		t.Fatalf("env overrides not applied: %+v", cfg)
	}
	if cfg.OpenAIAPIKey != "key" || cfg.OpenAIInsightsModel != "model" {
		t.Fatalf("openai env overrides missing: %+v", cfg)
	}
}

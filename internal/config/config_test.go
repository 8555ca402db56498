package config

import "testing"

func TestNew_Defaults(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	t.Setenv("DB_HOST", "")
	t.Setenv("DEFAULT_LANGUAGE", "")

	cfg := New()

	if cfg.DBHost != "localhost" {
		t.Fatalf("expected default db host, got %q", cfg.DBHost)
	}
	if cfg.DefaultLanguage != "en" {
		t.Fatalf("expected default language en, got %q", cfg.DefaultLanguage)
	}
	if cfg.DatabaseURL == "" {
		t.Fatalf("expected assembled database url")
	}
}

func TestNew_EnvOverrides(t *testing.T) {
	t.Setenv("DATABASE_URL", "host=db port=5432")
	t.Setenv("SUPPORTED_LANGUAGES", "en, fr ,de")
	t.Setenv("RATE_LIMIT_REQUESTS", "25")
	t.Setenv("ENABLE_REDIS", "false")

	cfg := New()

	if cfg.DatabaseURL != "host=db port=5432" {
		t.Fatalf("expected env database url, got %q", cfg.DatabaseURL)
	}
	if len(cfg.SupportedLanguages) != 3 || cfg.SupportedLanguages[1] != "fr" {
		t.Fatalf("expected trimmed language list, got %v", cfg.SupportedLanguages)
	}
	if cfg.RateLimitRequests != 25 {
		t.Fatalf("expected overridden rate limit, got %d", cfg.RateLimitRequests)
	}
	if cfg.EnableRedis {
		t.Fatalf("expected redis to be disabled")
	}
}

package config

import (
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("DB_DRIVER", "")
	t.Setenv("MATCH_CONFIDENCE_SAME_COLOR_SAME_TYPE", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.DBDriver != "mysql" {
		t.Errorf("DBDriver = %q, want mysql", cfg.DBDriver)
	}
	if cfg.ConfidenceSameColorSameType != 98 || cfg.ConfidenceSameColorDifferentType != 95 ||
		cfg.ConfidenceDifferentColorSameType != 92 || cfg.ConfidenceDifferentColorDifferentType != 90 {
		t.Errorf("unexpected default confidence scores: %+v", cfg)
	}
	if cfg.ChatDefaultUserID != 1 {
		t.Errorf("ChatDefaultUserID = %d, want 1", cfg.ChatDefaultUserID)
	}
	if cfg.UploadMaxBytes != 5*1024*1024 {
		t.Errorf("UploadMaxBytes = %d", cfg.UploadMaxBytes)
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("DB_DRIVER", "SQLite")
	t.Setenv("LLM_TIMEOUT_SEC", "7")
	t.Setenv("ALLOWED_ORIGINS", "http://a.test, http://b.test")
	t.Setenv("PROFILE_REQUIRE_FULL_SUM", "true")
	t.Setenv("GENAI_API_KEY", "fallback-key")
	t.Setenv("OPENAI_API_KEY", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.DBDriver != "sqlite" {
		t.Errorf("DBDriver = %q, want sqlite", cfg.DBDriver)
	}
	if cfg.LLMTimeout != 7*time.Second {
		t.Errorf("LLMTimeout = %v", cfg.LLMTimeout)
	}
	if len(cfg.AllowedOrigins) != 2 || cfg.AllowedOrigins[1] != "http://b.test" {
		t.Errorf("AllowedOrigins = %v", cfg.AllowedOrigins)
	}
	if !cfg.ProfileRequireFullSum {
		t.Error("ProfileRequireFullSum should be true")
	}
	if cfg.OpenAIAPIKey != "fallback-key" {
		t.Errorf("OpenAIAPIKey = %q", cfg.OpenAIAPIKey)
	}
}

func TestLoad_UnknownDriver(t *testing.T) {
	t.Setenv("DB_DRIVER", "oracle")

	if _, err := Load(); err == nil {
		t.Fatal("expected error for unsupported driver")
	}
}

package config

import (
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.LogLevel != "info" {
		t.Errorf("LogLevel: got %q, want %q", cfg.LogLevel, "info")
	}
	if cfg.CredentialsFile != "credentials.json" {
		t.Errorf("CredentialsFile: got %q, want %q", cfg.CredentialsFile, "credentials.json")
	}
	if cfg.MaxDurationSeconds != 300 {
		t.Errorf("MaxDurationSeconds: got %d, want 300", cfg.MaxDurationSeconds)
	}
	if cfg.SearchLimit != 10 {
		t.Errorf("SearchLimit: got %d, want 10", cfg.SearchLimit)
	}
	if cfg.MaxRecommendations != 5 {
		t.Errorf("MaxRecommendations: got %d, want 5", cfg.MaxRecommendations)
	}
	if cfg.CacheTTL != time.Hour {
		t.Errorf("CacheTTL: got %v, want %v", cfg.CacheTTL, time.Hour)
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("BGM_LOG_LEVEL", "debug")
	t.Setenv("BGM_CREDENTIALS_FILE", "/etc/bgm/creds.json")
	t.Setenv("BGM_MAX_DURATION", "120")
	t.Setenv("BGM_SEARCH_LIMIT", "3")
	t.Setenv("BGM_CACHE_TTL_MINUTES", "5")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel: got %q, want %q", cfg.LogLevel, "debug")
	}
	if cfg.CredentialsFile != "/etc/bgm/creds.json" {
		t.Errorf("CredentialsFile: got %q", cfg.CredentialsFile)
	}
	if cfg.MaxDurationSeconds != 120 {
		t.Errorf("MaxDurationSeconds: got %d, want 120", cfg.MaxDurationSeconds)
	}
	if cfg.SearchLimit != 3 {
		t.Errorf("SearchLimit: got %d, want 3", cfg.SearchLimit)
	}
	if cfg.CacheTTL != 5*time.Minute {
		t.Errorf("CacheTTL: got %v, want 5m", cfg.CacheTTL)
	}
}

func TestLoad_RejectsMalformedNumbers(t *testing.T) {
	tests := []struct {
		key   string
		value string
	}{
		{"BGM_MAX_DURATION", "not-a-number"},
		{"BGM_SEARCH_LIMIT", "0"},
		{"BGM_MAX_RESULTS", "-5"},
	}

	for _, tc := range tests {
		t.Run(tc.key+"="+tc.value, func(t *testing.T) {
			t.Setenv(tc.key, tc.value)
			if _, err := Load(); err == nil {
				t.Errorf("Load accepted %s=%s", tc.key, tc.value)
			}
		})
	}
}

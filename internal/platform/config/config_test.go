package config

import (
	"os"
	"testing"
)

// clearEnv unsets all COURSE_ environment variables for a clean test.
func clearEnv(t *testing.T) {
	t.Helper()
	envVars := []string{
		"COURSE_SERVER_PORT",
		"COURSE_SERVER_HOST",
		"COURSE_CONTENT_SOURCE",
		"COURSE_CACHE_URL",
		"COURSE_QUIZ_INSTANCE_TTL",
		"COURSE_QUIZ_FORMS_BASE_URL",
		"COURSE_QUIZ_SUBMIT_ENABLED",
		"COURSE_LOG_LEVEL",
		"COURSE_LOG_FORMAT",
	}
	for _, v := range envVars {
		_ = os.Unsetenv(v)
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Server.Port != 8080 {
		t.Errorf("Server.Port = %d, want 8080", cfg.Server.Port)
	}
	if cfg.Server.Host != "0.0.0.0" {
		t.Errorf("Server.Host = %q, want 0.0.0.0", cfg.Server.Host)
	}
	if cfg.Content.Source != "data/content.json" {
		t.Errorf("Content.Source = %q, want data/content.json", cfg.Content.Source)
	}
	if cfg.Cache.URL != "" {
		t.Errorf("Cache.URL = %q, want empty (in-memory answer state)", cfg.Cache.URL)
	}
	if cfg.Quiz.InstanceTTL != 120 {
		t.Errorf("Quiz.InstanceTTL = %d, want 120", cfg.Quiz.InstanceTTL)
	}
	if !cfg.Quiz.SubmitEnabled {
		t.Error("Quiz.SubmitEnabled = false, want true by default")
	}
	if cfg.Log.Level != "info" || cfg.Log.Format != "json" {
		t.Errorf("Log = %+v, want info/json", cfg.Log)
	}
}

func TestLoad_Overrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("COURSE_SERVER_PORT", "9090")
	t.Setenv("COURSE_CONTENT_SOURCE", "https://example.com/data/content.json")
	t.Setenv("COURSE_CACHE_URL", "redis://localhost:6379")
	t.Setenv("COURSE_QUIZ_INSTANCE_TTL", "30")
	t.Setenv("COURSE_QUIZ_SUBMIT_ENABLED", "false")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Server.Port != 9090 {
		t.Errorf("Server.Port = %d, want 9090", cfg.Server.Port)
	}
	if cfg.Content.Source != "https://example.com/data/content.json" {
		t.Errorf("Content.Source = %q", cfg.Content.Source)
	}
	if cfg.Cache.URL != "redis://localhost:6379" {
		t.Errorf("Cache.URL = %q", cfg.Cache.URL)
	}
	if cfg.Quiz.InstanceTTL != 30 {
		t.Errorf("Quiz.InstanceTTL = %d, want 30", cfg.Quiz.InstanceTTL)
	}
	if cfg.Quiz.SubmitEnabled {
		t.Error("Quiz.SubmitEnabled = true, want false")
	}
}

func TestLoad_InvalidIntFallsBack(t *testing.T) {
	clearEnv(t)
	t.Setenv("COURSE_SERVER_PORT", "not-a-number")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Server.Port != 8080 {
		t.Errorf("Server.Port = %d, want fallback 8080", cfg.Server.Port)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults-valid", func(c *Config) {}, false},
		{"missing-source", func(c *Config) { c.Content.Source = "" }, true},
		{"zero-ttl", func(c *Config) { c.Quiz.InstanceTTL = 0 }, true},
		{"negative-ttl", func(c *Config) { c.Quiz.InstanceTTL = -1 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			cfg, err := Load()
			if err != nil {
				t.Fatalf("Load() error = %v", err)
			}
			tt.mutate(cfg)

			err = cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestEnvBool(t *testing.T) {
	tests := []struct {
		value string
		want  bool
	}{
		{"true", true},
		{"TRUE", true},
		{"1", true},
		{"false", false},
		{"0", false},
		{"yes", false},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			t.Setenv("COURSE_TEST_BOOL", tt.value)
			if got := envBool("COURSE_TEST_BOOL", false); got != tt.want {
				t.Errorf("envBool(%q) = %v, want %v", tt.value, got, tt.want)
			}
		})
	}
}

// Package config loads application configuration from environment
// variables. All variables use the COURSE_ prefix; a .env file in the
// working directory is read first when present.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds all application configuration.
type Config struct {
	Server  ServerConfig
	Content ContentConfig
	Cache   CacheConfig
	Quiz    QuizConfig
	Log     LogConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port int
	Host string
}

// ContentConfig holds content document settings.
type ContentConfig struct {
	// Source is a filesystem path or http(s) URL of the content
	// document (JSON or YAML).
	Source string
}

// CacheConfig holds Redis settings. An empty URL keeps quiz answer state
// in process memory.
type CacheConfig struct {
	URL string
}

// QuizConfig holds quiz evaluation settings.
type QuizConfig struct {
	// InstanceTTL is how long an answer state survives in Redis,
	// in minutes.
	InstanceTTL int
	// FormsBaseURL is the external form-processing endpoint base;
	// empty selects the hosted default.
	FormsBaseURL string
	// SubmitEnabled turns forwarding of field values to the external
	// sink on or off.
	SubmitEnabled bool
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string
	Format string
}

// Load reads configuration from the environment.
func Load() (*Config, error) {
	// Best-effort: absence of a .env file is not an error.
	_ = godotenv.Load()

	cfg := &Config{
		Server: ServerConfig{
			Port: envInt("COURSE_SERVER_PORT", 8080),
			Host: envStr("COURSE_SERVER_HOST", "0.0.0.0"),
		},
		Content: ContentConfig{
			Source: envStr("COURSE_CONTENT_SOURCE", "data/content.json"),
		},
		Cache: CacheConfig{
			URL: envStr("COURSE_CACHE_URL", ""),
		},
		Quiz: QuizConfig{
			InstanceTTL:   envInt("COURSE_QUIZ_INSTANCE_TTL", 120),
			FormsBaseURL:  envStr("COURSE_QUIZ_FORMS_BASE_URL", ""),
			SubmitEnabled: envBool("COURSE_QUIZ_SUBMIT_ENABLED", true),
		},
		Log: LogConfig{
			Level:  envStr("COURSE_LOG_LEVEL", "info"),
			Format: envStr("COURSE_LOG_FORMAT", "json"),
		},
	}

	return cfg, nil
}

// Validate checks that required configuration is present.
func (c *Config) Validate() error {
	if c.Content.Source == "" {
		return fmt.Errorf("COURSE_CONTENT_SOURCE is required")
	}
	if c.Quiz.InstanceTTL <= 0 {
		return fmt.Errorf("COURSE_QUIZ_INSTANCE_TTL must be positive, got %d", c.Quiz.InstanceTTL)
	}
	return nil
}

func envStr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		return strings.EqualFold(v, "true") || v == "1"
	}
	return fallback
}

package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"mdpress/internal/document"
	"mdpress/internal/editor"
	"mdpress/internal/pdf"
)

// Log output formats.
const (
	LogFormatText = "text"
	LogFormatJSON = "json"
)

// Config holds all configuration for the application.
type Config struct {
	APIPort       string
	DBPath        string
	LogLevel      slog.Level
	LogFormat     string
	PDFServiceURL string
	PDFTimeout    time.Duration
	DebounceDelay time.Duration
	DraftKey      string
	AnchorPolicy  document.AnchorPolicy
}

// Load reads configuration from environment variables and returns a Config struct.
// It applies defaults for optional fields and validates the rest.
// If a .env file exists in the current directory or project root, it will be loaded automatically.
// Environment variables already set take precedence over .env file values.
func Load() (*Config, error) {
	// Try to load .env file (ignore error if it doesn't exist)
	_ = godotenv.Load() // Try current directory

	// Walk up a few levels to find a project-level .env
	wd, err := os.Getwd()
	if err == nil {
		dir := wd
		for i := 0; i < 5; i++ { // Limit search depth
			envPath := filepath.Join(dir, ".env")
			if _, err := os.Stat(envPath); err == nil {
				_ = godotenv.Load(envPath)
				break
			}
			parent := filepath.Dir(dir)
			if parent == dir {
				break // Reached filesystem root
			}
			dir = parent
		}
	}

	cfg := &Config{
		APIPort:       getEnv("API_PORT", "9000"),
		DBPath:        getEnv("DB_PATH", "./data/mdpress.db"),
		LogFormat:     strings.ToLower(getEnv("LOG_FORMAT", LogFormatText)),
		PDFServiceURL: getEnv("PDF_SERVICE_URL", pdf.DefaultServiceURL),
		DraftKey:      getEnv("DRAFT_KEY", editor.DefaultKey),
	}

	if err := cfg.LogLevel.UnmarshalText([]byte(getEnv("LOG_LEVEL", "info"))); err != nil {
		return nil, fmt.Errorf("LOG_LEVEL must be debug, info, warn or error: %w", err)
	}

	if cfg.LogFormat != LogFormatText && cfg.LogFormat != LogFormatJSON {
		return nil, fmt.Errorf("LOG_FORMAT must be %q or %q, got %q", LogFormatText, LogFormatJSON, cfg.LogFormat)
	}

	// A zero timeout waits for the PDF service as long as it takes
	if cfg.PDFTimeout, err = getDuration("PDF_TIMEOUT", 0); err != nil {
		return nil, err
	}
	if cfg.DebounceDelay, err = getDuration("DEBOUNCE_DELAY", editor.DefaultDelay); err != nil {
		return nil, err
	}
	if cfg.DebounceDelay <= 0 {
		return nil, fmt.Errorf("DEBOUNCE_DELAY must be greater than 0")
	}

	policy, err := document.ParseAnchorPolicy(getEnv("ANCHOR_POLICY", string(document.AnchorSuffix)))
	if err != nil {
		return nil, fmt.Errorf("ANCHOR_POLICY: %w", err)
	}
	cfg.AnchorPolicy = policy

	// Create the data directory if it doesn't exist
	dataDir := filepath.Dir(cfg.DBPath)
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	return cfg, nil
}

// getEnv gets an environment variable or returns a default value.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getDuration parses a Go duration such as "300ms" from the environment.
func getDuration(key string, defaultValue time.Duration) (time.Duration, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("%s must be a valid duration: %w", key, err)
	}
	if d < 0 {
		return 0, fmt.Errorf("%s must not be negative", key)
	}
	return d, nil
}

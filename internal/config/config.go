// Package config loads cellwatch configuration from layered sources.
// Priority: environment variables > local config > global config > defaults.
//
// Configuration is read once at startup and never written back: threshold
// and webhook changes made through the session commands live only for that
// session.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// WebhookEnvVar seeds the webhook URL the same way the notebook extension
// reads it, taking precedence over config files.
const WebhookEnvVar = "JUPYTER_WATCHDOG_WEBHOOK"

// Configuration holds the cellwatch startup configuration.
type Configuration struct {
	// WebhookURL is the Discord-style webhook target. Empty disables the
	// webhook sink.
	WebhookURL string `koanf:"webhook_url" validate:"omitempty,startswith=http"`

	// ThresholdSeconds arms the watchdog at startup; 0 leaves it disabled.
	ThresholdSeconds float64 `koanf:"threshold_seconds" validate:"gte=0"`

	// WebhookTimeoutSeconds caps each outbound webhook call.
	WebhookTimeoutSeconds int `koanf:"webhook_timeout_seconds" validate:"min=1,max=60"`
}

// Load loads configuration from global, local, and environment sources.
func Load(localConfigPath string) (*Configuration, error) {
	k := koanf.New(".")

	// Apply defaults first
	for key, value := range GetDefaults() {
		k.Set(key, value)
	}

	// Load global config if it exists
	homeDir, err := os.UserHomeDir()
	if err == nil {
		globalPath := filepath.Join(homeDir, ".cellwatch", "config.json")
		if _, err := os.Stat(globalPath); err == nil {
			if err := k.Load(file.Provider(globalPath), json.Parser()); err != nil {
				return nil, fmt.Errorf("failed to load global config: %w", err)
			}
		}
	}

	// Load local config if it exists
	if localConfigPath != "" {
		if _, err := os.Stat(localConfigPath); err == nil {
			if err := k.Load(file.Provider(localConfigPath), json.Parser()); err != nil {
				return nil, fmt.Errorf("failed to load local config: %w", err)
			}
		}
	}

	// Override with environment variables (highest priority)
	k.Load(env.Provider("CELLWATCH_", ".", envTransform), nil)
	if url := os.Getenv(WebhookEnvVar); url != "" {
		k.Set("webhook_url", url)
	}

	var cfg Configuration
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	validate := validator.New()
	if err := validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

// envTransform converts environment variable names to config keys.
// Example: CELLWATCH_THRESHOLD_SECONDS -> threshold_seconds
func envTransform(s string) string {
	return strings.ToLower(strings.TrimPrefix(s, "CELLWATCH_"))
}

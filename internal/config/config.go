// Package config resolves console configuration from the environment.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config carries the tunable settings for the console. Every field has a
// working default so a bare `brandstudio serve` starts with just an API key.
type Config struct {
	// ListenAddr is the address the local HTTP API binds to.
	ListenAddr string `env:"BRANDSTUDIO_LISTEN_ADDR" envDefault:"127.0.0.1:8473"`

	// TextModel handles strategy generation and social drafting.
	TextModel string `env:"BRANDSTUDIO_TEXT_MODEL" envDefault:"gemini-2.5-flash"`

	// ImageModel handles image generation and editing.
	ImageModel string `env:"BRANDSTUDIO_IMAGE_MODEL" envDefault:"gemini-2.5-flash-image"`

	// VideoModel handles asynchronous video generation.
	VideoModel string `env:"BRANDSTUDIO_VIDEO_MODEL" envDefault:"veo-2.0-generate-001"`

	// PollInterval is the fixed delay between video job status checks.
	PollInterval time.Duration `env:"BRANDSTUDIO_POLL_INTERVAL" envDefault:"5s"`

	// MaxPollAttempts bounds video job polling. Zero preserves the default
	// behavior of polling until the job reaches a terminal state.
	MaxPollAttempts int `env:"BRANDSTUDIO_MAX_POLL_ATTEMPTS" envDefault:"0"`

	// ThinkingBudget is the reasoning token budget for strategy generation.
	ThinkingBudget int32 `env:"BRANDSTUDIO_THINKING_BUDGET" envDefault:"4096"`
}

// Load parses the configuration from environment variables.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse config from environment: %w", err)
	}
	if cfg.PollInterval <= 0 {
		return Config{}, fmt.Errorf("poll interval must be positive, got %s", cfg.PollInterval)
	}
	if cfg.MaxPollAttempts < 0 {
		return Config{}, fmt.Errorf("max poll attempts must be >= 0, got %d", cfg.MaxPollAttempts)
	}
	return cfg, nil
}

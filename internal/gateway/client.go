// Package gateway wraps the hosted generation provider behind a small
// surface: text generation (optionally with reasoning budget or web-search
// grounding), schema-constrained JSON, image generation/editing/analysis,
// and asynchronous video jobs.
package gateway

import (
	"context"
	"fmt"

	"github.com/jalvarado/brandstudio/internal/poller"
	"github.com/rs/zerolog/log"
	"google.golang.org/genai"
)

// Config selects the models and polling behavior for a Gateway.
type Config struct {
	TextModel  string
	ImageModel string
	VideoModel string

	// Poll controls video job polling. A zero Interval uses
	// poller.DefaultInterval; MaxAttempts zero polls until terminal.
	Poll poller.Config

	// ThinkingBudget is the reasoning token budget applied to strategy-grade
	// text generation. Zero disables explicit thinking configuration.
	ThinkingBudget int32
}

// Gateway is a client for the remote generation provider.
type Gateway struct {
	client *genai.Client
	cfg    Config
}

// New creates a Gateway backed by the Gemini API.
func New(ctx context.Context, apiKey string, cfg Config) (*Gateway, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create generation client: %w", err)
	}

	if cfg.TextModel == "" {
		cfg.TextModel = DefaultTextModel
	}
	if cfg.ImageModel == "" {
		cfg.ImageModel = DefaultImageModel
	}
	if cfg.VideoModel == "" {
		cfg.VideoModel = DefaultVideoModel
	}

	log.Debug().
		Str("text_model", cfg.TextModel).
		Str("image_model", cfg.ImageModel).
		Str("video_model", cfg.VideoModel).
		Msg("Gateway initialized")

	return &Gateway{client: client, cfg: cfg}, nil
}

// Client exposes the underlying SDK client for credential validation.
func (g *Gateway) Client() *genai.Client {
	return g.client
}

// TextModel returns the configured text model name.
func (g *Gateway) TextModel() string {
	return g.cfg.TextModel
}

package main

import (
	"context"

	"github.com/jalvarado/brandstudio/internal/auth"
	"github.com/jalvarado/brandstudio/internal/cli"
	"github.com/jalvarado/brandstudio/internal/config"
	"github.com/jalvarado/brandstudio/internal/console"
	"github.com/jalvarado/brandstudio/internal/gateway"
	"github.com/jalvarado/brandstudio/internal/logging"
	"github.com/jalvarado/brandstudio/internal/poller"
	"github.com/rs/zerolog/log"
)

// bootstrap wires the common startup path: logging, config, credential
// resolution and validation, and the gateway. Any failure here is fatal;
// nothing useful can run without a validated key.
func bootstrap(ctx context.Context) (*console.Session, *gateway.Gateway, config.Config) {
	logging.Init()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	apiKey, err := auth.GetAPIKey()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to get API key")
	}

	gw, err := gateway.New(ctx, apiKey, gateway.Config{
		TextModel:  cfg.TextModel,
		ImageModel: cfg.ImageModel,
		VideoModel: cfg.VideoModel,
		Poll: poller.Config{
			Interval:    cfg.PollInterval,
			MaxAttempts: cfg.MaxPollAttempts,
		},
		ThinkingBudget: cfg.ThinkingBudget,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create generation gateway")
	}

	if err := auth.ValidateAPIKey(ctx, gw.Client(), gw.TextModel()); err != nil {
		cli.HandleValidationError(err)
	}
	log.Info().Msg("API key validated")

	return console.NewSession(gw), gw, cfg
}

package console

import (
	"context"
	"errors"
	"fmt"

	"github.com/jalvarado/brandstudio/internal/assets"
	"github.com/jalvarado/brandstudio/internal/campaign"
	"github.com/rs/zerolog/log"
)

// StrategyScreen generates the strategy document and activates the campaign
// the other screens feed on.
type StrategyScreen struct {
	screenState
	gen   Generator
	store *campaign.Store

	brandName    string
	goals        string
	strategyText string
}

// StrategyResult is what the screen renders after a run.
type StrategyResult struct {
	StrategyText string             `json:"strategyText"`
	Campaign     *campaign.Campaign `json:"campaign,omitempty"`
}

// Generate runs the full strategy flow: generate the document with a
// reasoning budget, then extract and activate a campaign from it. Extraction
// failure is logged and skipped: the strategy text is still returned and the
// store is left untouched, so a previously active campaign survives.
func (s *StrategyScreen) Generate(ctx context.Context, brandName, goals string) (*StrategyResult, error) {
	if err := s.begin(); err != nil {
		return nil, err
	}
	defer s.end()

	if brandName == "" {
		return nil, fmt.Errorf("brand name is required")
	}

	prompt, err := assets.RenderStrategy(assets.StrategyParams{BrandName: brandName, Goals: goals})
	if err != nil {
		return nil, err
	}

	text, err := s.gen.GenerateText(ctx, prompt, true)
	if err != nil {
		return nil, fmt.Errorf("strategy generation: %w", err)
	}

	s.mu.Lock()
	s.brandName = brandName
	s.goals = goals
	s.strategyText = text
	s.mu.Unlock()

	result := &StrategyResult{StrategyText: text}

	c, err := campaign.Extract(ctx, s.gen, brandName, text)
	if err != nil {
		var parseErr *campaign.ParseError
		if errors.As(err, &parseErr) {
			log.Error().Err(err).Msg("Campaign extraction returned a malformed payload; skipping activation")
			return result, nil
		}
		log.Error().Err(err).Msg("Campaign extraction request failed; skipping activation")
		return result, nil
	}

	s.store.Replace(c)
	result.Campaign = c
	return result, nil
}

// State returns the screen's current inputs and result for rendering.
func (s *StrategyScreen) State() (brandName, goals, strategyText string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.brandName, s.goals, s.strategyText
}

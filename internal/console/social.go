package console

import (
	"context"
	"fmt"

	"github.com/jalvarado/brandstudio/internal/assets"
	"github.com/jalvarado/brandstudio/internal/campaign"
	"github.com/jalvarado/brandstudio/internal/gateway"
)

// SocialScreen drafts platform posts and runs grounded trend searches. Its
// hook field is auto-filled once from the active campaign's first hook.
type SocialScreen struct {
	screenState
	gen   Generator
	store *campaign.Store

	hook     string
	lastPost string
}

// hookFromCampaign derives the default hook.
func hookFromCampaign(c *campaign.Campaign) string {
	if len(c.SocialHooks) == 0 {
		return ""
	}
	return c.SocialHooks[0]
}

// Hook returns the screen's hook field after applying auto-fill.
func (s *SocialScreen) Hook() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.autoFill(s.store, &s.hook, hookFromCampaign)
	return s.hook
}

// SetHook records a user edit.
func (s *SocialScreen) SetHook(hook string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.hook = hook
}

// LastPost returns the most recent drafted post, or "".
func (s *SocialScreen) LastPost() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastPost
}

// Draft writes a post for the given platform, building on the hook field and
// whatever campaign context is active.
func (s *SocialScreen) Draft(ctx context.Context, platform, hook string) (string, error) {
	if err := s.begin(); err != nil {
		return "", err
	}
	defer s.end()

	if platform == "" {
		return "", fmt.Errorf("platform is required")
	}
	if hook == "" {
		hook = s.Hook()
	}

	params := assets.SocialParams{Platform: platform, Hook: hook}
	if c, _ := s.store.Active(); c != nil {
		params.BrandName = c.BrandName
		params.TargetAudience = c.TargetAudience
	}

	prompt, err := assets.RenderSocial(params)
	if err != nil {
		return "", err
	}

	post, err := s.gen.GenerateText(ctx, prompt, false)
	if err != nil {
		return "", fmt.Errorf("social draft: %w", err)
	}

	s.mu.Lock()
	s.lastPost = post
	s.mu.Unlock()

	return post, nil
}

// Trends runs a web-grounded search for current platform trends. The result
// is transient: it is returned for the current render and not stored.
func (s *SocialScreen) Trends(ctx context.Context, platform string) (*gateway.GroundingResult, error) {
	if err := s.begin(); err != nil {
		return nil, err
	}
	defer s.end()

	if platform == "" {
		return nil, fmt.Errorf("platform is required")
	}

	params := assets.TrendsParams{Platform: platform}
	if c, _ := s.store.Active(); c != nil {
		params.BrandName = c.BrandName
		params.TargetAudience = c.TargetAudience
	}

	prompt, err := assets.RenderTrends(params)
	if err != nil {
		return nil, err
	}

	return s.gen.GenerateGrounded(ctx, prompt)
}

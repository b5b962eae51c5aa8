package campaign

import (
	"sync"

	"github.com/rs/zerolog/log"
)

// Store holds at most one active Campaign. The only write operation is a
// wholesale replace; consumers read the shared value and use the version
// counter to notice replacement. Last writer wins.
type Store struct {
	mu       sync.RWMutex
	campaign *Campaign
	version  uint64
}

// NewStore returns an empty Store.
func NewStore() *Store {
	return &Store{}
}

// Replace installs c as the active campaign, discarding any previous one.
func (s *Store) Replace(c *Campaign) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.campaign = c
	s.version++

	log.Info().
		Str("brand", c.BrandName).
		Int("social_hooks", len(c.SocialHooks)).
		Uint64("version", s.version).
		Msg("Campaign activated")
}

// Active returns the current campaign (nil when none has been activated)
// and the store version at the time of the read.
func (s *Store) Active() (*Campaign, uint64) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.campaign, s.version
}

package console

import (
	"sync"

	"github.com/jalvarado/brandstudio/internal/campaign"
)

// screenState carries the per-screen busy flag and the campaign version last
// observed by this screen. Embedding controllers hold its mutex while
// touching their own local fields.
type screenState struct {
	mu          sync.Mutex
	busy        bool
	seenVersion uint64
}

// begin marks the screen busy. Returns ErrBusy when a request from this
// screen is still outstanding.
func (s *screenState) begin() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.busy {
		return ErrBusy
	}
	s.busy = true
	return nil
}

// end returns the screen to idle. Every flow ends here, success or failure,
// so the screen is always retryable.
func (s *screenState) end() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.busy = false
}

// Busy reports whether a request is outstanding on this screen.
func (s *screenState) Busy() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.busy
}

// autoFill performs the one-shot default-population contract: when the store
// version has advanced since this screen last looked, and the screen's local
// field is currently empty, the campaign-derived value is copied in. A field
// the user has already edited is never clobbered, and later edits to the
// field never write back to the campaign.
//
// Callers must hold s.mu.
func (s *screenState) autoFill(store *campaign.Store, field *string, derive func(*campaign.Campaign) string) {
	c, version := store.Active()
	if version == s.seenVersion {
		return
	}
	s.seenVersion = version

	if c != nil && *field == "" {
		*field = derive(c)
	}
}

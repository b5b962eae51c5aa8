// Package poller implements a fixed-interval polling loop for long-running
// remote operations such as video generation jobs.
package poller

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
)

// DefaultInterval is the fixed delay between status checks.
const DefaultInterval = 5 * time.Second

// Config controls a polling loop.
type Config struct {
	// Interval is the fixed delay before each status re-query.
	// Zero falls back to DefaultInterval.
	Interval time.Duration

	// MaxAttempts bounds the number of re-queries. Zero means unbounded:
	// the loop runs until the operation is done, the refresh fails, or the
	// context is cancelled. Unbounded is the default; callers that want a
	// ceiling set one explicitly.
	MaxAttempts int
}

// Wait drives op to completion. done reports whether op is terminal; refresh
// re-queries the remote operation and returns its latest state. The initial
// op is checked before any delay, so an operation that completes on submit
// never waits. Each re-query is preceded by exactly one interval sleep.
func Wait[T any](ctx context.Context, cfg Config, op T, done func(T) bool, refresh func(context.Context, T) (T, error)) (T, error) {
	interval := cfg.Interval
	if interval <= 0 {
		interval = DefaultInterval
	}

	attempts := 0
	for !done(op) {
		if cfg.MaxAttempts > 0 && attempts >= cfg.MaxAttempts {
			return op, fmt.Errorf("operation still pending after %d poll attempts", attempts)
		}

		select {
		case <-ctx.Done():
			return op, fmt.Errorf("polling cancelled: %w", ctx.Err())
		case <-time.After(interval):
		}

		next, err := refresh(ctx, op)
		if err != nil {
			return op, fmt.Errorf("poll operation status: %w", err)
		}
		op = next
		attempts++

		log.Debug().
			Int("attempt", attempts).
			Dur("interval", interval).
			Bool("done", done(op)).
			Msg("Polled remote operation")
	}

	return op, nil
}

// Package server exposes one console session over a local JSON API. It is
// the transport the browser frontend talks to; all state lives in the
// session, none in the handlers.
package server

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/jalvarado/brandstudio/internal/console"
	"github.com/rs/zerolog/log"
)

// Server routes API requests to the screens of a single console session.
type Server struct {
	session *console.Session

	// preflight, when set, runs before image and video generation. It is
	// wired to the paid-tier credential re-check; a nil preflight skips
	// the check entirely (tests, free-tier text-only use).
	preflight func(ctx context.Context) error
}

// Option configures a Server.
type Option func(*Server)

// WithMediaPreflight installs a credential re-check that runs before every
// image and video generation request.
func WithMediaPreflight(fn func(ctx context.Context) error) Option {
	return func(s *Server) { s.preflight = fn }
}

// New creates a Server over sess.
func New(sess *console.Session, opts ...Option) *Server {
	s := &Server{session: sess}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Handler builds the full API handler, wrapped with request logging and
// localhost CORS.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("/api/state", s.handleState)
	mux.HandleFunc("/api/campaign", s.handleCampaign)
	mux.HandleFunc("/api/strategy/generate", s.handleStrategyGenerate)
	mux.HandleFunc("/api/image/prompt", s.handleImagePrompt)
	mux.HandleFunc("/api/image/generate", s.handleImageGenerate)
	mux.HandleFunc("/api/image/edit", s.handleImageEdit)
	mux.HandleFunc("/api/image/analyze", s.handleImageAnalyze)
	mux.HandleFunc("/api/video/prompt", s.handleVideoPrompt)
	mux.HandleFunc("/api/video/generate", s.handleVideoGenerate)
	mux.HandleFunc("/api/video/animate", s.handleVideoAnimate)
	mux.HandleFunc("/api/video/job", s.handleVideoJob)
	mux.HandleFunc("/api/social/hook", s.handleSocialHook)
	mux.HandleFunc("/api/social/draft", s.handleSocialDraft)
	mux.HandleFunc("/api/social/trends", s.handleSocialTrends)

	return withLogging(withCORS(mux))
}

// mediaPreflight runs the credential re-check when one is installed.
func (s *Server) mediaPreflight(ctx context.Context) error {
	if s.preflight == nil {
		return nil
	}
	return s.preflight(ctx)
}

// --- Middleware ---

func withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		if strings.HasPrefix(r.URL.Path, "/api/") {
			log.Info().
				Str("method", r.Method).
				Str("path", r.URL.Path).
				Dur("duration", time.Since(start)).
				Msg("API request")
		}
	})
}

func withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// The console is a local tool; only browser tabs served from
		// this machine may call the API.
		origin := r.Header.Get("Origin")
		if origin != "" && (strings.HasPrefix(origin, "http://localhost:") || strings.HasPrefix(origin, "http://127.0.0.1:")) {
			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		}
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}

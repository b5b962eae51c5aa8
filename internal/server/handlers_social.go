package server

import (
	"net/http"
)

// GET/POST /api/social/hook
func (s *Server) handleSocialHook(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		respondJSON(w, http.StatusOK, map[string]string{"hook": s.session.Social.Hook()})
	case http.MethodPost:
		var req struct {
			Hook string `json:"hook"`
		}
		if !decodeJSON(w, r, &req) {
			return
		}
		s.session.Social.SetHook(req.Hook)
		respondJSON(w, http.StatusOK, map[string]string{"hook": req.Hook})
	default:
		httpError(w, http.StatusMethodNotAllowed, "method not allowed")
	}
}

// POST /api/social/draft
func (s *Server) handleSocialDraft(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		httpError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req struct {
		Platform string `json:"platform"`
		Hook     string `json:"hook,omitempty"`
	}
	if !decodeJSON(w, r, &req) {
		return
	}
	if req.Platform == "" {
		httpError(w, http.StatusBadRequest, "platform is required")
		return
	}

	post, err := s.session.Social.Draft(r.Context(), req.Platform, req.Hook)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"post": post})
}

// POST /api/social/trends
func (s *Server) handleSocialTrends(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		httpError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req struct {
		Platform string `json:"platform"`
	}
	if !decodeJSON(w, r, &req) {
		return
	}
	if req.Platform == "" {
		httpError(w, http.StatusBadRequest, "platform is required")
		return
	}

	result, err := s.session.Social.Trends(r.Context(), req.Platform)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, result)
}

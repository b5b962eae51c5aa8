package server

import (
	"net/http"

	"github.com/jalvarado/brandstudio/internal/filehandler"
)

// GET/POST /api/video/prompt
func (s *Server) handleVideoPrompt(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		respondJSON(w, http.StatusOK, map[string]string{"prompt": s.session.Video.Prompt()})
	case http.MethodPost:
		var req struct {
			Prompt string `json:"prompt"`
		}
		if !decodeJSON(w, r, &req) {
			return
		}
		s.session.Video.SetPrompt(req.Prompt)
		respondJSON(w, http.StatusOK, map[string]string{"prompt": req.Prompt})
	default:
		httpError(w, http.StatusMethodNotAllowed, "method not allowed")
	}
}

// POST /api/video/generate
//
// The response carries the terminal job: polling happens server-side, so by
// the time the handler returns the job is done or the request has failed.
func (s *Server) handleVideoGenerate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		httpError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req struct {
		Prompt      string `json:"prompt,omitempty"`
		AspectRatio string `json:"aspectRatio,omitempty"`
	}
	if !decodeJSON(w, r, &req) {
		return
	}

	if err := s.mediaPreflight(r.Context()); err != nil {
		respondError(w, err)
		return
	}

	job, err := s.session.Video.Generate(r.Context(), req.Prompt, req.AspectRatio)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, job)
}

// POST /api/video/animate
func (s *Server) handleVideoAnimate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		httpError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req struct {
		Image       string `json:"image"`
		Prompt      string `json:"prompt,omitempty"`
		AspectRatio string `json:"aspectRatio,omitempty"`
	}
	if !decodeJSON(w, r, &req) {
		return
	}
	if _, err := filehandler.ParseDataURI(req.Image); err != nil {
		httpError(w, http.StatusBadRequest, "image must be a base64 data URI")
		return
	}

	if err := s.mediaPreflight(r.Context()); err != nil {
		respondError(w, err)
		return
	}

	job, err := s.session.Video.Animate(r.Context(), req.Image, req.Prompt, req.AspectRatio)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, job)
}

// GET /api/video/job
func (s *Server) handleVideoJob(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		httpError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	job := s.session.Video.LastJob()
	if job == nil {
		httpError(w, http.StatusNotFound, "no video job yet")
		return
	}
	respondJSON(w, http.StatusOK, job)
}

package server

import (
	"net/http"

	"github.com/jalvarado/brandstudio/internal/filehandler"
)

// GET/POST /api/image/prompt
func (s *Server) handleImagePrompt(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		respondJSON(w, http.StatusOK, map[string]string{"prompt": s.session.Image.Prompt()})
	case http.MethodPost:
		var req struct {
			Prompt string `json:"prompt"`
		}
		if !decodeJSON(w, r, &req) {
			return
		}
		s.session.Image.SetPrompt(req.Prompt)
		respondJSON(w, http.StatusOK, map[string]string{"prompt": req.Prompt})
	default:
		httpError(w, http.StatusMethodNotAllowed, "method not allowed")
	}
}

// POST /api/image/generate
func (s *Server) handleImageGenerate(w http.ResponseWriter, r *http.Request) {
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

	uri, err := s.session.Image.Generate(r.Context(), req.Prompt, req.AspectRatio)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"image": uri})
}

// POST /api/image/edit
func (s *Server) handleImageEdit(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		httpError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req struct {
		Image       string `json:"image"`
		Instruction string `json:"instruction"`
	}
	if !decodeJSON(w, r, &req) {
		return
	}
	if req.Instruction == "" {
		httpError(w, http.StatusBadRequest, "instruction is required")
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

	uri, err := s.session.Image.Edit(r.Context(), req.Image, req.Instruction)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"image": uri})
}

// POST /api/image/analyze
func (s *Server) handleImageAnalyze(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		httpError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req struct {
		Image    string `json:"image"`
		Question string `json:"question,omitempty"`
	}
	if !decodeJSON(w, r, &req) {
		return
	}
	if _, err := filehandler.ParseDataURI(req.Image); err != nil {
		httpError(w, http.StatusBadRequest, "image must be a base64 data URI")
		return
	}

	answer, err := s.session.Image.Analyze(r.Context(), req.Image, req.Question)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"answer": answer})
}

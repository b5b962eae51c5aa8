package server

import (
	"net/http"

	"github.com/jalvarado/brandstudio/internal/campaign"
)

// GET /api/state
func (s *Server) handleState(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		httpError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	brandName, goals, strategyText := s.session.Strategy.State()
	active, version := s.session.Store.Active()

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"campaign":        active,
		"campaignVersion": version,
		"strategy": map[string]interface{}{
			"brandName":    brandName,
			"goals":        goals,
			"strategyText": strategyText,
			"busy":         s.session.Strategy.Busy(),
		},
		"image": map[string]interface{}{
			"prompt":    s.session.Image.Prompt(),
			"lastImage": s.session.Image.LastImage(),
			"busy":      s.session.Image.Busy(),
		},
		"video": map[string]interface{}{
			"prompt":  s.session.Video.Prompt(),
			"lastJob": s.session.Video.LastJob(),
			"busy":    s.session.Video.Busy(),
		},
		"social": map[string]interface{}{
			"hook":     s.session.Social.Hook(),
			"lastPost": s.session.Social.LastPost(),
			"busy":     s.session.Social.Busy(),
		},
	})
}

// GET /api/campaign
func (s *Server) handleCampaign(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		httpError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	active, version := s.session.Store.Active()
	if active == nil {
		active = &campaign.Campaign{}
	}
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"campaign": active,
		"version":  version,
	})
}

// POST /api/strategy/generate
func (s *Server) handleStrategyGenerate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		httpError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req struct {
		BrandName string `json:"brandName"`
		Goals     string `json:"goals,omitempty"`
	}
	if !decodeJSON(w, r, &req) {
		return
	}
	if req.BrandName == "" {
		httpError(w, http.StatusBadRequest, "brandName is required")
		return
	}

	result, err := s.session.Strategy.Generate(r.Context(), req.BrandName, req.Goals)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, result)
}

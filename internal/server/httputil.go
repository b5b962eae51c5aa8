package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/jalvarado/brandstudio/internal/auth"
	"github.com/jalvarado/brandstudio/internal/console"
	"github.com/jalvarado/brandstudio/internal/gateway"
)

func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func httpError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}

// decodeJSON reads a request body into dst, writing a 400 on failure.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		httpError(w, http.StatusBadRequest, "invalid request body")
		return false
	}
	return true
}

// respondError maps a screen error to an HTTP status and writes it as JSON.
func respondError(w http.ResponseWriter, err error) {
	httpError(w, statusForError(err), err.Error())
}

// statusForError classifies screen errors. ErrBusy means the caller should
// back off and retry after the in-flight request finishes; missing media is
// an upstream response problem, not a client one.
func statusForError(err error) int {
	switch {
	case errors.Is(err, console.ErrBusy):
		return http.StatusConflict
	case errors.Is(err, gateway.ErrNoImage), errors.Is(err, gateway.ErrNoVideo):
		return http.StatusBadGateway
	}

	var valErr *auth.ValidationError
	if errors.As(err, &valErr) {
		switch valErr.Type {
		case auth.ErrTypeNoKey, auth.ErrTypeInvalidKey:
			return http.StatusUnauthorized
		case auth.ErrTypeQuotaExceeded:
			return http.StatusTooManyRequests
		case auth.ErrTypeNetworkError:
			return http.StatusServiceUnavailable
		}
	}

	return http.StatusInternalServerError
}

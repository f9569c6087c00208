package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"castguide/models"
)

// writeJSON serializes v with the proper content type.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// writeError maps the error taxonomy onto HTTP status codes. Validation
// failures keep their message; everything else gets a stable summary so
// upstream details stay in the logs.
func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, models.ErrValidation), errors.Is(err, models.ErrUnknownCategory):
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
	case errors.Is(err, models.ErrNotFound):
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "not found"})
	case errors.Is(err, models.ErrUpstreamAuth):
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "upstream authentication failed"})
	default:
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "upstream request failed"})
	}
}

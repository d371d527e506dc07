package utils

import (
	"encoding/json"
	"net/http"

	"newsroom/internal/logger"
)

// WriteJSON serializes v as JSON into w with the given status code.
// Encoding failures are logged; headers are already sent at that point.
func WriteJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if v == nil {
		return
	}

	if err := json.NewEncoder(w).Encode(v); err != nil {
		log := logger.FromRequest(r)
		log.Error().Err(err).Msg("failed to encode response body")
	}
}

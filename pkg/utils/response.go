package utils

import (
	"net/http"

	"storefront-gateway/pkg/logger"

	"github.com/goccy/go-json"
)

// ErrorResponse is the facade's error envelope. Success responses carry
// the payload directly with no wrapper.
type ErrorResponse struct {
	Error string `json:"error"`
}

// WriteJSON encodes data as the response body with the given status.
// Encode failures happen after the header is written, so they can only
// be logged.
func WriteJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		logger.Error().Err(err).Msg("Failed to encode response")
	}
}

// WriteError writes the error envelope. The message is what the
// storefront UI shows the user, so callers pass display-ready text.
func WriteError(w http.ResponseWriter, status int, message string) {
	WriteJSON(w, status, ErrorResponse{Error: message})
}

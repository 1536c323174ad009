package middleware

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/helixml/sponsorlink/internal/log"
)

// ErrorResponse is the uniform failure body.
type ErrorResponse struct {
	Error string `json:"error"`
}

// WriteError logs err and writes it as {"error": message} with status 500.
// Every failure kind collapses to the same status.
func WriteError(w http.ResponseWriter, r *http.Request, err error, logger *slog.Logger) {
	if logger != nil {
		logger.ErrorContext(r.Context(), "request error",
			"correlation_id", log.CorrelationID(r.Context()),
			"path", r.URL.Path,
			"error", err.Error(),
		)
	}

	WriteJSON(w, http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
}

// WriteJSON writes a JSON response.
func WriteJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

// Package ai serves the event enhancement endpoints.
package ai

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/helixml/sponsorlink/domain/enhancement"
	"github.com/helixml/sponsorlink/infrastructure/api/ai/dto"
	"github.com/helixml/sponsorlink/infrastructure/api/middleware"
	"github.com/helixml/sponsorlink/internal/log"
)

// maxBodyBytes caps the inbound JSON payload.
const maxBodyBytes = 1 << 20

// Router handles the /ai endpoints.
type Router struct {
	enhancer enhancement.Enhancer
	logger   *slog.Logger
}

// NewRouter creates a new Router.
func NewRouter(enhancer enhancement.Enhancer, logger *slog.Logger) *Router {
	if logger == nil {
		logger = slog.Default()
	}
	return &Router{
		enhancer: enhancer,
		logger:   logger,
	}
}

// Routes returns the chi router for the /ai endpoints.
func (r *Router) Routes() chi.Router {
	router := chi.NewRouter()

	router.Post("/enhance-event", r.EnhanceEvent)

	return router
}

// EnhanceEvent handles POST /ai/enhance-event.
func (r *Router) EnhanceEvent(w http.ResponseWriter, req *http.Request) {
	ctx := req.Context()

	body, err := decodeEnhanceRequest(w, req)
	if err != nil {
		middleware.WriteError(w, req, err, r.logger)
		return
	}

	r.logger.InfoContext(ctx, "enhance request received",
		"correlation_id", log.CorrelationID(ctx),
		"description", body.Description,
	)

	text, err := r.enhancer.Enhance(ctx, enhancement.NewRequest(body.Description))
	if err != nil {
		middleware.WriteError(w, req, err, r.logger)
		return
	}

	middleware.WriteJSON(w, http.StatusOK, dto.EnhanceResponse{EnhancedDescription: text})
}

// decodeEnhanceRequest reads the payload. An empty body or JSON null is the
// same as an object without a description.
func decodeEnhanceRequest(w http.ResponseWriter, req *http.Request) (dto.EnhanceRequest, error) {
	var body dto.EnhanceRequest

	raw, err := io.ReadAll(http.MaxBytesReader(w, req.Body, maxBodyBytes))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return body, fmt.Errorf("invalid request body: exceeds %d bytes", tooLarge.Limit)
		}
		return body, fmt.Errorf("invalid request body: %w", err)
	}
	if len(bytes.TrimSpace(raw)) == 0 {
		return body, nil
	}
	if err := json.Unmarshal(raw, &body); err != nil {
		return dto.EnhanceRequest{}, fmt.Errorf("invalid request body: %w", err)
	}
	return body, nil
}

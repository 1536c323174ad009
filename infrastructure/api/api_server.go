// Package api wires the HTTP routes of the backend.
package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/helixml/sponsorlink/domain/enhancement"
	"github.com/helixml/sponsorlink/infrastructure/api/ai"
	"github.com/helixml/sponsorlink/infrastructure/api/middleware"
)

// APIServer serves the backend routes over an Enhancer.
type APIServer struct {
	enhancer       enhancement.Enhancer
	allowedOrigins []string
	logger         *slog.Logger
}

// NewAPIServer creates a new APIServer. Cross-origin calls are accepted from
// allowedOrigins; an empty list allows any origin.
func NewAPIServer(enhancer enhancement.Enhancer, allowedOrigins []string, logger *slog.Logger) *APIServer {
	if logger == nil {
		logger = slog.Default()
	}
	return &APIServer{
		enhancer:       enhancer,
		allowedOrigins: allowedOrigins,
		logger:         logger,
	}
}

// Handler returns the full route tree with the standard middleware stack.
func (a *APIServer) Handler() http.Handler {
	server := NewServer("", a.logger)
	a.MountRoutes(server.Router())
	return server.Router()
}

// MountRoutes wires up all routes on the given router. The router must not
// have routes registered yet.
func (a *APIServer) MountRoutes(router chi.Router) {
	router.Use(middleware.CORS(a.allowedOrigins))

	router.Get("/", handleRoot)
	router.Get("/health", handleHealth)
	router.Get("/healthz", handleHealth)

	router.Mount("/ai", ai.NewRouter(a.enhancer, a.logger).Routes())
}

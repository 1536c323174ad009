package api

import (
	"net/http"

	"github.com/helixml/sponsorlink/infrastructure/api/middleware"
)

// RootMessage is the liveness text served at GET /.
const RootMessage = "Backend is running successfully 🚀"

// HealthResponse is the body of the health endpoints.
type HealthResponse struct {
	Status string `json:"status"`
}

func handleRoot(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(RootMessage))
}

func handleHealth(w http.ResponseWriter, _ *http.Request) {
	middleware.WriteJSON(w, http.StatusOK, HealthResponse{Status: "healthy"})
}

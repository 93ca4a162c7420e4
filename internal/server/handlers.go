package server

import (
	"encoding/json"
	"net/http"

	"github.com/kindling-dev/kindling/internal/config"
)

// Handlers implements the starter's two static routes.
type Handlers struct {
	config *config.Config
}

// NewHandlers creates the handler set for the given configuration.
func NewHandlers(cfg *config.Config) *Handlers {
	return &Handlers{config: cfg}
}

type welcomeResponse struct {
	Message string `json:"message"`
	Name    string `json:"name"`
	Version string `json:"version,omitempty"`
}

type healthResponse struct {
	Status string `json:"status"`
}

// HandleIndex serves the welcome payload at GET /.
func (h *Handlers) HandleIndex(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, welcomeResponse{
		Message: "Welcome to the " + h.config.Name + " API",
		Name:    h.config.Name,
		Version: h.config.Version,
	})
}

// HandleHealth serves the health check at GET /api/health.
func (h *Handlers) HandleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, healthResponse{Status: "ok"})
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

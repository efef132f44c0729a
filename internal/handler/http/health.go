package http

import (
	"net/http"

	"github.com/flightsearch/flightsearch/internal/utils"
	"github.com/flightsearch/flightsearch/models"
)

// health is the unauthenticated service status probe. Always 200.
func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, models.HealthResponse{
		Status:  "ok",
		Service: h.serviceName,
	}, http.StatusOK)
}

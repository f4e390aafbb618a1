package get_travel_guide

import (
	"net/http"

	"github.com/m04kA/SMC-HeritageService/internal/api/handlers"
)

type Handler struct {
	service MonasteryService
}

func NewHandler(service MonasteryService) *Handler {
	return &Handler{service: service}
}

// Handle GET /api/travel-guide
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	handlers.RespondJSON(w, http.StatusOK, h.service.TravelGuide())
}

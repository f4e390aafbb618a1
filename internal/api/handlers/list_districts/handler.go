package list_districts

import (
	"net/http"

	"github.com/m04kA/SMC-HeritageService/internal/api/handlers"
)

type Handler struct {
	service MonasteryService
	logger  Logger
}

func NewHandler(service MonasteryService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/districts
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.Districts(r.Context())
	if err != nil {
		h.logger.Error("GET /districts - Failed to list districts: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /districts - Districts retrieved: count=%d", len(result.Districts))
	handlers.RespondJSON(w, http.StatusOK, result)
}

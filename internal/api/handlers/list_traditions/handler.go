package list_traditions

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

// Handle GET /api/traditions
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.Traditions(r.Context())
	if err != nil {
		h.logger.Error("GET /traditions - Failed to list traditions: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /traditions - Traditions retrieved: count=%d", len(result.Traditions))
	handlers.RespondJSON(w, http.StatusOK, result)
}

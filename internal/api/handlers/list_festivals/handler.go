package list_festivals

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

// Handle GET /api/festivals
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.Festivals(r.Context())
	if err != nil {
		h.logger.Error("GET /festivals - Failed to list festivals: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /festivals - Festivals retrieved: count=%d", len(result.Festivals))
	handlers.RespondJSON(w, http.StatusOK, result)
}

package create_monastery

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

// Handle POST /api/monasteries
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateMonasteryRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /monasteries - Invalid request body: %v", err)
		handlers.RespondUnprocessable(w, err.Error())
		return
	}

	monastery, err := h.service.Create(r.Context(), req.ToServiceRequest())
	if err != nil {
		h.logger.Error("POST /monasteries - Failed to create monastery: name=%s, error=%v", req.Name, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /monasteries - Monastery created successfully: monastery_id=%s, name=%s", monastery.ID, monastery.Name)
	handlers.RespondJSON(w, http.StatusOK, monastery)
}

package create_cultural_event

import (
	"net/http"

	"github.com/m04kA/SMC-HeritageService/internal/api/handlers"
)

type Handler struct {
	service EventService
	logger  Logger
}

func NewHandler(service EventService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/cultural-events
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateCulturalEventRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /cultural-events - Invalid request body: %v", err)
		handlers.RespondUnprocessable(w, err.Error())
		return
	}

	event, err := h.service.Create(r.Context(), req.ToServiceRequest())
	if err != nil {
		h.logger.Error("POST /cultural-events - Failed to create event: title=%s, error=%v", req.Title, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /cultural-events - Event created successfully: event_id=%s, title=%s", event.ID, event.Title)
	handlers.RespondJSON(w, http.StatusOK, event)
}

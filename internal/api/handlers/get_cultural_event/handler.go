package get_cultural_event

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-HeritageService/internal/api/handlers"
	"github.com/m04kA/SMC-HeritageService/internal/service/culturalevents"
)

const msgNotFound = "Cultural event not found"

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

// Handle GET /api/cultural-events/{id}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	eventID := mux.Vars(r)["id"]

	event, err := h.service.GetByID(r.Context(), eventID)
	if err != nil {
		switch {
		case errors.Is(err, culturalevents.ErrEventNotFound):
			h.logger.Warn("GET /cultural-events/{id} - Event not found: event_id=%s", eventID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("GET /cultural-events/{id} - Failed to get event: event_id=%s, error=%v", eventID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /cultural-events/{id} - Event retrieved successfully: event_id=%s", eventID)
	handlers.RespondJSON(w, http.StatusOK, event)
}

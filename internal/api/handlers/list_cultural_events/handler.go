package list_cultural_events

import (
	"net/http"

	"github.com/m04kA/SMC-HeritageService/internal/api/handlers"
	"github.com/m04kA/SMC-HeritageService/internal/domain"
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

// Handle GET /api/cultural-events
// Query params: start_date, end_date, event_type, monastery_id, tradition (опционально)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := domain.CulturalEventFilter{
		StartDate:   q.Get("start_date"),
		EndDate:     q.Get("end_date"),
		EventType:   q.Get("event_type"),
		MonasteryID: q.Get("monastery_id"),
		Tradition:   q.Get("tradition"),
	}

	events, err := h.service.List(r.Context(), filter)
	if err != nil {
		h.logger.Error("GET /cultural-events - Failed to list events: filter=%+v, error=%v", filter, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /cultural-events - Events retrieved: count=%d", len(events))
	handlers.RespondJSON(w, http.StatusOK, events)
}

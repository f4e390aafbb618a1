package list_monasteries

import (
	"net/http"

	"github.com/m04kA/SMC-HeritageService/internal/api/handlers"
	"github.com/m04kA/SMC-HeritageService/internal/domain"
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

// Handle GET /api/monasteries
// Query params: district, tradition, search (опционально)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := domain.MonasteryFilter{
		District:  q.Get("district"),
		Tradition: q.Get("tradition"),
		Search:    q.Get("search"),
	}

	monasteries, err := h.service.List(r.Context(), filter)
	if err != nil {
		h.logger.Error("GET /monasteries - Failed to list monasteries: district=%q, tradition=%q, search=%q, error=%v",
			filter.District, filter.Tradition, filter.Search, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /monasteries - Monasteries retrieved: count=%d", len(monasteries))
	handlers.RespondJSON(w, http.StatusOK, monasteries)
}

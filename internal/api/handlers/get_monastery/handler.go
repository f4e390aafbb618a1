package get_monastery

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-HeritageService/internal/api/handlers"
	"github.com/m04kA/SMC-HeritageService/internal/service/monasteries"
)

const msgNotFound = "Monastery not found"

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

// Handle GET /api/monasteries/{id}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	monasteryID := mux.Vars(r)["id"]

	monastery, err := h.service.GetByID(r.Context(), monasteryID)
	if err != nil {
		switch {
		case errors.Is(err, monasteries.ErrMonasteryNotFound):
			h.logger.Warn("GET /monasteries/{id} - Monastery not found: monastery_id=%s", monasteryID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("GET /monasteries/{id} - Failed to get monastery: monastery_id=%s, error=%v", monasteryID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /monasteries/{id} - Monastery retrieved successfully: monastery_id=%s", monasteryID)
	handlers.RespondJSON(w, http.StatusOK, monastery)
}

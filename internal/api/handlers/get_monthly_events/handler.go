package get_monthly_events

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-HeritageService/internal/api/handlers"
	"github.com/m04kA/SMC-HeritageService/internal/service/culturalevents"
)

const msgInvalidMonth = "Invalid calendar month: year must be 1..9999 and month 1..12"

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

// Handle GET /api/cultural-events/calendar/{year}/{month}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	year, err := handlers.PathInt(vars, "year")
	if err != nil {
		h.logger.Warn("GET /cultural-events/calendar/{year}/{month} - Invalid year: %v", err)
		handlers.RespondUnprocessable(w, err.Error())
		return
	}
	month, err := handlers.PathInt(vars, "month")
	if err != nil {
		h.logger.Warn("GET /cultural-events/calendar/{year}/{month} - Invalid month: %v", err)
		handlers.RespondUnprocessable(w, err.Error())
		return
	}

	result, err := h.service.MonthlyCalendar(r.Context(), year, month)
	if err != nil {
		switch {
		case errors.Is(err, culturalevents.ErrInvalidMonth):
			h.logger.Warn("GET /cultural-events/calendar/{year}/{month} - Invalid month: year=%d, month=%d", year, month)
			handlers.RespondUnprocessable(w, msgInvalidMonth)

		default:
			h.logger.Error("GET /cultural-events/calendar/{year}/{month} - Failed to get events: year=%d, month=%d, error=%v",
				year, month, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /cultural-events/calendar/{year}/{month} - Events retrieved: year=%d, month=%d, count=%d",
		year, month, len(result.Events))
	handlers.RespondJSON(w, http.StatusOK, result)
}

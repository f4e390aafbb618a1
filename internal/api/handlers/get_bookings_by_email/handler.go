package get_bookings_by_email

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-HeritageService/internal/api/handlers"
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/bookings/email/{email}
// Совпадение email точное; пустой список не ошибка
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	email := mux.Vars(r)["email"]

	result, err := h.service.ListByEmail(r.Context(), email)
	if err != nil {
		h.logger.Error("GET /bookings/email/{email} - Failed to list bookings: email=%s, error=%v", email, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /bookings/email/{email} - Bookings retrieved: email=%s, count=%d", email, len(result.Bookings))
	handlers.RespondJSON(w, http.StatusOK, result)
}

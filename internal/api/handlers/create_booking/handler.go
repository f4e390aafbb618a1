package create_booking

import (
	"net/http"

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

// Handle POST /api/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondUnprocessable(w, err.Error())
		return
	}

	booking, err := h.service.Create(r.Context(), req.ToServiceRequest())
	if err != nil {
		h.logger.Error("POST /bookings - Failed to create booking: monastery_id=%s, error=%v", req.MonasteryID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /bookings - Booking created successfully: booking_id=%s, monastery_id=%s, total=%.2f",
		booking.ID, booking.MonasteryID, booking.TotalAmount)
	handlers.RespondJSON(w, http.StatusOK, booking)
}

package create_status_check

import (
	"net/http"

	"github.com/m04kA/SMC-HeritageService/internal/api/handlers"
)

type Handler struct {
	service StatusService
	logger  Logger
}

func NewHandler(service StatusService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/status
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req StatusCheckRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /status - Invalid request body: %v", err)
		handlers.RespondUnprocessable(w, err.Error())
		return
	}

	check, err := h.service.Create(r.Context(), req.ClientName)
	if err != nil {
		h.logger.Error("POST /status - Failed to create status check: client_name=%s, error=%v", req.ClientName, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, check)
}

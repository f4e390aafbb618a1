package initialize_cultural_events

import (
	"net/http"

	"github.com/m04kA/SMC-HeritageService/internal/api/handlers"
	initializeEvents "github.com/m04kA/SMC-HeritageService/internal/usecase/initialize_cultural_events"
)

type Handler struct {
	useCase InitializeCulturalEventsUseCase
	logger  Logger
}

func NewHandler(useCase InitializeCulturalEventsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/cultural-events/initialize?force=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	force, err := handlers.QueryBool(r, "force")
	if err != nil {
		h.logger.Warn("POST /cultural-events/initialize - Invalid query: %v", err)
		handlers.RespondUnprocessable(w, err.Error())
		return
	}

	result, err := h.useCase.Execute(r.Context(), &initializeEvents.Request{Force: force})
	if err != nil {
		h.logger.Error("POST /cultural-events/initialize - Failed to initialize: force=%t, error=%v", force, err)
		handlers.RespondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	h.logger.Info("POST /cultural-events/initialize - %s: linked=%d, force=%t", result.Message, result.Linked, force)
	handlers.RespondJSON(w, http.StatusOK, result)
}

package initialize_monasteries

import (
	"net/http"

	"github.com/m04kA/SMC-HeritageService/internal/api/handlers"
	initializeMonasteries "github.com/m04kA/SMC-HeritageService/internal/usecase/initialize_monasteries"
)

type Handler struct {
	useCase InitializeMonasteriesUseCase
	logger  Logger
}

func NewHandler(useCase InitializeMonasteriesUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/monasteries/initialize?force=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	force, err := handlers.QueryBool(r, "force")
	if err != nil {
		h.logger.Warn("POST /monasteries/initialize - Invalid query: %v", err)
		handlers.RespondUnprocessable(w, err.Error())
		return
	}

	result, err := h.useCase.Execute(r.Context(), &initializeMonasteries.Request{Force: force})
	if err != nil {
		h.logger.Error("POST /monasteries/initialize - Failed to initialize: force=%t, error=%v", force, err)
		handlers.RespondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	h.logger.Info("POST /monasteries/initialize - %s: force=%t", result.Message, force)
	handlers.RespondJSON(w, http.StatusOK, result)
}

package get_chat_history

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-HeritageService/internal/api/handlers"
	"github.com/m04kA/SMC-HeritageService/internal/domain"
	"github.com/m04kA/SMC-HeritageService/internal/service/chat"
)

const msgInvalidLimit = "limit must be a positive integer"

type Handler struct {
	service ChatService
	logger  Logger
}

func NewHandler(service ChatService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/chat/history/{session_id}?limit=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["session_id"]

	limit, err := handlers.QueryInt(r, "limit", domain.DefaultChatHistoryLimit)
	if err != nil {
		h.logger.Warn("GET /chat/history/{session_id} - Invalid limit: %v", err)
		handlers.RespondUnprocessable(w, msgInvalidLimit)
		return
	}

	history, err := h.service.History(r.Context(), sessionID, limit)
	if err != nil {
		switch {
		case errors.Is(err, chat.ErrInvalidLimit):
			h.logger.Warn("GET /chat/history/{session_id} - Invalid limit: session_id=%s, limit=%d", sessionID, limit)
			handlers.RespondUnprocessable(w, msgInvalidLimit)

		default:
			h.logger.Error("GET /chat/history/{session_id} - Failed to get history: session_id=%s, error=%v", sessionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /chat/history/{session_id} - History retrieved: session_id=%s, count=%d", sessionID, len(history.Messages))
	handlers.RespondJSON(w, http.StatusOK, history)
}

package send_chat_message

import (
	"errors"
	"net/http"
	"strings"

	"github.com/m04kA/SMC-HeritageService/internal/api/handlers"
	sendChatMessage "github.com/m04kA/SMC-HeritageService/internal/usecase/send_chat_message"
)

const (
	msgNotConfigured = "AI service not configured"
	msgAIError       = "AI service error: "
)

type Handler struct {
	useCase SendChatMessageUseCase
	logger  Logger
}

func NewHandler(useCase SendChatMessageUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/chat
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req ChatRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /chat - Invalid request body: %v", err)
		handlers.RespondUnprocessable(w, err.Error())
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest())
	if err != nil {
		switch {
		case errors.Is(err, sendChatMessage.ErrServiceUnavailable):
			h.logger.Warn("POST /chat - AI service not configured: session_id=%s", req.SessionID)
			handlers.RespondError(w, http.StatusInternalServerError, msgNotConfigured)

		case errors.Is(err, sendChatMessage.ErrUpstream):
			h.logger.Error("POST /chat - AI service error: session_id=%s, error=%v", req.SessionID, err)
			handlers.RespondError(w, http.StatusInternalServerError, msgAIError+upstreamCause(err))

		default:
			h.logger.Error("POST /chat - Failed to send message: session_id=%s, error=%v", req.SessionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /chat - Message answered: session_id=%s, monastery_context=%t", result.SessionID, result.MonasteryContext)
	handlers.RespondJSON(w, http.StatusOK, result)
}

// upstreamCause текст ошибки без префикса use case
func upstreamCause(err error) string {
	return strings.TrimPrefix(err.Error(), sendChatMessage.ErrUpstream.Error()+": ")
}

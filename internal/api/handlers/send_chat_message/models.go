package send_chat_message

import (
	sendChatMessage "github.com/m04kA/SMC-HeritageService/internal/usecase/send_chat_message"
)

// ChatRequest HTTP request model
type ChatRequest struct {
	Message     string  `json:"message" validate:"required"`
	SessionID   string  `json:"session_id" validate:"required"`
	MonasteryID *string `json:"monastery_id,omitempty"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *ChatRequest) ToUseCaseRequest() *sendChatMessage.Request {
	return &sendChatMessage.Request{
		Message:     r.Message,
		SessionID:   r.SessionID,
		MonasteryID: r.MonasteryID,
	}
}

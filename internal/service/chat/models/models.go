package models

import (
	"time"

	"github.com/m04kA/SMC-HeritageService/internal/domain"
)

// ChatMessageResponse один обмен репликами
type ChatMessageResponse struct {
	ID               string    `json:"id"`
	SessionID        string    `json:"session_id"`
	UserMessage      string    `json:"user_message"`
	AIResponse       string    `json:"ai_response"`
	MonasteryContext *string   `json:"monastery_context"`
	Timestamp        time.Time `json:"timestamp"`
}

// ChatHistoryResponse история сессии в хронологическом порядке
type ChatHistoryResponse struct {
	Messages  []ChatMessageResponse `json:"messages"`
	SessionID string                `json:"session_id"`
}

// FromDomainMessage конвертирует domain модель в DTO
func FromDomainMessage(m *domain.ChatMessage) ChatMessageResponse {
	return ChatMessageResponse{
		ID:               m.ID,
		SessionID:        m.SessionID,
		UserMessage:      m.UserMessage,
		AIResponse:       m.AIResponse,
		MonasteryContext: m.MonasteryContext,
		Timestamp:        m.Timestamp,
	}
}

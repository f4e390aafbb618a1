package get_chat_history

import (
	"context"

	"github.com/m04kA/SMC-HeritageService/internal/service/chat/models"
)

type ChatService interface {
	History(ctx context.Context, sessionID string, limit int) (*models.ChatHistoryResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

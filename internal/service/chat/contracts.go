package chat

import (
	"context"

	"github.com/m04kA/SMC-HeritageService/internal/domain"
)

// MessageRepository интерфейс журнала сообщений чата
type MessageRepository interface {
	ListLatest(ctx context.Context, sessionID string, limit int) ([]*domain.ChatMessage, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

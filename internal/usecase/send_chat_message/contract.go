package send_chat_message

import (
	"context"
	"time"

	"github.com/m04kA/SMC-HeritageService/internal/domain"
	"github.com/m04kA/SMC-HeritageService/internal/integrations/completion"
)

// MonasteryRepository интерфейс репозитория монастырей
type MonasteryRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Monastery, error)
}

// MessageRepository интерфейс журнала сообщений чата
type MessageRepository interface {
	Create(ctx context.Context, message *domain.ChatMessage) error
}

// CompletionClient интерфейс клиента генерации ответов
type CompletionClient interface {
	Enabled() bool
	Complete(ctx context.Context, messages []completion.Message) (string, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now().UTC()
}

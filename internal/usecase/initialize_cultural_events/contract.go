package initialize_cultural_events

import (
	"context"
	"time"

	"github.com/m04kA/SMC-HeritageService/internal/domain"
)

// EventRepository интерфейс репозитория культурных событий
type EventRepository interface {
	Count(ctx context.Context) (int64, error)
	DeleteAll(ctx context.Context) (int64, error)
	CreateMany(ctx context.Context, events []*domain.CulturalEvent) (int, error)
}

// MonasteryRepository интерфейс репозитория монастырей
type MonasteryRepository interface {
	List(ctx context.Context, filter domain.MonasteryFilter) ([]*domain.Monastery, error)
}

// Catalog источник исходных данных
type Catalog interface {
	CulturalEvents(now time.Time) []*domain.CulturalEvent
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
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

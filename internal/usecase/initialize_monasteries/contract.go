package initialize_monasteries

import (
	"context"
	"time"

	"github.com/m04kA/SMC-HeritageService/internal/domain"
	relinkEvents "github.com/m04kA/SMC-HeritageService/internal/usecase/relink_cultural_events"
)

// MonasteryRepository интерфейс репозитория монастырей
type MonasteryRepository interface {
	Count(ctx context.Context) (int64, error)
	DeleteAll(ctx context.Context) (int64, error)
	CreateMany(ctx context.Context, monasteries []*domain.Monastery) (int, error)
}

// Catalog источник исходных данных
type Catalog interface {
	Monasteries(now time.Time) []*domain.Monastery
}

// EventRelinker перепривязка событий к новым ID монастырей
type EventRelinker interface {
	Execute(ctx context.Context) (*relinkEvents.Response, error)
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

package culturalevents

import (
	"context"

	"github.com/m04kA/SMC-HeritageService/internal/domain"
)

// EventRepository интерфейс репозитория культурных событий
type EventRepository interface {
	Create(ctx context.Context, event *domain.CulturalEvent) error
	GetByID(ctx context.Context, id string) (*domain.CulturalEvent, error)
	List(ctx context.Context, filter domain.CulturalEventFilter) ([]*domain.CulturalEvent, error)
	ListByMonth(ctx context.Context, month domain.MonthRange) ([]*domain.CulturalEvent, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

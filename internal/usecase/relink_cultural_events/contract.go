package relink_cultural_events

import (
	"context"

	"github.com/m04kA/SMC-HeritageService/internal/domain"
)

// MonasteryRepository интерфейс репозитория монастырей
type MonasteryRepository interface {
	List(ctx context.Context, filter domain.MonasteryFilter) ([]*domain.Monastery, error)
}

// EventRepository интерфейс репозитория культурных событий
type EventRepository interface {
	ListLinkable(ctx context.Context) ([]*domain.CulturalEvent, error)
	SetMonasteryID(ctx context.Context, eventID string, monasteryID *string) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

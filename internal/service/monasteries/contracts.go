package monasteries

import (
	"context"

	"github.com/m04kA/SMC-HeritageService/internal/domain"
)

// MonasteryRepository интерфейс репозитория монастырей
type MonasteryRepository interface {
	Create(ctx context.Context, m *domain.Monastery) error
	GetByID(ctx context.Context, id string) (*domain.Monastery, error)
	List(ctx context.Context, filter domain.MonasteryFilter) ([]*domain.Monastery, error)
	Districts(ctx context.Context) ([]string, error)
	Traditions(ctx context.Context) ([]string, error)
}

// TravelGuideSource источник справочника путешественника
type TravelGuideSource interface {
	TravelGuide() domain.TravelGuide
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

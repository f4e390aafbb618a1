package list_cultural_events

import (
	"context"

	"github.com/m04kA/SMC-HeritageService/internal/domain"
	"github.com/m04kA/SMC-HeritageService/internal/service/culturalevents/models"
)

type EventService interface {
	List(ctx context.Context, filter domain.CulturalEventFilter) ([]models.CulturalEventResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

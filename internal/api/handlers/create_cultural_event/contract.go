package create_cultural_event

import (
	"context"

	"github.com/m04kA/SMC-HeritageService/internal/service/culturalevents/models"
)

type EventService interface {
	Create(ctx context.Context, req *models.CreateCulturalEventRequest) (*models.CulturalEventResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

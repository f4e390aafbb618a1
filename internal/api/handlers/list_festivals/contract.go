package list_festivals

import (
	"context"

	"github.com/m04kA/SMC-HeritageService/internal/service/monasteries/models"
)

type MonasteryService interface {
	Festivals(ctx context.Context) (*models.FestivalsResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

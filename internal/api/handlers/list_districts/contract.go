package list_districts

import (
	"context"

	"github.com/m04kA/SMC-HeritageService/internal/service/monasteries/models"
)

type MonasteryService interface {
	Districts(ctx context.Context) (*models.DistrictsResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

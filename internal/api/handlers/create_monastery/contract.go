package create_monastery

import (
	"context"

	"github.com/m04kA/SMC-HeritageService/internal/service/monasteries/models"
)

type MonasteryService interface {
	Create(ctx context.Context, req *models.CreateMonasteryRequest) (*models.MonasteryResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

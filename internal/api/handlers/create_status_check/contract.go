package create_status_check

import (
	"context"

	"github.com/m04kA/SMC-HeritageService/internal/service/status/models"
)

type StatusService interface {
	Create(ctx context.Context, clientName string) (*models.StatusCheckResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

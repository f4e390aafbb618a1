package list_status_checks

import (
	"context"

	"github.com/m04kA/SMC-HeritageService/internal/service/status/models"
)

type StatusService interface {
	List(ctx context.Context) ([]models.StatusCheckResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

package list_monasteries

import (
	"context"

	"github.com/m04kA/SMC-HeritageService/internal/domain"
	"github.com/m04kA/SMC-HeritageService/internal/service/monasteries/models"
)

type MonasteryService interface {
	List(ctx context.Context, filter domain.MonasteryFilter) ([]models.MonasteryResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

package status

import (
	"context"

	"github.com/m04kA/SMC-HeritageService/internal/domain"
)

// StatusRepository интерфейс репозитория проверок статуса
type StatusRepository interface {
	Create(ctx context.Context, check *domain.StatusCheck) error
	List(ctx context.Context, limit int) ([]*domain.StatusCheck, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

package get_monthly_events

import (
	"context"

	"github.com/m04kA/SMC-HeritageService/internal/service/culturalevents/models"
)

type EventService interface {
	MonthlyCalendar(ctx context.Context, year, month int) (*models.MonthlyEventsResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

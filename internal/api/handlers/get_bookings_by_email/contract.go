package get_bookings_by_email

import (
	"context"

	"github.com/m04kA/SMC-HeritageService/internal/service/bookings/models"
)

type BookingService interface {
	ListByEmail(ctx context.Context, email string) (*models.BookingListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

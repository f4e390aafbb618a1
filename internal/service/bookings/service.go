package bookings

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-HeritageService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-HeritageService/internal/infra/storage/booking"
	"github.com/m04kA/SMC-HeritageService/internal/service/bookings/models"
	"github.com/m04kA/SMC-HeritageService/pkg/types"
)

// Service сервис для работы с бронированиями
type Service struct {
	bookingRepo BookingRepository
	logger      Logger
	now         func() time.Time
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(bookingRepo BookingRepository, logger Logger) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		logger:      logger,
		now:         func() time.Time { return time.Now().UTC() },
	}
}

// Create создает бронирование
// Стоимость считается на сервере: цена тура за человека × размер группы
func (s *Service) Create(ctx context.Context, req *models.CreateBookingRequest) (*models.BookingResponse, error) {
	tourType := domain.TourType(req.TourType)
	if !tourType.IsKnown() {
		s.logger.Warn("Create: unknown tour_type=%q for monastery=%s, priced at 0", req.TourType, req.MonasteryID)
	}

	booking := &domain.Booking{
		ID:              uuid.NewString(),
		MonasteryID:     req.MonasteryID,
		VisitorName:     req.VisitorName,
		VisitorEmail:    req.VisitorEmail,
		VisitorPhone:    req.VisitorPhone,
		VisitDate:       req.VisitDate,
		VisitTime:       types.TimeString(req.VisitTime),
		GroupSize:       req.GroupSize,
		TourType:        tourType,
		SpecialRequests: req.SpecialRequests,
		TotalAmount:     tourType.TotalAmount(req.GroupSize),
		Status:          domain.StatusConfirmed,
		CreatedAt:       s.now(),
	}

	if err := s.bookingRepo.Create(ctx, booking); err != nil {
		s.logger.Error("Create: repository error for monastery=%s: %v", req.MonasteryID, err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: booking id=%s created, tour_type=%s, group_size=%d, total=%.2f",
		booking.ID, booking.TourType, booking.GroupSize, booking.TotalAmount)
	return models.FromDomainBooking(booking), nil
}

// GetByID получает бронирование по ID
func (s *Service) GetByID(ctx context.Context, id string) (*models.BookingResponse, error) {
	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("GetByID: booking id=%s not found", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByID: repository error for booking id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainBooking(booking), nil
}

// List возвращает все бронирования, новые первыми
func (s *Service) List(ctx context.Context) ([]models.BookingResponse, error) {
	bookings, err := s.bookingRepo.List(ctx)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainBookingList(bookings).Bookings, nil
}

// ListByEmail возвращает бронирования посетителя, новые первыми
func (s *Service) ListByEmail(ctx context.Context, email string) (*models.BookingListResponse, error) {
	bookings, err := s.bookingRepo.ListByEmail(ctx, email)
	if err != nil {
		s.logger.Error("ListByEmail: repository error for email=%s: %v", email, err)
		return nil, fmt.Errorf("%w: ListByEmail - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListByEmail: fetched %d bookings for email=%s", len(bookings), email)
	return models.FromDomainBookingList(bookings), nil
}

// Cancel переводит бронирование в статус cancelled
// Повторная отмена не является ошибкой
func (s *Service) Cancel(ctx context.Context, id string) error {
	err := s.bookingRepo.UpdateStatus(ctx, id, domain.StatusCancelled)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("Cancel: booking id=%s not found", id)
			return ErrBookingNotFound
		}
		s.logger.Error("Cancel: repository error for booking id=%s: %v", id, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Cancel: booking id=%s cancelled", id)
	return nil
}

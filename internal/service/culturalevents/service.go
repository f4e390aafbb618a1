package culturalevents

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-HeritageService/internal/domain"
	eventRepo "github.com/m04kA/SMC-HeritageService/internal/infra/storage/culturalevent"
	"github.com/m04kA/SMC-HeritageService/internal/service/culturalevents/models"
)

// Service сервис культурных событий
type Service struct {
	eventRepo EventRepository
	logger    Logger
	now       func() time.Time
}

// NewService создает новый экземпляр сервиса событий
func NewService(eventRepo EventRepository, logger Logger) *Service {
	return &Service{
		eventRepo: eventRepo,
		logger:    logger,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

// List возвращает события под фильтр, отсортированные по дате начала
func (s *Service) List(ctx context.Context, filter domain.CulturalEventFilter) ([]models.CulturalEventResponse, error) {
	events, err := s.eventRepo.List(ctx, filter)
	if err != nil {
		s.logger.Error("List: repository error for filter=%+v: %v", filter, err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainEventList(events), nil
}

// GetByID получает событие по ID
func (s *Service) GetByID(ctx context.Context, id string) (*models.CulturalEventResponse, error) {
	event, err := s.eventRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, eventRepo.ErrEventNotFound) {
			s.logger.Warn("GetByID: event id=%s not found", id)
			return nil, ErrEventNotFound
		}
		s.logger.Error("GetByID: repository error for event id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainEvent(event), nil
}

// Create добавляет событие
// monastery_id принимается как есть, существование монастыря не проверяется
func (s *Service) Create(ctx context.Context, req *models.CreateCulturalEventRequest) (*models.CulturalEventResponse, error) {
	event := req.ToDomainEvent()
	event.ID = uuid.NewString()
	event.CreatedAt = s.now()

	if err := s.eventRepo.Create(ctx, event); err != nil {
		s.logger.Error("Create: repository error for event title=%s: %v", req.Title, err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: event id=%s created, title=%s", event.ID, event.Title)
	return models.FromDomainEvent(event), nil
}

// MonthlyCalendar события, пересекающиеся с календарным месяцем
func (s *Service) MonthlyCalendar(ctx context.Context, year, month int) (*models.MonthlyEventsResponse, error) {
	monthRange, err := domain.NewMonthRange(year, month)
	if err != nil {
		s.logger.Warn("MonthlyCalendar: invalid month year=%d month=%d", year, month)
		return nil, fmt.Errorf("%w: %v", ErrInvalidMonth, err)
	}

	events, err := s.eventRepo.ListByMonth(ctx, monthRange)
	if err != nil {
		s.logger.Error("MonthlyCalendar: repository error for %04d-%02d: %v", year, month, err)
		return nil, fmt.Errorf("%w: MonthlyCalendar - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("MonthlyCalendar: %d events for %04d-%02d", len(events), year, month)
	return &models.MonthlyEventsResponse{
		Year:   year,
		Month:  month,
		Events: models.FromDomainEventList(events),
	}, nil
}

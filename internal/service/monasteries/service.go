package monasteries

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-HeritageService/internal/domain"
	monasteryRepo "github.com/m04kA/SMC-HeritageService/internal/infra/storage/monastery"
	"github.com/m04kA/SMC-HeritageService/internal/service/monasteries/models"
)

// Service сервис каталога монастырей
type Service struct {
	monasteryRepo MonasteryRepository
	guide         TravelGuideSource
	logger        Logger
	now           func() time.Time
}

// NewService создает новый экземпляр сервиса монастырей
func NewService(monasteryRepo MonasteryRepository, guide TravelGuideSource, logger Logger) *Service {
	return &Service{
		monasteryRepo: monasteryRepo,
		guide:         guide,
		logger:        logger,
		now:           func() time.Time { return time.Now().UTC() },
	}
}

// List возвращает монастыри под фильтр; пустой фильтр - весь каталог
func (s *Service) List(ctx context.Context, filter domain.MonasteryFilter) ([]models.MonasteryResponse, error) {
	monasteries, err := s.monasteryRepo.List(ctx, filter)
	if err != nil {
		s.logger.Error("List: repository error for filter=%+v: %v", filter, err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainMonasteryList(monasteries), nil
}

// GetByID получает монастырь по ID
func (s *Service) GetByID(ctx context.Context, id string) (*models.MonasteryResponse, error) {
	m, err := s.monasteryRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, monasteryRepo.ErrMonasteryNotFound) {
			s.logger.Warn("GetByID: monastery id=%s not found", id)
			return nil, ErrMonasteryNotFound
		}
		s.logger.Error("GetByID: repository error for monastery id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainMonastery(m), nil
}

// Create добавляет монастырь в каталог
func (s *Service) Create(ctx context.Context, req *models.CreateMonasteryRequest) (*models.MonasteryResponse, error) {
	m := req.ToDomainMonastery()
	m.ID = uuid.NewString()
	m.CreatedAt = s.now()

	if err := s.monasteryRepo.Create(ctx, m); err != nil {
		s.logger.Error("Create: repository error for monastery name=%s: %v", req.Name, err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: monastery id=%s created, name=%s", m.ID, m.Name)
	return models.FromDomainMonastery(m), nil
}

// Districts уникальные районы по возрастанию
func (s *Service) Districts(ctx context.Context) (*models.DistrictsResponse, error) {
	districts, err := s.monasteryRepo.Districts(ctx)
	if err != nil {
		s.logger.Error("Districts: repository error: %v", err)
		return nil, fmt.Errorf("%w: Districts - repository error: %v", ErrInternal, err)
	}

	slices.Sort(districts)
	return &models.DistrictsResponse{Districts: districts}, nil
}

// Traditions уникальные традиции по возрастанию
func (s *Service) Traditions(ctx context.Context) (*models.TraditionsResponse, error) {
	traditions, err := s.monasteryRepo.Traditions(ctx)
	if err != nil {
		s.logger.Error("Traditions: repository error: %v", err)
		return nil, fmt.Errorf("%w: Traditions - repository error: %v", ErrInternal, err)
	}

	slices.Sort(traditions)
	return &models.TraditionsResponse{Traditions: traditions}, nil
}

// Festivals праздники всех монастырей с названием и местом монастыря
func (s *Service) Festivals(ctx context.Context) (*models.FestivalsResponse, error) {
	monasteries, err := s.monasteryRepo.List(ctx, domain.MonasteryFilter{})
	if err != nil {
		s.logger.Error("Festivals: repository error: %v", err)
		return nil, fmt.Errorf("%w: Festivals - repository error: %v", ErrInternal, err)
	}

	resp := &models.FestivalsResponse{Festivals: make([]models.FestivalResponse, 0)}
	for _, m := range monasteries {
		for _, f := range m.Festivals {
			resp.Festivals = append(resp.Festivals, models.FestivalResponse{
				Name:         f.Name,
				Date:         f.Date,
				Description:  f.Description,
				Significance: f.Significance,
				Monastery:    m.Name,
				Location:     m.Location,
			})
		}
	}

	return resp, nil
}

// TravelGuide статический справочник путешественника
func (s *Service) TravelGuide() domain.TravelGuide {
	return s.guide.TravelGuide()
}

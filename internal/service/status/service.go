package status

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-HeritageService/internal/domain"
	"github.com/m04kA/SMC-HeritageService/internal/service/status/models"
)

// Service сервис проверок статуса
type Service struct {
	statusRepo StatusRepository
	logger     Logger
	now        func() time.Time
}

// NewService создает новый экземпляр сервиса
func NewService(statusRepo StatusRepository, logger Logger) *Service {
	return &Service{
		statusRepo: statusRepo,
		logger:     logger,
		now:        func() time.Time { return time.Now().UTC() },
	}
}

// Create сохраняет проверку от клиента
func (s *Service) Create(ctx context.Context, clientName string) (*models.StatusCheckResponse, error) {
	check := &domain.StatusCheck{
		ID:         uuid.NewString(),
		ClientName: clientName,
		Timestamp:  s.now(),
	}

	if err := s.statusRepo.Create(ctx, check); err != nil {
		s.logger.Error("Create: repository error for client=%s: %v", clientName, err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainStatusCheck(check), nil
}

// List возвращает не более MaxStatusChecks проверок, старые первыми
func (s *Service) List(ctx context.Context) ([]models.StatusCheckResponse, error) {
	checks, err := s.statusRepo.List(ctx, domain.MaxStatusChecks)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	resp := make([]models.StatusCheckResponse, 0, len(checks))
	for _, c := range checks {
		resp = append(resp, *models.FromDomainStatusCheck(c))
	}
	return resp, nil
}

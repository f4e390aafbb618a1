package initialize_cultural_events

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-HeritageService/internal/domain"
)

// UseCase засевает культурные события встроенными данными
type UseCase struct {
	eventRepo     EventRepository
	monasteryRepo MonasteryRepository
	catalog       Catalog
	txManager     TransactionManager
	timeProvider  TimeProvider
	logger        Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	eventRepo EventRepository,
	monasteryRepo MonasteryRepository,
	catalog Catalog,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		eventRepo:     eventRepo,
		monasteryRepo: monasteryRepo,
		catalog:       catalog,
		txManager:     txManager,
		timeProvider:  &RealTimeProvider{},
		logger:        logger,
	}
}

// Execute выполняет инициализацию
// monastery_id событий проставляется по monastery_name из уже сохраненных монастырей,
// поэтому монастыри нужно засеять раньше (или потом перепривязать)
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	existing, err := uc.eventRepo.Count(ctx)
	if err != nil {
		uc.logger.Error("InitializeCulturalEvents: failed to count events: %v", err)
		return nil, fmt.Errorf("%w: count events: %v", ErrInternal, err)
	}

	if existing > 0 && !req.Force {
		uc.logger.Info("InitializeCulturalEvents: skipped, %d events already stored", existing)
		return &Response{
			Message: fmt.Sprintf("Database already contains %d cultural events", existing),
			Count:   int(existing),
		}, nil
	}

	var inserted, linked int
	err = uc.txManager.Do(ctx, func(ctx context.Context) error {
		monasteries, err := uc.monasteryRepo.List(ctx, domain.MonasteryFilter{})
		if err != nil {
			return fmt.Errorf("list monasteries: %w", err)
		}

		events := uc.catalog.CulturalEvents(uc.timeProvider.Now())
		linked = linkEvents(events, domain.MonasteryIDsByName(monasteries))
		if linked == 0 && len(monasteries) == 0 {
			uc.logger.Warn("InitializeCulturalEvents: no monasteries stored, events stay unlinked")
		}

		if req.Force {
			deleted, err := uc.eventRepo.DeleteAll(ctx)
			if err != nil {
				return fmt.Errorf("delete events: %w", err)
			}
			uc.logger.Info("InitializeCulturalEvents: deleted %d events", deleted)
		}

		inserted, err = uc.eventRepo.CreateMany(ctx, events)
		if err != nil {
			return fmt.Errorf("insert events: %w", err)
		}

		return nil
	})
	if err != nil {
		uc.logger.Error("InitializeCulturalEvents: seeding failed, force=%t: %v", req.Force, err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	uc.logger.Info("InitializeCulturalEvents: inserted %d events, linked %d, force=%t", inserted, linked, req.Force)
	return &Response{
		Message:     fmt.Sprintf("Successfully initialized %d cultural events", inserted),
		Count:       inserted,
		Linked:      linked,
		Initialized: true,
	}, nil
}

// linkEvents проставляет monastery_id по названию и возвращает число привязанных событий
func linkEvents(events []*domain.CulturalEvent, index map[string]string) int {
	linked := 0
	for _, e := range events {
		e.MonasteryID = nil
		if e.MonasteryName == nil {
			continue
		}
		if id, ok := index[*e.MonasteryName]; ok {
			e.MonasteryID = &id
			linked++
		}
	}
	return linked
}

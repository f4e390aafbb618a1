package initialize_monasteries

import (
	"context"
	"fmt"
)

// UseCase засевает каталог монастырей встроенными данными
type UseCase struct {
	monasteryRepo MonasteryRepository
	catalog       Catalog
	relinker      EventRelinker
	txManager     TransactionManager
	timeProvider  TimeProvider
	logger        Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	monasteryRepo MonasteryRepository,
	catalog Catalog,
	relinker EventRelinker,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		monasteryRepo: monasteryRepo,
		catalog:       catalog,
		relinker:      relinker,
		txManager:     txManager,
		timeProvider:  &RealTimeProvider{},
		logger:        logger,
	}
}

// Execute выполняет инициализацию
// Без force при непустой коллекции ничего не делает.
// С force удаляет все записи, вставляет каталог с новыми ID и перепривязывает события;
// всё это в одной транзакции
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	existing, err := uc.monasteryRepo.Count(ctx)
	if err != nil {
		uc.logger.Error("InitializeMonasteries: failed to count monasteries: %v", err)
		return nil, fmt.Errorf("%w: count monasteries: %v", ErrInternal, err)
	}

	if existing > 0 && !req.Force {
		uc.logger.Info("InitializeMonasteries: skipped, %d monasteries already stored", existing)
		return &Response{
			Message: fmt.Sprintf("Database already contains %d Sikkim monasteries", existing),
			Count:   int(existing),
		}, nil
	}

	var inserted int
	err = uc.txManager.Do(ctx, func(ctx context.Context) error {
		if req.Force {
			deleted, err := uc.monasteryRepo.DeleteAll(ctx)
			if err != nil {
				return fmt.Errorf("delete monasteries: %w", err)
			}
			uc.logger.Info("InitializeMonasteries: deleted %d monasteries", deleted)
		}

		inserted, err = uc.monasteryRepo.CreateMany(ctx, uc.catalog.Monasteries(uc.timeProvider.Now()))
		if err != nil {
			return fmt.Errorf("insert monasteries: %w", err)
		}

		// События могли ссылаться на удаленные ID
		if _, err := uc.relinker.Execute(ctx); err != nil {
			return fmt.Errorf("relink cultural events: %w", err)
		}

		return nil
	})
	if err != nil {
		uc.logger.Error("InitializeMonasteries: seeding failed, force=%t: %v", req.Force, err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	uc.logger.Info("InitializeMonasteries: inserted %d monasteries, force=%t", inserted, req.Force)
	return &Response{
		Message:     fmt.Sprintf("Successfully initialized %d Sikkim monasteries", inserted),
		Count:       inserted,
		Initialized: true,
	}, nil
}

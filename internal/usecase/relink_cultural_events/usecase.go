package relink_cultural_events

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-HeritageService/internal/domain"
)

// UseCase перепривязывает события к монастырям по monastery_name
// Идемпотентен: повторный запуск без изменений каталога ничего не обновляет
type UseCase struct {
	monasteryRepo MonasteryRepository
	eventRepo     EventRepository
	logger        Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(monasteryRepo MonasteryRepository, eventRepo EventRepository, logger Logger) *UseCase {
	return &UseCase{
		monasteryRepo: monasteryRepo,
		eventRepo:     eventRepo,
		logger:        logger,
	}
}

// Execute выполняет перепривязку
// Если в контексте есть транзакция, все обновления идут в ней
func (uc *UseCase) Execute(ctx context.Context) (*Response, error) {
	monasteries, err := uc.monasteryRepo.List(ctx, domain.MonasteryFilter{})
	if err != nil {
		uc.logger.Error("RelinkCulturalEvents: failed to list monasteries: %v", err)
		return nil, fmt.Errorf("%w: list monasteries: %v", ErrInternal, err)
	}

	events, err := uc.eventRepo.ListLinkable(ctx)
	if err != nil {
		uc.logger.Error("RelinkCulturalEvents: failed to list events: %v", err)
		return nil, fmt.Errorf("%w: list events: %v", ErrInternal, err)
	}

	index := domain.MonasteryIDsByName(monasteries)
	resp := &Response{}

	for _, event := range events {
		var target *string
		if id, ok := index[*event.MonasteryName]; ok {
			target = &id
			resp.Linked++
		} else {
			resp.Unlinked++
		}

		if sameLink(event.MonasteryID, target) {
			continue
		}

		if err := uc.eventRepo.SetMonasteryID(ctx, event.ID, target); err != nil {
			uc.logger.Error("RelinkCulturalEvents: failed to update event id=%s: %v", event.ID, err)
			return nil, fmt.Errorf("%w: update event %s: %v", ErrInternal, event.ID, err)
		}
		resp.Updated++
	}

	uc.logger.Info("RelinkCulturalEvents: linked=%d, unlinked=%d, updated=%d", resp.Linked, resp.Unlinked, resp.Updated)
	return resp, nil
}

func sameLink(a, b *string) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}

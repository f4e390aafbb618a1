package culturalevent

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-HeritageService/internal/domain"
	"github.com/m04kA/SMC-HeritageService/internal/infra/storage/collection"
)

var byStartDate = collection.FindOptions{Sort: []string{"start_date ASC", "created_at ASC"}}

// Repository репозиторий культурных событий
type Repository struct {
	coll *collection.Collection[domain.CulturalEvent]
}

// NewRepository создает новый экземпляр репозитория событий
func NewRepository(db DBExecutor) *Repository {
	return &Repository{coll: collection.New(db, schema)}
}

// Create сохраняет событие
func (r *Repository) Create(ctx context.Context, event *domain.CulturalEvent) error {
	if err := r.coll.InsertOne(ctx, event); err != nil {
		return fmt.Errorf("%w: Create - insert event: %v", ErrRepository, err)
	}
	return nil
}

// CreateMany сохраняет пачку событий и возвращает их число
func (r *Repository) CreateMany(ctx context.Context, events []*domain.CulturalEvent) (int, error) {
	n, err := r.coll.InsertMany(ctx, events)
	if err != nil {
		return n, fmt.Errorf("%w: CreateMany - insert events: %v", ErrRepository, err)
	}
	return n, nil
}

// GetByID получает событие по ID
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.CulturalEvent, error) {
	event, err := r.coll.FindOne(ctx, collection.Eq("id", id))
	if errors.Is(err, collection.ErrNotFound) {
		return nil, ErrEventNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - find event: %v", ErrRepository, err)
	}
	return event, nil
}

// List возвращает события под фильтр, отсортированные по дате начала
func (r *Repository) List(ctx context.Context, filter domain.CulturalEventFilter) ([]*domain.CulturalEvent, error) {
	events, err := r.coll.Find(ctx, buildFilter(filter), byStartDate)
	if err != nil {
		return nil, fmt.Errorf("%w: List - find events: %v", ErrRepository, err)
	}
	return events, nil
}

// ListByMonth возвращает события, пересекающиеся с календарным месяцем
func (r *Repository) ListByMonth(ctx context.Context, month domain.MonthRange) ([]*domain.CulturalEvent, error) {
	events, err := r.coll.Find(ctx, monthOverlap(month), byStartDate)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByMonth - find events for %04d-%02d: %v", ErrRepository, month.Year, month.Month, err)
	}
	return events, nil
}

// ListLinkable возвращает события, у которых указано имя монастыря
func (r *Repository) ListLinkable(ctx context.Context) ([]*domain.CulturalEvent, error) {
	events, err := r.coll.Find(ctx, squirrel.NotEq{"monastery_name": nil}, byStartDate)
	if err != nil {
		return nil, fmt.Errorf("%w: ListLinkable - find events: %v", ErrRepository, err)
	}
	return events, nil
}

// SetMonasteryID перепривязывает событие к монастырю (nil снимает привязку)
func (r *Repository) SetMonasteryID(ctx context.Context, eventID string, monasteryID *string) error {
	matched, err := r.coll.UpdateOne(ctx, collection.Eq("id", eventID), map[string]interface{}{
		"monastery_id": monasteryID,
	})
	if err != nil {
		return fmt.Errorf("%w: SetMonasteryID - update event: %v", ErrRepository, err)
	}
	if matched == 0 {
		return ErrEventNotFound
	}
	return nil
}

// Count возвращает число событий
func (r *Repository) Count(ctx context.Context) (int64, error) {
	count, err := r.coll.Count(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("%w: Count - count events: %v", ErrRepository, err)
	}
	return count, nil
}

// DeleteAll удаляет все события
func (r *Repository) DeleteAll(ctx context.Context) (int64, error) {
	deleted, err := r.coll.DeleteMany(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("%w: DeleteAll - delete events: %v", ErrRepository, err)
	}
	return deleted, nil
}

func buildFilter(filter domain.CulturalEventFilter) squirrel.Sqlizer {
	conditions := squirrel.And{}

	if filter.StartDate != "" {
		conditions = append(conditions, collection.GtOrEq("start_date", filter.StartDate))
	}
	if filter.EndDate != "" {
		conditions = append(conditions, collection.LtOrEq("end_date", filter.EndDate))
	}
	if filter.EventType != "" {
		conditions = append(conditions, collection.Eq("event_type", filter.EventType))
	}
	if filter.MonasteryID != "" {
		conditions = append(conditions, collection.Eq("monastery_id", filter.MonasteryID))
	}
	if filter.Tradition != "" {
		conditions = append(conditions, collection.ArrayContains("traditions", filter.Tradition))
	}

	if len(conditions) == 0 {
		return nil
	}
	return conditions
}

// monthOverlap событие начинается в месяце, заканчивается в месяце или охватывает его целиком
// Даты хранятся в формате YYYY-MM-DD, поэтому строковое сравнение совпадает с хронологическим
func monthOverlap(month domain.MonthRange) squirrel.Sqlizer {
	return collection.Or(
		collection.And(
			collection.GtOrEq("start_date", month.Start),
			collection.Lt("start_date", month.Next),
		),
		collection.And(
			collection.GtOrEq("end_date", month.Start),
			collection.Lt("end_date", month.Next),
		),
		collection.And(
			collection.Lt("start_date", month.Start),
			collection.GtOrEq("end_date", month.Next),
		),
	)
}

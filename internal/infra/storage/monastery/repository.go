package monastery

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-HeritageService/internal/domain"
	"github.com/m04kA/SMC-HeritageService/internal/infra/storage/collection"
)

// Repository репозиторий каталога монастырей
type Repository struct {
	coll *collection.Collection[domain.Monastery]
}

// NewRepository создает новый экземпляр репозитория монастырей
func NewRepository(db DBExecutor) *Repository {
	return &Repository{coll: collection.New(db, schema)}
}

// Create сохраняет монастырь
func (r *Repository) Create(ctx context.Context, m *domain.Monastery) error {
	if err := r.coll.InsertOne(ctx, m); err != nil {
		return fmt.Errorf("%w: Create - insert monastery: %v", ErrRepository, err)
	}
	return nil
}

// CreateMany сохраняет пачку монастырей и возвращает их число
func (r *Repository) CreateMany(ctx context.Context, monasteries []*domain.Monastery) (int, error) {
	n, err := r.coll.InsertMany(ctx, monasteries)
	if err != nil {
		return n, fmt.Errorf("%w: CreateMany - insert monasteries: %v", ErrRepository, err)
	}
	return n, nil
}

// GetByID получает монастырь по ID
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.Monastery, error) {
	m, err := r.coll.FindOne(ctx, collection.Eq("id", id))
	if errors.Is(err, collection.ErrNotFound) {
		return nil, ErrMonasteryNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - find monastery: %v", ErrRepository, err)
	}
	return m, nil
}

// List возвращает монастыри под фильтр в порядке добавления
func (r *Repository) List(ctx context.Context, filter domain.MonasteryFilter) ([]*domain.Monastery, error) {
	monasteries, err := r.coll.Find(ctx, buildFilter(filter), collection.FindOptions{
		Sort: []string{"created_at ASC", "id ASC"},
	})
	if err != nil {
		return nil, fmt.Errorf("%w: List - find monasteries: %v", ErrRepository, err)
	}
	return monasteries, nil
}

// Count возвращает число монастырей
func (r *Repository) Count(ctx context.Context) (int64, error) {
	count, err := r.coll.Count(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("%w: Count - count monasteries: %v", ErrRepository, err)
	}
	return count, nil
}

// DeleteAll удаляет все монастыри
func (r *Repository) DeleteAll(ctx context.Context) (int64, error) {
	deleted, err := r.coll.DeleteMany(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("%w: DeleteAll - delete monasteries: %v", ErrRepository, err)
	}
	return deleted, nil
}

// Districts уникальные районы
func (r *Repository) Districts(ctx context.Context) ([]string, error) {
	districts, err := r.coll.Distinct(ctx, "district")
	if err != nil {
		return nil, fmt.Errorf("%w: Districts - distinct district: %v", ErrRepository, err)
	}
	return districts, nil
}

// Traditions уникальные традиции
func (r *Repository) Traditions(ctx context.Context) ([]string, error) {
	traditions, err := r.coll.Distinct(ctx, "tradition")
	if err != nil {
		return nil, fmt.Errorf("%w: Traditions - distinct tradition: %v", ErrRepository, err)
	}
	return traditions, nil
}

// buildFilter условия AND по непустым полям фильтра
func buildFilter(filter domain.MonasteryFilter) squirrel.Sqlizer {
	conditions := squirrel.And{}

	if filter.District != "" {
		conditions = append(conditions, collection.Contains("district", filter.District))
	}
	if filter.Tradition != "" {
		conditions = append(conditions, collection.Contains("tradition", filter.Tradition))
	}
	if filter.Search != "" {
		conditions = append(conditions, collection.Or(
			collection.Contains("name", filter.Search),
			collection.Contains("description", filter.Search),
			collection.Contains("location", filter.Search),
		))
	}

	if len(conditions) == 0 {
		return nil
	}
	return conditions
}

package status

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-HeritageService/internal/domain"
	"github.com/m04kA/SMC-HeritageService/internal/infra/storage/collection"
)

var schema = collection.Schema[domain.StatusCheck]{
	Table:   "status_checks",
	Columns: []string{"id", "client_name", "created_at"},
	Values: func(s *domain.StatusCheck) ([]interface{}, error) {
		return []interface{}{s.ID, s.ClientName, s.Timestamp}, nil
	},
	Scan: func(row collection.RowScanner) (*domain.StatusCheck, error) {
		var s domain.StatusCheck
		if err := row.Scan(&s.ID, &s.ClientName, &s.Timestamp); err != nil {
			return nil, err
		}
		return &s, nil
	},
}

// Repository репозиторий проверок статуса
type Repository struct {
	coll *collection.Collection[domain.StatusCheck]
}

// NewRepository создает новый экземпляр репозитория
func NewRepository(db DBExecutor) *Repository {
	return &Repository{coll: collection.New(db, schema)}
}

// Create сохраняет проверку
func (r *Repository) Create(ctx context.Context, check *domain.StatusCheck) error {
	if err := r.coll.InsertOne(ctx, check); err != nil {
		return fmt.Errorf("%w: Create - insert status check: %v", ErrRepository, err)
	}
	return nil
}

// List возвращает не более limit проверок, старые первыми
func (r *Repository) List(ctx context.Context, limit int) ([]*domain.StatusCheck, error) {
	checks, err := r.coll.Find(ctx, nil, collection.FindOptions{
		Sort:  []string{"created_at ASC", "id ASC"},
		Limit: uint64(limit),
	})
	if err != nil {
		return nil, fmt.Errorf("%w: List - find status checks: %v", ErrRepository, err)
	}
	return checks, nil
}

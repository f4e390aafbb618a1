package booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-HeritageService/internal/domain"
	"github.com/m04kA/SMC-HeritageService/internal/infra/storage/collection"
)

var newestFirst = collection.FindOptions{Sort: []string{"created_at DESC", "id DESC"}}

// Repository репозиторий для работы с бронированиями
type Repository struct {
	coll *collection.Collection[domain.Booking]
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{coll: collection.New(db, schema)}
}

// Create сохраняет бронирование
func (r *Repository) Create(ctx context.Context, booking *domain.Booking) error {
	if err := r.coll.InsertOne(ctx, booking); err != nil {
		return fmt.Errorf("%w: Create - insert booking: %v", ErrRepository, err)
	}
	return nil
}

// GetByID получает бронирование по ID
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	booking, err := r.coll.FindOne(ctx, collection.Eq("id", id))
	if errors.Is(err, collection.ErrNotFound) {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - find booking: %v", ErrRepository, err)
	}
	return booking, nil
}

// List возвращает все бронирования, новые первыми
func (r *Repository) List(ctx context.Context) ([]*domain.Booking, error) {
	bookings, err := r.coll.Find(ctx, nil, newestFirst)
	if err != nil {
		return nil, fmt.Errorf("%w: List - find bookings: %v", ErrRepository, err)
	}
	return bookings, nil
}

// ListByEmail возвращает бронирования посетителя (точное совпадение email), новые первыми
func (r *Repository) ListByEmail(ctx context.Context, email string) ([]*domain.Booking, error) {
	bookings, err := r.coll.Find(ctx, collection.Eq("visitor_email", email), newestFirst)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByEmail - find bookings: %v", ErrRepository, err)
	}
	return bookings, nil
}

// UpdateStatus устанавливает статус бронирования
// Возвращает ErrBookingNotFound, если бронирования нет
func (r *Repository) UpdateStatus(ctx context.Context, id string, status domain.BookingStatus) error {
	matched, err := r.coll.UpdateOne(ctx, collection.Eq("id", id), map[string]interface{}{
		"booking_status": string(status),
	})
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - update booking: %v", ErrRepository, err)
	}
	if matched == 0 {
		return ErrBookingNotFound
	}
	return nil
}

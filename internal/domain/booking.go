package domain

import (
	"time"

	"github.com/m04kA/SMC-HeritageService/pkg/types"
)

// BookingStatus статус бронирования
type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusConfirmed BookingStatus = "confirmed"
	StatusCancelled BookingStatus = "cancelled"
)

// TourType тип посещения монастыря
type TourType string

const (
	TourSelfGuided       TourType = "self_guided"
	TourGuided           TourType = "guided_tour"
	TourSpiritualSession TourType = "spiritual_session"
)

// TourPrices цена за одного посетителя по типу тура
var TourPrices = map[TourType]float64{
	TourSelfGuided:       0,
	TourGuided:           500,
	TourSpiritualSession: 300,
}

// IsKnown возвращает true, если тип тура есть в прайсе
func (t TourType) IsKnown() bool {
	_, ok := TourPrices[t]
	return ok
}

// UnitPrice цена за одного посетителя
// Неизвестный тип тура стоит 0
func (t TourType) UnitPrice() float64 {
	return TourPrices[t]
}

// TotalAmount итоговая стоимость для группы
func (t TourType) TotalAmount(groupSize int) float64 {
	return t.UnitPrice() * float64(groupSize)
}

// Booking бронирование посещения монастыря
type Booking struct {
	ID              string
	MonasteryID     string // слабая ссылка, целостность не проверяется
	VisitorName     string
	VisitorEmail    string
	VisitorPhone    string
	VisitDate       string // YYYY-MM-DD
	VisitTime       types.TimeString
	GroupSize       int
	TourType        TourType
	SpecialRequests *string
	TotalAmount     float64
	Status          BookingStatus
	CreatedAt       time.Time
}

// IsCancelled возвращает true, если бронирование отменено
func (b *Booking) IsCancelled() bool {
	return b.Status == StatusCancelled
}

package models

import (
	"time"

	"github.com/m04kA/SMC-HeritageService/internal/domain"
)

// Request модели

// CreateBookingRequest данные нового бронирования
type CreateBookingRequest struct {
	MonasteryID     string
	VisitorName     string
	VisitorEmail    string
	VisitorPhone    string
	VisitDate       string
	VisitTime       string
	GroupSize       int
	TourType        string
	SpecialRequests *string
}

// Response модели

// BookingResponse ответ с данными бронирования
type BookingResponse struct {
	ID              string    `json:"id"`
	MonasteryID     string    `json:"monastery_id"`
	VisitorName     string    `json:"visitor_name"`
	VisitorEmail    string    `json:"visitor_email"`
	VisitorPhone    string    `json:"visitor_phone"`
	VisitDate       string    `json:"visit_date"` // "2025-10-15"
	VisitTime       string    `json:"visit_time"` // "10:00"
	GroupSize       int       `json:"group_size"`
	TourType        string    `json:"tour_type"`
	SpecialRequests *string   `json:"special_requests"`
	TotalAmount     float64   `json:"total_amount"`
	BookingStatus   string    `json:"booking_status"`
	CreatedAt       time.Time `json:"created_at"`
}

// BookingListResponse ответ со списком бронирований
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

// Методы конвертации

// FromDomainBooking конвертирует domain модель в DTO
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	if b == nil {
		return nil
	}

	return &BookingResponse{
		ID:              b.ID,
		MonasteryID:     b.MonasteryID,
		VisitorName:     b.VisitorName,
		VisitorEmail:    b.VisitorEmail,
		VisitorPhone:    b.VisitorPhone,
		VisitDate:       b.VisitDate,
		VisitTime:       b.VisitTime.String(),
		GroupSize:       b.GroupSize,
		TourType:        string(b.TourType),
		SpecialRequests: b.SpecialRequests,
		TotalAmount:     b.TotalAmount,
		BookingStatus:   string(b.Status),
		CreatedAt:       b.CreatedAt,
	}
}

// FromDomainBookingList конвертирует список domain моделей в DTO
func FromDomainBookingList(bookings []*domain.Booking) *BookingListResponse {
	resp := &BookingListResponse{
		Bookings: make([]BookingResponse, 0, len(bookings)),
	}

	for _, b := range bookings {
		resp.Bookings = append(resp.Bookings, *FromDomainBooking(b))
	}

	return resp
}

package create_booking

import (
	"github.com/m04kA/SMC-HeritageService/internal/service/bookings/models"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	MonasteryID     string  `json:"monastery_id" validate:"required"`
	VisitorName     string  `json:"visitor_name" validate:"required"`
	VisitorEmail    string  `json:"visitor_email" validate:"required,email"`
	VisitorPhone    string  `json:"visitor_phone" validate:"required"`
	VisitDate       string  `json:"visit_date" validate:"required,datetime=2006-01-02"` // "2025-10-15"
	VisitTime       string  `json:"visit_time" validate:"required,datetime=15:04"`      // "10:00"
	GroupSize       int     `json:"group_size" validate:"min=1"`
	TourType        string  `json:"tour_type" validate:"required"`
	SpecialRequests *string `json:"special_requests,omitempty"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *CreateBookingRequest) ToServiceRequest() *models.CreateBookingRequest {
	return &models.CreateBookingRequest{
		MonasteryID:     r.MonasteryID,
		VisitorName:     r.VisitorName,
		VisitorEmail:    r.VisitorEmail,
		VisitorPhone:    r.VisitorPhone,
		VisitDate:       r.VisitDate,
		VisitTime:       r.VisitTime,
		GroupSize:       r.GroupSize,
		TourType:        r.TourType,
		SpecialRequests: r.SpecialRequests,
	}
}

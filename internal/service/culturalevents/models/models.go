package models

import (
	"time"

	"github.com/m04kA/SMC-HeritageService/internal/domain"
)

// Request модели

// CreateCulturalEventRequest данные нового события
type CreateCulturalEventRequest struct {
	Title         string
	Description   string
	EventType     string
	StartDate     string
	EndDate       string
	MonasteryID   *string
	MonasteryName *string
	Location      string
	Significance  string
	Traditions    []string
	Activities    []string
	VisitorInfo   string
	ImageURL      *string
	IsRecurring   bool
}

// Response модели

// CulturalEventResponse ответ с данными события
type CulturalEventResponse struct {
	ID            string    `json:"id"`
	Title         string    `json:"title"`
	Description   string    `json:"description"`
	EventType     string    `json:"event_type"`
	StartDate     string    `json:"start_date"`
	EndDate       string    `json:"end_date"`
	MonasteryID   *string   `json:"monastery_id"`
	MonasteryName *string   `json:"monastery_name"`
	Location      string    `json:"location"`
	Significance  string    `json:"significance"`
	Traditions    []string  `json:"traditions"`
	Activities    []string  `json:"activities"`
	VisitorInfo   string    `json:"visitor_info"`
	ImageURL      *string   `json:"image_url"`
	IsRecurring   bool      `json:"is_recurring"`
	CreatedAt     time.Time `json:"created_at"`
}

// MonthlyEventsResponse события календарного месяца
type MonthlyEventsResponse struct {
	Year   int                     `json:"year"`
	Month  int                     `json:"month"`
	Events []CulturalEventResponse `json:"events"`
}

// Методы конвертации

// FromDomainEvent конвертирует domain модель в DTO
func FromDomainEvent(e *domain.CulturalEvent) *CulturalEventResponse {
	if e == nil {
		return nil
	}

	return &CulturalEventResponse{
		ID:            e.ID,
		Title:         e.Title,
		Description:   e.Description,
		EventType:     string(e.EventType),
		StartDate:     e.StartDate,
		EndDate:       e.EndDate,
		MonasteryID:   e.MonasteryID,
		MonasteryName: e.MonasteryName,
		Location:      e.Location,
		Significance:  e.Significance,
		Traditions:    orEmpty(e.Traditions),
		Activities:    orEmpty(e.Activities),
		VisitorInfo:   e.VisitorInfo,
		ImageURL:      e.ImageURL,
		IsRecurring:   e.IsRecurring,
		CreatedAt:     e.CreatedAt,
	}
}

// FromDomainEventList конвертирует список domain моделей в DTO
func FromDomainEventList(events []*domain.CulturalEvent) []CulturalEventResponse {
	resp := make([]CulturalEventResponse, 0, len(events))
	for _, e := range events {
		resp = append(resp, *FromDomainEvent(e))
	}
	return resp
}

// ToDomainEvent собирает domain модель из запроса (без ID и created_at)
func (r *CreateCulturalEventRequest) ToDomainEvent() *domain.CulturalEvent {
	return &domain.CulturalEvent{
		Title:         r.Title,
		Description:   r.Description,
		EventType:     domain.EventType(r.EventType),
		StartDate:     r.StartDate,
		EndDate:       r.EndDate,
		MonasteryID:   r.MonasteryID,
		MonasteryName: r.MonasteryName,
		Location:      r.Location,
		Significance:  r.Significance,
		Traditions:    orEmpty(r.Traditions),
		Activities:    orEmpty(r.Activities),
		VisitorInfo:   r.VisitorInfo,
		ImageURL:      r.ImageURL,
		IsRecurring:   r.IsRecurring,
	}
}

func orEmpty(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

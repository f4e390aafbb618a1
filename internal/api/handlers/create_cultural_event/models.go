package create_cultural_event

import (
	"github.com/m04kA/SMC-HeritageService/internal/service/culturalevents/models"
)

// CreateCulturalEventRequest HTTP request model
type CreateCulturalEventRequest struct {
	Title         string   `json:"title" validate:"required"`
	Description   string   `json:"description"`
	EventType     string   `json:"event_type" validate:"required,oneof=festival ceremony special_occasion cultural_event"`
	StartDate     string   `json:"start_date" validate:"required,datetime=2006-01-02"`
	EndDate       string   `json:"end_date" validate:"required,datetime=2006-01-02"`
	MonasteryID   *string  `json:"monastery_id,omitempty"`
	MonasteryName *string  `json:"monastery_name,omitempty"`
	Location      string   `json:"location" validate:"required"`
	Significance  string   `json:"significance"`
	Traditions    []string `json:"traditions"`
	Activities    []string `json:"activities"`
	VisitorInfo   string   `json:"visitor_info"`
	ImageURL      *string  `json:"image_url,omitempty" validate:"omitempty,url"`
	IsRecurring   bool     `json:"is_recurring"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *CreateCulturalEventRequest) ToServiceRequest() *models.CreateCulturalEventRequest {
	return &models.CreateCulturalEventRequest{
		Title:         r.Title,
		Description:   r.Description,
		EventType:     r.EventType,
		StartDate:     r.StartDate,
		EndDate:       r.EndDate,
		MonasteryID:   r.MonasteryID,
		MonasteryName: r.MonasteryName,
		Location:      r.Location,
		Significance:  r.Significance,
		Traditions:    r.Traditions,
		Activities:    r.Activities,
		VisitorInfo:   r.VisitorInfo,
		ImageURL:      r.ImageURL,
		IsRecurring:   r.IsRecurring,
	}
}

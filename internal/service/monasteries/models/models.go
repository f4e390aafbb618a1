package models

import (
	"time"

	"github.com/m04kA/SMC-HeritageService/internal/domain"
)

// Request модели

// CreateMonasteryRequest данные нового монастыря
type CreateMonasteryRequest struct {
	Name                  string
	Location              string
	District              string
	Altitude              string
	Tradition             string
	Description           string
	Founded               string
	Architecture          string
	SpiritualSignificance string
	MainImage             string
	GalleryImages         []string
	PanoramicImages       []string
	Coordinates           domain.Coordinates
	Highlights            []string
	VisitingHours         string
	EntranceFee           string
	Accessibility         string
	CulturalImportance    string
	Festivals             []domain.Festival
	TravelInfo            domain.TravelInfo
}

// Response модели

// MonasteryResponse ответ с данными монастыря
type MonasteryResponse struct {
	ID                    string             `json:"id"`
	Name                  string             `json:"name"`
	Location              string             `json:"location"`
	District              string             `json:"district"`
	Altitude              string             `json:"altitude"`
	Tradition             string             `json:"tradition"`
	Description           string             `json:"description"`
	Founded               string             `json:"founded"`
	Architecture          string             `json:"architecture"`
	SpiritualSignificance string             `json:"spiritual_significance"`
	MainImage             string             `json:"main_image"`
	GalleryImages         []string           `json:"gallery_images"`
	PanoramicImages       []string           `json:"panoramic_images"`
	Coordinates           domain.Coordinates `json:"coordinates"`
	Highlights            []string           `json:"highlights"`
	VisitingHours         string             `json:"visiting_hours"`
	EntranceFee           string             `json:"entrance_fee"`
	Accessibility         string             `json:"accessibility"`
	CulturalImportance    string             `json:"cultural_importance"`
	Festivals             []domain.Festival  `json:"festivals"`
	TravelInfo            domain.TravelInfo  `json:"travel_info"`
	CreatedAt             time.Time          `json:"created_at"`
}

// DistrictsResponse уникальные районы
type DistrictsResponse struct {
	Districts []string `json:"districts"`
}

// TraditionsResponse уникальные традиции
type TraditionsResponse struct {
	Traditions []string `json:"traditions"`
}

// FestivalResponse праздник с указанием монастыря
type FestivalResponse struct {
	Name         string `json:"name"`
	Date         string `json:"date"`
	Description  string `json:"description"`
	Significance string `json:"significance"`
	Monastery    string `json:"monastery"`
	Location     string `json:"location"`
}

// FestivalsResponse все праздники всех монастырей
type FestivalsResponse struct {
	Festivals []FestivalResponse `json:"festivals"`
}

// Методы конвертации

// FromDomainMonastery конвертирует domain модель в DTO
func FromDomainMonastery(m *domain.Monastery) *MonasteryResponse {
	if m == nil {
		return nil
	}

	return &MonasteryResponse{
		ID:                    m.ID,
		Name:                  m.Name,
		Location:              m.Location,
		District:              m.District,
		Altitude:              m.Altitude,
		Tradition:             m.Tradition,
		Description:           m.Description,
		Founded:               m.Founded,
		Architecture:          m.Architecture,
		SpiritualSignificance: m.SpiritualSignificance,
		MainImage:             m.MainImage,
		GalleryImages:         orEmpty(m.GalleryImages),
		PanoramicImages:       orEmpty(m.PanoramicImages),
		Coordinates:           m.Coordinates,
		Highlights:            orEmpty(m.Highlights),
		VisitingHours:         m.VisitingHours,
		EntranceFee:           m.EntranceFee,
		Accessibility:         m.Accessibility,
		CulturalImportance:    m.CulturalImportance,
		Festivals:             orEmptyFestivals(m.Festivals),
		TravelInfo:            m.TravelInfo,
		CreatedAt:             m.CreatedAt,
	}
}

// FromDomainMonasteryList конвертирует список domain моделей в DTO
func FromDomainMonasteryList(monasteries []*domain.Monastery) []MonasteryResponse {
	resp := make([]MonasteryResponse, 0, len(monasteries))
	for _, m := range monasteries {
		resp = append(resp, *FromDomainMonastery(m))
	}
	return resp
}

// ToDomainMonastery собирает domain модель из запроса (без ID и created_at)
func (r *CreateMonasteryRequest) ToDomainMonastery() *domain.Monastery {
	return &domain.Monastery{
		Name:                  r.Name,
		Location:              r.Location,
		District:              r.District,
		Altitude:              r.Altitude,
		Tradition:             r.Tradition,
		Description:           r.Description,
		Founded:               r.Founded,
		Architecture:          r.Architecture,
		SpiritualSignificance: r.SpiritualSignificance,
		MainImage:             r.MainImage,
		GalleryImages:         orEmpty(r.GalleryImages),
		PanoramicImages:       orEmpty(r.PanoramicImages),
		Coordinates:           r.Coordinates,
		Highlights:            orEmpty(r.Highlights),
		VisitingHours:         r.VisitingHours,
		EntranceFee:           r.EntranceFee,
		Accessibility:         r.Accessibility,
		CulturalImportance:    r.CulturalImportance,
		Festivals:             orEmptyFestivals(r.Festivals),
		TravelInfo:            r.TravelInfo,
	}
}

func orEmpty(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

func orEmptyFestivals(f []domain.Festival) []domain.Festival {
	if f == nil {
		return []domain.Festival{}
	}
	return f
}

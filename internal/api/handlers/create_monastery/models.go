package create_monastery

import (
	"github.com/m04kA/SMC-HeritageService/internal/domain"
	"github.com/m04kA/SMC-HeritageService/internal/service/monasteries/models"
)

// FestivalRequest праздник монастыря
type FestivalRequest struct {
	Name         string `json:"name" validate:"required"`
	Date         string `json:"date"`
	Description  string `json:"description"`
	Significance string `json:"significance"`
}

// TravelInfoRequest практическая информация
type TravelInfoRequest struct {
	BestTimeToVisit string   `json:"best_time_to_visit"`
	NearestAirport  string   `json:"nearest_airport"`
	Accommodation   []string `json:"accommodation"`
	LocalTransport  string   `json:"local_transport"`
	PermitsRequired string   `json:"permits_required"`
	WeatherInfo     string   `json:"weather_info"`
}

// CoordinatesRequest координаты
type CoordinatesRequest struct {
	Lat float64 `json:"lat" validate:"min=-90,max=90"`
	Lng float64 `json:"lng" validate:"min=-180,max=180"`
}

// CreateMonasteryRequest HTTP request model
type CreateMonasteryRequest struct {
	Name                  string             `json:"name" validate:"required"`
	Location              string             `json:"location" validate:"required"`
	District              string             `json:"district" validate:"required"`
	Altitude              string             `json:"altitude"`
	Tradition             string             `json:"tradition" validate:"required"`
	Description           string             `json:"description"`
	Founded               string             `json:"founded"`
	Architecture          string             `json:"architecture"`
	SpiritualSignificance string             `json:"spiritual_significance"`
	MainImage             string             `json:"main_image"`
	GalleryImages         []string           `json:"gallery_images"`
	PanoramicImages       []string           `json:"panoramic_images"`
	Coordinates           CoordinatesRequest `json:"coordinates"`
	Highlights            []string           `json:"highlights"`
	VisitingHours         string             `json:"visiting_hours"`
	EntranceFee           string             `json:"entrance_fee"`
	Accessibility         string             `json:"accessibility"`
	CulturalImportance    string             `json:"cultural_importance"`
	Festivals             []FestivalRequest  `json:"festivals" validate:"dive"`
	TravelInfo            TravelInfoRequest  `json:"travel_info"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *CreateMonasteryRequest) ToServiceRequest() *models.CreateMonasteryRequest {
	festivals := make([]domain.Festival, 0, len(r.Festivals))
	for _, f := range r.Festivals {
		festivals = append(festivals, domain.Festival{
			Name:         f.Name,
			Date:         f.Date,
			Description:  f.Description,
			Significance: f.Significance,
		})
	}

	return &models.CreateMonasteryRequest{
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
		GalleryImages:         r.GalleryImages,
		PanoramicImages:       r.PanoramicImages,
		Coordinates:           domain.Coordinates{Lat: r.Coordinates.Lat, Lng: r.Coordinates.Lng},
		Highlights:            r.Highlights,
		VisitingHours:         r.VisitingHours,
		EntranceFee:           r.EntranceFee,
		Accessibility:         r.Accessibility,
		CulturalImportance:    r.CulturalImportance,
		Festivals:             festivals,
		TravelInfo: domain.TravelInfo{
			BestTimeToVisit: r.TravelInfo.BestTimeToVisit,
			NearestAirport:  r.TravelInfo.NearestAirport,
			Accommodation:   r.TravelInfo.Accommodation,
			LocalTransport:  r.TravelInfo.LocalTransport,
			PermitsRequired: r.TravelInfo.PermitsRequired,
			WeatherInfo:     r.TravelInfo.WeatherInfo,
		},
	}
}

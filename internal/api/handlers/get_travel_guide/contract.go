package get_travel_guide

import "github.com/m04kA/SMC-HeritageService/internal/domain"

type MonasteryService interface {
	TravelGuide() domain.TravelGuide
}

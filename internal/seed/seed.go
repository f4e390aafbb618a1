// Package seed встроенный каталог монастырей, культурных событий и справочника путешественника
package seed

import (
	"embed"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/m04kA/SMC-HeritageService/internal/domain"
)

//go:embed catalog/*.yaml
var catalogFS embed.FS

// ErrCatalog возвращается, если встроенный каталог не удалось прочитать
var ErrCatalog = errors.New("seed: invalid catalog")

type monasteryRecord struct {
	Name                  string             `yaml:"name"`
	Location              string             `yaml:"location"`
	District              string             `yaml:"district"`
	Altitude              string             `yaml:"altitude"`
	Tradition             string             `yaml:"tradition"`
	Description           string             `yaml:"description"`
	Founded               string             `yaml:"founded"`
	Architecture          string             `yaml:"architecture"`
	SpiritualSignificance string             `yaml:"spiritual_significance"`
	MainImage             string             `yaml:"main_image"`
	GalleryImages         []string           `yaml:"gallery_images"`
	PanoramicImages       []string           `yaml:"panoramic_images"`
	Coordinates           domain.Coordinates `yaml:"coordinates"`
	Highlights            []string           `yaml:"highlights"`
	VisitingHours         string             `yaml:"visiting_hours"`
	EntranceFee           string             `yaml:"entrance_fee"`
	Accessibility         string             `yaml:"accessibility"`
	CulturalImportance    string             `yaml:"cultural_importance"`
	Festivals             []domain.Festival  `yaml:"festivals"`
	TravelInfo            domain.TravelInfo  `yaml:"travel_info"`
}

type culturalEventRecord struct {
	Title         string   `yaml:"title"`
	Description   string   `yaml:"description"`
	EventType     string   `yaml:"event_type"`
	StartDate     string   `yaml:"start_date"`
	EndDate       string   `yaml:"end_date"`
	MonasteryName *string  `yaml:"monastery_name"`
	Location      string   `yaml:"location"`
	Significance  string   `yaml:"significance"`
	Traditions    []string `yaml:"traditions"`
	Activities    []string `yaml:"activities"`
	VisitorInfo   string   `yaml:"visitor_info"`
	ImageURL      *string  `yaml:"image_url"`
	IsRecurring   bool     `yaml:"is_recurring"`
}

// Catalog неизменяемый набор исходных данных
// Каждый вызов Monasteries/CulturalEvents выдает новые записи с новыми ID и временем создания
type Catalog struct {
	monasteries []monasteryRecord
	events      []culturalEventRecord
	travelGuide domain.TravelGuide
}

// Load читает встроенный каталог
func Load() (*Catalog, error) {
	c := &Catalog{}

	if err := decode("catalog/monasteries.yaml", &c.monasteries); err != nil {
		return nil, err
	}
	if err := decode("catalog/cultural_events.yaml", &c.events); err != nil {
		return nil, err
	}
	if err := decode("catalog/travel_guide.yaml", &c.travelGuide); err != nil {
		return nil, err
	}

	return c, nil
}

// MustLoad как Load, но паникует при ошибке. Каталог встроен в бинарник, поэтому ошибка означает битую сборку
func MustLoad() *Catalog {
	c, err := Load()
	if err != nil {
		panic(err)
	}
	return c
}

func decode(path string, out interface{}) error {
	data, err := catalogFS.ReadFile(path)
	if err != nil {
		return fmt.Errorf("%w: read %s: %v", ErrCatalog, path, err)
	}
	if err := yaml.Unmarshal(data, out); err != nil {
		return fmt.Errorf("%w: decode %s: %v", ErrCatalog, path, err)
	}
	return nil
}

// Monasteries свежие записи монастырей; created_at растет в порядке каталога
func (c *Catalog) Monasteries(now time.Time) []*domain.Monastery {
	result := make([]*domain.Monastery, 0, len(c.monasteries))
	for i, r := range c.monasteries {
		result = append(result, &domain.Monastery{
			ID:                    uuid.NewString(),
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
			GalleryImages:         clone(r.GalleryImages),
			PanoramicImages:       clone(r.PanoramicImages),
			Coordinates:           r.Coordinates,
			Highlights:            clone(r.Highlights),
			VisitingHours:         r.VisitingHours,
			EntranceFee:           r.EntranceFee,
			Accessibility:         r.Accessibility,
			CulturalImportance:    r.CulturalImportance,
			Festivals:             append([]domain.Festival(nil), r.Festivals...),
			TravelInfo: domain.TravelInfo{
				BestTimeToVisit: r.TravelInfo.BestTimeToVisit,
				NearestAirport:  r.TravelInfo.NearestAirport,
				Accommodation:   clone(r.TravelInfo.Accommodation),
				LocalTransport:  r.TravelInfo.LocalTransport,
				PermitsRequired: r.TravelInfo.PermitsRequired,
				WeatherInfo:     r.TravelInfo.WeatherInfo,
			},
			CreatedAt: now.Add(time.Duration(i) * time.Microsecond),
		})
	}
	return result
}

// CulturalEvents свежие записи событий без привязки к монастырям (monastery_id не задан)
func (c *Catalog) CulturalEvents(now time.Time) []*domain.CulturalEvent {
	result := make([]*domain.CulturalEvent, 0, len(c.events))
	for i, r := range c.events {
		result = append(result, &domain.CulturalEvent{
			ID:            uuid.NewString(),
			Title:         r.Title,
			Description:   r.Description,
			EventType:     domain.EventType(r.EventType),
			StartDate:     r.StartDate,
			EndDate:       r.EndDate,
			MonasteryName: clonePtr(r.MonasteryName),
			Location:      r.Location,
			Significance:  r.Significance,
			Traditions:    clone(r.Traditions),
			Activities:    clone(r.Activities),
			VisitorInfo:   r.VisitorInfo,
			ImageURL:      clonePtr(r.ImageURL),
			IsRecurring:   r.IsRecurring,
			CreatedAt:     now.Add(time.Duration(i) * time.Microsecond),
		})
	}
	return result
}

// TravelGuide справочник путешественника
func (c *Catalog) TravelGuide() domain.TravelGuide {
	guide := c.travelGuide
	guide.Accommodation.Types = clone(guide.Accommodation.Types)
	guide.ImportantTips = clone(guide.ImportantTips)
	return guide
}

func clone(s []string) []string {
	if s == nil {
		return []string{}
	}
	return append(make([]string, 0, len(s)), s...)
}

func clonePtr(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}

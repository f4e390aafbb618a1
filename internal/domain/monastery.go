package domain

import "time"

// Coordinates географические координаты
type Coordinates struct {
	Lat float64 `json:"lat" yaml:"lat"`
	Lng float64 `json:"lng" yaml:"lng"`
}

// Festival праздник, который проводится в монастыре
type Festival struct {
	Name         string `json:"name" yaml:"name"`
	Date         string `json:"date" yaml:"date"` // свободный текст: "February/March"
	Description  string `json:"description" yaml:"description"`
	Significance string `json:"significance" yaml:"significance"`
}

// TravelInfo практическая информация для посетителей
type TravelInfo struct {
	BestTimeToVisit string   `json:"best_time_to_visit" yaml:"best_time_to_visit"`
	NearestAirport  string   `json:"nearest_airport" yaml:"nearest_airport"`
	Accommodation   []string `json:"accommodation" yaml:"accommodation"`
	LocalTransport  string   `json:"local_transport" yaml:"local_transport"`
	PermitsRequired string   `json:"permits_required" yaml:"permits_required"`
	WeatherInfo     string   `json:"weather_info" yaml:"weather_info"`
}

// Monastery запись каталога монастырей
// После создания не изменяется
type Monastery struct {
	ID                    string
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
	Coordinates           Coordinates
	Highlights            []string
	VisitingHours         string
	EntranceFee           string
	Accessibility         string
	CulturalImportance    string
	Festivals             []Festival
	TravelInfo            TravelInfo
	CreatedAt             time.Time
}

// FestivalNames названия праздников монастыря
func (m *Monastery) FestivalNames() []string {
	names := make([]string, 0, len(m.Festivals))
	for _, f := range m.Festivals {
		names = append(names, f.Name)
	}
	return names
}

// MonasteryFilter фильтр списка монастырей
// Пустые поля не ограничивают выборку
type MonasteryFilter struct {
	District  string // подстрока, без учёта регистра
	Tradition string // подстрока, без учёта регистра
	Search    string // подстрока в name, description или location
}

// MonasteryFestival праздник вместе с данными монастыря, где он проводится
type MonasteryFestival struct {
	Festival
	Monastery string
	Location  string
}

// MonasteryIDsByName индекс name -> id для привязки событий по названию монастыря
// При совпадающих названиях побеждает последний
func MonasteryIDsByName(monasteries []*Monastery) map[string]string {
	index := make(map[string]string, len(monasteries))
	for _, m := range monasteries {
		index[m.Name] = m.ID
	}
	return index
}

package domain

// TravelGuide справочник для путешественников
type TravelGuide struct {
	Permits struct {
		InnerLinePermit string `json:"inner_line_permit" yaml:"inner_line_permit"`
		HowToGet        string `json:"how_to_get" yaml:"how_to_get"`
		Duration        string `json:"duration" yaml:"duration"`
		Documents       string `json:"documents" yaml:"documents"`
	} `json:"permits" yaml:"permits"`

	BestTime struct {
		PeakSeason   string `json:"peak_season" yaml:"peak_season"`
		Monsoon      string `json:"monsoon" yaml:"monsoon"`
		Winter       string `json:"winter" yaml:"winter"`
		FestivalTime string `json:"festival_time" yaml:"festival_time"`
	} `json:"best_time" yaml:"best_time"`

	GettingThere struct {
		NearestAirport string `json:"nearest_airport" yaml:"nearest_airport"`
		NearestRailway string `json:"nearest_railway" yaml:"nearest_railway"`
		RoadAccess     string `json:"road_access" yaml:"road_access"`
		LocalTransport string `json:"local_transport" yaml:"local_transport"`
	} `json:"getting_there" yaml:"getting_there"`

	Accommodation struct {
		Types          []string `json:"types" yaml:"types"`
		BookingTips    string   `json:"booking_tips" yaml:"booking_tips"`
		MonasteryStays string   `json:"monastery_stays" yaml:"monastery_stays"`
	} `json:"accommodation" yaml:"accommodation"`

	ImportantTips []string `json:"important_tips" yaml:"important_tips"`
}

package monastery

import (
	"encoding/json"
	"fmt"

	"github.com/lib/pq"

	"github.com/m04kA/SMC-HeritageService/internal/domain"
	"github.com/m04kA/SMC-HeritageService/internal/infra/storage/collection"
)

const table = "monasteries"

var columns = []string{
	"id",
	"name",
	"location",
	"district",
	"altitude",
	"tradition",
	"description",
	"founded",
	"architecture",
	"spiritual_significance",
	"main_image",
	"gallery_images",
	"panoramic_images",
	"latitude",
	"longitude",
	"highlights",
	"visiting_hours",
	"entrance_fee",
	"accessibility",
	"cultural_importance",
	"festivals",
	"travel_info",
	"created_at",
}

var schema = collection.Schema[domain.Monastery]{
	Table:   table,
	Columns: columns,
	Values:  values,
	Scan:    scan,
}

func values(m *domain.Monastery) ([]interface{}, error) {
	festivals := m.Festivals
	if festivals == nil {
		festivals = []domain.Festival{}
	}
	festivalsJSON, err := json.Marshal(festivals)
	if err != nil {
		return nil, fmt.Errorf("marshal festivals: %w", err)
	}

	travelInfoJSON, err := json.Marshal(m.TravelInfo)
	if err != nil {
		return nil, fmt.Errorf("marshal travel_info: %w", err)
	}

	return []interface{}{
		m.ID,
		m.Name,
		m.Location,
		m.District,
		m.Altitude,
		m.Tradition,
		m.Description,
		m.Founded,
		m.Architecture,
		m.SpiritualSignificance,
		m.MainImage,
		pq.Array(nonNil(m.GalleryImages)),
		pq.Array(nonNil(m.PanoramicImages)),
		m.Coordinates.Lat,
		m.Coordinates.Lng,
		pq.Array(nonNil(m.Highlights)),
		m.VisitingHours,
		m.EntranceFee,
		m.Accessibility,
		m.CulturalImportance,
		festivalsJSON,
		travelInfoJSON,
		m.CreatedAt,
	}, nil
}

func scan(row collection.RowScanner) (*domain.Monastery, error) {
	var (
		m              domain.Monastery
		festivalsJSON  []byte
		travelInfoJSON []byte
	)

	err := row.Scan(
		&m.ID,
		&m.Name,
		&m.Location,
		&m.District,
		&m.Altitude,
		&m.Tradition,
		&m.Description,
		&m.Founded,
		&m.Architecture,
		&m.SpiritualSignificance,
		&m.MainImage,
		pq.Array(&m.GalleryImages),
		pq.Array(&m.PanoramicImages),
		&m.Coordinates.Lat,
		&m.Coordinates.Lng,
		pq.Array(&m.Highlights),
		&m.VisitingHours,
		&m.EntranceFee,
		&m.Accessibility,
		&m.CulturalImportance,
		&festivalsJSON,
		&travelInfoJSON,
		&m.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(festivalsJSON, &m.Festivals); err != nil {
		return nil, fmt.Errorf("unmarshal festivals: %w", err)
	}
	if err := json.Unmarshal(travelInfoJSON, &m.TravelInfo); err != nil {
		return nil, fmt.Errorf("unmarshal travel_info: %w", err)
	}

	return &m, nil
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

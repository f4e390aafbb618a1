package culturalevent

import (
	"github.com/lib/pq"

	"github.com/m04kA/SMC-HeritageService/internal/domain"
	"github.com/m04kA/SMC-HeritageService/internal/infra/storage/collection"
)

const table = "cultural_events"

var columns = []string{
	"id",
	"title",
	"description",
	"event_type",
	"start_date",
	"end_date",
	"monastery_id",
	"monastery_name",
	"location",
	"significance",
	"traditions",
	"activities",
	"visitor_info",
	"image_url",
	"is_recurring",
	"created_at",
}

var schema = collection.Schema[domain.CulturalEvent]{
	Table:   table,
	Columns: columns,
	Values:  values,
	Scan:    scan,
}

func values(e *domain.CulturalEvent) ([]interface{}, error) {
	return []interface{}{
		e.ID,
		e.Title,
		e.Description,
		string(e.EventType),
		e.StartDate,
		e.EndDate,
		e.MonasteryID,
		e.MonasteryName,
		e.Location,
		e.Significance,
		pq.Array(nonNil(e.Traditions)),
		pq.Array(nonNil(e.Activities)),
		e.VisitorInfo,
		e.ImageURL,
		e.IsRecurring,
		e.CreatedAt,
	}, nil
}

func scan(row collection.RowScanner) (*domain.CulturalEvent, error) {
	var (
		e         domain.CulturalEvent
		eventType string
	)

	err := row.Scan(
		&e.ID,
		&e.Title,
		&e.Description,
		&eventType,
		&e.StartDate,
		&e.EndDate,
		&e.MonasteryID,
		&e.MonasteryName,
		&e.Location,
		&e.Significance,
		pq.Array(&e.Traditions),
		pq.Array(&e.Activities),
		&e.VisitorInfo,
		&e.ImageURL,
		&e.IsRecurring,
		&e.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	e.EventType = domain.EventType(eventType)
	return &e, nil
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

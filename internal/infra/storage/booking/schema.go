package booking

import (
	"github.com/m04kA/SMC-HeritageService/internal/domain"
	"github.com/m04kA/SMC-HeritageService/internal/infra/storage/collection"
)

const table = "bookings"

var columns = []string{
	"id",
	"monastery_id",
	"visitor_name",
	"visitor_email",
	"visitor_phone",
	"visit_date",
	"visit_time",
	"group_size",
	"tour_type",
	"special_requests",
	"total_amount",
	"booking_status",
	"created_at",
}

var schema = collection.Schema[domain.Booking]{
	Table:   table,
	Columns: columns,
	Values:  values,
	Scan:    scan,
}

func values(b *domain.Booking) ([]interface{}, error) {
	return []interface{}{
		b.ID,
		b.MonasteryID,
		b.VisitorName,
		b.VisitorEmail,
		b.VisitorPhone,
		b.VisitDate,
		b.VisitTime,
		b.GroupSize,
		string(b.TourType),
		b.SpecialRequests,
		b.TotalAmount,
		string(b.Status),
		b.CreatedAt,
	}, nil
}

func scan(row collection.RowScanner) (*domain.Booking, error) {
	var (
		b        domain.Booking
		tourType string
		status   string
	)

	err := row.Scan(
		&b.ID,
		&b.MonasteryID,
		&b.VisitorName,
		&b.VisitorEmail,
		&b.VisitorPhone,
		&b.VisitDate,
		&b.VisitTime,
		&b.GroupSize,
		&tourType,
		&b.SpecialRequests,
		&b.TotalAmount,
		&status,
		&b.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	b.TourType = domain.TourType(tourType)
	b.Status = domain.BookingStatus(status)
	return &b, nil
}

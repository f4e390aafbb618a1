package booking

import (
	"context"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-HeritageService/internal/domain"
	"github.com/m04kA/SMC-HeritageService/pkg/dbmetrics"
	"github.com/m04kA/SMC-HeritageService/pkg/ptr"
)

var selectColumns = "SELECT " + strings.Join(columns, ", ") + " FROM bookings"

func newTestRepository(t *testing.T) (*Repository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewRepository(dbmetrics.Wrap(db, nil)), mock
}

func TestRepository_Create(t *testing.T) {
	repo, mock := newTestRepository(t)
	createdAt := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO bookings (" + strings.Join(columns, ",") + ") VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13)")).
		WithArgs("b-1", "m-1", "Tenzin", "t@example.com", "+91", "2024-04-01", "10:00", 3,
			"guided_tour", "wheelchair", 1500.0, "confirmed", createdAt).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Create(context.Background(), &domain.Booking{
		ID:              "b-1",
		MonasteryID:     "m-1",
		VisitorName:     "Tenzin",
		VisitorEmail:    "t@example.com",
		VisitorPhone:    "+91",
		VisitDate:       "2024-04-01",
		VisitTime:       "10:00",
		GroupSize:       3,
		TourType:        domain.TourGuided,
		SpecialRequests: ptr.Ptr("wheelchair"),
		TotalAmount:     1500,
		Status:          domain.StatusConfirmed,
		CreatedAt:       createdAt,
	})

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_ListByEmail(t *testing.T) {
	repo, mock := newTestRepository(t)

	rows := sqlmock.NewRows(columns).
		AddRow("b-2", "m-1", "Tenzin", "t@example.com", "+91", "2024-04-02", "11:00", 1,
			"self_guided", nil, 0.0, "cancelled", time.Now()).
		AddRow("b-1", "m-1", "Tenzin", "t@example.com", "+91", "2024-04-01", "10:00", 3,
			"guided_tour", "wheelchair", 1500.0, "confirmed", time.Now().Add(-time.Hour))

	mock.ExpectQuery(regexp.QuoteMeta(selectColumns + " WHERE visitor_email = $1 ORDER BY created_at DESC, id DESC")).
		WithArgs("t@example.com").
		WillReturnRows(rows)

	bookings, err := repo.ListByEmail(context.Background(), "t@example.com")

	require.NoError(t, err)
	require.Len(t, bookings, 2)
	assert.Equal(t, "b-2", bookings[0].ID)
	assert.True(t, bookings[0].IsCancelled())
	assert.Nil(t, bookings[0].SpecialRequests)
	assert.Equal(t, domain.TourGuided, bookings[1].TourType)
	assert.Equal(t, ptr.Ptr("wheelchair"), bookings[1].SpecialRequests)
}

func TestRepository_UpdateStatus(t *testing.T) {
	repo, mock := newTestRepository(t)

	mock.ExpectExec(regexp.QuoteMeta("UPDATE bookings SET booking_status = $1 WHERE id = $2")).
		WithArgs("cancelled", "b-1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.UpdateStatus(context.Background(), "b-1", domain.StatusCancelled)

	require.NoError(t, err)
}

func TestRepository_UpdateStatus_NotFound(t *testing.T) {
	repo, mock := newTestRepository(t)

	mock.ExpectExec(regexp.QuoteMeta("UPDATE bookings SET booking_status = $1 WHERE id = $2")).
		WithArgs("cancelled", "missing").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.UpdateStatus(context.Background(), "missing", domain.StatusCancelled)

	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestRepository_GetByID_NotFound(t *testing.T) {
	repo, mock := newTestRepository(t)

	mock.ExpectQuery(regexp.QuoteMeta(selectColumns + " WHERE id = $1 LIMIT 1")).
		WithArgs("missing").
		WillReturnRows(sqlmock.NewRows(columns))

	_, err := repo.GetByID(context.Background(), "missing")

	assert.ErrorIs(t, err, ErrBookingNotFound)
}

package domain

import (
	"errors"
	"fmt"
	"time"
)

// EventType тип культурного события
type EventType string

const (
	EventFestival        EventType = "festival"
	EventCeremony        EventType = "ceremony"
	EventSpecialOccasion EventType = "special_occasion"
	EventCultural        EventType = "cultural_event"
)

// EventTypes допустимые типы событий
var EventTypes = []EventType{
	EventFestival,
	EventCeremony,
	EventSpecialOccasion,
	EventCultural,
}

// ErrInvalidMonth возвращается при некорректном годе или месяце календаря
var ErrInvalidMonth = errors.New("invalid calendar month")

// CulturalEvent датированное событие (праздник, церемония)
type CulturalEvent struct {
	ID            string
	Title         string
	Description   string
	EventType     EventType
	StartDate     string  // YYYY-MM-DD
	EndDate       string  // YYYY-MM-DD
	MonasteryID   *string // слабая ссылка на монастырь
	MonasteryName *string
	Location      string
	Significance  string
	Traditions    []string
	Activities    []string
	VisitorInfo   string
	ImageURL      *string
	IsRecurring   bool
	CreatedAt     time.Time
}

// CulturalEventFilter фильтр списка событий
type CulturalEventFilter struct {
	StartDate   string // start_date >= StartDate
	EndDate     string // end_date <= EndDate
	EventType   string // точное совпадение
	MonasteryID string // точное совпадение
	Tradition   string // входит в traditions
}

// MonthRange границы календарного месяца [Start, Next) в виде ISO дат
type MonthRange struct {
	Year  int
	Month int
	Start string
	Next  string
}

// NewMonthRange вычисляет границы месяца с переходом декабрь -> январь
func NewMonthRange(year, month int) (MonthRange, error) {
	if month < 1 || month > 12 {
		return MonthRange{}, fmt.Errorf("%w: month=%d", ErrInvalidMonth, month)
	}
	if year < 1 || year > 9999 {
		return MonthRange{}, fmt.Errorf("%w: year=%d", ErrInvalidMonth, year)
	}

	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	next := start.AddDate(0, 1, 0)

	return MonthRange{
		Year:  year,
		Month: month,
		Start: start.Format(DateFormat),
		Next:  next.Format(DateFormat),
	}, nil
}

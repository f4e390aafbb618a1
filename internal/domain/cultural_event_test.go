package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMonthRange(t *testing.T) {
	tests := []struct {
		name      string
		year      int
		month     int
		wantStart string
		wantNext  string
	}{
		{name: "february leap year", year: 2024, month: 2, wantStart: "2024-02-01", wantNext: "2024-03-01"},
		{name: "december rolls over", year: 2024, month: 12, wantStart: "2024-12-01", wantNext: "2025-01-01"},
		{name: "january", year: 2025, month: 1, wantStart: "2025-01-01", wantNext: "2025-02-01"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := NewMonthRange(tt.year, tt.month)
			require.NoError(t, err)
			assert.Equal(t, tt.wantStart, r.Start)
			assert.Equal(t, tt.wantNext, r.Next)
			assert.Equal(t, tt.year, r.Year)
			assert.Equal(t, tt.month, r.Month)
		})
	}
}

func TestNewMonthRange_Invalid(t *testing.T) {
	for _, month := range []int{0, 13, -1} {
		_, err := NewMonthRange(2024, month)
		assert.ErrorIs(t, err, ErrInvalidMonth)
	}

	_, err := NewMonthRange(0, 5)
	assert.ErrorIs(t, err, ErrInvalidMonth)
}

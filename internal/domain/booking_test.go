package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTourType_TotalAmount(t *testing.T) {
	tests := []struct {
		name      string
		tourType  TourType
		groupSize int
		want      float64
	}{
		{name: "self guided is free", tourType: TourSelfGuided, groupSize: 4, want: 0},
		{name: "guided tour single", tourType: TourGuided, groupSize: 1, want: 500},
		{name: "guided tour group", tourType: TourGuided, groupSize: 3, want: 1500},
		{name: "spiritual session group", tourType: TourSpiritualSession, groupSize: 5, want: 1500},
		{name: "unknown tour type priced at zero", tourType: TourType("helicopter"), groupSize: 10, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.tourType.TotalAmount(tt.groupSize))
		})
	}
}

func TestTourType_IsKnown(t *testing.T) {
	assert.True(t, TourGuided.IsKnown())
	assert.False(t, TourType("").IsKnown())
}

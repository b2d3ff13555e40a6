package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDaysInMonth(t *testing.T) {
	tests := []struct {
		year  int
		month time.Month
		want  int
	}{
		{2024, time.February, 29},
		{2023, time.February, 28},
		{1900, time.February, 28},
		{2000, time.February, 29},
		{2023, time.April, 30},
		{2023, time.December, 31},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, DaysInMonth(tt.year, tt.month), "%d-%02d", tt.year, tt.month)
	}
}

func TestFillDailyCosts(t *testing.T) {
	t.Run("leap february has 29 points", func(t *testing.T) {
		assert.Len(t, FillDailyCosts(nil, 2024, time.February), 29)
		assert.Len(t, FillDailyCosts(nil, 2023, time.February), 28)
	})

	t.Run("every month is fully covered with zeros", func(t *testing.T) {
		for m := time.January; m <= time.December; m++ {
			points := FillDailyCosts(nil, 2023, m)
			require.Len(t, points, DaysInMonth(2023, m))
			for _, p := range points {
				assert.Zero(t, p.Amount)
			}
			assert.Equal(t, m.String()[:3]+" 1", points[0].Name)
		}
	})

	t.Run("matches records by local day and ignores other months", func(t *testing.T) {
		records := []DailyCost{
			{Date: time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC), Amount: 12.5},
			{Date: time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC), Amount: 3},
			{Date: time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC), Amount: 99},
		}
		points := FillDailyCostsIn(records, 2024, time.January, time.UTC)
		require.Len(t, points, 31)
		assert.Equal(t, ChartPoint{Name: "Jan 2", Amount: 12.5}, points[1])
		assert.Equal(t, ChartPoint{Name: "Jan 31", Amount: 3}, points[30])
		assert.Zero(t, points[0].Amount)
	})

	// Duplicate days are not summed. Kept as the observed contract until confirmed otherwise.
	t.Run("last record for a day wins", func(t *testing.T) {
		records := []DailyCost{
			{Date: time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC), Amount: 10},
			{Date: time.Date(2024, 1, 5, 8, 0, 0, 0, time.UTC), Amount: 4},
		}
		points := FillDailyCostsIn(records, 2024, time.January, time.UTC)
		assert.Equal(t, 4.0, points[4].Amount)
	})

	t.Run("same input gives same output", func(t *testing.T) {
		records := []DailyCost{{Date: time.Date(2024, 3, 9, 0, 0, 0, 0, time.UTC), Amount: 1}}
		assert.Equal(t,
			FillDailyCostsIn(records, 2024, time.March, time.UTC),
			FillDailyCostsIn(records, 2024, time.March, time.UTC))
	})
}

package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoundToHour(t *testing.T) {
	tests := []struct {
		name     string
		time     TimeOfDay
		expected string
	}{
		{"minute below threshold keeps hour", TimeOfDay{Hour: 9, Minute: 29}, "09:00"},
		{"minute at threshold rounds up", TimeOfDay{Hour: 9, Minute: 30}, "10:00"},
		{"exact hour", TimeOfDay{Hour: 14}, "14:00"},
		{"half past midnight", TimeOfDay{Hour: 0, Minute: 30}, "01:00"},
		{"late night wraps to midnight", TimeOfDay{Hour: 23, Minute: 45}, "00:00"},
		{"late night below threshold", TimeOfDay{Hour: 23, Minute: 29}, "23:00"},
		{"seconds never influence rounding", TimeOfDay{Hour: 7, Minute: 29, Second: 59}, "07:00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, RoundToHour(tt.time))
		})
	}
}

func TestRoundToHour_IdempotentOnBucketStart(t *testing.T) {
	// Re-rounding the start-of-hour instant of any bucket yields the same label.
	for hour := 0; hour < 24; hour++ {
		label := RoundToHour(TimeOfDay{Hour: hour})
		rebucketed, err := ParseTimeOfDay(label)
		require.NoError(t, err)
		assert.Equal(t, label, RoundToHour(rebucketed))
	}
}

func TestAggregateHourly(t *testing.T) {
	t.Run("groups, sums, and sorts by hour of day", func(t *testing.T) {
		reports := []Report{
			{OccurredTime: TimeOfDay{Hour: 10, Minute: 5}},
			{OccurredTime: TimeOfDay{Hour: 9, Minute: 31}},  // rounds into 10:00
			{OccurredTime: TimeOfDay{Hour: 2, Minute: 10}},
			{OccurredTime: TimeOfDay{Hour: 23, Minute: 45}}, // wraps into 00:00
		}

		stats := AggregateHourly(reports)

		require.Len(t, stats, 3)
		assert.Equal(t, HourBucketStatistic{Bucket: "00:00", Count: 1}, stats[0])
		assert.Equal(t, HourBucketStatistic{Bucket: "02:00", Count: 1}, stats[1])
		assert.Equal(t, HourBucketStatistic{Bucket: "10:00", Count: 2}, stats[2])
	})

	t.Run("numeric ordering not lexicographic", func(t *testing.T) {
		reports := []Report{
			{OccurredTime: TimeOfDay{Hour: 10}},
			{OccurredTime: TimeOfDay{Hour: 2}},
		}

		stats := AggregateHourly(reports)

		require.Len(t, stats, 2)
		assert.Equal(t, "02:00", stats[0].Bucket)
		assert.Equal(t, "10:00", stats[1].Bucket)
	})

	t.Run("counts sum to input size with no zero-fill", func(t *testing.T) {
		reports := []Report{
			{OccurredTime: TimeOfDay{Hour: 1}},
			{OccurredTime: TimeOfDay{Hour: 1, Minute: 15}},
			{OccurredTime: TimeOfDay{Hour: 20, Minute: 40}},
		}

		stats := AggregateHourly(reports)

		total := 0
		seen := map[string]bool{}
		for _, s := range stats {
			assert.False(t, seen[s.Bucket], "duplicate bucket %s", s.Bucket)
			assert.Positive(t, s.Count)
			seen[s.Bucket] = true
			total += s.Count
		}
		assert.Equal(t, len(reports), total)
	})

	t.Run("empty input", func(t *testing.T) {
		assert.Empty(t, AggregateHourly(nil))
	})
}

func TestAggregateMonthly(t *testing.T) {
	reports := []Report{
		{Month: 3},
		{Month: 1},
		{Month: 3},
		{Month: 12},
	}

	stats := AggregateMonthly(reports)

	require.Len(t, stats, 3)
	assert.Equal(t, MonthStatistic{Month: 1, Count: 1}, stats[0])
	assert.Equal(t, MonthStatistic{Month: 3, Count: 2}, stats[1])
	assert.Equal(t, MonthStatistic{Month: 12, Count: 1}, stats[2])
}

func TestAggregateByDayOfWeek(t *testing.T) {
	t.Run("fixed Monday-first order with localized labels", func(t *testing.T) {
		reports := []Report{
			{DayOfWeek: "Sunday"},
			{DayOfWeek: "Monday"},
			{DayOfWeek: "Sunday"},
			{DayOfWeek: "Wednesday"},
		}

		stats := AggregateByDayOfWeek(reports)

		require.Len(t, stats, 3)
		assert.Equal(t, DayOfWeekStatistic{Day: "Monday", Label: "Senin", Count: 1}, stats[0])
		assert.Equal(t, DayOfWeekStatistic{Day: "Wednesday", Label: "Rabu", Count: 1}, stats[1])
		assert.Equal(t, DayOfWeekStatistic{Day: "Sunday", Label: "Minggu", Count: 2}, stats[2])
	})

	t.Run("weekdays without reports are omitted", func(t *testing.T) {
		stats := AggregateByDayOfWeek([]Report{{DayOfWeek: "Friday"}})

		require.Len(t, stats, 1)
		assert.Equal(t, "Jumat", stats[0].Label)
	})
}

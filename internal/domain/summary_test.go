package domain

import (
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
)

func TestSummarize(t *testing.T) {
	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)
	SetClock(clockwork.NewFakeClockAt(now))
	defer SetClock(nil)

	day := func(d time.Time) Report {
		return Report{Area: AreaNorth, Month: int(d.Month()), OccurredDate: d}
	}

	t.Run("empty store", func(t *testing.T) {
		assert.Equal(t, Summary{}, Summarize(nil))
	})

	t.Run("counts totals and recency window", func(t *testing.T) {
		reports := []Report{
			day(time.Date(2024, 6, 14, 0, 0, 0, 0, time.UTC)), // yesterday
			day(time.Date(2024, 6, 8, 0, 0, 0, 0, time.UTC)),  // exactly 7 days back
			day(time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)),  // outside window
			day(time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)),
		}

		summary := Summarize(reports)

		assert.Equal(t, 4, summary.TotalReports)
		assert.Equal(t, 2, summary.RecentReports)
		assert.Equal(t, 0, summary.HighRiskAreas)
	})

	t.Run("high risk areas use all-time counts", func(t *testing.T) {
		var reports []Report
		for i := 0; i < 10; i++ {
			reports = append(reports, day(time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)))
		}

		summary := Summarize(reports)

		assert.Equal(t, 1, summary.HighRiskAreas)
		assert.Equal(t, 0, summary.RecentReports)
	})
}

package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/crimewatch/report-service/internal/domain"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func testReport(area domain.Area, crime domain.CrimeType, date time.Time) domain.Report {
	return domain.Report{
		OccurredDate: date,
		OccurredTime: domain.TimeOfDay{Hour: 21, Minute: 15},
		CrimeType:    crime,
		Description:  "test incident",
		Area:         area,
		Latitude:     -5.1477,
		Longitude:    119.4328,
		DayOfWeek:    date.Weekday().String(),
		Month:        int(date.Month()),
		CreatedAt:    time.Date(2024, 3, 5, 8, 0, 0, 0, time.UTC),
	}
}

func TestStore_InsertAndAll(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	report := testReport(domain.AreaNorth, domain.CrimeTheft, time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC))
	report.Address = "Jl. Nusantara No. 1"
	report.EvidencePath = "uploads/abc.jpg"

	require.NoError(t, s.Insert(ctx, &report))
	assert.Equal(t, int64(1), report.ID)

	second := testReport(domain.AreaSouth, domain.CrimeFraud, time.Date(2024, 3, 6, 0, 0, 0, 0, time.UTC))
	require.NoError(t, s.Insert(ctx, &second))
	assert.Equal(t, int64(2), second.ID)

	all, err := s.All(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)

	got := all[0]
	assert.Equal(t, report.ID, got.ID)
	assert.Equal(t, report.OccurredDate, got.OccurredDate)
	assert.Equal(t, report.OccurredTime, got.OccurredTime)
	assert.Equal(t, domain.CrimeTheft, got.CrimeType)
	assert.Equal(t, domain.AreaNorth, got.Area)
	assert.Equal(t, "Jl. Nusantara No. 1", got.Address)
	assert.Equal(t, "uploads/abc.jpg", got.EvidencePath)
	assert.Equal(t, "Monday", got.DayOfWeek)
	assert.Equal(t, 3, got.Month)
	assert.Equal(t, report.CreatedAt, got.CreatedAt)
}

func TestStore_Search(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	seed := []domain.Report{
		testReport(domain.AreaNorth, domain.CrimeTheft, time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)),
		testReport(domain.AreaNorth, domain.CrimeFraud, time.Date(2024, 2, 20, 0, 0, 0, 0, time.UTC)),
		testReport(domain.AreaSouth, domain.CrimeTheft, time.Date(2024, 2, 25, 0, 0, 0, 0, time.UTC)),
	}
	for i := range seed {
		require.NoError(t, s.Insert(ctx, &seed[i]))
	}

	t.Run("no filters returns everything once", func(t *testing.T) {
		got, err := s.Search(ctx, domain.Filter{})
		require.NoError(t, err)
		require.Len(t, got, 3)

		ids := map[int64]bool{}
		for _, r := range got {
			assert.False(t, ids[r.ID])
			ids[r.ID] = true
		}
	})

	t.Run("area filter is a subset of unfiltered", func(t *testing.T) {
		got, err := s.Search(ctx, domain.Filter{Area: domain.AreaNorth})
		require.NoError(t, err)
		require.Len(t, got, 2)
		for _, r := range got {
			assert.Equal(t, domain.AreaNorth, r.Area)
		}
	})

	t.Run("crime type filter", func(t *testing.T) {
		got, err := s.Search(ctx, domain.Filter{CrimeType: domain.CrimeTheft})
		require.NoError(t, err)
		require.Len(t, got, 2)
	})

	t.Run("filters combine with AND", func(t *testing.T) {
		got, err := s.Search(ctx, domain.Filter{Area: domain.AreaNorth, CrimeType: domain.CrimeTheft})
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, seed[0].ID, got[0].ID)
	})

	t.Run("inclusive date range ignores time of day", func(t *testing.T) {
		got, err := s.Search(ctx, domain.Filter{
			DateFrom: time.Date(2024, 2, 20, 0, 0, 0, 0, time.UTC),
			DateTo:   time.Date(2024, 2, 25, 0, 0, 0, 0, time.UTC),
		})
		require.NoError(t, err)
		require.Len(t, got, 2)
	})

	t.Run("ordered by occurred date then id", func(t *testing.T) {
		got, err := s.Search(ctx, domain.Filter{})
		require.NoError(t, err)
		require.Len(t, got, 3)
		assert.True(t, got[0].OccurredDate.Before(got[1].OccurredDate))
		assert.True(t, got[1].OccurredDate.Before(got[2].OccurredDate))
	})

	t.Run("no matches", func(t *testing.T) {
		got, err := s.Search(ctx, domain.Filter{Area: domain.AreaCentral})
		require.NoError(t, err)
		assert.Empty(t, got)
	})
}

func TestStore_Ping(t *testing.T) {
	s := openTestStore(t)
	assert.NoError(t, s.Ping(context.Background()))
}

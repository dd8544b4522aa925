package domain

import (
	"fmt"
	"sort"
	"strconv"
)

// HourBucketStatistic is the incident count for one canonical "HH:00" bucket.
type HourBucketStatistic struct {
	Bucket string `json:"bucket"`
	Count  int    `json:"count"`
}

// MonthStatistic is the incident count for one calendar month (1-12).
type MonthStatistic struct {
	Month int `json:"month"`
	Count int `json:"count"`
}

// DayOfWeekStatistic is the incident count for one weekday. Day keeps the
// stored English name, Label carries the localized display form.
type DayOfWeekStatistic struct {
	Day   string `json:"day"`
	Label string `json:"label"`
	Count int    `json:"count"`
}

// weekdayOrder fixes the Monday-first presentation order for weekday charts,
// independent of how groups were encountered.
var weekdayOrder = []string{
	"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday",
}

// weekdayDisplay maps stored English weekday names to Indonesian labels.
var weekdayDisplay = map[string]string{
	"Monday":    "Senin",
	"Tuesday":   "Selasa",
	"Wednesday": "Rabu",
	"Thursday":  "Kamis",
	"Friday":    "Jumat",
	"Saturday":  "Sabtu",
	"Sunday":    "Minggu",
}

// RoundToHour maps a time of day to its canonical "HH:00" bucket label.
// Minute 30 and above rounds up to the next hour; rounding up from hour 23
// wraps to "00:00", merging late-night reports into the midnight bucket.
func RoundToHour(t TimeOfDay) string {
	hour := t.Hour
	if t.Minute >= 30 {
		hour++
		if hour == 24 {
			hour = 0
		}
	}
	return fmt.Sprintf("%02d:00", hour)
}

// AggregateHourly groups reports by their rounded hour bucket and returns
// one count per non-empty bucket, ordered by hour of day. Ordering parses
// the label back to an integer hour so "02:00" sorts before "10:00".
func AggregateHourly(reports []Report) []HourBucketStatistic {
	counts := make(map[string]int)
	for _, r := range reports {
		counts[RoundToHour(r.OccurredTime)]++
	}

	stats := make([]HourBucketStatistic, 0, len(counts))
	for bucket, count := range counts {
		stats = append(stats, HourBucketStatistic{Bucket: bucket, Count: count})
	}
	sort.Slice(stats, func(i, j int) bool {
		return bucketHour(stats[i].Bucket) < bucketHour(stats[j].Bucket)
	})
	return stats
}

// bucketHour extracts the hour-of-day integer from an "HH:00" label.
// Used only for ordering; labels produced by RoundToHour always parse.
func bucketHour(label string) int {
	hour, err := strconv.Atoi(label[:2])
	if err != nil {
		return 0
	}
	return hour
}

// AggregateMonthly groups reports by their stored month and returns one
// count per non-empty month, ascending by month number.
func AggregateMonthly(reports []Report) []MonthStatistic {
	counts := make(map[int]int)
	for _, r := range reports {
		counts[r.Month]++
	}

	stats := make([]MonthStatistic, 0, len(counts))
	for month, count := range counts {
		stats = append(stats, MonthStatistic{Month: month, Count: count})
	}
	sort.Slice(stats, func(i, j int) bool { return stats[i].Month < stats[j].Month })
	return stats
}

// AggregateByDayOfWeek groups reports by their stored weekday name and
// returns one count per non-empty weekday, ordered Monday through Sunday
// with localized display labels. Reports carrying an unknown weekday name
// are not representable in the fixed order and are dropped.
func AggregateByDayOfWeek(reports []Report) []DayOfWeekStatistic {
	counts := make(map[string]int)
	for _, r := range reports {
		counts[r.DayOfWeek]++
	}

	stats := make([]DayOfWeekStatistic, 0, len(counts))
	for _, day := range weekdayOrder {
		count, ok := counts[day]
		if !ok {
			continue
		}
		stats = append(stats, DayOfWeekStatistic{
			Day:   day,
			Label: weekdayDisplay[day],
			Count: count,
		})
	}
	return stats
}

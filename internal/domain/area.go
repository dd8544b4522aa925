package domain

import "sort"

// AreaStatistic is the incident count and derived risk tier for one
// (area, month) group. Recomputed from the full report set on demand,
// never persisted.
type AreaStatistic struct {
	Area  Area     `json:"area"`
	Month int      `json:"month"`
	Count int      `json:"count"`
	Risk  RiskTier `json:"risk"`
}

// MapPoint is a single report's coordinates annotated for map rendering.
// Risk reflects the report's area all-time tier, not the (area, month) one.
type MapPoint struct {
	Latitude  float64   `json:"latitude"`
	Longitude float64   `json:"longitude"`
	CrimeType CrimeType `json:"crime_type"`
	Risk      RiskTier  `json:"risk"`
}

// AggregateByArea groups reports by (area, month), counts each group, and
// classifies the count into a risk tier. One row per distinct pair present
// in the data, ordered by area then month for deterministic output.
func AggregateByArea(reports []Report) []AreaStatistic {
	type key struct {
		area  Area
		month int
	}

	counts := make(map[key]int)
	for _, r := range reports {
		counts[key{area: r.Area, month: r.Month}]++
	}

	stats := make([]AreaStatistic, 0, len(counts))
	for k, count := range counts {
		stats = append(stats, AreaStatistic{
			Area:  k.area,
			Month: k.month,
			Count: count,
			Risk:  ClassifyRisk(count),
		})
	}
	sort.Slice(stats, func(i, j int) bool {
		if stats[i].Area != stats[j].Area {
			return stats[i].Area < stats[j].Area
		}
		return stats[i].Month < stats[j].Month
	})
	return stats
}

// allTimeAreaCounts tallies reports per area across all months.
func allTimeAreaCounts(reports []Report) map[Area]int {
	counts := make(map[Area]int)
	for _, r := range reports {
		counts[r.Area]++
	}
	return counts
}

// HighRiskAreaCount returns the number of distinct areas whose all-time
// report count reaches the High tier threshold. This deliberately ignores
// the per-month grouping used by AggregateByArea.
func HighRiskAreaCount(reports []Report) int {
	high := 0
	for _, count := range allTimeAreaCounts(reports) {
		if count >= highRiskThreshold {
			high++
		}
	}
	return high
}

// MapPoints projects reports onto map marker data, annotating each point
// with its area's all-time risk tier.
func MapPoints(reports []Report) []MapPoint {
	areaCounts := allTimeAreaCounts(reports)

	points := make([]MapPoint, 0, len(reports))
	for _, r := range reports {
		points = append(points, MapPoint{
			Latitude:  r.Latitude,
			Longitude: r.Longitude,
			CrimeType: r.CrimeType,
			Risk:      ClassifyRisk(areaCounts[r.Area]),
		})
	}
	return points
}

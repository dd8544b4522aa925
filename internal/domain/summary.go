package domain

import "time"

// recentWindow is the dashboard's "recent activity" lookback.
const recentWindow = 7 * 24 * time.Hour

// Summary holds the dashboard headline metrics.
type Summary struct {
	TotalReports  int `json:"total_reports"`
	HighRiskAreas int `json:"high_risk_areas"`
	RecentReports int `json:"recent_reports"` // occurred within the last 7 days
}

// Summarize computes the dashboard metrics from the full report set.
// Recency compares occurred dates against the injected clock.
func Summarize(reports []Report) Summary {
	cutoff := clock.Now().UTC().Add(-recentWindow).Truncate(24 * time.Hour)

	recent := 0
	for _, r := range reports {
		if !r.OccurredDate.Before(cutoff) {
			recent++
		}
	}

	return Summary{
		TotalReports:  len(reports),
		HighRiskAreas: HighRiskAreaCount(reports),
		RecentReports: recent,
	}
}

package domain

// RiskTier classifies an incident count into a coarse risk level.
type RiskTier string

const (
	RiskLow    RiskTier = "Low"
	RiskMedium RiskTier = "Medium"
	RiskHigh   RiskTier = "High"
)

// Incident-count thresholds. Boundary values belong to the higher tier.
const (
	mediumRiskThreshold = 5
	highRiskThreshold   = 10
)

// riskDisplay maps risk tiers to their Indonesian display labels.
var riskDisplay = map[RiskTier]string{
	RiskLow:    "Rendah",
	RiskMedium: "Sedang",
	RiskHigh:   "Tinggi",
}

// ClassifyRisk maps a non-negative incident count to a risk tier:
// fewer than 5 is Low, 5-9 is Medium, 10 or more is High.
func ClassifyRisk(count int) RiskTier {
	switch {
	case count < mediumRiskThreshold:
		return RiskLow
	case count < highRiskThreshold:
		return RiskMedium
	default:
		return RiskHigh
	}
}

// DisplayName returns the localized label for r, or the raw value if unknown.
func (r RiskTier) DisplayName() string {
	if label, ok := riskDisplay[r]; ok {
		return label
	}
	return string(r)
}

package domain

import (
	"context"
	"log/slog"
)

// EnrichWithAddress attempts to resolve the report's coordinates to an
// address. Geocoding is best-effort: if geocoder is nil, the provider has
// no result, or the lookup fails, the report is returned with Address left
// empty and the submission proceeds (graceful degradation).
func EnrichWithAddress(ctx context.Context, report Report, geocoder Geocoder, logger *slog.Logger) Report {
	if geocoder == nil {
		return report
	}

	address, err := geocoder.Reverse(ctx, report.Latitude, report.Longitude)
	if err != nil {
		logger.Warn("reverse geocoding failed",
			"lat", report.Latitude,
			"lon", report.Longitude,
			"error", err,
		)
		return report
	}

	report.Address = address
	return report
}

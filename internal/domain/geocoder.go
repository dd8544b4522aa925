package domain

import "context"

// Geocoder resolves coordinates to a human-readable address.
type Geocoder interface {
	// Reverse converts a coordinate pair to an address string. An empty
	// string with a nil error means the provider had no result.
	Reverse(ctx context.Context, lat, lon float64) (string, error)
}

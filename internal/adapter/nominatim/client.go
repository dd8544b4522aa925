// Package nominatim implements domain.Geocoder against the OSM Nominatim
// reverse-geocoding API (or any compatible self-hosted instance).
package nominatim

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"
)

// DefaultBaseURL is the public OSM Nominatim endpoint. Production
// deployments should point at a self-hosted instance via GEOCODER_URL.
const DefaultBaseURL = "https://nominatim.openstreetmap.org"

// Client implements domain.Geocoder using the Nominatim API.
type Client struct {
	httpClient *http.Client
	baseURL    string
	userAgent  string
	logger     *slog.Logger
}

// NewClient creates a Nominatim geocoding client. The user agent is
// mandatory under the public instance's usage policy.
func NewClient(baseURL string, timeout time.Duration, logger *slog.Logger) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		baseURL:   baseURL,
		userAgent: "crimewatch-report-service/1.0",
		logger:    logger,
	}
}

// Reverse converts a coordinate pair to a display address. An empty string
// with a nil error means the provider had no result for the point.
func (c *Client) Reverse(ctx context.Context, lat, lon float64) (string, error) {
	params := url.Values{
		"format": {"jsonv2"},
		"lat":    {fmt.Sprintf("%.6f", lat)},
		"lon":    {fmt.Sprintf("%.6f", lon)},
	}
	fullURL := fmt.Sprintf("%s/reverse?%s", c.baseURL, params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("reverse geocode request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("nominatim API error: status %d: %s", resp.StatusCode, body)
	}

	var parsed response
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", fmt.Errorf("decode response: %w", err)
	}

	// Nominatim reports "Unable to geocode" as an error field with HTTP 200.
	if parsed.Error != "" {
		c.logger.Debug("nominatim returned no result", "lat", lat, "lon", lon, "reason", parsed.Error)
		return "", nil
	}
	return parsed.DisplayName, nil
}

// Nominatim API response shape (jsonv2 format).
type response struct {
	DisplayName string `json:"display_name"`
	Error       string `json:"error"`
}

package tool

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
)

// Elevation is a tool that looks up the elevation of a point using the
// USGS Elevation Point Query Service (EPQS).
type Elevation struct {
	BaseURL string
	Units   string
	client  *http.Client
}

type ElevationOption func(*Elevation)

// WithElevationBaseURL sets the base URL for the EPQS endpoint.
func WithElevationBaseURL(baseURL string) ElevationOption {
	return func(e *Elevation) {
		e.BaseURL = baseURL
	}
}

// WithElevationUnits sets the unit of the returned elevation ("Meters" or "Feet").
func WithElevationUnits(units string) ElevationOption {
	return func(e *Elevation) {
		e.Units = units
	}
}

// WithElevationHTTPClient sets the HTTP client used for requests.
func WithElevationHTTPClient(client *http.Client) ElevationOption {
	return func(e *Elevation) {
		e.client = client
	}
}

// NewElevation creates a new Elevation tool.
func NewElevation(opts ...ElevationOption) *Elevation {
	e := &Elevation{
		BaseURL: "https://epqs.nationalmap.gov/v1/json",
		Units:   "Meters",
		client:  &http.Client{},
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Name returns the name of the tool.
func (e *Elevation) Name() string {
	return "get_elevation"
}

// Description returns the description of the tool.
func (e *Elevation) Description() string {
	return "Get the elevation of a location in meters. " +
		"Input should be a latitude and longitude pair like '27.9881,86.9250'."
}

// Call looks up the elevation for the coordinate in the input.
func (e *Elevation) Call(ctx context.Context, input string) (string, error) {
	lat, lon, err := parseCoordinate(input)
	if err != nil {
		return "", err
	}

	elev, err := e.Lookup(ctx, lat, lon)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%.2f", elev), nil
}

// Lookup queries EPQS for the elevation at (lat, lon).
func (e *Elevation) Lookup(ctx context.Context, lat, lon float64) (float64, error) {
	params := url.Values{}
	params.Set("x", fmt.Sprintf("%f", lon))
	params.Set("y", fmt.Sprintf("%f", lat))
	params.Set("wkid", "4326")
	params.Set("units", e.Units)
	params.Set("includeDate", "false")

	reqURL := fmt.Sprintf("%s?%s", e.BaseURL, params.Encode())

	req, err := http.NewRequestWithContext(ctx, "GET", reqURL, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := e.client.Do(req)
	if err != nil {
		return 0, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("elevation service returned status: %d", resp.StatusCode)
	}

	var result struct {
		Value json.Number `json:"value"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return 0, fmt.Errorf("failed to decode response: %w", err)
	}

	elev, err := result.Value.Float64()
	if err != nil {
		return 0, fmt.Errorf("elevation service returned non-numeric value %q", result.Value)
	}
	return elev, nil
}

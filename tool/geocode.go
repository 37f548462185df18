package tool

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
)

// geocodeUserAgent identifies the client to Nominatim, which rejects
// requests without a distinct User-Agent.
const geocodeUserAgent = "geoagents/1.0 (https://github.com/smallnest/geoagents)"

// Geocode resolves free-text place names to coordinates using the
// OpenStreetMap Nominatim API.
type Geocode struct {
	BaseURL   string
	UserAgent string
	client    *http.Client
}

type GeocodeOption func(*Geocode)

// WithGeocodeBaseURL sets the base URL for the Nominatim search endpoint.
func WithGeocodeBaseURL(baseURL string) GeocodeOption {
	return func(g *Geocode) {
		g.BaseURL = baseURL
	}
}

// WithGeocodeUserAgent sets the User-Agent sent to Nominatim.
func WithGeocodeUserAgent(ua string) GeocodeOption {
	return func(g *Geocode) {
		g.UserAgent = ua
	}
}

// WithGeocodeHTTPClient sets the HTTP client used for requests.
func WithGeocodeHTTPClient(client *http.Client) GeocodeOption {
	return func(g *Geocode) {
		g.client = client
	}
}

// NewGeocode creates a new Geocode tool.
func NewGeocode(opts ...GeocodeOption) *Geocode {
	g := &Geocode{
		BaseURL:   "https://nominatim.openstreetmap.org/search",
		UserAgent: geocodeUserAgent,
		client:    &http.Client{},
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Name returns the name of the tool.
func (g *Geocode) Name() string {
	return "get_location"
}

// Description returns the description of the tool.
func (g *Geocode) Description() string {
	return "Get the latitude and longitude for a place given an address, " +
		"city, state or country. Input should be the location string."
}

// Place is a geocoding result.
type Place struct {
	Lat         float64
	Lon         float64
	DisplayName string
}

// Call resolves the place named by the input.
func (g *Geocode) Call(ctx context.Context, input string) (string, error) {
	place, err := g.Lookup(ctx, input)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s is at latitude %.6f, longitude %.6f", place.DisplayName, place.Lat, place.Lon), nil
}

// Lookup queries Nominatim for the best match of the location string.
// A query with no results is an error, not a nil result.
func (g *Geocode) Lookup(ctx context.Context, location string) (*Place, error) {
	params := url.Values{}
	params.Set("q", location)
	params.Set("format", "json")
	params.Set("limit", "1")

	reqURL := fmt.Sprintf("%s?%s", g.BaseURL, params.Encode())

	req, err := http.NewRequestWithContext(ctx, "GET", reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", g.UserAgent)

	resp, err := g.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("geocoder returned status: %d", resp.StatusCode)
	}

	var results []struct {
		Lat         string `json:"lat"`
		Lon         string `json:"lon"`
		DisplayName string `json:"display_name"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&results); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	if len(results) == 0 {
		return nil, fmt.Errorf("no results found for %q", location)
	}

	lat, err := strconv.ParseFloat(results[0].Lat, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid latitude in response: %w", err)
	}
	lon, err := strconv.ParseFloat(results[0].Lon, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid longitude in response: %w", err)
	}

	return &Place{Lat: lat, Lon: lon, DisplayName: results[0].DisplayName}, nil
}

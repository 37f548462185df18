package tool

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"

	"github.com/smallnest/langgraphgo/log"
)

// StaticMap fetches rendered map images from the Google Static Maps API.
//
// The API key is read from the GOOGLE_MAPS_API_KEY environment variable
// when none is supplied.
type StaticMap struct {
	APIKey      string
	BaseURL     string
	Zoom        int
	Width       int
	Height      int
	MarkerColor string
	MapType     string
	OutputDir   string
	client      *http.Client
}

type StaticMapOption func(*StaticMap)

// WithStaticMapBaseURL sets the base URL for the Static Maps endpoint.
func WithStaticMapBaseURL(baseURL string) StaticMapOption {
	return func(m *StaticMap) {
		m.BaseURL = baseURL
	}
}

// WithStaticMapZoom sets the zoom level (1-20).
func WithStaticMapZoom(zoom int) StaticMapOption {
	return func(m *StaticMap) {
		if zoom < 1 {
			zoom = 1
		}
		if zoom > 20 {
			zoom = 20
		}
		m.Zoom = zoom
	}
}

// WithStaticMapSize sets the image size in pixels.
func WithStaticMapSize(width, height int) StaticMapOption {
	return func(m *StaticMap) {
		m.Width = width
		m.Height = height
	}
}

// WithStaticMapMarkerColor sets the marker color.
func WithStaticMapMarkerColor(color string) StaticMapOption {
	return func(m *StaticMap) {
		m.MarkerColor = color
	}
}

// WithStaticMapType sets the map type (roadmap, satellite, hybrid, terrain).
func WithStaticMapType(mapType string) StaticMapOption {
	return func(m *StaticMap) {
		m.MapType = mapType
	}
}

// WithStaticMapOutputDir sets the directory image files are written to.
func WithStaticMapOutputDir(dir string) StaticMapOption {
	return func(m *StaticMap) {
		m.OutputDir = dir
	}
}

// WithStaticMapHTTPClient sets the HTTP client used for requests.
func WithStaticMapHTTPClient(client *http.Client) StaticMapOption {
	return func(m *StaticMap) {
		m.client = client
	}
}

// NewStaticMap creates a new StaticMap tool.
// If apiKey is empty, it tries to read from the GOOGLE_MAPS_API_KEY
// environment variable.
func NewStaticMap(apiKey string, opts ...StaticMapOption) (*StaticMap, error) {
	if apiKey == "" {
		apiKey = os.Getenv("GOOGLE_MAPS_API_KEY")
	}
	if apiKey == "" {
		return nil, fmt.Errorf("GOOGLE_MAPS_API_KEY not set")
	}

	m := &StaticMap{
		APIKey:      apiKey,
		BaseURL:     "https://maps.googleapis.com/maps/api/staticmap",
		Zoom:        13,
		Width:       600,
		Height:      400,
		MarkerColor: "red",
		MapType:     "satellite",
		OutputDir:   ".",
		client:      &http.Client{},
	}
	for _, opt := range opts {
		opt(m)
	}
	return m, nil
}

// Name returns the name of the tool.
func (m *StaticMap) Name() string {
	return "get_static_map"
}

// Description returns the description of the tool.
func (m *StaticMap) Description() string {
	return "Fetch a satellite map image of a location and save it to a file. " +
		"Useful for looking at the features of a place. " +
		"Input should be a latitude and longitude pair like '35.9758,-84.2743'."
}

// Call fetches the map image for the coordinate in the input and writes it
// to a file. A failed fetch is reported as an empty result, not an error.
func (m *StaticMap) Call(ctx context.Context, input string) (string, error) {
	lat, lon, err := parseCoordinate(input)
	if err != nil {
		return "", err
	}

	img, err := m.Fetch(ctx, lat, lon)
	if err != nil {
		log.Error("failed to fetch static map: %v", err)
		return "The map image could not be fetched.", nil
	}

	path := fmt.Sprintf("%s/map_%.4f_%.4f.png", m.OutputDir, lat, lon)
	if err := os.WriteFile(path, img, 0o644); err != nil {
		return "", fmt.Errorf("failed to write map image: %w", err)
	}

	return fmt.Sprintf("Saved a %dx%d %s map of (%.4f, %.4f) at zoom %d to %s (%d bytes).",
		m.Width, m.Height, m.MapType, lat, lon, m.Zoom, path, len(img)), nil
}

// Fetch retrieves the raw map image bytes for (lat, lon).
func (m *StaticMap) Fetch(ctx context.Context, lat, lon float64) ([]byte, error) {
	params := url.Values{}
	params.Set("center", fmt.Sprintf("%f,%f", lat, lon))
	params.Set("zoom", fmt.Sprintf("%d", m.Zoom))
	params.Set("size", fmt.Sprintf("%dx%d", m.Width, m.Height))
	params.Set("markers", fmt.Sprintf("color:%s|%f,%f", m.MarkerColor, lat, lon))
	params.Set("maptype", m.MapType)
	params.Set("key", m.APIKey)

	reqURL := fmt.Sprintf("%s?%s", m.BaseURL, params.Encode())
	log.Debug("fetching static map: center=%f,%f zoom=%d size=%dx%d", lat, lon, m.Zoom, m.Width, m.Height)

	req, err := http.NewRequestWithContext(ctx, "GET", reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := m.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("maps api returned status: %d", resp.StatusCode)
	}

	img, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read image body: %w", err)
	}
	return img, nil
}

package tool

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"

	"github.com/smallnest/langgraphgo/log"
)

const soilFetchFailed = "An error occurred while fetching soil pH data."

// SoilGrids fetches soil property coverages from the ISRIC SoilGrids WCS
// service. The default configuration requests mean soil pH between 0-5 cm
// as a GeoTIFF, matching the phh2o service.
type SoilGrids struct {
	BaseURL    string
	ServiceID  string
	CoverageID string
	CRS        string
	OutputFile string
	client     *http.Client
}

type SoilGridsOption func(*SoilGrids)

// WithSoilGridsBaseURL sets the base URL for the WCS endpoint.
func WithSoilGridsBaseURL(baseURL string) SoilGridsOption {
	return func(s *SoilGrids) {
		s.BaseURL = baseURL
	}
}

// WithSoilGridsCoverage sets the service and coverage identifiers.
func WithSoilGridsCoverage(serviceID, coverageID string) SoilGridsOption {
	return func(s *SoilGrids) {
		s.ServiceID = serviceID
		s.CoverageID = coverageID
	}
}

// WithSoilGridsOutputFile sets the path the GeoTIFF is written to.
func WithSoilGridsOutputFile(path string) SoilGridsOption {
	return func(s *SoilGrids) {
		s.OutputFile = path
	}
}

// WithSoilGridsHTTPClient sets the HTTP client used for requests.
func WithSoilGridsHTTPClient(client *http.Client) SoilGridsOption {
	return func(s *SoilGrids) {
		s.client = client
	}
}

// NewSoilGrids creates a new SoilGrids tool.
func NewSoilGrids(opts ...SoilGridsOption) *SoilGrids {
	s := &SoilGrids{
		BaseURL:    "https://maps.isric.org/mapserv",
		ServiceID:  "phh2o",
		CoverageID: "phh2o_0-5cm_mean",
		CRS:        "urn:ogc:def:crs:EPSG::152160",
		OutputFile: "soil_ph_map.tif",
		client:     &http.Client{},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Name returns the name of the tool.
func (s *SoilGrids) Name() string {
	return "get_soil_ph_image"
}

// Description returns the description of the tool.
func (s *SoilGrids) Description() string {
	return "Get and visualize mean soil pH between 0-5 cm for a region. " +
		"Input should be a bounding box in projected coordinates like " +
		"'west,south,east,north', e.g. '-1784000,1356000,-1140000,1863000'."
}

// Call fetches the coverage for the bounding box in the input and returns a
// metadata summary. Any failure is reported to the agent as a fixed error
// string, matching how a failed raster fetch should read in a conversation.
func (s *SoilGrids) Call(ctx context.Context, input string) (string, error) {
	west, south, east, north, err := parseBoundingBox(input)
	if err != nil {
		return "", err
	}

	meta, err := s.FetchCoverage(ctx, west, south, east, north)
	if err != nil {
		log.Error("failed to fetch soil pH data: %v", err)
		return soilFetchFailed, nil
	}

	var sb strings.Builder
	sb.WriteString("Metadata summary:\n")
	for _, kv := range meta {
		sb.WriteString(kv)
		sb.WriteString("\n")
	}
	return sb.String(), nil
}

// FetchCoverage issues a WCS GetCoverage request for the bounding box,
// writes the GeoTIFF to the configured output file, and returns the
// coverage metadata as "key: value" lines.
func (s *SoilGrids) FetchCoverage(ctx context.Context, west, south, east, north float64) ([]string, error) {
	params := url.Values{}
	params.Set("map", fmt.Sprintf("/map/%s.map", s.ServiceID))
	params.Set("SERVICE", "WCS")
	params.Set("VERSION", "2.0.1")
	params.Set("REQUEST", "GetCoverage")
	params.Set("COVERAGEID", s.CoverageID)
	params.Set("FORMAT", "GEOTIFF_INT16")
	params.Add("SUBSET", fmt.Sprintf("X(%f,%f)", west, east))
	params.Add("SUBSET", fmt.Sprintf("Y(%f,%f)", south, north))
	params.Set("SUBSETTINGCRS", s.CRS)
	params.Set("OUTPUTCRS", s.CRS)

	reqURL := fmt.Sprintf("%s?%s", s.BaseURL, params.Encode())

	req, err := http.NewRequestWithContext(ctx, "GET", reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("soilgrids returned status: %d", resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read coverage body: %w", err)
	}
	// WCS reports errors as XML with a 200 status.
	if ct := resp.Header.Get("Content-Type"); strings.Contains(ct, "xml") {
		return nil, fmt.Errorf("soilgrids returned a service exception: %s", strings.TrimSpace(string(data)))
	}

	if err := os.WriteFile(s.OutputFile, data, 0o644); err != nil {
		return nil, fmt.Errorf("failed to write coverage file: %w", err)
	}

	meta := []string{
		fmt.Sprintf("service_id: %s", s.ServiceID),
		fmt.Sprintf("coverage_id: %s", s.CoverageID),
		fmt.Sprintf("crs: %s", s.CRS),
		fmt.Sprintf("west: %g", west),
		fmt.Sprintf("south: %g", south),
		fmt.Sprintf("east: %g", east),
		fmt.Sprintf("north: %g", north),
		fmt.Sprintf("content_type: %s", resp.Header.Get("Content-Type")),
		fmt.Sprintf("bytes: %d", len(data)),
		fmt.Sprintf("output: %s", s.OutputFile),
	}
	return meta, nil
}

package tool

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/araddon/dateparse"
)

// Weather fetches daily historical weather observations from the
// Open-Meteo archive API. Locations are resolved with a Geocode tool, so
// the model can ask about a place by name, as it would about an address.
type Weather struct {
	BaseURL  string
	geocoder *Geocode
	client   *http.Client
}

type WeatherOption func(*Weather)

// WithWeatherBaseURL sets the base URL for the archive endpoint.
func WithWeatherBaseURL(baseURL string) WeatherOption {
	return func(w *Weather) {
		w.BaseURL = baseURL
	}
}

// WithWeatherGeocoder sets the geocoder used to resolve place names.
func WithWeatherGeocoder(g *Geocode) WeatherOption {
	return func(w *Weather) {
		w.geocoder = g
	}
}

// WithWeatherHTTPClient sets the HTTP client used for requests.
func WithWeatherHTTPClient(client *http.Client) WeatherOption {
	return func(w *Weather) {
		w.client = client
	}
}

// NewWeather creates a new Weather tool.
func NewWeather(opts ...WeatherOption) *Weather {
	w := &Weather{
		BaseURL: "https://archive-api.open-meteo.com/v1/archive",
		client:  &http.Client{},
	}
	for _, opt := range opts {
		opt(w)
	}
	if w.geocoder == nil {
		w.geocoder = NewGeocode()
	}
	return w
}

// Name returns the name of the tool.
func (w *Weather) Name() string {
	return "get_weather"
}

// Description returns the description of the tool.
func (w *Weather) Description() string {
	return "Get daily weather observations for a location over a time period. " +
		`Input should be a JSON object like ` +
		`{"location": "Kalamazoo", "start_date": "February 14, 2024", "end_date": "February 21, 2024"}.`
}

type weatherQuery struct {
	Location  string `json:"location"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

// Call fetches the daily observations for the query in the input.
func (w *Weather) Call(ctx context.Context, input string) (string, error) {
	q, err := parseWeatherQuery(input)
	if err != nil {
		return "", err
	}

	start, err := dateparse.ParseAny(q.StartDate)
	if err != nil {
		return "", fmt.Errorf("could not parse start date %q: %w", q.StartDate, err)
	}
	end, err := dateparse.ParseAny(q.EndDate)
	if err != nil {
		return "", fmt.Errorf("could not parse end date %q: %w", q.EndDate, err)
	}

	place, err := w.geocoder.Lookup(ctx, q.Location)
	if err != nil {
		return "", err
	}

	days, err := w.FetchDaily(ctx, place.Lat, place.Lon, start, end)
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Daily weather for %s (%.4f, %.4f):\n", place.DisplayName, place.Lat, place.Lon)
	for _, d := range days {
		sb.WriteString(d.String())
		sb.WriteString("\n")
	}
	return sb.String(), nil
}

// DailyObservation is one day of archived weather.
type DailyObservation struct {
	Date          string
	TempMin       float64
	TempMean      float64
	TempMax       float64
	Precipitation float64
	WindMax       float64
}

func (d DailyObservation) String() string {
	return fmt.Sprintf("%s: min %.1f°C, mean %.1f°C, max %.1f°C, precipitation %.1f mm, max wind %.1f km/h",
		d.Date, d.TempMin, d.TempMean, d.TempMax, d.Precipitation, d.WindMax)
}

// FetchDaily queries the archive for daily observations at (lat, lon)
// between start and end, inclusive.
func (w *Weather) FetchDaily(ctx context.Context, lat, lon float64, start, end time.Time) ([]DailyObservation, error) {
	params := url.Values{}
	params.Set("latitude", fmt.Sprintf("%f", lat))
	params.Set("longitude", fmt.Sprintf("%f", lon))
	params.Set("start_date", start.Format("2006-01-02"))
	params.Set("end_date", end.Format("2006-01-02"))
	params.Set("daily", "temperature_2m_min,temperature_2m_mean,temperature_2m_max,precipitation_sum,wind_speed_10m_max")
	params.Set("timezone", "auto")

	reqURL := fmt.Sprintf("%s?%s", w.BaseURL, params.Encode())

	req, err := http.NewRequestWithContext(ctx, "GET", reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := w.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("weather archive returned status: %d", resp.StatusCode)
	}

	var result struct {
		Daily struct {
			Time     []string  `json:"time"`
			TempMin  []float64 `json:"temperature_2m_min"`
			TempMean []float64 `json:"temperature_2m_mean"`
			TempMax  []float64 `json:"temperature_2m_max"`
			Precip   []float64 `json:"precipitation_sum"`
			WindMax  []float64 `json:"wind_speed_10m_max"`
		} `json:"daily"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	days := make([]DailyObservation, 0, len(result.Daily.Time))
	for i, date := range result.Daily.Time {
		d := DailyObservation{Date: date}
		if i < len(result.Daily.TempMin) {
			d.TempMin = result.Daily.TempMin[i]
		}
		if i < len(result.Daily.TempMean) {
			d.TempMean = result.Daily.TempMean[i]
		}
		if i < len(result.Daily.TempMax) {
			d.TempMax = result.Daily.TempMax[i]
		}
		if i < len(result.Daily.Precip) {
			d.Precipitation = result.Daily.Precip[i]
		}
		if i < len(result.Daily.WindMax) {
			d.WindMax = result.Daily.WindMax[i]
		}
		days = append(days, d)
	}
	if len(days) == 0 {
		return nil, fmt.Errorf("no observations for %f,%f between %s and %s",
			lat, lon, start.Format("2006-01-02"), end.Format("2006-01-02"))
	}
	return days, nil
}

func parseWeatherQuery(input string) (weatherQuery, error) {
	input = strings.TrimSpace(input)

	var q weatherQuery
	if strings.HasPrefix(input, "{") {
		if err := json.Unmarshal([]byte(input), &q); err != nil {
			return q, fmt.Errorf("invalid weather query: %w", err)
		}
	} else {
		// Fallback form: "location; start date; end date"
		parts := strings.Split(input, ";")
		if len(parts) != 3 {
			return q, fmt.Errorf("expected 'location; start; end', got %q", input)
		}
		q.Location = strings.TrimSpace(parts[0])
		q.StartDate = strings.TrimSpace(parts[1])
		q.EndDate = strings.TrimSpace(parts[2])
	}

	if q.Location == "" || q.StartDate == "" || q.EndDate == "" {
		return q, fmt.Errorf("weather query needs location, start_date and end_date")
	}
	return q, nil
}

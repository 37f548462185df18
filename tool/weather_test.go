package tool

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newWeatherTestServers(t *testing.T) (*Geocode, *httptest.Server) {
	t.Helper()

	geoServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"lat": "42.2916850", "lon": "-85.5872286", "display_name": "Kalamazoo, Michigan, United States"}]`))
	}))
	t.Cleanup(geoServer.Close)

	archiveServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		assert.Equal(t, "2024-02-14", q.Get("start_date"))
		assert.Equal(t, "2024-02-21", q.Get("end_date"))
		assert.Contains(t, q.Get("daily"), "temperature_2m_mean")

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"daily": {
				"time": ["2024-02-14", "2024-02-15"],
				"temperature_2m_min": [-3.1, -1.0],
				"temperature_2m_mean": [0.4, 2.2],
				"temperature_2m_max": [4.0, 6.1],
				"precipitation_sum": [0.0, 2.5],
				"wind_speed_10m_max": [18.7, 22.1]
			}
		}`))
	}))
	t.Cleanup(archiveServer.Close)

	return NewGeocode(WithGeocodeBaseURL(geoServer.URL)), archiveServer
}

func TestWeatherCall(t *testing.T) {
	geocoder, archive := newWeatherTestServers(t)
	weather := NewWeather(
		WithWeatherBaseURL(archive.URL),
		WithWeatherGeocoder(geocoder),
	)

	result, err := weather.Call(context.Background(),
		`{"location": "kalamazoo", "start_date": "February 14, 2024", "end_date": "February 21, 2024"}`)
	require.NoError(t, err)

	assert.Contains(t, result, "Kalamazoo, Michigan, United States")
	assert.Contains(t, result, "2024-02-14: min -3.1°C, mean 0.4°C, max 4.0°C, precipitation 0.0 mm, max wind 18.7 km/h")
	assert.Contains(t, result, "2024-02-15")
}

func TestWeatherCallDelimitedInput(t *testing.T) {
	geocoder, archive := newWeatherTestServers(t)
	weather := NewWeather(
		WithWeatherBaseURL(archive.URL),
		WithWeatherGeocoder(geocoder),
	)

	result, err := weather.Call(context.Background(), "kalamazoo; Feb 14, 2024; Feb 21, 2024")
	require.NoError(t, err)
	assert.Contains(t, result, "2024-02-14")
}

func TestWeatherBadDates(t *testing.T) {
	geocoder, archive := newWeatherTestServers(t)
	weather := NewWeather(
		WithWeatherBaseURL(archive.URL),
		WithWeatherGeocoder(geocoder),
	)

	_, err := weather.Call(context.Background(),
		`{"location": "kalamazoo", "start_date": "the day after the storm", "end_date": "later"}`)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "could not parse start date")
}

func TestWeatherMissingFields(t *testing.T) {
	weather := NewWeather()

	_, err := weather.Call(context.Background(), `{"location": "kalamazoo"}`)
	assert.Error(t, err)

	_, err = weather.Call(context.Background(), "just a location string")
	assert.Error(t, err)
}

func TestWeatherFetchDailyEmpty(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"daily": {"time": []}}`))
	}))
	defer server.Close()

	weather := NewWeather(WithWeatherBaseURL(server.URL))

	start := time.Date(2024, 2, 14, 0, 0, 0, 0, time.UTC)
	_, err := weather.FetchDaily(context.Background(), 42.29, -85.58, start, start.AddDate(0, 0, 7))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "no observations")
}

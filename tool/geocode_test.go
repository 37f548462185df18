package tool

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGeocodeLookup(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "kalamazoo", r.URL.Query().Get("q"))
		assert.Equal(t, "json", r.URL.Query().Get("format"))
		assert.NotEmpty(t, r.Header.Get("User-Agent"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"lat": "42.2916850", "lon": "-85.5872286", "display_name": "Kalamazoo, Michigan, United States"}]`))
	}))
	defer server.Close()

	g := NewGeocode(WithGeocodeBaseURL(server.URL))

	place, err := g.Lookup(context.Background(), "kalamazoo")
	require.NoError(t, err)
	assert.InDelta(t, 42.291685, place.Lat, 0.0001)
	assert.InDelta(t, -85.5872286, place.Lon, 0.0001)
	assert.Equal(t, "Kalamazoo, Michigan, United States", place.DisplayName)
}

func TestGeocodeCall(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"lat": "42.29", "lon": "-85.58", "display_name": "Kalamazoo"}]`))
	}))
	defer server.Close()

	g := NewGeocode(WithGeocodeBaseURL(server.URL))

	result, err := g.Call(context.Background(), "kalamazoo")
	require.NoError(t, err)
	assert.Contains(t, result, "Kalamazoo")
	assert.Contains(t, result, "42.29")
	assert.Contains(t, result, "-85.58")
}

func TestGeocodeNoResults(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[]`))
	}))
	defer server.Close()

	g := NewGeocode(WithGeocodeBaseURL(server.URL))

	_, err := g.Lookup(context.Background(), "nowhere at all")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), `no results found for "nowhere at all"`)
}

func TestGeocodeServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "rate limited", http.StatusTooManyRequests)
	}))
	defer server.Close()

	g := NewGeocode(WithGeocodeBaseURL(server.URL))

	_, err := g.Lookup(context.Background(), "kalamazoo")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "status: 429")
}

package tool

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestElevationLookup(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "-84.274312", r.URL.Query().Get("x"))
		assert.Equal(t, "35.975838", r.URL.Query().Get("y"))
		assert.Equal(t, "Meters", r.URL.Query().Get("units"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"location": {"x": -84.274312, "y": 35.975838}, "value": 292.92}`))
	}))
	defer server.Close()

	elev := NewElevation(WithElevationBaseURL(server.URL))

	got, err := elev.Lookup(context.Background(), 35.975838, -84.274312)
	require.NoError(t, err)
	assert.InDelta(t, 292.92, got, 0.001)
}

func TestElevationCall(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"value": 8848.86}`))
	}))
	defer server.Close()

	elev := NewElevation(WithElevationBaseURL(server.URL))

	for _, input := range []string{
		"27.9881,86.9250",
		`{"lat": 27.9881, "lon": 86.9250}`,
		`{"latitude": 27.9881, "longitude": 86.9250}`,
	} {
		got, err := elev.Call(context.Background(), input)
		require.NoError(t, err, "input %q", input)
		assert.Equal(t, "8848.86", got)
	}
}

func TestElevationCallBadInput(t *testing.T) {
	elev := NewElevation()

	_, err := elev.Call(context.Background(), "mount everest")
	assert.Error(t, err)

	_, err = elev.Call(context.Background(), `{"lat": 27.9881}`)
	assert.Error(t, err)
}

func TestElevationServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer server.Close()

	elev := NewElevation(WithElevationBaseURL(server.URL))

	_, err := elev.Lookup(context.Background(), 1, 2)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "status: 500")
}

func TestElevationNonNumericValue(t *testing.T) {
	// EPQS reports points with no coverage as a string value.
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"value": "-1000000"}`))
	}))
	defer server.Close()

	elev := NewElevation(WithElevationBaseURL(server.URL))

	got, err := elev.Lookup(context.Background(), 0, 0)
	require.NoError(t, err)
	assert.InDelta(t, -1000000, got, 0.001)
}

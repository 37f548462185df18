package tool

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fakeTIFF = []byte("II*\x00fake geotiff bytes")

func TestSoilGridsFetchCoverage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		assert.Equal(t, "/map/phh2o.map", q.Get("map"))
		assert.Equal(t, "WCS", q.Get("SERVICE"))
		assert.Equal(t, "GetCoverage", q.Get("REQUEST"))
		assert.Equal(t, "phh2o_0-5cm_mean", q.Get("COVERAGEID"))
		assert.Equal(t, []string{"X(-1784000.000000,-1140000.000000)", "Y(1356000.000000,1863000.000000)"}, q["SUBSET"])
		assert.Equal(t, "urn:ogc:def:crs:EPSG::152160", q.Get("SUBSETTINGCRS"))

		w.Header().Set("Content-Type", "image/tiff")
		w.Write(fakeTIFF)
	}))
	defer server.Close()

	out := filepath.Join(t.TempDir(), "soil_ph_map.tif")
	s := NewSoilGrids(
		WithSoilGridsBaseURL(server.URL),
		WithSoilGridsOutputFile(out),
	)

	meta, err := s.FetchCoverage(context.Background(), -1784000, 1356000, -1140000, 1863000)
	require.NoError(t, err)
	assert.Contains(t, meta, "coverage_id: phh2o_0-5cm_mean")
	assert.Contains(t, meta, "west: -1.784e+06")
	assert.Contains(t, meta, "content_type: image/tiff")

	written, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, fakeTIFF, written)
}

func TestSoilGridsCall(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "image/tiff")
		w.Write(fakeTIFF)
	}))
	defer server.Close()

	s := NewSoilGrids(
		WithSoilGridsBaseURL(server.URL),
		WithSoilGridsOutputFile(filepath.Join(t.TempDir(), "out.tif")),
	)

	result, err := s.Call(context.Background(), "-1784000,1356000,-1140000,1863000")
	require.NoError(t, err)
	assert.Contains(t, result, "Metadata summary:")
	assert.Contains(t, result, "service_id: phh2o")
}

func TestSoilGridsCallJSONInput(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "image/tiff")
		w.Write(fakeTIFF)
	}))
	defer server.Close()

	s := NewSoilGrids(
		WithSoilGridsBaseURL(server.URL),
		WithSoilGridsOutputFile(filepath.Join(t.TempDir(), "out.tif")),
	)

	result, err := s.Call(context.Background(),
		`{"west": -1784000, "south": 1356000, "east": -1140000, "north": 1863000}`)
	require.NoError(t, err)
	assert.Contains(t, result, "Metadata summary:")
}

func TestSoilGridsServiceExceptionReturnsFixedString(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// MapServer reports WCS errors as XML with a 200 status.
		w.Header().Set("Content-Type", "application/xml")
		w.Write([]byte(`<ows:ExceptionReport>bad subset</ows:ExceptionReport>`))
	}))
	defer server.Close()

	s := NewSoilGrids(
		WithSoilGridsBaseURL(server.URL),
		WithSoilGridsOutputFile(filepath.Join(t.TempDir(), "out.tif")),
	)

	result, err := s.Call(context.Background(), "0,0,1,1")
	require.NoError(t, err)
	assert.Equal(t, soilFetchFailed, result)
}

func TestSoilGridsBadInput(t *testing.T) {
	s := NewSoilGrids()

	_, err := s.Call(context.Background(), "not a bbox")
	assert.Error(t, err)

	_, err = s.Call(context.Background(), `{"west": 1, "south": 2}`)
	assert.Error(t, err)
}

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

var fakePNG = []byte("\x89PNG\r\n\x1a\nfake image bytes")

func TestStaticMapFetch(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		assert.Equal(t, "35.975838,-84.274312", q.Get("center"))
		assert.Equal(t, "13", q.Get("zoom"))
		assert.Equal(t, "600x400", q.Get("size"))
		assert.Equal(t, "satellite", q.Get("maptype"))
		assert.Equal(t, "color:red|35.975838,-84.274312", q.Get("markers"))
		assert.Equal(t, "test-key", q.Get("key"))

		w.Header().Set("Content-Type", "image/png")
		w.Write(fakePNG)
	}))
	defer server.Close()

	m, err := NewStaticMap("test-key", WithStaticMapBaseURL(server.URL))
	require.NoError(t, err)

	img, err := m.Fetch(context.Background(), 35.975838, -84.274312)
	require.NoError(t, err)
	assert.Equal(t, fakePNG, img)
}

func TestStaticMapCallWritesFile(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "image/png")
		w.Write(fakePNG)
	}))
	defer server.Close()

	dir := t.TempDir()
	m, err := NewStaticMap("test-key",
		WithStaticMapBaseURL(server.URL),
		WithStaticMapOutputDir(dir),
	)
	require.NoError(t, err)

	result, err := m.Call(context.Background(), "35.9758,-84.2743")
	require.NoError(t, err)
	assert.Contains(t, result, "Saved a 600x400 satellite map")

	path := filepath.Join(dir, "map_35.9758_-84.2743.png")
	assert.Contains(t, result, path)

	written, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, fakePNG, written)
}

func TestStaticMapFetchFailureIsNotFatal(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "denied", http.StatusForbidden)
	}))
	defer server.Close()

	m, err := NewStaticMap("test-key", WithStaticMapBaseURL(server.URL))
	require.NoError(t, err)

	// The agent should get a readable message rather than a failed turn.
	result, err := m.Call(context.Background(), "1,2")
	require.NoError(t, err)
	assert.Equal(t, "The map image could not be fetched.", result)
}

func TestStaticMapRequiresKey(t *testing.T) {
	t.Setenv("GOOGLE_MAPS_API_KEY", "")

	_, err := NewStaticMap("")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "GOOGLE_MAPS_API_KEY")
}

func TestStaticMapKeyFromEnv(t *testing.T) {
	t.Setenv("GOOGLE_MAPS_API_KEY", "env-key")

	m, err := NewStaticMap("")
	require.NoError(t, err)
	assert.Equal(t, "env-key", m.APIKey)
}

func TestStaticMapZoomClamped(t *testing.T) {
	m, err := NewStaticMap("k", WithStaticMapZoom(99))
	require.NoError(t, err)
	assert.Equal(t, 20, m.Zoom)

	m, err = NewStaticMap("k", WithStaticMapZoom(0))
	require.NoError(t, err)
	assert.Equal(t, 1, m.Zoom)
}

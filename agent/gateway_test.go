package agent

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGatewayListModels(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/models", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"object": "list",
			"data": [
				{"id": "openai/gpt-4o", "object": "model"},
				{"id": "anthropic/claude-sonnet", "object": "model"}
			]
		}`))
	}))
	defer server.Close()

	gw := NewGateway("test-key", server.URL)

	models, err := gw.ListModels(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"anthropic/claude-sonnet", "openai/gpt-4o"}, models)
}

func TestGatewayVerifyBadKey(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error": {"message": "invalid key"}}`, http.StatusUnauthorized)
	}))
	defer server.Close()

	gw := NewGateway("bad-key", server.URL)

	err := gw.Verify(context.Background())
	assert.Error(t, err)
}

func TestNewGatewayFromEnvRequiresKey(t *testing.T) {
	t.Setenv("CBORG_API_KEY", "")

	_, err := NewGatewayFromEnv()
	assert.Error(t, err)
}

package agent

import (
	"context"
	"fmt"
	"os"
	"sort"

	goopenai "github.com/sashabaranov/go-openai"
)

// DefaultGatewayURL is the OpenAI-compatible API root of the CBORG gateway.
const DefaultGatewayURL = "https://api.cborg.lbl.gov/v1"

// Gateway is a raw client for the LLM gateway, for the operations the
// agent framework does not cover: listing available models and verifying
// that an API key works at all.
type Gateway struct {
	client *goopenai.Client
}

// NewGateway creates a gateway client. An empty baseURL uses the CBORG
// default.
func NewGateway(apiKey, baseURL string) *Gateway {
	if baseURL == "" {
		baseURL = DefaultGatewayURL
	}
	cfg := goopenai.DefaultConfig(apiKey)
	cfg.BaseURL = baseURL
	return &Gateway{client: goopenai.NewClientWithConfig(cfg)}
}

// NewGatewayFromEnv creates a gateway client from CBORG_API_KEY and the
// optional CBORG_GATEWAY_URL.
func NewGatewayFromEnv() (*Gateway, error) {
	apiKey := os.Getenv("CBORG_API_KEY")
	if apiKey == "" {
		return nil, fmt.Errorf("CBORG_API_KEY environment variable is not set")
	}
	return NewGateway(apiKey, os.Getenv("CBORG_GATEWAY_URL")), nil
}

// ListModels returns the model identifiers the gateway offers, sorted.
func (g *Gateway) ListModels(ctx context.Context) ([]string, error) {
	list, err := g.client.ListModels(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list models: %w", err)
	}

	ids := make([]string, 0, len(list.Models))
	for _, m := range list.Models {
		ids = append(ids, m.ID)
	}
	sort.Strings(ids)
	return ids, nil
}

// Verify checks that the API key is accepted by the gateway.
func (g *Gateway) Verify(ctx context.Context) error {
	if _, err := g.ListModels(ctx); err != nil {
		return fmt.Errorf("gateway check failed: %w", err)
	}
	return nil
}

package agent

import (
	"fmt"
	"os"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"
)

const (
	// DefaultBaseURL is the CBORG LLM gateway.
	DefaultBaseURL = "https://api.cborg.lbl.gov"
	// DefaultModel is the model requested when CBORG_MODEL is unset.
	DefaultModel = "openai/gpt-4o"
)

// NewModelFromEnv builds a model handle for the CBORG gateway from the
// environment: CBORG_API_KEY (required), CBORG_API_BASE and CBORG_MODEL
// (optional).
func NewModelFromEnv() (llms.Model, error) {
	apiKey := os.Getenv("CBORG_API_KEY")
	if apiKey == "" {
		return nil, fmt.Errorf("CBORG_API_KEY environment variable is not set")
	}

	baseURL := os.Getenv("CBORG_API_BASE")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	modelName := os.Getenv("CBORG_MODEL")
	if modelName == "" {
		modelName = DefaultModel
	}

	return openai.New(
		openai.WithToken(apiKey),
		openai.WithBaseURL(baseURL),
		openai.WithModel(modelName),
	)
}

package agent

import (
	"context"
	"fmt"

	"github.com/smallnest/langgraphgo/graph"
	"github.com/smallnest/langgraphgo/prebuilt"
	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/tools"
)

// System prompts used by the demos.
const (
	// GeographyTeacherPrompt is used by the elevation and weather demos.
	GeographyTeacherPrompt = "You are an awesome geography teacher."

	// SoilScientistPrompt is used by the soil properties demo.
	SoilScientistPrompt = "You are a soil science expert helping users understand soil properties. " +
		"Provide clear, concise answers."

	// ConcisePrompt is used by the hello world demo.
	ConcisePrompt = "Be concise, reply with one sentence."

	// WikipediaAnimalPrompt is used by the Wikipedia animal QA demo.
	WikipediaAnimalPrompt = "You are a helpful assistant that can give any answers to Animals " +
		"that are on Wikipedia. Do not use your own knowledge."
)

// Agent pairs a model with a system prompt and a set of tools, and runs
// one query at a time. Tool-call routing is the framework's job; this type
// only feeds it a query and extracts the final text answer.
type Agent struct {
	runnable *graph.StateRunnable[map[string]any]
}

// New creates an agent with the given system prompt and tools.
func New(model llms.Model, systemPrompt string, inputTools []tools.Tool) (*Agent, error) {
	var opts []prebuilt.CreateAgentOption
	if systemPrompt != "" {
		opts = append(opts, prebuilt.WithSystemMessage(systemPrompt))
	}

	runnable, err := prebuilt.CreateAgentMap(model, inputTools, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create agent: %w", err)
	}
	return &Agent{runnable: runnable}, nil
}

// Ask runs a single query through the agent and returns the final text
// answer.
func (a *Agent) Ask(ctx context.Context, query string) (string, error) {
	initialState := map[string]any{
		"messages": []llms.MessageContent{
			llms.TextParts(llms.ChatMessageTypeHuman, query),
		},
	}

	res, err := a.runnable.Invoke(ctx, initialState)
	if err != nil {
		return "", err
	}

	messages, ok := res["messages"].([]llms.MessageContent)
	if !ok || len(messages) == 0 {
		return "", fmt.Errorf("no messages in response")
	}

	lastMsg := messages[len(messages)-1]
	for _, part := range lastMsg.Parts {
		if text, ok := part.(llms.TextContent); ok {
			return text.Text, nil
		}
	}
	return "", nil
}

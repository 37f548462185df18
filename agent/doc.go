// Package agent wires langgraphgo prebuilt agents to the CBORG LLM gateway
// and the geoagents tools.
//
// It provides the model handle (NewModelFromEnv), a thin one-shot Agent
// wrapper with the system prompts the demos use, and a raw Gateway client
// for listing models and verifying the API key.
package agent

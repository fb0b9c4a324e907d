// Package llm defines the interface for locally hosted generative-model
// backends used by the scribe daemon.
package llm

import (
	"context"

	"github.com/skillsenselab/scribe/provider"
)

// GenerateRequest is the input for a single-shot text generation call.
type GenerateRequest struct {
	// Model overrides the provider's default model.
	Model string `json:"model,omitempty"`
	// Prompt is the full prompt text.
	Prompt string `json:"prompt"`
}

// GenerateResponse is the output of a generation call.
type GenerateResponse struct {
	// Content is the generated text.
	Content string `json:"content"`
	// Model is the model that produced the response.
	Model string `json:"model"`
}

// Provider is the interface that generative-model backends must implement.
type Provider interface {
	provider.Provider // embeds Name() and IsAvailable()

	// Generate sends a prompt and returns the full response. Streaming is
	// deliberately not part of the contract: the backend always asks the
	// model server for a complete response.
	Generate(ctx context.Context, req GenerateRequest) (*GenerateResponse, error)
}

// NewRegistry creates a new provider registry for llm providers.
func NewRegistry() *provider.Registry[Provider] {
	return provider.NewRegistry[Provider]()
}

// Package summary turns transcripts into short summaries using a
// generative-model provider.
package summary

import (
	"context"
	"fmt"

	"github.com/skillsenselab/scribe/llm"
	"github.com/skillsenselab/scribe/logger"
)

// instruction is the fixed prompt prefix prepended to the input text.
const instruction = "Summarize the following text concisely:\n\n"

// Summarizer issues single-shot summarization calls against an llm.Provider.
type Summarizer struct {
	provider llm.Provider
	model    string
	log      *logger.Logger
}

// New creates a Summarizer. An empty model uses the provider's default.
func New(p llm.Provider, model string) *Summarizer {
	return &Summarizer{
		provider: p,
		model:    model,
		log:      logger.WithComponent("summary"),
	}
}

// Summarize sends the templated prompt and returns the generated summary.
// There is no local length limit on text; the model server decides.
func (s *Summarizer) Summarize(ctx context.Context, text string) (string, error) {
	s.log.Info("summarizing text", logger.Fields("length", len(text)))

	resp, err := s.provider.Generate(ctx, llm.GenerateRequest{
		Model:  s.model,
		Prompt: instruction + text,
	})
	if err != nil {
		return "", fmt.Errorf("summarize: %w", err)
	}

	s.log.Debug("summarization successful", logger.Fields("summary_length", len(resp.Content)))
	return resp.Content, nil
}

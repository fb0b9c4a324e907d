package summary_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/skillsenselab/scribe/llm"
	"github.com/skillsenselab/scribe/summary"
)

type fakeLLM struct {
	lastReq llm.GenerateRequest
	resp    *llm.GenerateResponse
	err     error
}

func (f *fakeLLM) Name() string                        { return "fake" }
func (f *fakeLLM) IsAvailable(_ context.Context) bool  { return true }
func (f *fakeLLM) Generate(_ context.Context, req llm.GenerateRequest) (*llm.GenerateResponse, error) {
	f.lastReq = req
	return f.resp, f.err
}

func TestSummarizePrependsInstruction(t *testing.T) {
	fake := &fakeLLM{resp: &llm.GenerateResponse{Content: "short version"}}
	s := summary.New(fake, "test-model")

	got, err := s.Summarize(context.Background(), "a very long transcript")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "short version" {
		t.Fatalf("expected summary passthrough, got %q", got)
	}
	if !strings.HasPrefix(fake.lastReq.Prompt, "Summarize the following text concisely:\n\n") {
		t.Fatalf("prompt missing instruction prefix: %q", fake.lastReq.Prompt)
	}
	if !strings.HasSuffix(fake.lastReq.Prompt, "a very long transcript") {
		t.Fatalf("prompt missing input text: %q", fake.lastReq.Prompt)
	}
	if fake.lastReq.Model != "test-model" {
		t.Fatalf("model not forwarded: %q", fake.lastReq.Model)
	}
}

func TestSummarizePropagatesProviderError(t *testing.T) {
	fake := &fakeLLM{err: errors.New("ollama API error: 500 Internal Server Error")}
	s := summary.New(fake, "")

	_, err := s.Summarize(context.Background(), "text")
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "ollama API error: 500") {
		t.Fatalf("provider error not surfaced verbatim: %v", err)
	}
}

package sidecar_test

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/skillsenselab/scribe/transcription"
	"github.com/skillsenselab/scribe/transcription/sidecar"
)

// fakeSidecar writes an executable shell script that stands in for the real
// transcription binary.
func fakeSidecar(t *testing.T, script string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "fake-sidecar")
	if err := os.WriteFile(path, []byte("#!/bin/sh\n"+script+"\n"), 0o755); err != nil {
		t.Fatalf("write fake sidecar: %v", err)
	}
	return path
}

func TestTranscribeSuccess(t *testing.T) {
	bin := fakeSidecar(t, `printf '{"segments":[{"text":"hi","speaker_id":"S1"}]}\n\n'`)
	p := sidecar.NewProvider(sidecar.Config{Binary: bin})

	raw, err := p.Transcribe(context.Background(), transcription.Request{AudioPath: "/tmp/a.webm"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var parsed struct {
		Segments []struct {
			Text      string `json:"text"`
			SpeakerID string `json:"speaker_id"`
		} `json:"segments"`
	}
	if err := json.Unmarshal(raw, &parsed); err != nil {
		t.Fatalf("result is not valid JSON: %v", err)
	}
	if len(parsed.Segments) != 1 || parsed.Segments[0].Text != "hi" {
		t.Fatalf("unexpected result: %s", raw)
	}
}

func TestTranscribePassesFilePathAsArgument(t *testing.T) {
	bin := fakeSidecar(t, `printf '{"file":"%s"}' "$1"`)
	p := sidecar.NewProvider(sidecar.Config{Binary: bin})

	raw, err := p.Transcribe(context.Background(), transcription.Request{AudioPath: "/recordings/r.webm"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(string(raw), "/recordings/r.webm") {
		t.Fatalf("file path not forwarded: %s", raw)
	}
}

func TestTranscribeInjectsToken(t *testing.T) {
	bin := fakeSidecar(t, `printf '{"token":"%s"}' "$HF_TOKEN"`)
	p := sidecar.NewProvider(sidecar.Config{Binary: bin, Token: "hf-secret"})

	raw, err := p.Transcribe(context.Background(), transcription.Request{AudioPath: "x"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(string(raw), "hf-secret") {
		t.Fatalf("token not injected: %s", raw)
	}
}

func TestTranscribeInvalidOutputIncludesRaw(t *testing.T) {
	bin := fakeSidecar(t, `printf 'this is not json'`)
	p := sidecar.NewProvider(sidecar.Config{Binary: bin})

	_, err := p.Transcribe(context.Background(), transcription.Request{AudioPath: "x"})
	if err == nil {
		t.Fatal("expected error for invalid JSON output")
	}
	if !strings.Contains(err.Error(), "this is not json") {
		t.Fatalf("error should include raw output, got: %v", err)
	}
	if !strings.Contains(err.Error(), "failed to parse sidecar output") {
		t.Fatalf("unexpected error message: %v", err)
	}
}

func TestTranscribeNonZeroExitReportsStderr(t *testing.T) {
	bin := fakeSidecar(t, `echo "model load failed" >&2; exit 3`)
	p := sidecar.NewProvider(sidecar.Config{Binary: bin})

	_, err := p.Transcribe(context.Background(), transcription.Request{AudioPath: "x"})
	if err == nil {
		t.Fatal("expected error for non-zero exit")
	}
	if !strings.Contains(err.Error(), "model load failed") {
		t.Fatalf("error should include stderr, got: %v", err)
	}
}

func TestIsAvailable(t *testing.T) {
	missing := sidecar.NewProvider(sidecar.Config{Binary: "/nonexistent/sidecar-binary"})
	if missing.IsAvailable(context.Background()) {
		t.Error("expected unavailable for missing binary")
	}

	bin := fakeSidecar(t, `exit 0`)
	present := sidecar.NewProvider(sidecar.Config{Binary: bin})
	if !present.IsAvailable(context.Background()) {
		t.Error("expected available for existing executable")
	}
}

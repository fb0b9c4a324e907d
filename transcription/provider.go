package transcription

import (
	"context"
	"encoding/json"

	"github.com/skillsenselab/scribe/provider"
)

// Request holds parameters for a transcription call.
type Request struct {
	// AudioPath is the path to the audio file to transcribe. It is handed to
	// the backend as-is; existence and readability errors surface through the
	// backend's own failure reporting.
	AudioPath string `json:"audio_path"`
}

// Provider is the interface that transcription backends must implement.
type Provider interface {
	provider.Provider // embeds Name() and IsAvailable()

	// Transcribe sends audio for transcription and returns the backend's raw
	// JSON document.
	Transcribe(ctx context.Context, req Request) (json.RawMessage, error)
}

// NewRegistry creates a new provider registry for transcription providers.
func NewRegistry() *provider.Registry[Provider] {
	return provider.NewRegistry[Provider]()
}

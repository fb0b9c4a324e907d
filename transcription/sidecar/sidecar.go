// Package sidecar implements transcription.Provider by spawning the external
// transcription executable that ships with the desktop app.
//
// Contract with the executable: it is invoked as `<binary> <file_path>`, may
// receive an HF_TOKEN environment variable for gated diarization models,
// emits a single JSON document on stdout on success, human-readable
// diagnostics on stderr on failure, and exits non-zero on error.
package sidecar

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os/exec"

	"github.com/skillsenselab/scribe/logger"
	"github.com/skillsenselab/scribe/process"
	"github.com/skillsenselab/scribe/provider"
	"github.com/skillsenselab/scribe/transcription"
)

const (
	// ProviderName is the registered name for the sidecar provider.
	ProviderName = "sidecar"

	defaultBinary = "api-sidecar"

	tokenEnvVar = "HF_TOKEN"
)

// Config holds configuration for the sidecar transcription provider.
type Config struct {
	// Binary is the sidecar executable path or name (resolved via PATH).
	Binary string `yaml:"binary" mapstructure:"binary"`
	// Token is the bearer token injected as HF_TOKEN into the child
	// environment. Empty means the sidecar runs without a token.
	Token string `yaml:"-" mapstructure:"-"`
}

// ApplyDefaults fills in zero-valued fields with sensible defaults.
func (c *Config) ApplyDefaults() {
	if c.Binary == "" {
		c.Binary = defaultBinary
	}
}

// Provider implements transcription.Provider using an external process.
type Provider struct {
	cfg Config
	log *logger.Logger
}

// NewProvider creates a new sidecar transcription provider.
func NewProvider(cfg Config) *Provider {
	cfg.ApplyDefaults()
	return &Provider{
		cfg: cfg,
		log: logger.WithComponent("sidecar"),
	}
}

// Factory returns a provider.Factory that creates sidecar Provider instances
// from a generic config map.
func Factory() provider.Factory[transcription.Provider] {
	return func(cfg map[string]any) (transcription.Provider, error) {
		sc := Config{}
		if v, ok := cfg["binary"].(string); ok {
			sc.Binary = v
		}
		if v, ok := cfg["token"].(string); ok {
			sc.Token = v
		}
		return NewProvider(sc), nil
	}
}

// Name returns the provider name.
func (p *Provider) Name() string { return ProviderName }

// IsAvailable checks if the sidecar executable can be resolved.
func (p *Provider) IsAvailable(_ context.Context) bool {
	_, err := exec.LookPath(p.cfg.Binary)
	return err == nil
}

// Transcribe spawns the sidecar with the audio path as its sole argument and
// blocks until it exits. The path is not validated here: a missing or
// unreadable file is the sidecar's error to report. There is no retry and no
// timeout beyond the caller's context.
func (p *Provider) Transcribe(ctx context.Context, req transcription.Request) (json.RawMessage, error) {
	p.log.Info("invoking transcription", logger.Fields(
		"file_path", req.AudioPath,
		"token_present", p.cfg.Token != "",
	))

	cmd := process.Command{
		Binary: p.cfg.Binary,
		Args:   []string{req.AudioPath},
	}
	if p.cfg.Token != "" {
		cmd.Env = []string{tokenEnvVar + "=" + p.cfg.Token}
	}

	result, runErr := process.Run(ctx, cmd)
	if result == nil {
		return nil, fmt.Errorf("sidecar: spawn %s: %w", p.cfg.Binary, runErr)
	}

	if runErr != nil {
		stderr := string(bytes.TrimSpace(result.Stderr))
		if stderr == "" {
			stderr = runErr.Error()
		}
		p.log.Error("sidecar failed", logger.Fields(
			"exit_code", result.ExitCode,
			"stderr", stderr,
		))
		return nil, fmt.Errorf("sidecar failed: %s", stderr)
	}

	stdout := bytes.TrimSpace(result.Stdout)

	var raw json.RawMessage
	if err := json.Unmarshal(stdout, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse sidecar output: %v. Output was: %s", err, stdout)
	}

	p.log.Debug("transcription complete", logger.Fields(
		"duration_ms", result.Duration.Milliseconds(),
		"bytes", len(raw),
	))
	return raw, nil
}

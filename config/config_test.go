package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestApplyDefaults(t *testing.T) {
	var cfg Config
	cfg.ApplyDefaults()

	if cfg.Base.Name != "scribed" {
		t.Errorf("expected base name scribed, got %q", cfg.Base.Name)
	}
	if cfg.Base.Environment != "development" || !cfg.Base.Debug {
		t.Errorf("expected development defaults, got %+v", cfg.Base)
	}
	if cfg.Transcription.Provider != "sidecar" {
		t.Errorf("expected sidecar provider, got %q", cfg.Transcription.Provider)
	}
	if cfg.LLM.Provider != "ollama" {
		t.Errorf("expected ollama provider, got %q", cfg.LLM.Provider)
	}
	if cfg.LLM.Ollama.BaseURL != "http://localhost:11434" {
		t.Errorf("unexpected ollama base url %q", cfg.LLM.Ollama.BaseURL)
	}
	if cfg.Server.Port != 8585 {
		t.Errorf("unexpected server port %d", cfg.Server.Port)
	}
}

func TestValidateRejectsBadEnvironment(t *testing.T) {
	var cfg Config
	cfg.ApplyDefaults()
	cfg.Base.Environment = "qa"

	if err := cfg.Validate(); err == nil {
		t.Fatal("expected validation error for unknown environment")
	}
}

func TestLoadFromYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yml")
	content := `
base:
  name: scribed-test
llm:
  ollama:
    model: llama3
server:
  port: 9999
`
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	var cfg Config
	if err := Load(path, &cfg); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Base.Name != "scribed-test" {
		t.Errorf("expected name from file, got %q", cfg.Base.Name)
	}
	if cfg.LLM.Ollama.Model != "llama3" {
		t.Errorf("expected model from file, got %q", cfg.LLM.Ollama.Model)
	}
	if cfg.Server.Port != 9999 {
		t.Errorf("expected port from file, got %d", cfg.Server.Port)
	}
	// Untouched sections still get defaults.
	if cfg.Transcription.Sidecar.Binary == "" {
		t.Error("sidecar binary default not applied")
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("SCRIBE_SERVER_PORT", "9999")
	t.Setenv("SCRIBE_LLM_OLLAMA_MODEL", "llama3")
	t.Setenv("SCRIBE_LLM_OLLAMA_BASE_URL", "http://localhost:11435")

	var cfg Config
	if err := Load("", &cfg); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Server.Port != 9999 {
		t.Errorf("SCRIBE_SERVER_PORT ignored: got port %d", cfg.Server.Port)
	}
	if cfg.LLM.Ollama.Model != "llama3" {
		t.Errorf("SCRIBE_LLM_OLLAMA_MODEL ignored: got model %q", cfg.LLM.Ollama.Model)
	}
	if cfg.LLM.Ollama.BaseURL != "http://localhost:11435" {
		t.Errorf("SCRIBE_LLM_OLLAMA_BASE_URL ignored: got %q", cfg.LLM.Ollama.BaseURL)
	}
}

func TestLoadEnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yml")
	if err := os.WriteFile(path, []byte("server:\n  port: 7000\n"), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("SCRIBE_SERVER_PORT", "9999")

	var cfg Config
	if err := Load(path, &cfg); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Server.Port != 9999 {
		t.Errorf("env did not win over file: got port %d", cfg.Server.Port)
	}
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	var cfg Config
	if err := Load("", &cfg); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Base.Name != "scribed" {
		t.Errorf("defaults not applied, got %q", cfg.Base.Name)
	}
}

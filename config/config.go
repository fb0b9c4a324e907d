// Package config loads and validates the scribe daemon configuration from a
// YAML file, a .env file, and the process environment, and resolves the
// HF_TOKEN credential for the transcription sidecar.
package config

import (
	"fmt"

	"github.com/skillsenselab/scribe/llm/ollama"
	"github.com/skillsenselab/scribe/logger"
	"github.com/skillsenselab/scribe/observability"
	"github.com/skillsenselab/scribe/server"
	"github.com/skillsenselab/scribe/storage"
	"github.com/skillsenselab/scribe/transcription/sidecar"
)

// Config is the root configuration for the daemon.
type Config struct {
	Base          BaseConfig           `yaml:"base" mapstructure:"base"`
	Logging       logger.Config        `yaml:"logging" mapstructure:"logging"`
	Server        server.Config        `yaml:"server" mapstructure:"server"`
	Transcription TranscriptionConfig  `yaml:"transcription" mapstructure:"transcription"`
	LLM           LLMConfig            `yaml:"llm" mapstructure:"llm"`
	Storage       storage.Config       `yaml:"storage" mapstructure:"storage"`
	Observability observability.Config `yaml:"observability" mapstructure:"observability"`
}

// BaseConfig contains service identity fields.
type BaseConfig struct {
	Name        string `yaml:"name" mapstructure:"name"`
	Environment string `yaml:"environment" mapstructure:"environment"`
	Debug       bool   `yaml:"debug" mapstructure:"debug"`
}

// TranscriptionConfig selects and configures the transcription backend.
type TranscriptionConfig struct {
	// Provider names the registered transcription backend.
	Provider string         `yaml:"provider" mapstructure:"provider"`
	Sidecar  sidecar.Config `yaml:"sidecar" mapstructure:"sidecar"`
}

// LLMConfig selects and configures the generative-model backend.
type LLMConfig struct {
	// Provider names the registered llm backend.
	Provider string        `yaml:"provider" mapstructure:"provider"`
	Ollama   ollama.Config `yaml:"ollama" mapstructure:"ollama"`
}

// ApplyDefaults applies defaults to every section.
func (c *Config) ApplyDefaults() {
	if c.Base.Name == "" {
		c.Base.Name = "scribed"
	}
	if c.Base.Environment == "" {
		c.Base.Environment = "development"
	}
	if c.Base.Environment == "development" {
		c.Base.Debug = true
	}
	if c.Transcription.Provider == "" {
		c.Transcription.Provider = sidecar.ProviderName
	}
	if c.LLM.Provider == "" {
		c.LLM.Provider = ollama.ProviderName
	}
	c.Logging.ApplyDefaults()
	c.Server.ApplyDefaults()
	c.Transcription.Sidecar.ApplyDefaults()
	c.LLM.Ollama.ApplyDefaults()
	c.Storage.ApplyDefaults()
	c.Observability.ApplyDefaults()
}

// Validate validates the whole configuration.
func (c *Config) Validate() error {
	validEnvs := []string{"development", "staging", "production"}
	ok := false
	for _, v := range validEnvs {
		if c.Base.Environment == v {
			ok = true
			break
		}
	}
	if !ok {
		return fmt.Errorf("base.environment must be one of %v (got: %s)", validEnvs, c.Base.Environment)
	}
	if err := c.Logging.Validate(); err != nil {
		return err
	}
	return c.Server.Validate()
}

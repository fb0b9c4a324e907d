package server

import (
	"fmt"

	"github.com/skillsenselab/scribe/server/middleware"
)

// Config holds HTTP server configuration.
type Config struct {
	// Host is the bind address. The daemon serves one local front-end, so it
	// binds loopback by default.
	Host string `yaml:"host" mapstructure:"host"`
	// Port is the listen port.
	Port int `yaml:"port" mapstructure:"port"`
	// ReadTimeout/WriteTimeout in seconds. Both default to 0 (unbounded):
	// uploads have no size limit and transcription calls have no deadline.
	ReadTimeout  int `yaml:"read_timeout" mapstructure:"read_timeout"`
	WriteTimeout int `yaml:"write_timeout" mapstructure:"write_timeout"`
	// IdleTimeout in seconds for keep-alive connections.
	IdleTimeout int `yaml:"idle_timeout" mapstructure:"idle_timeout"`
	// CORS configures allowed origins for the webview front-end.
	CORS middleware.CORSConfig `yaml:"cors" mapstructure:"cors"`
}

// ApplyDefaults applies default values to server configuration.
func (c *Config) ApplyDefaults() {
	if c.Host == "" {
		c.Host = "127.0.0.1"
	}
	if c.Port == 0 {
		c.Port = 8585
	}
	if c.IdleTimeout == 0 {
		c.IdleTimeout = 120
	}
	if len(c.CORS.AllowedOrigins) == 0 {
		// The packaged webview and the dev server.
		c.CORS.AllowedOrigins = []string{"tauri://localhost", "http://localhost:1420"}
	}
	if len(c.CORS.AllowedMethods) == 0 {
		c.CORS.AllowedMethods = []string{"GET", "POST", "DELETE", "OPTIONS"}
	}
	if len(c.CORS.AllowedHeaders) == 0 {
		c.CORS.AllowedHeaders = []string{"Content-Type", "X-Request-Id"}
	}
}

// Validate validates server configuration.
func (c *Config) Validate() error {
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("server.port must be between 1 and 65535 (got: %d)", c.Port)
	}
	return nil
}

package logger

import (
	"testing"

	"github.com/rs/zerolog"
)

func TestNewAppliesLevel(t *testing.T) {
	log := New(&Config{Level: "warn", Format: "json"}, "test")
	if got := log.GetLogger().GetLevel(); got != zerolog.WarnLevel {
		t.Errorf("expected warn level on instance, got %v", got)
	}
}

func TestNewFromEnv(t *testing.T) {
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_FORMAT", "json")

	log := NewFromEnv("test")
	if got := log.GetLogger().GetLevel(); got != zerolog.DebugLevel {
		t.Errorf("LOG_LEVEL ignored: got %v", got)
	}
}

func TestNewFromEnvDefaults(t *testing.T) {
	t.Setenv("LOG_LEVEL", "")

	log := NewFromEnv("test")
	if got := log.GetLogger().GetLevel(); got != zerolog.InfoLevel {
		t.Errorf("expected info default, got %v", got)
	}
}

func TestWithComponentKeepsService(t *testing.T) {
	log := NewDefault("svc").WithComponent("storage")
	if log.service != "svc" {
		t.Errorf("service lost on WithComponent: %q", log.service)
	}
}

func TestFields(t *testing.T) {
	m := Fields("a", 1, "b", "two")
	if m["a"] != 1 || m["b"] != "two" {
		t.Errorf("unexpected fields map: %v", m)
	}
}

func TestErrorFields(t *testing.T) {
	m := ErrorFields("save", errBoom{})
	if m[FieldOperation] != "save" || m[FieldError] != "boom" {
		t.Errorf("unexpected error fields: %v", m)
	}
}

type errBoom struct{}

func (errBoom) Error() string { return "boom" }

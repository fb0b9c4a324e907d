package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
	"testing"
)

func TestExternalServiceError(t *testing.T) {
	err := ExternalService("sidecar", "sidecar failed: boom")

	if err.HTTPStatus != http.StatusBadGateway {
		t.Errorf("expected 502, got %d", err.HTTPStatus)
	}
	if !err.Retryable {
		t.Error("external service errors should be retryable")
	}
	if err.Message != "sidecar failed: boom" {
		t.Errorf("message not preserved verbatim: %q", err.Message)
	}
	if err.Details["service"] != "sidecar" {
		t.Errorf("service detail missing: %v", err.Details)
	}
}

func TestConfigError(t *testing.T) {
	cause := stderrors.New("read config file: permission denied")
	err := Config("load configuration", cause)

	if err.Code != ErrCodeConfig {
		t.Errorf("unexpected code %s", err.Code)
	}
	if err.HTTPStatus != http.StatusInternalServerError {
		t.Errorf("expected 500, got %d", err.HTTPStatus)
	}
	if err.Retryable {
		t.Error("config errors are not retryable")
	}
	if !stderrors.Is(err, cause) {
		t.Error("cause not unwrappable")
	}
}

func TestAsAppError(t *testing.T) {
	inner := Filesystem("create recording file", stderrors.New("disk full"))
	wrapped := fmt.Errorf("save: %w", inner)

	appErr, ok := AsAppError(wrapped)
	if !ok || appErr.Code != ErrCodeFilesystem {
		t.Fatalf("AppError not recovered through wrapping: %v", wrapped)
	}

	if _, ok := AsAppError(stderrors.New("plain")); ok {
		t.Error("plain error misidentified as AppError")
	}
}

func TestToResponse(t *testing.T) {
	resp := NotFound("recording", "a.webm").ToResponse()
	if resp.Error.Code != ErrCodeNotFound {
		t.Errorf("unexpected code %s", resp.Error.Code)
	}
	if resp.Error.Details["id"] != "a.webm" {
		t.Errorf("id detail missing: %v", resp.Error.Details)
	}
}

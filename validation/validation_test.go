package validation

import (
	"strings"
	"testing"

	"github.com/skillsenselab/scribe/errors"
)

type sampleRequest struct {
	FilePath string `json:"file_path" validate:"required"`
	Note     string `json:"note" validate:"max=8"`
}

func TestValidateOK(t *testing.T) {
	if err := Validate(sampleRequest{FilePath: "/tmp/a.webm"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidateRequired(t *testing.T) {
	err := Validate(sampleRequest{})
	if err == nil {
		t.Fatal("expected error")
	}
	appErr, ok := errors.AsAppError(err)
	if !ok {
		t.Fatalf("expected AppError, got %T", err)
	}
	if appErr.Code != errors.ErrCodeInvalidInput {
		t.Errorf("unexpected code %s", appErr.Code)
	}
	if !strings.Contains(appErr.Message, "file_path: is required") {
		t.Errorf("unexpected message %q", appErr.Message)
	}
}

func TestValidateMax(t *testing.T) {
	err := Validate(sampleRequest{FilePath: "x", Note: "way too long note"})
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "note") {
		t.Errorf("field name not reported: %v", err)
	}
}

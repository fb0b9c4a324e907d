package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeCredFile(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, ".credentials")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write credentials file: %v", err)
	}
	return path
}

func TestEnvSourceWins(t *testing.T) {
	t.Setenv("HF_TOKEN", "from-env")

	// A file source that must not be consulted.
	consulted := false
	fileSrc := TokenSource(func() (string, bool) {
		consulted = true
		return "from-file", true
	})

	got, ok := ResolveToken(EnvSource("HF_TOKEN"), fileSrc)
	if !ok || got != "from-env" {
		t.Fatalf("expected env token, got %q ok=%v", got, ok)
	}
	if consulted {
		t.Error("file source consulted despite env token")
	}
}

func TestFileSourceQuotedAndUnquoted(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{"quoted", `HF_TOKEN="abc"`, "abc"},
		{"unquoted", `HF_TOKEN=abc`, "abc"},
		{"other lines ignored", "OTHER=x\nHF_TOKEN=\"abc\"\n", "abc"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			path := writeCredFile(t, t.TempDir(), tc.content)
			got, ok := FileSource(path, "HF_TOKEN")()
			if !ok || got != tc.want {
				t.Fatalf("expected %q, got %q ok=%v", tc.want, got, ok)
			}
		})
	}
}

func TestFileSourceEmptyValueSkipped(t *testing.T) {
	empty := writeCredFile(t, t.TempDir(), `HF_TOKEN=""`)
	full := writeCredFile(t, t.TempDir(), `HF_TOKEN="second"`)

	got, ok := ResolveToken(FileSource(empty, "HF_TOKEN"), FileSource(full, "HF_TOKEN"))
	if !ok || got != "second" {
		t.Fatalf("expected fallback to second file, got %q ok=%v", got, ok)
	}
}

func TestResolveTokenAbsenceIsSilent(t *testing.T) {
	got, ok := ResolveToken(
		FileSource(filepath.Join(t.TempDir(), "missing"), "HF_TOKEN"),
	)
	if ok || got != "" {
		t.Fatalf("expected no token, got %q ok=%v", got, ok)
	}
}

package storage

import (
	"fmt"
	"os"
	"path/filepath"
)

// appDirName is the per-application directory created under the platform's
// per-user application-data root.
const appDirName = "scribe"

// AppDataDir resolves the per-user application-data directory for the app.
// Resolution is delegated to the hosting environment (XDG on Linux,
// ~/Library/Application Support on macOS, %AppData% on Windows). A failure
// here is fatal for the caller: there is no fallback location.
func AppDataDir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve app data directory: %w", err)
	}
	return filepath.Join(base, appDirName), nil
}

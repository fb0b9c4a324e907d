// Package storage persists recorded audio payloads under the per-user
// application-data directory.
//
// Writes are plain create-then-write: not atomic, no rollback on failure,
// and concurrent saves to the same filename race with last-writer-wins
// semantics. Filenames are trusted as given by the front-end.
package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/skillsenselab/scribe/logger"
)

// DefaultSubdir is the fixed-name subdirectory recordings are written to.
const DefaultSubdir = "recordings"

// Config holds recordings storage configuration.
type Config struct {
	// BaseDir overrides the platform application-data directory. Empty means
	// resolve it from the hosting environment at construction time.
	BaseDir string `yaml:"base_dir" mapstructure:"base_dir"`
	// Subdir is the subdirectory recordings are stored in.
	Subdir string `yaml:"subdir" mapstructure:"subdir"`
}

// ApplyDefaults fills in zero-valued fields with sensible defaults.
func (c *Config) ApplyDefaults() {
	if c.Subdir == "" {
		c.Subdir = DefaultSubdir
	}
}

// FileInfo contains metadata about a stored recording.
type FileInfo struct {
	Name         string    `json:"name"`
	Path         string    `json:"path"`
	Size         int64     `json:"size"`
	LastModified time.Time `json:"last_modified"`
}

// Recordings stores audio payloads on the local filesystem.
type Recordings struct {
	dir string
	log *logger.Logger
}

// NewRecordings creates a recordings store rooted at cfg.BaseDir (or the
// platform application-data directory when unset). It fails immediately if
// the base directory cannot be resolved; the directory itself is created
// lazily before each write.
func NewRecordings(cfg Config) (*Recordings, error) {
	cfg.ApplyDefaults()

	base := cfg.BaseDir
	if base == "" {
		var err error
		base, err = AppDataDir()
		if err != nil {
			return nil, err
		}
	}

	abs, err := filepath.Abs(filepath.Join(base, cfg.Subdir))
	if err != nil {
		return nil, fmt.Errorf("resolve recordings directory: %w", err)
	}

	return &Recordings{
		dir: abs,
		log: logger.WithComponent("storage"),
	}, nil
}

// Dir returns the absolute recordings directory path.
func (r *Recordings) Dir() string { return r.dir }

// Save writes payload to <dir>/<filename>, creating the directory (and any
// missing parents) first, and returns the absolute file path. An existing
// file with the same name is truncated and replaced.
func (r *Recordings) Save(filename string, payload []byte) (string, error) {
	if err := os.MkdirAll(r.dir, 0o750); err != nil {
		return "", fmt.Errorf("create recordings directory: %w", err)
	}

	path := filepath.Join(r.dir, filename)
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create recording file: %w", err)
	}
	defer f.Close() //nolint:errcheck // write errors are caught below

	if _, err := f.Write(payload); err != nil {
		return "", fmt.Errorf("write recording file: %w", err)
	}

	r.log.Info("recording saved", logger.Fields(
		"path", path,
		"bytes", len(payload),
	))
	return path, nil
}

// Open reads back a stored recording.
func (r *Recordings) Open(filename string) ([]byte, error) {
	data, err := os.ReadFile(filepath.Join(r.dir, filename))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("recording not found: %s", filename)
		}
		return nil, fmt.Errorf("read recording file: %w", err)
	}
	return data, nil
}

// Exists checks whether a recording exists.
func (r *Recordings) Exists(filename string) (bool, error) {
	_, err := os.Stat(filepath.Join(r.dir, filename))
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, fmt.Errorf("stat recording file: %w", err)
	}
	return true, nil
}

// Delete removes a recording. Returns nil if it does not exist.
func (r *Recordings) Delete(filename string) error {
	if err := os.Remove(filepath.Join(r.dir, filename)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("delete recording file: %w", err)
	}
	return nil
}

// List returns metadata for all stored recordings, sorted by name. A missing
// recordings directory is an empty list, not an error.
func (r *Recordings) List() ([]FileInfo, error) {
	entries, err := os.ReadDir(r.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return []FileInfo{}, nil
		}
		return nil, fmt.Errorf("list recordings directory: %w", err)
	}

	files := make([]FileInfo, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		info, err := e.Info()
		if err != nil {
			continue
		}
		files = append(files, FileInfo{
			Name:         e.Name(),
			Path:         filepath.Join(r.dir, e.Name()),
			Size:         info.Size(),
			LastModified: info.ModTime(),
		})
	}

	sort.Slice(files, func(i, j int) bool { return files[i].Name < files[j].Name })
	return files, nil
}

// Package highscore persists the best score between sessions as a small JSON
// document.
package highscore

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// ErrMalformed is returned when the high score file exists but cannot be
// understood.
var ErrMalformed = errors.New("malformed high score file")

// DefaultPath is the file used when none is configured.
const DefaultPath = "highscore.json"

type record struct {
	HighScore *int `json:"high_score"`
}

// FileStore reads and writes the high score at a fixed path.
type FileStore struct {
	path string
}

// NewFileStore returns a store backed by path. The file is not touched until
// Load or Save.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Path returns the backing file path.
func (s *FileStore) Path() string {
	return s.path
}

// Load returns the stored high score. A missing file is a fresh install and
// yields 0 without error.
func (s *FileStore) Load() (int, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("%w: %s: %v", ErrMalformed, s.path, err)
	}

	var rec record
	if err := json.Unmarshal(data, &rec); err != nil {
		return 0, fmt.Errorf("%w: %s: %v", ErrMalformed, s.path, err)
	}
	if rec.HighScore == nil {
		return 0, fmt.Errorf("%w: %s: missing high_score", ErrMalformed, s.path)
	}
	if *rec.HighScore < 0 {
		return 0, fmt.Errorf("%w: %s: negative high score %d", ErrMalformed, s.path, *rec.HighScore)
	}
	return *rec.HighScore, nil
}

// Save replaces the stored high score. The document is written to a temporary
// file next to the target and renamed over it, so readers never see a
// partial write.
func (s *FileStore) Save(score int) error {
	if score < 0 {
		return fmt.Errorf("save high score: negative score %d", score)
	}

	data, err := json.Marshal(record{HighScore: &score})
	if err != nil {
		return fmt.Errorf("save high score: %w", err)
	}

	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(s.path)+".*")
	if err != nil {
		return fmt.Errorf("save high score: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(append(data, '\n')); err != nil {
		tmp.Close()
		return fmt.Errorf("save high score: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("save high score: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("save high score: %w", err)
	}
	return nil
}

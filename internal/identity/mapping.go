package identity

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// Entry is a display name and email for a platform username.
type Entry struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Mapping overrides profile lookups for known usernames. It is loaded
// once per run and read-only afterwards.
type Mapping map[string]Entry

// LoadMapping loads a username mapping from a JSON file. A missing file
// yields an empty mapping; a malformed file is a fatal error.
func LoadMapping(path string) (Mapping, error) {
	cleanPath := filepath.Clean(path)
	data, err := os.ReadFile(cleanPath) // #nosec G304
	if errors.Is(err, fs.ErrNotExist) {
		return Mapping{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read user mapping: %w", err)
	}

	var mapping Mapping
	if err := json.Unmarshal(data, &mapping); err != nil {
		return nil, fmt.Errorf("failed to parse user mapping %s: %w", path, err)
	}

	return mapping, nil
}

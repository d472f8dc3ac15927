package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Settings holds the optional run settings read from a local YAML file.
// The zero configuration matches the defaults the tool was built around:
// merge into main, fetch from origin, wrap at 72 columns, read identity
// overrides from .github.json.
type Settings struct {
	MainBranch  string `yaml:"mainBranch"`
	Remote      string `yaml:"remote"`
	WrapWidth   int    `yaml:"wrapWidth"`
	MappingFile string `yaml:"mappingFile"`
}

// DefaultSettings returns the built-in defaults.
func DefaultSettings() Settings {
	return Settings{
		MainBranch:  "main",
		Remote:      "origin",
		WrapWidth:   72,
		MappingFile: ".github.json",
	}
}

// LoadSettings loads settings from a YAML file, applying defaults for
// absent fields. A missing file yields the defaults; a malformed file
// is a fatal error.
func LoadSettings(path string) (Settings, error) {
	settings := DefaultSettings()

	cleanPath := filepath.Clean(path)
	data, err := os.ReadFile(cleanPath) // #nosec G304
	if errors.Is(err, fs.ErrNotExist) {
		return settings, nil
	}
	if err != nil {
		return settings, fmt.Errorf("failed to read settings file: %w", err)
	}

	if err := yaml.Unmarshal(data, &settings); err != nil {
		return settings, fmt.Errorf("failed to parse settings file %s: %w", path, err)
	}

	return settings, nil
}

package ministry

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Loader handles loading and parsing of the ministries.yaml catalog file.
type Loader struct {
	filePath string
}

// NewLoader creates a loader for one catalog file.
func NewLoader(filePath string) *Loader {
	return &Loader{
		filePath: filePath,
	}
}

// Load reads and parses the catalog file. Units without a name are rejected
// rather than silently dropped, so a malformed file is noticed on reload.
func (l *Loader) Load() ([]Unit, error) {
	data, err := os.ReadFile(l.filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read ministries file: %w", err)
	}

	var file File
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse ministries yaml: %w", err)
	}

	for i, unit := range file.Units {
		if unit.Name == "" {
			return nil, fmt.Errorf("ministries yaml: unit %d has no name", i)
		}
	}

	return file.Units, nil
}

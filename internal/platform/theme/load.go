package theme

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// LoadFile reads role overrides from a YAML or TOML file and merges them over
// the default palette.
func LoadFile(path string) (Theme, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Theme{}, fmt.Errorf("read theme file: %w", err)
	}
	overrides, err := decodeOverrides(filepath.Ext(path), data)
	if err != nil {
		return Theme{}, fmt.Errorf("decode theme file %s: %w", path, err)
	}
	merged, err := Default().Merge(overrides)
	if err != nil {
		return Theme{}, fmt.Errorf("apply theme file %s: %w", path, err)
	}
	return merged, nil
}

func decodeOverrides(ext string, data []byte) (map[string]string, error) {
	overrides := map[string]string{}
	switch strings.ToLower(ext) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &overrides); err != nil {
			return nil, err
		}
	case ".toml":
		if err := toml.Unmarshal(data, &overrides); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("unsupported extension %q", ext)
	}
	return overrides, nil
}

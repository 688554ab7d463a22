package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Presets map short names to template strings so naming schemes can be
// shelved and recalled with --preset instead of retyping the template.
//
// The presets file is plain YAML:
//
//	plain:  "{series} {season}x{episode}"
//	titled: "{series} {season}x{episode} {title}"
//	scene:  "{series}.S{season}E{episode}"
type Presets map[string]string

// DefaultPresetsPath returns the conventional presets file location,
// ~/.config/tv-renamer/templates.yaml.
func DefaultPresetsPath() string {
	homeDir, _ := os.UserHomeDir()
	return filepath.Join(homeDir, ".config", "tv-renamer", "templates.yaml")
}

// LoadPresets reads template presets from a YAML file. A missing file is
// not an error; it yields an empty preset map.
func LoadPresets(path string) (Presets, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Presets{}, nil
		}
		return nil, err
	}

	var presets Presets
	if err := yaml.Unmarshal(data, &presets); err != nil {
		return nil, fmt.Errorf("failed to parse presets file %s: %w", path, err)
	}
	return presets, nil
}

// Lookup returns the template string stored under name.
func (p Presets) Lookup(name string) (string, error) {
	tmpl, ok := p[name]
	if !ok {
		return "", fmt.Errorf("unknown template preset %q", name)
	}
	return tmpl, nil
}

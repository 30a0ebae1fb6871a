package galaxy

import (
	"fmt"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"
)

// Preset is a named galaxy size offered at new-game time. Presets only
// pick the requested size; they never touch the deterministic
// generation tables.
type Preset struct {
	Key     string `yaml:"key" json:"key"`
	Name    string `yaml:"name" json:"name"`
	Systems int    `yaml:"systems" json:"systems"`
}

type presetFile struct {
	Presets []Preset `yaml:"presets"`
}

func defaultPresets() []Preset {
	return []Preset{
		{Key: "small", Name: "Compact Cluster", Systems: 30},
		{Key: "medium", Name: "Spiral Arm", Systems: 60},
		{Key: "large", Name: "Grand Spiral", Systems: 120},
	}
}

// LoadPresets reads galaxy presets from a YAML file, falling back to
// the built-in set when the file does not exist.
func LoadPresets(path string, logger *slog.Logger) ([]Preset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			if logger != nil {
				logger.Debug("No preset file found, using built-in presets", "path", path)
			}
			return defaultPresets(), nil
		}
		return nil, fmt.Errorf("failed to read preset file: %w", err)
	}

	var file presetFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse preset file: %w", err)
	}

	if len(file.Presets) == 0 {
		return defaultPresets(), nil
	}

	for _, p := range file.Presets {
		if p.Key == "" || p.Systems <= 0 {
			return nil, fmt.Errorf("invalid preset %q: systems must be positive", p.Key)
		}
	}

	if logger != nil {
		logger.Info("Galaxy presets loaded", "path", path, "count", len(file.Presets))
	}
	return file.Presets, nil
}

package scaffold

import (
	"fmt"
	"os"

	"go.yaml.in/yaml/v3"
)

// Config holds the user-supplied parameters of a package.
type Config struct {
	PackageName    string `yaml:"package_name"` // must contain names.Marker, e.g. "com.acme.pkg-[]"
	DisplayName    string `yaml:"display_name"`
	Description    string `yaml:"description"`
	Version        string `yaml:"version"`
	SampleOne      string `yaml:"sample_one"`
	SampleTwo      string `yaml:"sample_two"`
	IncludeRuntime bool   `yaml:"include_runtime"`
	IncludeEditor  bool   `yaml:"include_editor"`
	IncludeTests   bool   `yaml:"include_tests"`
}

// DefaultConfig returns the starting values offered by the create form.
func DefaultConfig() Config {
	return Config{
		PackageName:    "com.soggyinkgames.package-[]",
		DisplayName:    "Soggy Package",
		Description:    "A custom Soggy Ink Games package.",
		Version:        "1.0.0",
		SampleOne:      "SoggySampleOne",
		SampleTwo:      "SoggySampleTwo",
		IncludeRuntime: true,
		IncludeEditor:  true,
		IncludeTests:   false,
	}
}

// LoadPreset reads a YAML preset. Keys absent from the file keep their
// DefaultConfig values.
func LoadPreset(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("reading preset %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing preset %s: %w", path, err)
	}
	return cfg, nil
}

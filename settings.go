package main

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// settings holds the boundary-layer configuration: window shape, startup
// view toggles, and the telemetry destination. Simulation resolution and
// population are compile-time constants and deliberately not configurable.
type settings struct {
	Screen    screenSettings    `yaml:"screen"`
	View      viewSettings      `yaml:"view"`
	Telemetry telemetrySettings `yaml:"telemetry"`
}

// screenSettings holds display settings.
type screenSettings struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
}

// viewSettings holds the startup visibility of each renderable layer.
type viewSettings struct {
	Particles bool `yaml:"particles"`
	Field     bool `yaml:"field"`
	Brush     bool `yaml:"brush"`
}

// telemetrySettings holds the frame-stats CSV destination; empty disables it.
type telemetrySettings struct {
	Path string `yaml:"path"`
}

// loadSettings parses the embedded defaults and, when path is non-empty,
// layers the user's YAML file on top.
func loadSettings(path string) (*settings, error) {
	s := &settings{}
	if err := yaml.Unmarshal(defaultsYAML, s); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading settings file: %w", err)
		}
		if err := yaml.Unmarshal(data, s); err != nil {
			return nil, fmt.Errorf("parsing %s: %w", path, err)
		}
	}
	if s.Screen.Width <= 0 || s.Screen.Height <= 0 {
		return nil, fmt.Errorf("screen dimensions must be positive, got %dx%d", s.Screen.Width, s.Screen.Height)
	}
	return s, nil
}

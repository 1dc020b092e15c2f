// internal/config/settings.go
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Settings holds the file-overridable part of the configuration. Everything not
// listed here stays a compile-time constant.
type Settings struct {
	Seed             int64   `yaml:"seed"`
	DataDir          string  `yaml:"data_dir"`
	ScreenWidth      int     `yaml:"screen_width"`
	ScreenHeight     int     `yaml:"screen_height"`
	ForwardConeDeg   float64 `yaml:"forward_cone_deg"`
	EjectionDuration float64 `yaml:"ejection_duration"`
}

// DefaultSettings returns the settings used when no file is present.
func DefaultSettings() Settings {
	return Settings{
		Seed:             0,
		DataDir:          "data",
		ScreenWidth:      ScreenWidth,
		ScreenHeight:     ScreenHeight,
		ForwardConeDeg:   ForwardConeDeg,
		EjectionDuration: EjectionDuration,
	}
}

// LoadSettings reads a YAML settings file, filling missing fields with defaults.
// A missing file is not an error; defaults are returned.
func LoadSettings(path string) (Settings, error) {
	s := DefaultSettings()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return s, nil
		}
		return s, fmt.Errorf("failed to read settings file: %w", err)
	}
	if err := yaml.Unmarshal(data, &s); err != nil {
		return s, fmt.Errorf("failed to unmarshal settings: %w", err)
	}
	if s.ScreenWidth <= 0 {
		s.ScreenWidth = ScreenWidth
	}
	if s.ScreenHeight <= 0 {
		s.ScreenHeight = ScreenHeight
	}
	if s.ForwardConeDeg <= 0 {
		s.ForwardConeDeg = ForwardConeDeg
	}
	if s.EjectionDuration <= 0 {
		s.EjectionDuration = EjectionDuration
	}
	return s, nil
}

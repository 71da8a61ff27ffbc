package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const settingsFileName = "settings.yaml"

// Settings defines user-tunable application options.
type Settings struct {
	ToneFrequency float64
	ToneVolume    float64
	StartHidden   bool
	LogLevel      string
}

// DefaultSettings returns the settings used when no file exists. The tone
// defaults match the alert sound the app has always shipped with.
func DefaultSettings() Settings {
	return Settings{
		ToneFrequency: 880,
		ToneVolume:    0.5,
		StartHidden:   false,
		LogLevel:      "info",
	}
}

type yamlSettings struct {
	ToneFrequencyHz float64 `yaml:"tone_frequency_hz"`
	ToneVolume      float64 `yaml:"tone_volume"`
	StartHidden     bool    `yaml:"start_hidden"`
	LogLevel        string  `yaml:"log_level"`
}

// LoadSettings reads user preferences from YAML inside baseDir.
// If the file does not exist, default settings are returned.
func LoadSettings(baseDir string) (Settings, error) {
	settings := DefaultSettings()

	rawData, err := os.ReadFile(filepath.Join(baseDir, settingsFileName))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return settings, nil
		}
		return settings, fmt.Errorf("read settings file: %w", err)
	}

	var fileData yamlSettings
	if err := yaml.Unmarshal(rawData, &fileData); err != nil {
		return settings, fmt.Errorf("parse settings yaml: %w", err)
	}

	applyYamlSettings(&settings, fileData)
	return settings, nil
}

// SaveSettings writes user preferences to YAML inside baseDir.
func SaveSettings(baseDir string, settings Settings) error {
	if err := os.MkdirAll(baseDir, 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	fileData := yamlSettings{
		ToneFrequencyHz: settings.ToneFrequency,
		ToneVolume:      settings.ToneVolume,
		StartHidden:     settings.StartHidden,
		LogLevel:        settings.LogLevel,
	}

	serialized, err := yaml.Marshal(fileData)
	if err != nil {
		return fmt.Errorf("marshal settings yaml: %w", err)
	}

	if err := os.WriteFile(filepath.Join(baseDir, settingsFileName), serialized, 0o644); err != nil {
		return fmt.Errorf("write settings file: %w", err)
	}

	return nil
}

func applyYamlSettings(settings *Settings, fileData yamlSettings) {
	if fileData.ToneFrequencyHz >= 200 && fileData.ToneFrequencyHz <= 4000 {
		settings.ToneFrequency = fileData.ToneFrequencyHz
	}
	if fileData.ToneVolume > 0 && fileData.ToneVolume <= 1 {
		settings.ToneVolume = fileData.ToneVolume
	}
	if fileData.LogLevel != "" {
		settings.LogLevel = fileData.LogLevel
	}

	settings.StartHidden = fileData.StartHidden
}

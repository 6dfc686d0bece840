package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"pomotimer/internal/core/model"
)

const (
	settingsFileName = "settings.yaml"
	envPrefix        = "POMOTIMER"

	minMinutes = 1
	maxMinutes = 180
	minVolume  = -5.0
	maxVolume  = 2.0
)

const (
	keyWorkMinutes  = "work_minutes"
	keyBreakMinutes = "break_minutes"
	keyChimeFile    = "chime_file"
	keyChimeVolume  = "chime_volume"
)

type yamlSettings struct {
	WorkMinutes  int     `yaml:"work_minutes" mapstructure:"work_minutes"`
	BreakMinutes int     `yaml:"break_minutes" mapstructure:"break_minutes"`
	ChimeFile    string  `yaml:"chime_file,omitempty" mapstructure:"chime_file"`
	ChimeVolume  float64 `yaml:"chime_volume" mapstructure:"chime_volume"`
}

// LoadSettings reads user preferences from the app's config directory.
// If the config file does not exist, default settings are returned.
func LoadSettings(appName string) (model.Settings, error) {
	configPath, err := ResolveConfigPath(appName)
	if err != nil {
		return model.DefaultSettings(), err
	}
	return LoadSettingsFrom(configPath)
}

// LoadSettingsFrom reads user preferences from path. POMOTIMER_* environment
// variables override values from the file. Out-of-range values are ignored.
func LoadSettingsFrom(configPath string) (model.Settings, error) {
	settings := model.DefaultSettings()

	v := viper.New()
	v.SetConfigFile(configPath)
	v.SetConfigType("yaml")
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	v.SetDefault(keyWorkMinutes, int(settings.WorkDuration/time.Minute))
	v.SetDefault(keyBreakMinutes, int(settings.BreakDuration/time.Minute))
	v.SetDefault(keyChimeFile, settings.ChimeFile)
	v.SetDefault(keyChimeVolume, settings.ChimeVolume)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, os.ErrNotExist) {
			return settings, fmt.Errorf("read settings file: %w", err)
		}
	}

	var fileData yamlSettings
	if err := v.Unmarshal(&fileData); err != nil {
		return settings, fmt.Errorf("parse settings: %w", err)
	}

	applyYamlSettings(&settings, fileData)
	return settings, nil
}

// SaveSettings writes user preferences to the app's config directory.
func SaveSettings(appName string, settings model.Settings) error {
	configPath, err := ResolveConfigPath(appName)
	if err != nil {
		return err
	}
	return SaveSettingsTo(configPath, settings)
}

// SaveSettingsTo writes user preferences to path as YAML.
func SaveSettingsTo(configPath string, settings model.Settings) error {
	if err := os.MkdirAll(filepath.Dir(configPath), 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	fileData := yamlSettings{
		WorkMinutes:  int(settings.WorkDuration / time.Minute),
		BreakMinutes: int(settings.BreakDuration / time.Minute),
		ChimeFile:    settings.ChimeFile,
		ChimeVolume:  settings.ChimeVolume,
	}

	serialized, err := yaml.Marshal(fileData)
	if err != nil {
		return fmt.Errorf("marshal settings yaml: %w", err)
	}

	if err := os.WriteFile(configPath, serialized, 0o644); err != nil {
		return fmt.Errorf("write settings file: %w", err)
	}

	return nil
}

// ResolveConfigPath returns the settings file location for appName.
func ResolveConfigPath(appName string) (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve user config dir: %w", err)
	}
	return filepath.Join(configDir, appName, settingsFileName), nil
}

func applyYamlSettings(settings *model.Settings, fileData yamlSettings) {
	if fileData.WorkMinutes >= minMinutes && fileData.WorkMinutes <= maxMinutes {
		settings.WorkDuration = time.Duration(fileData.WorkMinutes) * time.Minute
	}
	if fileData.BreakMinutes >= minMinutes && fileData.BreakMinutes <= maxMinutes {
		settings.BreakDuration = time.Duration(fileData.BreakMinutes) * time.Minute
	}
	if fileData.ChimeVolume >= minVolume && fileData.ChimeVolume <= maxVolume {
		settings.ChimeVolume = fileData.ChimeVolume
	}
	settings.ChimeFile = strings.TrimSpace(fileData.ChimeFile)
}

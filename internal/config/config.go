package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// Config holds per-user settings. Lint rules live in the repository, not here.
type Config struct {
	Language  string `json:"language"`
	UseColor  bool   `json:"use_color"`
	RulesFile string `json:"rules_file,omitempty"`
	PathFile  string `json:"path_file"`
}

const (
	defaultLang     = LangEN
	defaultUseColor = true
	configDirName   = ".matelint"
	configFileName  = "config.json"
)

// LoadConfig reads the config from path, which is either a .json file or a
// home directory holding .matelint/config.json. A default config is written
// when none exists.
func LoadConfig(path string) (*Config, error) {
	var configPath string

	if filepath.Ext(path) == ".json" {
		configPath = path
	} else {
		configDir := filepath.Join(path, configDirName)
		configPath = filepath.Join(configDir, configFileName)

		if _, err := os.Stat(configDir); os.IsNotExist(err) {
			if err := os.MkdirAll(configDir, 0755); err != nil {
				return nil, fmt.Errorf("error creating config directory: %w", err)
			}
		}
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return createDefaultConfig(configPath)
	} else if err != nil {
		return nil, fmt.Errorf("error checking config file: %w", err)
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	var config Config
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("error decoding config file: %w", err)
	}
	config.PathFile = configPath

	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("loaded config is invalid: %w", err)
	}

	return &config, nil
}

func createDefaultConfig(path string) (*Config, error) {
	config := &Config{
		Language: defaultLang,
		UseColor: defaultUseColor,
		PathFile: path,
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("error creating config directory: %w", err)
	}

	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("error encoding default config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return nil, fmt.Errorf("error saving default config: %w", err)
	}

	return config, nil
}

func SaveConfig(config *Config) error {
	if err := validateConfig(config); err != nil {
		return fmt.Errorf("config to save is invalid: %w", err)
	}

	if config.PathFile == "" {
		return errors.New("config file path is not set")
	}

	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return fmt.Errorf("error encoding config: %w", err)
	}

	if err := os.WriteFile(config.PathFile, data, 0644); err != nil {
		return fmt.Errorf("error saving config: %w", err)
	}

	return nil
}

func validateConfig(config *Config) error {
	if config.Language == "" {
		return errors.New("language cannot be empty")
	}
	if !IsSupportedLanguage(config.Language) {
		return fmt.Errorf("unsupported language: %s", config.Language)
	}
	if config.RulesFile != "" && !filepath.IsAbs(config.RulesFile) {
		return fmt.Errorf("rules_file must be an absolute path: %s", config.RulesFile)
	}
	return nil
}

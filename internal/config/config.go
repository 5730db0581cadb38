package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"gopkg.in/yaml.v3"

	"genman/internal/logging"
	"genman/internal/models"
)

// Environment variables read by the generator itself
const (
	EnvConfig   = "GENMAN_CONFIG"
	EnvLogLevel = "GENMAN_LOG_LEVEL"
	EnvVersion  = "GENMAN_VERSION"
	EnvTitle    = "GENMAN_TITLE"
)

// Defaults returns the configuration used when no other source sets a value
func Defaults() models.Config {
	return models.Config{
		LogLevel: models.DefaultLogLevel,
		Version:  models.DefaultVersion,
	}
}

// LoadConfig loads configuration from multiple sources with proper precedence:
// 1. Environment variables (highest priority)
// 2. Configuration file
// 3. Default values (lowest priority)
func LoadConfig(configPath string) (models.Config, error) {
	config := Defaults()

	if configPath != "" {
		fileConfig, err := loadFromFile(configPath)
		if err != nil {
			return models.Config{}, fmt.Errorf("failed to load config file: %w", err)
		}
		mergeConfigs(&config, &fileConfig)
	}

	envConfig := loadFromEnv()
	mergeConfigs(&config, &envConfig)

	return config, nil
}

// GetDefaultConfigPaths returns platform-specific default configuration file paths
func GetDefaultConfigPaths() []string {
	var paths []string

	switch runtime.GOOS {
	case "darwin":
		if home, err := os.UserHomeDir(); err == nil {
			paths = append(paths, filepath.Join(home, "Library", "Preferences", "genman", "config.yaml"))
			paths = append(paths, filepath.Join(home, ".config", "genman", "config.yaml"))
		}

	case "linux":
		configDir := os.Getenv("XDG_CONFIG_HOME")
		if configDir == "" {
			if home, err := os.UserHomeDir(); err == nil {
				configDir = filepath.Join(home, ".config")
			}
		}

		if configDir != "" {
			paths = append(paths, filepath.Join(configDir, "genman", "config.yaml"))
		}

	default:
		if home, err := os.UserHomeDir(); err == nil {
			paths = append(paths, filepath.Join(home, ".genman", "config.yaml"))
		}
	}

	return paths
}

// LoadConfigWithDefaults loads configuration, checking GENMAN_CONFIG and then
// the default paths when no explicit path is provided. Only the first
// existing default file is used.
func LoadConfigWithDefaults(defaultPaths []string) (models.Config, error) {
	config := Defaults()

	if configPath := os.Getenv(EnvConfig); configPath != "" {
		fileConfig, err := loadFromFile(configPath)
		if err != nil {
			return models.Config{}, fmt.Errorf("failed to load config from %s path: %w", EnvConfig, err)
		}
		mergeConfigs(&config, &fileConfig)
	} else {
		if defaultPaths == nil {
			defaultPaths = GetDefaultConfigPaths()
		}

		for _, configPath := range defaultPaths {
			if _, err := os.Stat(configPath); err != nil {
				continue
			}
			fileConfig, err := loadFromFile(configPath)
			if err != nil {
				// A broken default file is skipped, an explicit one is fatal
				continue
			}
			mergeConfigs(&config, &fileConfig)
			break
		}
	}

	envConfig := loadFromEnv()
	mergeConfigs(&config, &envConfig)

	return config, nil
}

func loadFromFile(configPath string) (models.Config, error) {
	var config models.Config

	data, err := os.ReadFile(configPath) // #nosec G304 -- Reading user-provided config file is expected behavior
	if err != nil {
		return config, fmt.Errorf("failed to read config file: %w", err)
	}

	ext := strings.ToLower(filepath.Ext(configPath))
	switch ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &config); err != nil {
			return config, fmt.Errorf("failed to parse YAML config: %w", err)
		}
	default:
		return config, fmt.Errorf("unsupported config file format: %s (only YAML is supported)", ext)
	}

	return config, nil
}

func loadFromEnv() models.Config {
	var config models.Config

	if val := os.Getenv(EnvLogLevel); val != "" {
		config.LogLevel = val
	}
	if val := os.Getenv(EnvVersion); val != "" {
		config.Version = val
	}
	if val := os.Getenv(EnvTitle); val != "" {
		config.Title = val
	}

	return config
}

// mergeConfigs merges source config into target, only overriding non-zero values
func mergeConfigs(target, source *models.Config) {
	if source.LogLevel != "" {
		target.LogLevel = source.LogLevel
	}
	if source.Version != "" {
		target.Version = source.Version
	}
	if source.Title != "" {
		target.Title = source.Title
	}
	if len(source.Environment) > 0 {
		target.Environment = append([]models.EnvVar(nil), source.Environment...)
	}
	if len(source.Also) > 0 {
		target.Also = append([]string(nil), source.Also...)
	}
}

// ValidateConfig validates the configuration and returns an error if invalid
func ValidateConfig(config models.Config) error {
	if _, err := logging.ParseLevel(config.LogLevel); err != nil {
		return errors.New("invalid log level")
	}

	if strings.TrimSpace(config.Version) == "" {
		return errors.New("version must not be empty")
	}

	for i, env := range config.Environment {
		if strings.TrimSpace(env.Name) == "" {
			return fmt.Errorf("environment entry %d has no name", i+1)
		}
	}

	return nil
}

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// Environment overrides, applied on top of the config file.
const (
	EnvImageLibrary = "HIGHLOW_IMAGE_LIBRARY"
	EnvLogLevel     = "HIGHLOW_LOG_LEVEL"
)

// Config represents the application configuration
type Config struct {
	ImageLibrary string `toml:"image_library"`
	DefaultSet   string `toml:"default_set"`
	Art          bool   `toml:"art"`
	ArtWidth     int    `toml:"art_width"`
	Color        bool   `toml:"color"`
	LogLevel     string `toml:"log_level"`
}

// Default returns the configuration written on first run.
func Default() *Config {
	return &Config{
		ImageLibrary: GetImageLibraryPath(),
		DefaultSet:   "standard",
		Art:          false,
		ArtWidth:     20,
		Color:        true,
		LogLevel:     "warn",
	}
}

// GetXDGDataHome returns XDG_DATA_HOME or default path
func GetXDGDataHome() string {
	if xdgData := os.Getenv("XDG_DATA_HOME"); xdgData != "" {
		return xdgData
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(homeDir, ".local", "share")
}

// GetXDGConfigHome returns XDG_CONFIG_HOME or default path
func GetXDGConfigHome() string {
	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		return xdgConfig
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(homeDir, ".config")
}

// GetXDGCacheHome returns XDG_CACHE_HOME or default path
func GetXDGCacheHome() string {
	if xdgCache := os.Getenv("XDG_CACHE_HOME"); xdgCache != "" {
		return xdgCache
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(homeDir, ".cache")
}

// GetImageLibraryPath returns the default location of card image sets
func GetImageLibraryPath() string {
	return filepath.Join(GetXDGDataHome(), "highlow", "cards")
}

// GetCacheDir returns the directory for generated ANSI art
func GetCacheDir() string {
	return filepath.Join(GetXDGCacheHome(), "highlow")
}

// GetConfigFilePath returns the path to the config file
func GetConfigFilePath() string {
	return filepath.Join(GetXDGConfigHome(), "highlow", "config.toml")
}

// LoadConfig loads the config file, creating it with defaults on first
// run, and applies environment overrides.
func LoadConfig() (*Config, error) {
	config, err := readConfigFile()
	if err != nil {
		return nil, err
	}

	applyEnv(config)

	if config.ArtWidth <= 0 {
		config.ArtWidth = Default().ArtWidth
	}

	return config, nil
}

func readConfigFile() (*Config, error) {
	configPath := GetConfigFilePath()

	// Create default config if it doesn't exist
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return createDefaultConfig()
	}

	config := Default()
	if _, err := toml.DecodeFile(configPath, config); err != nil {
		return nil, fmt.Errorf("error decoding config file: %v", err)
	}

	return config, nil
}

func applyEnv(config *Config) {
	if v := strings.TrimSpace(os.Getenv(EnvImageLibrary)); v != "" {
		config.ImageLibrary = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvLogLevel)); v != "" {
		config.LogLevel = v
	}
}

// createDefaultConfig creates a default config file
func createDefaultConfig() (*Config, error) {
	config := Default()
	if err := SaveConfig(config); err != nil {
		return nil, err
	}
	return config, nil
}

// SaveConfig writes config to the config file
func SaveConfig(config *Config) error {
	configPath := GetConfigFilePath()

	// Ensure the config directory exists
	if err := os.MkdirAll(filepath.Dir(configPath), 0755); err != nil {
		return fmt.Errorf("error creating config directory: %v", err)
	}

	file, err := os.Create(configPath)
	if err != nil {
		return fmt.Errorf("error creating config file: %v", err)
	}
	defer file.Close()

	encoder := toml.NewEncoder(file)
	if err := encoder.Encode(config); err != nil {
		return fmt.Errorf("error encoding config: %v", err)
	}

	return nil
}

// GetImageSetPath returns the path to an image set, either in the image
// library or a relative path. An empty name selects the default set.
func GetImageSetPath(config *Config, name string) (string, error) {
	if name == "" {
		name = config.DefaultSet
	}
	if name == "" {
		return "", fmt.Errorf("no image set given and no default_set configured")
	}

	// First, try to find the set in the image library
	setPath := filepath.Join(config.ImageLibrary, name)
	if _, err := os.Stat(setPath); err == nil {
		return setPath, nil
	}

	// If not found in the library, treat as a relative path
	if _, err := os.Stat(name); err == nil {
		return name, nil
	}

	return "", fmt.Errorf("image set not found: %s", name)
}

// SetDefaultSet sets the default image set in the config
func SetDefaultSet(name string) error {
	config, err := readConfigFile()
	if err != nil {
		return err
	}

	config.DefaultSet = name
	return SaveConfig(config)
}

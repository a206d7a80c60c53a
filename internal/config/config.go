// Package config provides configuration management for dd2scummer using Viper.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/spf13/viper"

	"github.com/SingingTree/darkest-dungeon-2-scummer/internal/appdata"
	"github.com/SingingTree/darkest-dungeon-2-scummer/internal/scumstore"
)

// AppName is the application name used for config file naming.
const AppName = "dd2scummer"

// CurrentVersion is the config schema version this build understands.
const CurrentVersion = 1

// Config represents the top-level configuration structure.
type Config struct {
	Version    int    `mapstructure:"version" yaml:"version"`
	Vendor     string `mapstructure:"vendor" yaml:"vendor"`
	Game       string `mapstructure:"game" yaml:"game"`
	AppDataDir string `mapstructure:"app_data_dir" yaml:"app_data_dir"`
	Retention  int    `mapstructure:"retention" yaml:"retention"`
	LogFile    string `mapstructure:"log_file" yaml:"log_file"`
}

// Default returns a configuration with default values, matching what an
// empty config file resolves to.
func Default() *Config {
	return &Config{
		Version:   CurrentVersion,
		Vendor:    appdata.DefaultVendor,
		Game:      appdata.DefaultGame,
		Retention: scumstore.DefaultRetention,
	}
}

// Dir returns the directory searched for the config file.
// DD2SCUMMER_CONFIG_DIR overrides the XDG default.
func Dir() string {
	if dir := os.Getenv("DD2SCUMMER_CONFIG_DIR"); dir != "" {
		return dir
	}
	return filepath.Join(xdg.ConfigHome, AppName)
}

// Path returns the default config file location.
func Path() string {
	return filepath.Join(Dir(), "config.yaml")
}

// Init initializes Viper with default configuration.
// Call this once at application startup before accessing config values.
// Calling it again discards any previously loaded state.
func Init() {
	viper.Reset()

	// Config file settings
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	// Search paths (in order of precedence)
	viper.AddConfigPath(".") // Current directory
	viper.AddConfigPath(Dir())

	// Environment variable support
	viper.SetEnvPrefix("DD2SCUMMER")
	viper.AutomaticEnv()

	// Defaults
	viper.SetDefault("version", CurrentVersion)
	viper.SetDefault("vendor", appdata.DefaultVendor)
	viper.SetDefault("game", appdata.DefaultGame)
	viper.SetDefault("retention", scumstore.DefaultRetention)
}

// Load reads the configuration file.
// If path is provided, it reads from that specific file.
// If path is empty, it searches in the default locations.
// Returns the loaded configuration or default values if no file is found (when path is empty).
func Load(path string) (*Config, error) {
	if path != "" {
		viper.SetConfigFile(path)
	}

	if err := viper.ReadInConfig(); err != nil {
		// If config file not found...
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			// If user specified a path, this is an error
			if path != "" {
				return nil, fmt.Errorf("config file not found at %s: %w", path, err)
			}
			// Otherwise (implicit load), it's fine to use defaults
		} else if path != "" && errors.Is(err, fs.ErrNotExist) {
			// Explicit paths bypass viper's search, so a missing file
			// surfaces as a plain fs error rather than
			// ConfigFileNotFoundError.
			return nil, fmt.Errorf("config file not found at %s: %w", path, err)
		} else {
			// Real read error (parsing, permissions, etc)
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	if errs := Validate(&cfg); len(errs) > 0 {
		return nil, fmt.Errorf("validating config: %w", errs[0])
	}

	return &cfg, nil
}

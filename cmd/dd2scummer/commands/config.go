package commands

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/SingingTree/darkest-dungeon-2-scummer/internal/config"
	"github.com/SingingTree/darkest-dungeon-2-scummer/internal/editor"
	"github.com/SingingTree/darkest-dungeon-2-scummer/pkg/fileutil"
)

func init() {
	configCmd.AddCommand(configGetCmd)
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configListCmd)
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configEditCmd)
	rootCmd.AddCommand(configCmd)
}

// configKeys lists the keys the config file understands.
var configKeys = []string{"version", "vendor", "game", "app_data_dir", "retention", "log_file"}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage dd2scummer configuration",
	Long: `Manage dd2scummer configuration stored in config.yaml.

The file is searched in the working directory and the user config directory.
Without a subcommand, lists all configuration values.`,
	Example: `  # List all configuration
  dd2scummer config

  # Get a specific value
  dd2scummer config get retention

  # Set a value
  dd2scummer config set retention 5

See Also: dd2scummer doctor`,
	RunE: runConfigList,
}

var configGetCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Get a configuration value",
	Long:  `Get a single configuration value by key.`,
	Example: `  # Get the snapshot retention
  dd2scummer config get retention

  # Get the app data override
  dd2scummer config get app_data_dir

See Also: dd2scummer config set, dd2scummer config list`,
	Args: cobra.ExactArgs(1),
	RunE: runConfigGet,
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a configuration value",
	Long: `Set a configuration value and write the config file.

Keys: version, vendor, game, app_data_dir, retention, log_file.`,
	Example: `  # Keep 5 snapshots when pruning
  dd2scummer config set retention 5

  # Point at a non-standard save location
  dd2scummer config set app_data_dir "/mnt/games/Darkest Dungeon II"

See Also: dd2scummer config get, dd2scummer config list`,
	Args: cobra.ExactArgs(2),
	RunE: runConfigSet,
}

var configListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all configuration",
	Long:  `List all configuration values in YAML format.`,
	Example: `  # List all configuration
  dd2scummer config list

See Also: dd2scummer config get, dd2scummer config set`,
	RunE: runConfigList,
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a starter config file",
	Long: `Write a config file with the default values to the user config directory.

Fails if a config file already exists there.`,
	Example: `  # Create the config file
  dd2scummer config init

See Also: dd2scummer config edit`,
	RunE: runConfigInit,
}

var configEditCmd = &cobra.Command{
	Use:   "edit",
	Short: "Open configuration in $EDITOR",
	Long: `Open the configuration file in your default editor.

Uses $EDITOR, then $VISUAL, then falls back to nano or vi.
If no configuration file exists, run 'dd2scummer config init' first.`,
	Example: `  # Open config in default editor
  dd2scummer config edit

  # Open with specific editor
  EDITOR=nano dd2scummer config edit

See Also: dd2scummer config init, dd2scummer config list`,
	RunE: runConfigEdit,
}

func runConfigGet(_ *cobra.Command, args []string) error {
	return runConfigGetWithWriter(os.Stdout, args[0])
}

func runConfigGetWithWriter(w io.Writer, key string) error {
	if !viper.IsSet(key) {
		fmt.Fprintln(w, "not set")
		return nil
	}

	fmt.Fprintln(w, viper.GetString(key))
	return nil
}

func runConfigSet(_ *cobra.Command, args []string) error {
	return runConfigSetWithWriter(os.Stdout, args[0], args[1])
}

func runConfigSetWithWriter(w io.Writer, key, value string) error {
	switch key {
	case "version", "retention":
		n, err := strconv.Atoi(value)
		if err != nil {
			return errors.Newf("%s must be an integer, got %q", key, value)
		}
		viper.Set(key, n)

	case "vendor", "game":
		if strings.TrimSpace(value) == "" {
			return errors.Newf("%s must not be empty", key)
		}
		viper.Set(key, value)

	case "app_data_dir", "log_file":
		viper.Set(key, value)

	default:
		return errors.Newf("unknown config key %q (valid: %s)",
			key, strings.Join(configKeys, ", "))
	}

	if err := writeConfig(); err != nil {
		return err
	}
	fmt.Fprintf(w, "Set %s = %s\n", key, value)

	return nil
}

func runConfigList(_ *cobra.Command, _ []string) error {
	return runConfigListWithWriter(os.Stdout)
}

func runConfigListWithWriter(w io.Writer) error {
	data, err := yaml.Marshal(currentConfigMap())
	if err != nil {
		return errors.Wrap(err, "marshaling config")
	}

	fmt.Fprint(w, string(data))
	return nil
}

func runConfigInit(_ *cobra.Command, _ []string) error {
	return runConfigInitWithWriter(os.Stdout)
}

func runConfigInitWithWriter(w io.Writer) error {
	path := config.Path()
	if _, err := os.Stat(path); err == nil {
		return errors.Newf("config file already exists at %s", path)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return errors.Wrap(err, "creating config directory")
	}
	if err := fileutil.AtomicWriteYAML(path, config.Default()); err != nil {
		return errors.Wrap(err, "writing config file")
	}

	fmt.Fprintf(w, "%s✓ wrote %s%s\n", colorGreen, path, colorReset)
	return nil
}

func runConfigEdit(_ *cobra.Command, _ []string) error {
	configPath := config.Path()

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return errors.Newf("config file not found at %s\nRun 'dd2scummer config init' to create it", configPath)
	}

	return editor.Open(configPath)
}

// currentConfigMap snapshots the known keys from viper for listing and
// writing.
func currentConfigMap() map[string]any {
	return map[string]any{
		"version":      viper.GetInt("version"),
		"vendor":       viper.GetString("vendor"),
		"game":         viper.GetString("game"),
		"app_data_dir": viper.GetString("app_data_dir"),
		"retention":    viper.GetInt("retention"),
		"log_file":     viper.GetString("log_file"),
	}
}

// writeConfig writes the current viper configuration to the config file.
func writeConfig() error {
	configPath := config.Path()

	configDir := filepath.Dir(configPath)
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return errors.Wrap(err, "creating config directory")
	}

	if err := fileutil.AtomicWriteYAML(configPath, currentConfigMap()); err != nil {
		return errors.Wrap(err, "writing config file")
	}

	return nil
}

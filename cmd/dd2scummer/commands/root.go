// Package commands implements the CLI commands for dd2scummer.
package commands

import (
	"context"
	"log/slog"
	"os"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"github.com/SingingTree/darkest-dungeon-2-scummer/cmd"
	"github.com/SingingTree/darkest-dungeon-2-scummer/internal/appdata"
	"github.com/SingingTree/darkest-dungeon-2-scummer/internal/config"
	scumerrors "github.com/SingingTree/darkest-dungeon-2-scummer/internal/errors"
	"github.com/SingingTree/darkest-dungeon-2-scummer/internal/logging"
	"github.com/SingingTree/darkest-dungeon-2-scummer/internal/scumstore"
)

// verbosity holds the count of -v flags.
var verbosity int

// quiet holds the value of the -q/--quiet flag.
var quiet bool

// logFormat holds the value of the --log-format flag.
var logFormat string

// logFile holds the path to the log file.
var logFile string

// cfgFile holds the value of the --config flag.
var cfgFile string

// loadedCfg is the configuration loaded by initConfig before any command
// runs. Defaults apply when no config file exists.
var loadedCfg *config.Config

// configLoadErr holds any error that occurred during config loading.
var configLoadErr error

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v",
		"increase verbosity level (e.g., -v, -vv)")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false,
		"suppress non-error output")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "text",
		"log format: text, json")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "",
		"write logs to file in JSON format")
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "",
		"config file (default: ./config.yaml, then $XDG_CONFIG_HOME/dd2scummer/config.yaml)")

	rootCmd.Version = cmd.Version
	rootCmd.SetVersionTemplate("dd2scummer version {{.Version}}\n")

	// Silence errors and usage so main controls error output
	rootCmd.SilenceErrors = true
	rootCmd.SilenceUsage = true
}

func initConfig() {
	config.Init()
	loadedCfg, configLoadErr = config.Load(cfgFile)
}

var rootCmd = &cobra.Command{
	Use:   "dd2scummer",
	Short: "Back up Darkest Dungeon II save profiles",
	Long: `dd2scummer backs up the save profile of Darkest Dungeon II.

Run with no arguments it finds the game's save profile under the app data
directory, creates a "scummed" backup directory next to the saves, and copies
the profile into a fresh snapshot named after the current UTC time. Restoring
is up to you: copy a snapshot back over the profiles directory while the game
is not running.

Exactly one save profile must exist. When several resolve, the run aborts;
choose one explicitly with --latest or --pick.`,
	Example: `  # Back up the save profile
  dd2scummer

  # Several profiles: back up the most recently played one
  dd2scummer --latest

  # Several profiles: choose interactively
  dd2scummer --pick

  # See what is stored
  dd2scummer list

  # Check the environment
  dd2scummer doctor`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := setupLogging(cmd); err != nil {
			return err
		}
		return checkConfigLoad(cmd, args)
	},
	RunE: runScum,
}

// setupLogging configures the default logger based on verbosity flags.
func setupLogging(cmd *cobra.Command) error {
	if quiet && verbosity > 0 {
		return scumerrors.NewUserError(errors.New("cannot use --quiet and --verbose together"), "")
	}

	var level slog.Level
	if quiet {
		level = slog.LevelError
	} else {
		v := verbosity

		// CLI flags take precedence, but if not set, check env var
		if v == 0 {
			if val, ok := os.LookupEnv("DD2SCUMMER_DEBUG"); ok {
				switch val {
				case "1", "true":
					v = 2 // Debug
				case "2":
					v = 3 // Trace
				}
			}
		}
		level = logging.LevelFromVerbosity(v)
	}

	opts := &slog.HandlerOptions{
		Level: level,
	}

	var primaryHandler slog.Handler
	switch logging.Format(logFormat) {
	case logging.FormatJSON:
		primaryHandler = slog.NewJSONHandler(cmd.ErrOrStderr(), opts)
	default:
		primaryHandler = logging.NewHandler(cmd.ErrOrStderr(), opts)
	}

	handlers := []slog.Handler{primaryHandler}

	if path := logFilePath(); path != "" {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return scumerrors.NewUserError(errors.Wrapf(err, "opening log file %s", path), "")
		}
		// File output uses JSON format
		handlers = append(handlers, slog.NewJSONHandler(f, &slog.HandlerOptions{
			Level: level,
		}))
	}

	var handler slog.Handler
	if len(handlers) > 1 {
		handler = logging.NewMultiHandler(handlers...)
	} else {
		handler = handlers[0]
	}

	logger := slog.New(handler)
	slog.SetDefault(logger)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	cmd.SetContext(logging.NewContext(ctx, logger))

	return nil
}

// logFilePath resolves the log file destination: the --log-file flag wins,
// then the config's log_file key.
func logFilePath() string {
	if logFile != "" {
		return logFile
	}
	if loadedCfg != nil {
		return loadedCfg.LogFile
	}
	return ""
}

// checkConfigLoad surfaces config load failures before any command runs.
func checkConfigLoad(cmd *cobra.Command, _ []string) error {
	// Help and version never need configuration
	if cmd.Name() == "help" || cmd.Name() == "version" {
		return nil
	}

	if configLoadErr != nil {
		return scumerrors.NewConfigError(configLoadErr)
	}
	return nil
}

// appDataLocator builds the app data locator from the loaded configuration.
// Empty config values fall back to the game's defaults inside the locator.
func appDataLocator() appdata.Locator {
	cfg := loadedCfg
	if cfg == nil {
		cfg = config.Default()
	}
	return appdata.NewLocator(
		appdata.WithVendor(cfg.Vendor),
		appdata.WithGame(cfg.Game),
		appdata.WithDir(cfg.AppDataDir),
	)
}

// configuredRetention returns the snapshot retention from config, falling
// back to the built-in default when unset or disabled.
func configuredRetention() int {
	if loadedCfg != nil && loadedCfg.Retention > 0 {
		return loadedCfg.Retention
	}
	return scumstore.DefaultRetention
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// Package config provides configuration management for the dd2scummer CLI.
//
// This package handles loading, saving, and validating the tool's own
// configuration file. Settings cover where the game's app data lives and
// how many snapshots pruning keeps; nothing in the save trees themselves
// is configured here.
//
// # Configuration File
//
// The default configuration file location is ~/.config/dd2scummer/config.yaml
// (DD2SCUMMER_CONFIG_DIR overrides the directory). The configuration file
// uses YAML format with the following structure:
//
//	version: 1
//	vendor: RedHook
//	game: Darkest Dungeon II
//	app_data_dir: /override/path  # optional
//	retention: 10
//	log_file: /path/to/run.log    # optional
//
// # Loading Configuration
//
// Call [Init] once at startup, then [Load]:
//
//	config.Init()
//	cfg, err := config.Load(flagConfigPath)
//	if err != nil {
//	    return fmt.Errorf("loading config: %w", err)
//	}
//
// With an empty path, Load searches the current directory and the config
// home, falling back to defaults when no file exists. With an explicit
// path, a missing file is an error.
//
// Every key can also be set through the environment with a DD2SCUMMER_
// prefix, e.g. DD2SCUMMER_RETENTION=5.
//
// # Validation
//
// All loaded configurations are validated automatically. You can also
// validate a configuration manually:
//
//	errs := config.Validate(cfg)
//	if len(errs) > 0 {
//	    for _, e := range errs {
//	        fmt.Println(e)
//	    }
//	}
//
// # Default Values
//
// The [Default] function returns a configuration with sensible defaults:
//
//	cfg := config.Default()
//	// cfg.Vendor = "RedHook"
//	// cfg.Game = "Darkest Dungeon II"
//	// cfg.Retention = 10
package config

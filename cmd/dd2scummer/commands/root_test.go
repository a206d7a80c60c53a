package commands

import (
	"log/slog"
	"testing"

	"github.com/SingingTree/darkest-dungeon-2-scummer/internal/appdata"
	"github.com/SingingTree/darkest-dungeon-2-scummer/internal/config"
	"github.com/SingingTree/darkest-dungeon-2-scummer/internal/logging"
	"github.com/SingingTree/darkest-dungeon-2-scummer/internal/scumstore"
)

func TestSetupLogging_VerbosityFlags(t *testing.T) {
	// Save/Restore original state
	origVerbosity := verbosity
	defer func() { verbosity = origVerbosity }()

	tests := []struct {
		name      string
		verbosity int
		wantLevel slog.Level
	}{
		{"default (0)", 0, slog.LevelWarn},
		{"verbose (1)", 1, slog.LevelInfo},
		{"debug (2)", 2, slog.LevelDebug},
		{"trace (3)", 3, logging.LevelTrace},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			verbosity = tt.verbosity
			if err := setupLogging(rootCmd); err != nil {
				t.Fatalf("setupLogging failed: %v", err)
			}

			logger := slog.Default()
			if !logger.Enabled(t.Context(), tt.wantLevel) {
				t.Errorf("expected level %v to be enabled", tt.wantLevel)
			}
			if tt.wantLevel > logging.LevelTrace {
				shouldBeDisabled := tt.wantLevel - 4
				if logger.Enabled(t.Context(), shouldBeDisabled) {
					t.Errorf("expected level %v to be disabled", shouldBeDisabled)
				}
			}
		})
	}
}

func TestSetupLogging_EnvVar(t *testing.T) {
	origVerbosity := verbosity
	defer func() { verbosity = origVerbosity }()

	tests := []struct {
		name      string
		envVal    string
		wantLevel slog.Level
	}{
		{"DD2SCUMMER_DEBUG=1", "1", slog.LevelDebug},
		{"DD2SCUMMER_DEBUG=true", "true", slog.LevelDebug},
		{"DD2SCUMMER_DEBUG=2", "2", logging.LevelTrace},
		{"DD2SCUMMER_DEBUG=0", "0", slog.LevelWarn},
		{"DD2SCUMMER_DEBUG=unknown", "foo", slog.LevelWarn},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			verbosity = 0
			t.Setenv("DD2SCUMMER_DEBUG", tt.envVal)

			if err := setupLogging(rootCmd); err != nil {
				t.Fatalf("setupLogging failed: %v", err)
			}

			logger := slog.Default()
			if !logger.Enabled(t.Context(), tt.wantLevel) {
				t.Errorf("expected level %v to be enabled", tt.wantLevel)
			}

			if tt.wantLevel == slog.LevelDebug {
				if logger.Enabled(t.Context(), logging.LevelTrace) {
					t.Error("expected Trace level to be disabled when DD2SCUMMER_DEBUG=1")
				}
			}
		})
	}
}

func TestSetupLogging_FlagPrecedence(t *testing.T) {
	origVerbosity := verbosity
	defer func() { verbosity = origVerbosity }()

	t.Setenv("DD2SCUMMER_DEBUG", "2")
	verbosity = 1

	if err := setupLogging(rootCmd); err != nil {
		t.Fatalf("setupLogging failed: %v", err)
	}

	logger := slog.Default()
	if !logger.Enabled(t.Context(), slog.LevelInfo) {
		t.Error("expected Info level to be enabled")
	}
	if logger.Enabled(t.Context(), slog.LevelDebug) {
		t.Error("expected Debug level to be disabled (flag should override env var)")
	}
}

func TestSetupLogging_Quiet(t *testing.T) {
	origQuiet := quiet
	origVerbosity := verbosity
	defer func() {
		quiet = origQuiet
		verbosity = origVerbosity
	}()

	quiet = true
	verbosity = 0

	if err := setupLogging(rootCmd); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	logger := slog.Default()
	if !logger.Enabled(t.Context(), slog.LevelError) {
		t.Error("expected Error level to be enabled")
	}
	if logger.Enabled(t.Context(), slog.LevelWarn) {
		t.Error("expected Warn level to be disabled")
	}
}

func TestSetupLogging_QuietMutualExclusion(t *testing.T) {
	origVerbosity := verbosity
	origQuiet := quiet
	defer func() {
		verbosity = origVerbosity
		quiet = origQuiet
	}()

	verbosity = 1
	quiet = true

	if err := setupLogging(rootCmd); err == nil {
		t.Error("expected error when both quiet and verbose are set")
	}
}

func TestAppDataLocator_UsesConfigOverrides(t *testing.T) {
	origCfg := loadedCfg
	defer func() { loadedCfg = origCfg }()

	dir := t.TempDir()
	loadedCfg = &config.Config{
		Version:    config.CurrentVersion,
		Vendor:     "RedHook",
		Game:       "Darkest Dungeon II",
		AppDataDir: dir,
	}

	got, err := appDataLocator().Dir()
	if err != nil {
		t.Fatalf("Dir() failed: %v", err)
	}
	if got != dir {
		t.Errorf("Dir() = %q, want the app_data_dir override %q", got, dir)
	}
}

func TestAppDataLocator_NilConfig(t *testing.T) {
	origCfg := loadedCfg
	defer func() { loadedCfg = origCfg }()

	loadedCfg = nil

	// Must not panic; resolution itself depends on the host.
	loc := appDataLocator()
	if loc == nil {
		t.Fatal("expected a locator even without loaded config")
	}
	if _, ok := loc.(*appdata.GameLocator); !ok {
		t.Errorf("expected a GameLocator, got %T", loc)
	}
}

func TestConfiguredRetention(t *testing.T) {
	origCfg := loadedCfg
	defer func() { loadedCfg = origCfg }()

	tests := []struct {
		name string
		cfg  *config.Config
		want int
	}{
		{"nil config", nil, scumstore.DefaultRetention},
		{"zero retention", &config.Config{Retention: 0}, scumstore.DefaultRetention},
		{"configured", &config.Config{Retention: 3}, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			loadedCfg = tt.cfg
			if got := configuredRetention(); got != tt.want {
				t.Errorf("configuredRetention() = %d, want %d", got, tt.want)
			}
		})
	}
}

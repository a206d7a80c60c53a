// Package appdata resolves the per-user application data directory the game
// writes its saves under.
package appdata

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/adrg/xdg"
	"github.com/cockroachdb/errors"
)

// Path segments for the directory Darkest Dungeon II stores local data in.
const (
	DefaultVendor = "RedHook"
	DefaultGame   = "Darkest Dungeon II"
)

// steamAppID identifies the game on Steam, used to locate Proton prefixes.
const steamAppID = "1940340"

// Sentinel errors for app data resolution.
var (
	// ErrNotFound indicates the expected app data directory does not exist.
	ErrNotFound = errors.New("app data directory not found")

	// ErrUnsupportedPlatform indicates the current OS has no resolution
	// strategy for the game's app data.
	ErrUnsupportedPlatform = errors.New("platform not supported")
)

// Locator resolves the absolute path of the game's app data root.
// Implementations must not cache: resolution is recomputed on every call.
type Locator interface {
	Dir() (string, error)
}

// GameLocator resolves the app data root from the running user's profile
// following platform conventions: the LocalLow tree on Windows, Steam Proton
// prefixes holding the same tree on Linux.
type GameLocator struct {
	vendor   string
	game     string
	override string
}

// Option configures a GameLocator.
type Option func(*GameLocator)

// WithVendor overrides the vendor path segment. Empty values are ignored.
func WithVendor(vendor string) Option {
	return func(l *GameLocator) {
		if vendor != "" {
			l.vendor = vendor
		}
	}
}

// WithGame overrides the game path segment. Empty values are ignored.
func WithGame(game string) Option {
	return func(l *GameLocator) {
		if game != "" {
			l.game = game
		}
	}
}

// WithDir pins resolution to an explicit app data directory, bypassing
// platform probing. The directory must still exist when Dir is called.
func WithDir(dir string) Option {
	return func(l *GameLocator) {
		l.override = dir
	}
}

// NewLocator creates a GameLocator with the default vendor and game segments.
func NewLocator(opts ...Option) *GameLocator {
	l := &GameLocator{
		vendor: DefaultVendor,
		game:   DefaultGame,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Dir returns the game's app data directory, probing platform candidates in
// order and returning the first that exists. It fails with ErrNotFound when
// nothing exists and ErrUnsupportedPlatform when the OS has no strategy.
func (l *GameLocator) Dir() (string, error) {
	if l.override != "" {
		if dir, ok := firstExisting([]string{l.override}); ok {
			return dir, nil
		}
		return "", errors.Wrapf(ErrNotFound, "%s app data override at %s", l.game, l.override)
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", errors.Wrap(err, "resolving home directory")
	}

	candidates, err := l.candidatesFor(runtime.GOOS, home, xdg.DataHome)
	if err != nil {
		return "", err
	}

	if dir, ok := firstExisting(candidates); ok {
		return dir, nil
	}
	return "", errors.Wrapf(ErrNotFound, "%s app data (checked %s)", l.game, strings.Join(candidates, ", "))
}

// candidatesFor lists the directories worth probing on the given platform.
// home is the user's home directory; dataHome is the XDG data home used for
// Steam's flatpak-era default root on Linux.
func (l *GameLocator) candidatesFor(goos, home, dataHome string) ([]string, error) {
	switch goos {
	case "windows":
		return []string{filepath.Join(home, "AppData", "LocalLow", l.vendor, l.game)}, nil

	case "linux":
		steamRoots := []string{
			filepath.Join(home, ".steam", "steam"),
			filepath.Join(home, ".local", "share", "Steam"),
			filepath.Join(dataHome, "Steam"),
		}
		// Inside a Proton prefix the game sees the same LocalLow tree it
		// would on Windows.
		suffix := filepath.Join("steamapps", "compatdata", steamAppID, "pfx",
			"drive_c", "users", "steamuser", "AppData", "LocalLow", l.vendor, l.game)

		var candidates []string
		seen := make(map[string]bool)
		for _, root := range steamRoots {
			candidate := filepath.Join(root, suffix)
			if seen[candidate] {
				continue
			}
			seen[candidate] = true
			candidates = append(candidates, candidate)
		}
		return candidates, nil

	default:
		return nil, errors.Wrapf(ErrUnsupportedPlatform, "no app data resolution for %s", goos)
	}
}

// firstExisting returns the first candidate that exists as a directory.
func firstExisting(candidates []string) (string, bool) {
	for _, candidate := range candidates {
		info, err := os.Stat(candidate)
		if err == nil && info.IsDir() {
			return candidate, true
		}
	}
	return "", false
}

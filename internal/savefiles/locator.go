// Package savefiles locates save profiles beneath the game's app data root.
//
// The on-disk layout is fixed: the app data root holds a SaveFiles directory,
// SaveFiles holds one directory per account identity, and each identity
// directory holds a profiles child with that player's save data.
package savefiles

import (
	"os"
	"path/filepath"
	"syscall"
	"time"

	"github.com/cockroachdb/errors"

	"github.com/SingingTree/darkest-dungeon-2-scummer/internal/appdata"
)

// Fixed path segments of the save layout.
const (
	// SaveDirName is the child of the app data root holding all save data.
	SaveDirName = "SaveFiles"

	// ProfileDirName is the child of each identity directory holding one
	// player's save profile.
	ProfileDirName = "profiles"
)

// ErrNotFound indicates an expected save-layout directory is absent.
var ErrNotFound = errors.New("save directory not found")

// Locator walks the save layout, one fixed level at a time.
type Locator struct {
	appData appdata.Locator
}

// NewLocator creates a Locator resolving against the given app data locator.
func NewLocator(appData appdata.Locator) *Locator {
	return &Locator{appData: appData}
}

// SaveRoot resolves the SaveFiles directory under the app data root. It
// fails with ErrNotFound when the directory does not exist.
func (l *Locator) SaveRoot() (string, error) {
	appDir, err := l.appData.Dir()
	if err != nil {
		return "", errors.Wrap(err, "finding save dir")
	}

	saveRoot := filepath.Join(appDir, SaveDirName)
	if _, err := os.Stat(saveRoot); err != nil {
		if os.IsNotExist(err) {
			return "", errors.Wrapf(ErrNotFound, "no %s dir at %s", SaveDirName, saveRoot)
		}
		return "", errors.Wrapf(err, "checking save dir %s", saveRoot)
	}
	return saveRoot, nil
}

// IdentityDirs enumerates every direct entry of the save root, one per
// account identity. Entries are not type-filtered; a stray file surfaces
// later when its profiles child turns out not to exist. An empty save root
// yields an empty list, not an error.
func (l *Locator) IdentityDirs() ([]string, error) {
	saveRoot, err := l.SaveRoot()
	if err != nil {
		return nil, errors.Wrap(err, "finding user id dirs")
	}

	entries, err := os.ReadDir(saveRoot)
	if err != nil {
		return nil, errors.Wrapf(err, "reading save dir %s", saveRoot)
	}

	dirs := make([]string, 0, len(entries))
	for _, entry := range entries {
		dirs = append(dirs, filepath.Join(saveRoot, entry.Name()))
	}
	return dirs, nil
}

// ProfileDirs derives the profiles child of every identity directory. Every
// one of them must exist: a single missing profiles directory fails the
// whole resolution with ErrNotFound naming that path, and no partial list
// is returned.
func (l *Locator) ProfileDirs() ([]string, error) {
	identityDirs, err := l.IdentityDirs()
	if err != nil {
		return nil, errors.Wrap(err, "finding profiles dirs")
	}

	profileDirs := make([]string, 0, len(identityDirs))
	for _, identityDir := range identityDirs {
		profileDir := filepath.Join(identityDir, ProfileDirName)
		if _, err := os.Stat(profileDir); err != nil {
			// A stray file under SaveFiles yields ENOTDIR here rather than
			// ENOENT; both mean the profiles dir is absent.
			if os.IsNotExist(err) || errors.Is(err, syscall.ENOTDIR) {
				return nil, errors.Wrapf(ErrNotFound, "no %s dir at %s", ProfileDirName, profileDir)
			}
			return nil, errors.Wrapf(err, "checking profiles dir %s", profileDir)
		}
		profileDirs = append(profileDirs, profileDir)
	}
	return profileDirs, nil
}

// MostRecent returns the most recently modified of the given directories.
// Used by the opt-in latest-profile selection rule; the default flow never
// chooses between profiles.
func MostRecent(dirs []string) (string, error) {
	if len(dirs) == 0 {
		return "", errors.New("no profile dirs to choose from")
	}

	var (
		best     string
		bestTime time.Time
	)
	for _, dir := range dirs {
		info, err := os.Stat(dir)
		if err != nil {
			return "", errors.Wrapf(err, "stat %s", dir)
		}
		if best == "" || info.ModTime().After(bestTime) {
			best = dir
			bestTime = info.ModTime()
		}
	}
	return best, nil
}

// Package scummer drives the backup flow: resolve the save profile, ensure
// the backup store, copy the profile into a fresh timestamped snapshot.
package scummer

import (
	"os"
	"time"

	"github.com/cockroachdb/errors"

	"github.com/SingingTree/darkest-dungeon-2-scummer/internal/appdata"
	"github.com/SingingTree/darkest-dungeon-2-scummer/internal/savefiles"
	"github.com/SingingTree/darkest-dungeon-2-scummer/internal/scumstore"
	"github.com/SingingTree/darkest-dungeon-2-scummer/pkg/fileutil"
)

// ErrMultipleProfiles indicates more than one profile directory resolved.
// Backing up several profiles at once is not supported; the caller must
// choose one explicitly.
var ErrMultipleProfiles = errors.New("multiple profile dirs")

// ScummedProfile records one completed backup. It is built once per
// successful run and reported to the console; nothing persists it.
type ScummedProfile struct {
	// SourcePath is the profile directory that was copied.
	SourcePath string

	// DestPath is the timestamped snapshot directory that was written.
	DestPath string

	// TimeScummed is the capture instant, in UTC.
	TimeScummed time.Time
}

// Scummer performs backups of the game's save profile.
type Scummer struct {
	profiles *savefiles.Locator
	store    *scumstore.Store
	now      func() time.Time
}

// Option configures a Scummer.
type Option func(*Scummer)

// WithClock overrides the time source used for snapshot names. Nil values
// are ignored.
func WithClock(now func() time.Time) Option {
	return func(s *Scummer) {
		if now != nil {
			s.now = now
		}
	}
}

// New creates a Scummer resolving everything beneath the given app data
// locator.
func New(appData appdata.Locator, opts ...Option) *Scummer {
	s := &Scummer{
		profiles: savefiles.NewLocator(appData),
		store:    scumstore.NewStore(appData),
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ProfileDirs exposes profile resolution for callers that select a profile
// themselves before handing it to ScumProfile.
func (s *Scummer) ProfileDirs() ([]string, error) {
	return s.profiles.ProfileDirs()
}

// Scum performs the default backup flow. Exactly one profile directory must
// resolve; it is copied into a fresh timestamped snapshot and the resulting
// record returned.
//
// More than one resolved profile fails with ErrMultipleProfiles. A
// successful resolution with zero profiles violates the locator's contract
// and panics.
func (s *Scummer) Scum() (*ScummedProfile, error) {
	profileDirs, err := s.profiles.ProfileDirs()
	if err != nil {
		return nil, errors.Wrap(err, "scumming profile")
	}

	if len(profileDirs) == 0 {
		panic("profile resolution returned no dirs and no error")
	}
	if len(profileDirs) > 1 {
		return nil, errors.Wrapf(ErrMultipleProfiles,
			"found %d profile dirs, currently only support 1", len(profileDirs))
	}

	return s.ScumProfile(profileDirs[0])
}

// ScumProfile backs up one specific profile directory: ensure the store,
// re-check the source still exists, copy it into a fresh snapshot.
func (s *Scummer) ScumProfile(profileDir string) (*ScummedProfile, error) {
	scummDir, err := s.store.Ensure()
	if err != nil {
		return nil, err
	}

	// The profile resolved earlier; re-check it in case it vanished between
	// resolution and the copy.
	if _, err := os.Stat(profileDir); err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrapf(savefiles.ErrNotFound, "profile dir %s vanished before copy", profileDir)
		}
		return nil, errors.Wrapf(err, "checking profile dir %s", profileDir)
	}

	now := s.now().UTC()
	destDir, err := scumstore.UniqueSnapshotPath(scummDir, now)
	if err != nil {
		return nil, err
	}

	if err := fileutil.CopyDir(profileDir, destDir); err != nil {
		return nil, errors.Wrapf(err, "copying profile %s", profileDir)
	}

	return &ScummedProfile{
		SourcePath:  profileDir,
		DestPath:    destDir,
		TimeScummed: now,
	}, nil
}

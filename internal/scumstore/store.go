package scumstore

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/cockroachdb/errors"

	"github.com/SingingTree/darkest-dungeon-2-scummer/internal/appdata"
	"github.com/SingingTree/darkest-dungeon-2-scummer/pkg/fileutil"
)

// Store manages the backup directory and the snapshots inside it.
type Store struct {
	appData appdata.Locator
	dirName string
}

// Option configures a Store.
type Option func(*Store)

// WithDirName overrides the backup directory name. Empty values are ignored.
func WithDirName(name string) Option {
	return func(s *Store) {
		if name != "" {
			s.dirName = name
		}
	}
}

// NewStore creates a Store rooted beneath the given app data locator.
func NewStore(appData appdata.Locator, opts ...Option) *Store {
	s := &Store{
		appData: appData,
		dirName: DirName,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Dir returns the backup directory path without creating anything.
func (s *Store) Dir() (string, error) {
	appDir, err := s.appData.Dir()
	if err != nil {
		return "", errors.Wrap(err, "locating scumm dir")
	}
	return filepath.Join(appDir, s.dirName), nil
}

// Ensure returns the backup directory path, creating the directory the
// first time. An existing directory is returned as is; creation failures
// are surfaced, not retried.
func (s *Store) Ensure() (string, error) {
	appDir, err := s.appData.Dir()
	if err != nil {
		return "", errors.Wrap(err, "creating scumm dir")
	}

	scummDir := filepath.Join(appDir, s.dirName)
	if _, err := os.Stat(scummDir); err == nil {
		return scummDir, nil
	} else if !os.IsNotExist(err) {
		return "", errors.Wrapf(err, "checking scumm dir %s", scummDir)
	}

	// The app data root is known to exist, so a single-level create suffices.
	if err := os.Mkdir(scummDir, 0o755); err != nil {
		return "", errors.Wrap(err, "creating scumm dir")
	}
	return scummDir, nil
}

// UniqueSnapshotPath returns a destination directory under root for a
// snapshot captured at t. The name is t in UTC formatted with
// TimestampLayout; should that name already exist, a numeric suffix is
// appended until a free name is found.
func UniqueSnapshotPath(root string, t time.Time) (string, error) {
	name := t.UTC().Format(TimestampLayout)
	path := filepath.Join(root, name)
	for i := 1; ; i++ {
		if _, err := os.Stat(path); err != nil {
			if os.IsNotExist(err) {
				return path, nil
			}
			return "", errors.Wrapf(err, "checking snapshot path %s", path)
		}
		path = filepath.Join(root, fmt.Sprintf("%s-%d", name, i))
	}
}

// parseSnapshotName recovers the capture instant from a snapshot directory
// name. Names carrying the numeric collision suffix UniqueSnapshotPath
// appends still parse; anything else is not a snapshot.
func parseSnapshotName(name string) (time.Time, error) {
	if t, err := time.Parse(TimestampLayout, name); err == nil {
		return t, nil
	}
	if len(name) > len(TimestampLayout)+1 && name[len(TimestampLayout)] == '-' {
		if n, err := strconv.Atoi(name[len(TimestampLayout)+1:]); err == nil && n > 0 {
			return time.Parse(TimestampLayout, name[:len(TimestampLayout)])
		}
	}
	return time.Time{}, errors.Newf("not a snapshot name: %s", name)
}

// Snapshots lists the snapshots in the store, newest first. Directory
// entries whose names do not parse as snapshot names are skipped.
// Returns ErrNoSnapshots when the store is empty or absent.
func (s *Store) Snapshots() ([]Snapshot, error) {
	appDir, err := s.appData.Dir()
	if err != nil {
		return nil, errors.Wrap(err, "listing snapshots")
	}

	scummDir := filepath.Join(appDir, s.dirName)
	entries, err := os.ReadDir(scummDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNoSnapshots
		}
		return nil, errors.Wrapf(err, "reading scumm dir %s", scummDir)
	}

	snapshots := make([]Snapshot, 0, len(entries))
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		createdAt, err := parseSnapshotName(entry.Name())
		if err != nil {
			// Not a snapshot; leave foreign directories alone
			continue
		}

		path := filepath.Join(scummDir, entry.Name())
		files, size, err := fileutil.TreeStats(path)
		if err != nil {
			return nil, errors.Wrapf(err, "sizing snapshot %s", entry.Name())
		}

		snapshots = append(snapshots, Snapshot{
			Name:      entry.Name(),
			Path:      path,
			CreatedAt: createdAt,
			Files:     files,
			Size:      size,
		})
	}

	if len(snapshots) == 0 {
		return nil, ErrNoSnapshots
	}

	// Sort by capture instant, newest first; collision suffixes break ties
	slices.SortFunc(snapshots, func(a, b Snapshot) int {
		if a.CreatedAt.After(b.CreatedAt) {
			return -1
		}
		if a.CreatedAt.Before(b.CreatedAt) {
			return 1
		}
		return strings.Compare(b.Name, a.Name)
	})

	return snapshots, nil
}

// Prune removes all but the newest keep snapshots, returning the removed
// ones. A store with nothing to prune is not an error.
func (s *Store) Prune(keep int) ([]Snapshot, error) {
	if keep <= 0 {
		return nil, errors.New("keep must be positive")
	}

	snapshots, err := s.Snapshots()
	if err != nil {
		if errors.Is(err, ErrNoSnapshots) {
			return nil, nil
		}
		return nil, err
	}

	// Already sorted newest first; delete everything beyond keep
	var removed []Snapshot
	for i := keep; i < len(snapshots); i++ {
		if err := os.RemoveAll(snapshots[i].Path); err != nil {
			return removed, errors.Wrapf(err, "removing snapshot %s", snapshots[i].Name)
		}
		removed = append(removed, snapshots[i])
	}
	return removed, nil
}

package doctor

import (
	"fmt"
	"os"

	"github.com/cockroachdb/errors"
	"github.com/shirou/gopsutil/disk"

	"github.com/SingingTree/darkest-dungeon-2-scummer/internal/appdata"
	"github.com/SingingTree/darkest-dungeon-2-scummer/internal/savefiles"
	"github.com/SingingTree/darkest-dungeon-2-scummer/internal/scumstore"
)

// AppDataCheck verifies that the game's app data directory resolves.
type AppDataCheck struct {
	loc appdata.Locator
}

var _ Check = (*AppDataCheck)(nil)

// NewAppDataCheck creates a new app data resolution check.
func NewAppDataCheck(loc appdata.Locator) *AppDataCheck {
	return &AppDataCheck{loc: loc}
}

// Name returns the unique identifier for this check.
func (c *AppDataCheck) Name() string {
	return "app-data"
}

// Category returns the grouping for this check.
func (c *AppDataCheck) Category() string {
	return "saves"
}

// Run executes the app data resolution check.
func (c *AppDataCheck) Run() *CheckResult {
	dir, err := c.loc.Dir()
	switch {
	case errors.Is(err, appdata.ErrUnsupportedPlatform):
		return &CheckResult{
			Name:     c.Name(),
			Category: c.Category(),
			Status:   SeverityError,
			Message:  fmt.Sprintf("cannot locate app data: %v", err),
			FixHint:  "set app_data_dir in config to the game's app data directory",
		}
	case errors.Is(err, appdata.ErrNotFound):
		return &CheckResult{
			Name:     c.Name(),
			Category: c.Category(),
			Status:   SeverityError,
			Message:  fmt.Sprintf("app data directory not found: %v", err),
			FixHint:  "run the game once to create it, or set app_data_dir in config",
		}
	case err != nil:
		return &CheckResult{
			Name:     c.Name(),
			Category: c.Category(),
			Status:   SeverityError,
			Message:  fmt.Sprintf("resolving app data directory: %v", err),
		}
	}

	return &CheckResult{
		Name:     c.Name(),
		Category: c.Category(),
		Status:   SeverityPass,
		Message:  "app data directory found",
		Details:  map[string]any{"path": dir},
	}
}

// ProfileCheck verifies the save tree shape and counts profile directories.
type ProfileCheck struct {
	loc *savefiles.Locator
}

var _ Check = (*ProfileCheck)(nil)

// NewProfileCheck creates a new save profile check.
func NewProfileCheck(loc *savefiles.Locator) *ProfileCheck {
	return &ProfileCheck{loc: loc}
}

// Name returns the unique identifier for this check.
func (c *ProfileCheck) Name() string {
	return "profiles"
}

// Category returns the grouping for this check.
func (c *ProfileCheck) Category() string {
	return "saves"
}

// Run executes the save profile check.
func (c *ProfileCheck) Run() *CheckResult {
	profileDirs, err := c.loc.ProfileDirs()
	switch {
	case errors.Is(err, savefiles.ErrNotFound):
		return &CheckResult{
			Name:     c.Name(),
			Category: c.Category(),
			Status:   SeverityError,
			Message:  fmt.Sprintf("save tree incomplete: %v", err),
			FixHint:  "run the game once so it creates its save tree",
		}
	case err != nil:
		return &CheckResult{
			Name:     c.Name(),
			Category: c.Category(),
			Status:   SeverityError,
			Message:  fmt.Sprintf("reading save tree: %v", err),
		}
	}

	details := map[string]any{
		"count": len(profileDirs),
		"paths": profileDirs,
	}

	switch len(profileDirs) {
	case 0:
		return &CheckResult{
			Name:     c.Name(),
			Category: c.Category(),
			Status:   SeverityWarning,
			Message:  "no profile dirs found",
			Details:  details,
			FixHint:  "create a profile in game before scumming",
		}
	case 1:
		return &CheckResult{
			Name:     c.Name(),
			Category: c.Category(),
			Status:   SeverityPass,
			Message:  "found 1 profile dir",
			Details:  details,
		}
	default:
		return &CheckResult{
			Name:     c.Name(),
			Category: c.Category(),
			Status:   SeverityError,
			Message:  fmt.Sprintf("found %d profile dirs, currently only support 1", len(profileDirs)),
			Details:  details,
			FixHint:  "pick a single profile with --latest or --pick",
		}
	}
}

// StoreCheck inspects the snapshot store and its writability.
type StoreCheck struct {
	store *scumstore.Store
}

var _ Check = (*StoreCheck)(nil)

// NewStoreCheck creates a new snapshot store check.
func NewStoreCheck(store *scumstore.Store) *StoreCheck {
	return &StoreCheck{store: store}
}

// Name returns the unique identifier for this check.
func (c *StoreCheck) Name() string {
	return "store"
}

// Category returns the grouping for this check.
func (c *StoreCheck) Category() string {
	return "store"
}

// Run executes the snapshot store check.
func (c *StoreCheck) Run() *CheckResult {
	snapshots, err := c.store.Snapshots()
	switch {
	case errors.Is(err, scumstore.ErrNoSnapshots):
		return &CheckResult{
			Name:     c.Name(),
			Category: c.Category(),
			Status:   SeverityInfo,
			Message:  "no snapshots yet",
		}
	case err != nil:
		return &CheckResult{
			Name:     c.Name(),
			Category: c.Category(),
			Status:   SeverityError,
			Message:  fmt.Sprintf("listing snapshots: %v", err),
		}
	}

	var totalSize int64
	for _, s := range snapshots {
		totalSize += s.Size
	}

	if err := c.probeWritable(); err != nil {
		return &CheckResult{
			Name:     c.Name(),
			Category: c.Category(),
			Status:   SeverityError,
			Message:  "scumm dir is not writable",
			Details:  map[string]any{"count": len(snapshots)},
			FixHint:  "check permissions on the scummed directory",
		}
	}

	return &CheckResult{
		Name:     c.Name(),
		Category: c.Category(),
		Status:   SeverityPass,
		Message:  fmt.Sprintf("%d snapshot(s) stored", len(snapshots)),
		Details: map[string]any{
			"count":       len(snapshots),
			"total_bytes": totalSize,
			"newest":      snapshots[0].Name,
		},
	}
}

// probeWritable tests the scumm dir by creating and removing a temp file.
func (c *StoreCheck) probeWritable() error {
	dir, err := c.store.Dir()
	if err != nil {
		return err
	}
	tmpFile, err := os.CreateTemp(dir, ".dd2scummer-doctor-*")
	if err != nil {
		return err
	}
	tmpPath := tmpFile.Name()
	tmpFile.Close()
	os.Remove(tmpPath)
	return nil
}

// DefaultMinFreeBytes is the free-space floor below which DiskSpaceCheck
// reports a warning.
const DefaultMinFreeBytes = 512 << 20

// DiskSpaceCheck warns when the volume holding the saves runs low on space.
type DiskSpaceCheck struct {
	loc          appdata.Locator
	minFreeBytes uint64
}

var _ Check = (*DiskSpaceCheck)(nil)

// NewDiskSpaceCheck creates a new disk space check. A minFreeBytes of 0
// selects DefaultMinFreeBytes.
func NewDiskSpaceCheck(loc appdata.Locator, minFreeBytes uint64) *DiskSpaceCheck {
	if minFreeBytes == 0 {
		minFreeBytes = DefaultMinFreeBytes
	}
	return &DiskSpaceCheck{loc: loc, minFreeBytes: minFreeBytes}
}

// Name returns the unique identifier for this check.
func (c *DiskSpaceCheck) Name() string {
	return "disk-space"
}

// Category returns the grouping for this check.
func (c *DiskSpaceCheck) Category() string {
	return "store"
}

// Run executes the disk space check.
func (c *DiskSpaceCheck) Run() *CheckResult {
	dir, err := c.loc.Dir()
	if err != nil {
		// The app-data check reports resolution failures; nothing to
		// measure here without a path.
		return &CheckResult{
			Name:     c.Name(),
			Category: c.Category(),
			Status:   SeverityInfo,
			Message:  "skipped: app data directory unresolved",
		}
	}

	usage, err := disk.Usage(dir)
	if err != nil {
		return &CheckResult{
			Name:     c.Name(),
			Category: c.Category(),
			Status:   SeverityWarning,
			Message:  fmt.Sprintf("reading disk usage for %s: %v", dir, err),
		}
	}

	details := map[string]any{
		"path":         dir,
		"free_bytes":   usage.Free,
		"total_bytes":  usage.Total,
		"used_percent": usage.UsedPercent,
	}

	if usage.Free < c.minFreeBytes {
		return &CheckResult{
			Name:     c.Name(),
			Category: c.Category(),
			Status:   SeverityWarning,
			Message:  fmt.Sprintf("only %d MiB free on the save volume", usage.Free>>20),
			Details:  details,
			FixHint:  "prune old snapshots with dd2scummer prune",
		}
	}

	return &CheckResult{
		Name:     c.Name(),
		Category: c.Category(),
		Status:   SeverityPass,
		Message:  fmt.Sprintf("%d MiB free on the save volume", usage.Free>>20),
		Details:  details,
	}
}

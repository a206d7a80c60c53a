package scumstore

import (
	"time"

	"github.com/cockroachdb/errors"
)

const (
	// DirName is the backup directory created beneath the app data root.
	DirName = "scummed"

	// TimestampLayout names snapshot directories: the capture instant in
	// UTC at microsecond precision.
	TimestampLayout = "2006-01-02T15-04-05.000000"

	// DefaultRetention is the default number of snapshots prune keeps.
	DefaultRetention = 10
)

// ErrNoSnapshots indicates the store holds no snapshots, or does not exist
// yet.
var ErrNoSnapshots = errors.New("no snapshots found")

// Snapshot describes one timestamped backup in the store.
type Snapshot struct {
	// Name is the snapshot directory name.
	Name string `json:"name"`

	// Path is the absolute path of the snapshot directory.
	Path string `json:"path"`

	// CreatedAt is the capture instant parsed from Name, in UTC.
	CreatedAt time.Time `json:"created_at"`

	// Files is the number of files in the snapshot tree.
	Files int `json:"files"`

	// Size is the total size of the snapshot tree in bytes.
	Size int64 `json:"size"`
}

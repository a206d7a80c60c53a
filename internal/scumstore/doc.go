// Package scumstore manages the scummed backup directory that lives beneath
// the game's app data root.
//
// Each backup is a full copy of a save profile in a directory named after
// its capture instant:
//
//	<app data root>/
//	└── scummed/
//	    ├── 2026-08-22T14-03-05.123456/
//	    │   └── {copied profile files...}
//	    └── 2026-08-22T14-09-41.558201/
//	        └── {copied profile files...}
//
// # Ensuring the store
//
// [Store.Ensure] returns the backup directory, creating it the first time:
//
//	store := scumstore.NewStore(locator)
//	dir, err := store.Ensure()
//
// The call is idempotent; an existing directory is returned untouched.
//
// # Snapshot naming
//
// Snapshot directories use [TimestampLayout], the capture instant in UTC at
// microsecond precision. [UniqueSnapshotPath] appends a numeric suffix in
// the unlikely event two captures land in the same microsecond.
//
// # Listing and pruning
//
// [Store.Snapshots] lists snapshots newest first, with file counts and
// sizes. [Store.Prune] removes everything beyond a retention count:
//
//	removed, err := store.Prune(10) // keep the 10 most recent
//
// Directories in the store whose names do not parse as snapshot timestamps
// are ignored by both.
package scumstore

package fileutil

import (
	"io/fs"
	"path/filepath"

	"github.com/cockroachdb/errors"
)

// TreeStats returns the number of regular files beneath root and their total
// size in bytes. Directories themselves are not counted.
func TreeStats(root string) (files int, size int64, err error) {
	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		info, err := d.Info()
		if err != nil {
			return err
		}
		files++
		size += info.Size()
		return nil
	})
	if err != nil {
		return 0, 0, errors.Wrapf(err, "walking %s", root)
	}
	return files, size, nil
}

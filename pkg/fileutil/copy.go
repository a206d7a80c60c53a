package fileutil

import (
	"io"
	"os"
	"path/filepath"

	"github.com/cockroachdb/errors"
)

// CopyDir recursively copies the contents of the directory src into dst,
// creating dst and any missing ancestors first. Files are copied byte for
// byte; symbolic links, timestamps, and extended attributes receive no
// special treatment.
//
// Copying aborts at the first failure. Entries copied before the failure
// are left in place; there is no rollback.
func CopyDir(src, dst string) error {
	if err := os.MkdirAll(dst, 0o755); err != nil {
		return errors.Wrapf(err, "creating directory %s", dst)
	}

	entries, err := os.ReadDir(src)
	if err != nil {
		return errors.Wrapf(err, "reading directory %s", src)
	}

	for _, entry := range entries {
		srcPath := filepath.Join(src, entry.Name())
		dstPath := filepath.Join(dst, entry.Name())

		if entry.IsDir() {
			if err := CopyDir(srcPath, dstPath); err != nil {
				return err
			}
		} else {
			if err := CopyFile(srcPath, dstPath); err != nil {
				return err
			}
		}
	}

	return nil
}

// CopyFile copies a single file from src to dst. The destination is created
// with the source's mode bits and truncated if it already exists.
func CopyFile(src, dst string) error {
	srcFile, err := os.Open(src)
	if err != nil {
		return errors.Wrapf(err, "opening source file %s", src)
	}
	defer srcFile.Close()

	srcInfo, err := srcFile.Stat()
	if err != nil {
		return errors.Wrapf(err, "stat source file %s", src)
	}

	dstFile, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, srcInfo.Mode())
	if err != nil {
		return errors.Wrapf(err, "creating destination file %s", dst)
	}

	if _, err := io.Copy(dstFile, srcFile); err != nil {
		dstFile.Close()
		return errors.Wrapf(err, "copying %s to %s", src, dst)
	}

	if err := dstFile.Close(); err != nil {
		return errors.Wrapf(err, "closing destination file %s", dst)
	}

	return nil
}

package materialize

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/speclite-dev/speclite/internal/platform"
)

// CopyTree recursively copies src to dst, preserving file permissions and
// modification times where the platform allows. Symlinks and other special
// files are skipped.
func CopyTree(src, dst string) error {
	srcInfo, err := os.Stat(src)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(dst, srcInfo.Mode().Perm()); err != nil {
		return err
	}

	entries, err := os.ReadDir(src)
	if err != nil {
		return err
	}

	for _, entry := range entries {
		srcPath := filepath.Join(src, entry.Name())
		dstPath := filepath.Join(dst, entry.Name())

		if entry.IsDir() {
			if err := CopyTree(srcPath, dstPath); err != nil {
				return err
			}
		} else if entry.Type().IsRegular() {
			if err := copyFile(srcPath, dstPath); err != nil {
				return err
			}
		}
		// Skip symlinks and other special files.
	}

	return nil
}

// CopyDirContents copies the children of src into dst, creating dst if
// needed. A missing src directory is a no-op.
func CopyDirContents(src, dst string) error {
	info, err := os.Stat(src)
	if err != nil || !info.IsDir() {
		return nil
	}

	if err := os.MkdirAll(dst, 0755); err != nil {
		return fmt.Errorf("creating directory %s: %w", dst, err)
	}

	entries, err := os.ReadDir(src)
	if err != nil {
		return err
	}

	for _, entry := range entries {
		srcPath := filepath.Join(src, entry.Name())
		dstPath := filepath.Join(dst, entry.Name())
		if entry.IsDir() {
			if err := CopyTree(srcPath, dstPath); err != nil {
				return err
			}
		} else if entry.Type().IsRegular() {
			if err := copyFile(srcPath, dstPath); err != nil {
				return err
			}
		}
	}

	return nil
}

// copyFile copies a single file from src to dst, preserving permissions and
// modification time.
func copyFile(src, dst string) error {
	data, err := os.ReadFile(src)
	if err != nil {
		return err
	}

	srcInfo, err := os.Stat(src)
	if err != nil {
		return err
	}

	if err := os.WriteFile(dst, data, srcInfo.Mode().Perm()); err != nil {
		return err
	}

	// Overwrites keep the destination's previous mode; re-assert the source
	// mode explicitly.
	if err := platform.Chmod(dst, srcInfo.Mode().Perm()); err != nil {
		return err
	}

	mtime := srcInfo.ModTime()
	return os.Chtimes(dst, mtime, mtime)
}

package platform

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"strings"
)

// ScriptReport summarizes one permission-normalization pass. Per-file
// failures are collected here rather than aborting the batch.
type ScriptReport struct {
	Updated  int
	Failures []string // "<relative path>: <reason>" entries
}

// Detail renders the report the way step trackers display it.
func (r ScriptReport) Detail() string {
	detail := fmt.Sprintf("%d updated", r.Updated)
	if len(r.Failures) > 0 {
		detail += fmt.Sprintf(", %d failed", len(r.Failures))
	}
	return detail
}

// EnsureExecutableScripts derives execute bits for every .sh file below
// scriptsRoot, recursively. Symlinks, non-regular files, files without a
// shebang, and files that already carry any execute bit are left untouched.
// For the rest, each class's execute bit follows its read bit, and the
// owner-execute bit is always set so the script stays runnable by its owner.
// The pass is a no-op on platforms without a POSIX permission model.
func EnsureExecutableScripts(scriptsRoot string) ScriptReport {
	var report ScriptReport

	if runtime.GOOS == "windows" {
		return report
	}
	if info, err := os.Stat(scriptsRoot); err != nil || !info.IsDir() {
		return report
	}

	_ = filepath.WalkDir(scriptsRoot, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			report.Failures = append(report.Failures, reportEntry(scriptsRoot, path, err))
			if d != nil && d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}
		if d.IsDir() || !strings.HasSuffix(d.Name(), ".sh") {
			return nil
		}
		// WalkDir does not follow symlinks, so a non-regular type here is a
		// symlink or special file: skip it.
		if !d.Type().IsRegular() {
			return nil
		}

		updated, err := ensureExecutable(path)
		if err != nil {
			report.Failures = append(report.Failures, reportEntry(scriptsRoot, path, err))
			return nil
		}
		if updated {
			report.Updated++
		}
		return nil
	})

	return report
}

// ensureExecutable applies the read-bit-to-execute-bit derivation to a single
// script. It returns false when the file was intentionally skipped.
func ensureExecutable(path string) (bool, error) {
	if !hasShebang(path) {
		return false, nil
	}

	info, err := os.Stat(path)
	if err != nil {
		return false, err
	}
	mode := info.Mode().Perm()
	if mode&0o111 != 0 {
		return false, nil
	}

	newMode := mode
	if mode&0o400 != 0 {
		newMode |= 0o100
	}
	if mode&0o040 != 0 {
		newMode |= 0o010
	}
	if mode&0o004 != 0 {
		newMode |= 0o001
	}
	// Owner-execute is guaranteed regardless of the read-bit configuration.
	newMode |= 0o100

	if err := Chmod(path, newMode); err != nil {
		return false, err
	}
	return true, nil
}

// hasShebang reports whether the file starts with the interpreter marker.
// Unreadable files are treated as non-scripts.
func hasShebang(path string) bool {
	f, err := os.Open(path)
	if err != nil {
		return false
	}
	defer f.Close()

	var marker [2]byte
	if _, err := io.ReadFull(f, marker[:]); err != nil {
		return false
	}
	return marker[0] == '#' && marker[1] == '!'
}

func reportEntry(root, path string, err error) string {
	rel, relErr := filepath.Rel(root, path)
	if relErr != nil {
		rel = path
	}
	return fmt.Sprintf("%s: %v", rel, err)
}

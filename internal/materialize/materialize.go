package materialize

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// Settings files in this location get deep-merged instead of overwritten.
const (
	settingsFileName = "settings.json"
	settingsParent   = ".vscode"
)

// Result collects the non-fatal events of one materialization.
type Result struct {
	Overwritten []string // pre-existing top-level destination files replaced
	Merged      []string // settings files that were deep-merged
	Warnings    []string // degraded operations (settings fallbacks etc.)
}

// Apply places a complete staging tree onto destRoot.
//
// With merge=false (fresh destination) the staging tree becomes the
// destination verbatim via recursive copy; destRoot must not already exist.
//
// With merge=true each top-level staging entry is merged into the existing
// destination: plain files are copied with unconditional overwrite,
// directories absent from the destination are copied wholesale, and
// directories present on both sides are walked file-by-file, routing
// recognized settings files through the JSON merger. Merging only adds or
// overwrites; destination-only content is never removed.
func Apply(stagingRoot, destRoot string, merge bool) (*Result, error) {
	result := &Result{}

	if !merge {
		if _, err := os.Lstat(destRoot); err == nil {
			return nil, fmt.Errorf("destination %s already exists", destRoot)
		}
		if err := CopyTree(stagingRoot, destRoot); err != nil {
			return nil, fmt.Errorf("copying staging tree to %s: %w", destRoot, err)
		}
		return result, nil
	}

	entries, err := os.ReadDir(stagingRoot)
	if err != nil {
		return nil, fmt.Errorf("reading staging tree: %w", err)
	}

	for _, entry := range entries {
		srcPath := filepath.Join(stagingRoot, entry.Name())
		destPath := filepath.Join(destRoot, entry.Name())

		if !entry.IsDir() {
			if _, err := os.Stat(destPath); err == nil {
				result.Overwritten = append(result.Overwritten, entry.Name())
			}
			if err := copyFile(srcPath, destPath); err != nil {
				return result, fmt.Errorf("copying %s: %w", entry.Name(), err)
			}
			continue
		}

		if _, err := os.Stat(destPath); err != nil {
			if err := CopyTree(srcPath, destPath); err != nil {
				return result, fmt.Errorf("copying directory %s: %w", entry.Name(), err)
			}
			continue
		}

		if err := mergeDir(srcPath, destPath, result); err != nil {
			return result, fmt.Errorf("merging directory %s: %w", entry.Name(), err)
		}
	}

	return result, nil
}

// mergeDir walks a staging directory that already exists in the destination
// and applies each file individually, creating parent directories as needed.
func mergeDir(srcDir, destDir string, result *Result) error {
	return filepath.WalkDir(srcDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !d.Type().IsRegular() {
			return nil
		}

		rel, err := filepath.Rel(srcDir, path)
		if err != nil {
			return err
		}
		destFile := filepath.Join(destDir, rel)

		if err := os.MkdirAll(filepath.Dir(destFile), 0755); err != nil {
			return err
		}

		if isSettingsPath(destFile) {
			return applySettings(path, destFile, result)
		}
		return copyFile(path, destFile)
	})
}

// isSettingsPath reports whether a destination file is at a recognized
// settings location (.vscode/settings.json).
func isSettingsPath(path string) bool {
	return filepath.Base(path) == settingsFileName &&
		filepath.Base(filepath.Dir(path)) == settingsParent
}

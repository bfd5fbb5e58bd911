package resources

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

//go:embed all:bundle
var bundleFS embed.FS

const bundleRoot = "bundle"

// Required lists the top-level bundle directories the scaffolder cannot work
// without.
var Required = []string{"templates", "scripts"}

// MissingResourceError indicates the extracted bundle lacks a required
// top-level directory. It is raised before any destination mutation.
type MissingResourceError struct {
	Name string
}

func (e *MissingResourceError) Error() string {
	return fmt.Sprintf("bundled resource %q is missing or empty", e.Name)
}

// MaterializeTo extracts the embedded bundle into dir, creating it if needed.
// Files are written with mode 0644; execute bits for shell scripts are
// derived later, after the tree reaches its destination.
func MaterializeTo(dir string) error {
	err := fs.WalkDir(bundleFS, bundleRoot, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		rel, err := filepath.Rel(bundleRoot, path)
		if err != nil {
			return err
		}
		target := filepath.Join(dir, rel)

		if d.IsDir() {
			return os.MkdirAll(target, 0755)
		}

		data, err := bundleFS.ReadFile(path)
		if err != nil {
			return fmt.Errorf("reading embedded %s: %w", path, err)
		}
		return os.WriteFile(target, data, 0644)
	})
	if err != nil {
		return fmt.Errorf("materializing bundled resources: %w", err)
	}
	return nil
}

// Verify checks that every required top-level directory exists under root and
// is non-empty. It returns a MissingResourceError for the first absent one.
func Verify(root string) error {
	for _, name := range Required {
		entries, err := os.ReadDir(filepath.Join(root, name))
		if err != nil || len(entries) == 0 {
			return &MissingResourceError{Name: name}
		}
	}
	return nil
}

// ReadFile returns the content of a single bundled file by its
// bundle-relative path, e.g. "templates/vscode-settings.json".
func ReadFile(name string) ([]byte, error) {
	return bundleFS.ReadFile(bundleRoot + "/" + name)
}

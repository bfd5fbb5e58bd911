package tools

import (
	"os"
	"os/exec"
	"path/filepath"
)

// Exists reports whether the named executable is reachable. For "claude" it
// also accepts the migrated local installation at ~/.claude/local/claude,
// which lives outside PATH after `claude migrate-installer` runs.
func Exists(tool string) bool {
	if tool == "claude" {
		if home, err := os.UserHomeDir(); err == nil {
			local := filepath.Join(home, ".claude", "local", "claude")
			if info, err := os.Stat(local); err == nil && !info.IsDir() {
				return true
			}
		}
	}

	_, err := exec.LookPath(tool)
	return err == nil
}

// MissingFrom filters names down to the tools Exists cannot find.
func MissingFrom(names []string) []string {
	var missing []string
	for _, name := range names {
		if !Exists(name) {
			missing = append(missing, name)
		}
	}
	return missing
}

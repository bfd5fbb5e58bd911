package vcs

import (
	"fmt"
	"os/exec"
	"strings"
)

// Available reports whether a git binary is on PATH.
func Available() bool {
	_, err := exec.LookPath("git")
	return err == nil
}

// IsRepo reports whether path lies inside a git work tree.
func IsRepo(path string) bool {
	cmd := exec.Command("git", "rev-parse", "--is-inside-work-tree")
	cmd.Dir = path
	out, err := cmd.Output()
	if err != nil {
		return false
	}
	return strings.TrimSpace(string(out)) == "true"
}

// Init creates a git repository at path and commits everything in it. It
// returns false with a diagnostic when any git step fails; the scaffolded
// tree is left intact either way.
func Init(path string) (bool, string) {
	steps := [][]string{
		{"init"},
		{"add", "."},
		{"commit", "-m", "Initial commit from SpecLite template"},
	}
	for _, args := range steps {
		cmd := exec.Command("git", args...)
		cmd.Dir = path
		if out, err := cmd.CombinedOutput(); err != nil {
			return false, fmt.Sprintf("git %s: %v: %s", strings.Join(args, " "), err, strings.TrimSpace(string(out)))
		}
	}
	return true, ""
}

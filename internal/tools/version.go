package tools

import (
	"fmt"
	"os/exec"
	"regexp"
	"strings"

	"github.com/Masterminds/semver/v3"
)

var versionPattern = regexp.MustCompile(`\d+\.\d+(\.\d+)?`)

// Version runs `<tool> --version` and extracts the first dotted version
// number from its output.
func Version(tool string) (string, error) {
	out, err := exec.Command(tool, "--version").CombinedOutput()
	if err != nil {
		return "", fmt.Errorf("running %s --version: %w", tool, err)
	}
	match := versionPattern.FindString(string(out))
	if match == "" {
		return "", fmt.Errorf("no version number in %s --version output", tool)
	}
	return match, nil
}

// MeetsMinimum compares two version strings using semver. A leading "v" on
// either side is tolerated.
func MeetsMinimum(current, minimum string) (bool, error) {
	cv, err := parseSemver(current)
	if err != nil {
		return false, fmt.Errorf("parsing current version %q: %w", current, err)
	}
	mv, err := parseSemver(minimum)
	if err != nil {
		return false, fmt.Errorf("parsing minimum version %q: %w", minimum, err)
	}
	return cv.Compare(mv) >= 0, nil
}

func parseSemver(version string) (*semver.Version, error) {
	version = strings.TrimPrefix(version, "v")
	return semver.NewVersion(version)
}

// Package branding provides compile-time identity values for the CLI.
//
// Forkers edit branding.yaml in this package and rebuild; Go's //go:embed
// bakes the values into the binary.
package branding

import (
	_ "embed"
	"strings"
	"sync"

	"go.yaml.in/yaml/v3"
)

//go:embed branding.yaml
var rawBranding []byte

var (
	once     sync.Once
	defaults brand
)

type brand struct {
	CLIName       string `yaml:"cli_name"`
	DisplayName   string `yaml:"display_name"`
	Description   string `yaml:"description"`
	Tagline       string `yaml:"tagline"`
	HomeDir       string `yaml:"home_dir"`
	ProjectDir    string `yaml:"project_dir"`
	CommandPrefix string `yaml:"command_prefix"`
	EnvPrefix     string `yaml:"env_prefix"`
	GoModule      string `yaml:"go_module"`
	GitHubRepo    string `yaml:"github_repo"`
}

func load() {
	once.Do(func() {
		// Hard defaults in case the embedded file is missing/empty.
		defaults = brand{
			CLIName:       "speclite",
			DisplayName:   "SpecLite",
			Description:   "Setup tool for SpecLite spec-driven development projects",
			Tagline:       "SpecLite - Spec-Driven Development Toolkit",
			HomeDir:       ".speclite",
			ProjectDir:    ".speclite",
			CommandPrefix: "sl.",
			EnvPrefix:     "SPECLITE",
			GoModule:      "github.com/speclite-dev/speclite",
			GitHubRepo:    "speclite-dev/speclite",
		}
		// Overlay with embedded YAML values.
		_ = yaml.Unmarshal(rawBranding, &defaults)
	})
}

// CLIName returns the root command name (e.g., "speclite").
func CLIName() string { load(); return defaults.CLIName }

// DisplayName returns the human-readable product name (e.g., "SpecLite").
func DisplayName() string { load(); return defaults.DisplayName }

// Description returns the short product description.
func Description() string { load(); return defaults.Description }

// Tagline returns the banner tagline.
func Tagline() string { load(); return defaults.Tagline }

// HomeDir returns the dot-directory name under $HOME (e.g., ".speclite").
func HomeDir() string { load(); return defaults.HomeDir }

// ProjectDir returns the project-owned namespace directory that holds
// relocated memory/scripts/templates content (e.g., ".speclite").
func ProjectDir() string { load(); return defaults.ProjectDir }

// CommandPrefix returns the prefix applied to generated command file
// names (e.g., "sl." producing "sl.specify.md").
func CommandPrefix() string { load(); return defaults.CommandPrefix }

// EnvPrefix returns the environment variable prefix (e.g., "SPECLITE").
func EnvPrefix() string { load(); return defaults.EnvPrefix }

// GoModule returns the Go module path. Used by release tooling, not at runtime.
func GoModule() string { load(); return defaults.GoModule }

// GitHubRepo returns the "owner/repo" string.
func GitHubRepo() string { load(); return defaults.GitHubRepo }

// EnvVar returns a fully qualified env var name, e.g., EnvVar("HOME") → "SPECLITE_HOME".
func EnvVar(suffix string) string {
	load()
	return defaults.EnvPrefix + "_" + strings.ToUpper(suffix)
}

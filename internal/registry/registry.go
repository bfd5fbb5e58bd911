package registry

import (
	_ "embed"
	"fmt"
	"runtime"
	"strings"
	"sync"

	"go.yaml.in/yaml/v3"
)

//go:embed agents.yaml
var rawAgents []byte

// Profile describes one supported AI assistant: where its generated command
// files live, which output dialect they use, and how its argument placeholder
// is spelled.
type Profile struct {
	ID          string `yaml:"id"`
	Name        string `yaml:"name"`
	Folder      string `yaml:"folder"`
	CommandsDir string `yaml:"commands_dir"`
	Extension   string `yaml:"extension"`
	ArgFormat   string `yaml:"arg_format"`
	Format      string `yaml:"format"`
	RequiresCLI bool   `yaml:"requires_cli"`
	InstallURL  string `yaml:"install_url,omitempty"`
}

// StructuredPrompt reports whether rendered commands for this profile are
// wrapped as a structured-prompt document (description + fenced prompt body)
// instead of being emitted verbatim.
func (p Profile) StructuredPrompt() bool {
	return p.Format == "toml"
}

// ScriptVariant selects a platform-specific command flavor within a
// template's nested script mapping.
type ScriptVariant string

const (
	VariantShell      ScriptVariant = "sh"
	VariantPowerShell ScriptVariant = "ps"
)

// Variants lists the closed set of script variants in display order.
func Variants() []ScriptVariant {
	return []ScriptVariant{VariantShell, VariantPowerShell}
}

// VariantDescription returns the human-readable label for a variant, or an
// empty string for an unknown one.
func VariantDescription(v ScriptVariant) string {
	switch v {
	case VariantShell:
		return "POSIX Shell (bash/zsh)"
	case VariantPowerShell:
		return "PowerShell"
	default:
		return ""
	}
}

// ValidVariant reports whether v is a member of the closed variant set.
func ValidVariant(v ScriptVariant) bool {
	return VariantDescription(v) != ""
}

// DefaultVariant returns the script variant matching the host platform.
func DefaultVariant() ScriptVariant {
	if runtime.GOOS == "windows" {
		return VariantPowerShell
	}
	return VariantShell
}

type agentFile struct {
	Agents []Profile `yaml:"agents"`
}

var (
	loadOnce sync.Once
	loaded   agentFile
	loadErr  error
)

func load() error {
	loadOnce.Do(func() {
		result, err := Validate(rawAgents)
		if err != nil {
			loadErr = fmt.Errorf("validating agent registry: %w", err)
			return
		}
		if !result.Valid {
			msgs := make([]string, 0, len(result.Issues))
			for _, issue := range result.Issues {
				msg := issue.Message
				if issue.Path != "" {
					msg = issue.Path + ": " + msg
				}
				msgs = append(msgs, msg)
			}
			loadErr = fmt.Errorf("embedded agent registry is invalid: %s", strings.Join(msgs, "; "))
			return
		}
		if err := yaml.Unmarshal(rawAgents, &loaded); err != nil {
			loadErr = fmt.Errorf("parsing agent registry: %w", err)
		}
	})
	return loadErr
}

// ValidateEmbedded checks the embedded agent registry against its schema and
// reports any issues found.
func ValidateEmbedded() (*ValidationResult, error) {
	return Validate(rawAgents)
}

// All returns every agent profile in registry order.
func All() ([]Profile, error) {
	if err := load(); err != nil {
		return nil, err
	}
	return loaded.Agents, nil
}

// Get returns the profile for the given agent id. When the registry fails to
// load, every lookup misses; All surfaces the load error.
func Get(id string) (Profile, bool) {
	if err := load(); err != nil {
		return Profile{}, false
	}
	for _, p := range loaded.Agents {
		if p.ID == id {
			return p, true
		}
	}
	return Profile{}, false
}

// IDs returns all agent ids in registry order.
func IDs() ([]string, error) {
	profiles, err := All()
	if err != nil {
		return nil, err
	}
	ids := make([]string, len(profiles))
	for i, p := range profiles {
		ids[i] = p.ID
	}
	return ids, nil
}

// ParseSelection splits a comma-separated agent list, trimming whitespace and
// dropping duplicates while preserving order.
func ParseSelection(s string) []string {
	parts := strings.Split(s, ",")
	seen := make(map[string]bool, len(parts))
	selected := make([]string, 0, len(parts))
	for _, part := range parts {
		id := strings.TrimSpace(part)
		if id == "" || seen[id] {
			continue
		}
		seen[id] = true
		selected = append(selected, id)
	}
	return selected
}

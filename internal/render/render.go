package render

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/speclite-dev/speclite/internal/branding"
	"github.com/speclite-dev/speclite/internal/frontmatter"
	"github.com/speclite-dev/speclite/internal/registry"
)

// Placeholder tokens substituted into template bodies.
const (
	scriptToken      = "{SCRIPT}"
	agentScriptToken = "{AGENT_SCRIPT}"
	argsToken        = "{ARGS}"
	agentToken       = "__AGENT__"
)

// MissingScriptMarker returns the visible placeholder substituted when a
// template has no command registered for the requested script variant.
// Rendering never hard-fails on a missing variant.
func MissingScriptMarker(variant registry.ScriptVariant) string {
	return fmt.Sprintf("(Missing script command for %s)", variant)
}

// Command renders one template document for one agent profile with a fixed
// script variant. It is a pure function of its inputs.
func Command(doc string, profile registry.Profile, variant registry.ScriptVariant) string {
	description := frontmatter.ExtractDescription(doc)

	scriptCommand := frontmatter.ExtractScriptCommand(doc, string(variant))
	if scriptCommand == "" {
		scriptCommand = MissingScriptMarker(variant)
	}
	agentScriptCommand := frontmatter.ExtractAgentScriptCommand(doc, string(variant))

	body := strings.ReplaceAll(doc, scriptToken, scriptCommand)
	if agentScriptCommand != "" {
		body = strings.ReplaceAll(body, agentScriptToken, agentScriptCommand)
	}
	body = frontmatter.StripBuildSections(body)
	body = strings.ReplaceAll(body, argsToken, profile.ArgFormat)
	body = strings.ReplaceAll(body, agentToken, profile.ID)
	body = RewritePaths(body)

	if profile.StructuredPrompt() {
		return wrapStructuredPrompt(description, body)
	}
	return strings.TrimRight(body, "\n") + "\n"
}

// wrapStructuredPrompt emits the TOML command dialect: a description field
// plus a fenced prompt body. Backslashes are doubled so the body survives the
// consumer's string unescaping, and trailing blank lines are trimmed before
// the closing fence.
func wrapStructuredPrompt(description, body string) string {
	body = strings.ReplaceAll(body, `\`, `\\`)
	body = strings.TrimRight(body, "\n")
	return fmt.Sprintf("description = \"%s\"\n\nprompt = \"\"\"\n%s\n\"\"\"\n", description, body)
}

// OutputFileName returns the deterministic name for a rendered command file:
// the command prefix, the template stem, and the profile's extension.
func OutputFileName(templateName string, profile registry.Profile) string {
	stem := strings.TrimSuffix(templateName, ".md")
	return branding.CommandPrefix() + stem + "." + profile.Extension
}

// All renders every command template under templatesDir/commands into
// outputDir for the given profile and variant, creating outputDir if needed.
// It returns the number of files written. A missing commands directory
// renders nothing and is not an error.
func All(templatesDir, outputDir string, profile registry.Profile, variant registry.ScriptVariant) (int, error) {
	commandsDir := filepath.Join(templatesDir, "commands")
	entries, err := os.ReadDir(commandsDir)
	if err != nil {
		if os.IsNotExist(err) {
			return 0, nil
		}
		return 0, fmt.Errorf("reading commands directory: %w", err)
	}

	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return 0, fmt.Errorf("creating output directory %s: %w", outputDir, err)
	}

	count := 0
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".md") {
			continue
		}

		data, err := os.ReadFile(filepath.Join(commandsDir, entry.Name()))
		if err != nil {
			return count, fmt.Errorf("reading template %s: %w", entry.Name(), err)
		}
		doc := strings.ReplaceAll(string(data), "\r", "")

		output := Command(doc, profile, variant)
		outPath := filepath.Join(outputDir, OutputFileName(entry.Name(), profile))
		if err := os.WriteFile(outPath, []byte(output), 0644); err != nil {
			return count, fmt.Errorf("writing %s: %w", outPath, err)
		}
		count++
	}
	return count, nil
}

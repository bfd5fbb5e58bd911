//go:build integration

package integration_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/speclite-dev/speclite/internal/registry"
	"github.com/speclite-dev/speclite/internal/scaffold"
)

// TestFreshScaffoldAllAgents runs the full pipeline for every registered
// agent into a fresh destination and verifies the resulting tree.
func TestFreshScaffoldAllAgents(t *testing.T) {
	ids, err := registry.IDs()
	if err != nil {
		t.Fatalf("loading registry: %v", err)
	}

	dest := filepath.Join(t.TempDir(), "project")
	result, err := scaffold.Run(scaffold.Options{
		ProjectPath: dest,
		Agents:      ids,
		Variant:     registry.VariantShell,
	})
	if err != nil {
		t.Fatalf("scaffold.Run: %v", err)
	}
	if result.Rendered == 0 {
		t.Fatal("no command files rendered")
	}

	// Shared project tree.
	assertDirExists(t, filepath.Join(dest, ".speclite", "memory"))
	assertDirExists(t, filepath.Join(dest, ".speclite", "scripts", "sh"))
	assertDirExists(t, filepath.Join(dest, ".speclite", "scripts", "ps"))
	assertFileExists(t, filepath.Join(dest, ".speclite", "templates", "plan-template.md"))

	// Per-agent command trees.
	profiles, err := registry.All()
	if err != nil {
		t.Fatal(err)
	}
	for _, profile := range profiles {
		dir := filepath.Join(dest, filepath.FromSlash(profile.CommandsDir))
		assertDirExists(t, dir)
		entries, err := os.ReadDir(dir)
		if err != nil {
			t.Fatal(err)
		}
		if len(entries) == 0 {
			t.Errorf("no commands rendered for %s", profile.ID)
		}
	}

	// Agent specials. The Gemini notice lands at the project root.
	assertFileExists(t, filepath.Join(dest, "GEMINI.md"))
	assertDirExists(t, filepath.Join(dest, ".github", "prompts"))
	assertFileExists(t, filepath.Join(dest, ".vscode", "settings.json"))
}

// TestRenderedCommandContent checks substitution results end to end: script
// commands resolved, placeholders replaced, paths rewritten into the project
// directory.
func TestRenderedCommandContent(t *testing.T) {
	dest := filepath.Join(t.TempDir(), "project")
	_, err := scaffold.Run(scaffold.Options{
		ProjectPath: dest,
		Agents:      []string{"claude", "gemini"},
		Variant:     registry.VariantShell,
	})
	if err != nil {
		t.Fatalf("scaffold.Run: %v", err)
	}

	specify := filepath.Join(dest, ".claude", "commands", "sl.specify.md")
	assertFileContains(t, specify, ".speclite/scripts/sh/create-new-feature.sh")
	assertFileContains(t, specify, "$ARGUMENTS")
	assertFileContains(t, specify, ".speclite/templates/spec-template.md")
	assertFileNotContains(t, specify, "{SCRIPT}")
	assertFileNotContains(t, specify, "{ARGS}")
	assertFileNotContains(t, specify, "scripts:")

	plan := filepath.Join(dest, ".claude", "commands", "sl.plan.md")
	assertFileContains(t, plan, ".speclite/scripts/sh/update-agent-context.sh claude")
	assertFileNotContains(t, plan, "__AGENT__")

	geminiPlan := filepath.Join(dest, ".gemini", "commands", "sl.plan.toml")
	assertFileContains(t, geminiPlan, `description = "`)
	assertFileContains(t, geminiPlan, `prompt = """`)
	assertFileContains(t, geminiPlan, "{{args}}")
	assertFileContains(t, geminiPlan, "update-agent-context.sh gemini")
}

// TestHereMergeKeepsExistingContent scaffolds into a populated directory and
// verifies merge semantics, including the settings deep merge.
func TestHereMergeKeepsExistingContent(t *testing.T) {
	dest := t.TempDir()
	if err := os.WriteFile(filepath.Join(dest, "main.go"), []byte("package main\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.MkdirAll(filepath.Join(dest, ".vscode"), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dest, ".vscode", "settings.json"),
		[]byte(`{"files.trimTrailingWhitespace": true}`), 0644); err != nil {
		t.Fatal(err)
	}

	result, err := scaffold.Run(scaffold.Options{
		ProjectPath: dest,
		Here:        true,
		Agents:      []string{"copilot"},
		Variant:     registry.VariantShell,
	})
	if err != nil {
		t.Fatalf("scaffold.Run: %v", err)
	}

	assertFileContains(t, filepath.Join(dest, "main.go"), "package main")

	settingsPath := filepath.Join(dest, ".vscode", "settings.json")
	data, err := os.ReadFile(settingsPath)
	if err != nil {
		t.Fatal(err)
	}
	var settings map[string]any
	if err := json.Unmarshal(data, &settings); err != nil {
		t.Fatalf("merged settings invalid: %v", err)
	}
	for _, key := range []string{"files.trimTrailingWhitespace", "chat.promptFiles"} {
		if _, ok := settings[key]; !ok {
			t.Errorf("merged settings missing %q", key)
		}
	}
	if len(result.Merged) == 0 {
		t.Error("result.Merged empty after settings merge")
	}
}

// TestScriptsExecutableAfterScaffold verifies the permission pass on the
// materialized scripts.
func TestScriptsExecutableAfterScaffold(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("no POSIX permission model on Windows")
	}

	dest := filepath.Join(t.TempDir(), "project")
	if _, err := scaffold.Run(scaffold.Options{
		ProjectPath: dest,
		Agents:      []string{"claude"},
		Variant:     registry.VariantShell,
	}); err != nil {
		t.Fatalf("scaffold.Run: %v", err)
	}

	shDir := filepath.Join(dest, ".speclite", "scripts", "sh")
	entries, err := os.ReadDir(shDir)
	if err != nil {
		t.Fatal(err)
	}
	for _, entry := range entries {
		info, err := os.Stat(filepath.Join(shDir, entry.Name()))
		if err != nil {
			t.Fatal(err)
		}
		if info.Mode().Perm()&0o100 == 0 {
			t.Errorf("%s lacks owner execute bit: %o", entry.Name(), info.Mode().Perm())
		}
	}
}

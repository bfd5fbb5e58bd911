package resources

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestMaterializeToExtractsBundle(t *testing.T) {
	dir := t.TempDir()
	if err := MaterializeTo(dir); err != nil {
		t.Fatalf("MaterializeTo() error: %v", err)
	}

	for _, path := range []string{
		"templates/commands/specify.md",
		"templates/spec-template.md",
		"templates/vscode-settings.json",
		"scripts/sh/create-new-feature.sh",
		"scripts/ps/create-new-feature.ps1",
		"memory/constitution.md",
		"agent_templates/gemini/GEMINI.md",
	} {
		if _, err := os.Stat(filepath.Join(dir, path)); err != nil {
			t.Errorf("expected %s after extraction: %v", path, err)
		}
	}
}

func TestMaterializedCommandTemplatesHaveFrontmatter(t *testing.T) {
	dir := t.TempDir()
	if err := MaterializeTo(dir); err != nil {
		t.Fatal(err)
	}

	commands, err := os.ReadDir(filepath.Join(dir, "templates", "commands"))
	if err != nil {
		t.Fatal(err)
	}
	if len(commands) == 0 {
		t.Fatal("no command templates in bundle")
	}
	for _, entry := range commands {
		data, err := os.ReadFile(filepath.Join(dir, "templates", "commands", entry.Name()))
		if err != nil {
			t.Fatal(err)
		}
		if !strings.HasPrefix(string(data), "---\n") {
			t.Errorf("%s does not start with a frontmatter block", entry.Name())
		}
	}
}

func TestMaterializedShellScriptsHaveShebang(t *testing.T) {
	dir := t.TempDir()
	if err := MaterializeTo(dir); err != nil {
		t.Fatal(err)
	}

	err := filepath.Walk(filepath.Join(dir, "scripts", "sh"), func(path string, info os.FileInfo, err error) error {
		if err != nil || info.IsDir() {
			return err
		}
		data, readErr := os.ReadFile(path)
		if readErr != nil {
			return readErr
		}
		if !strings.HasPrefix(string(data), "#!") {
			t.Errorf("%s lacks a shebang", filepath.Base(path))
		}
		return nil
	})
	if err != nil {
		t.Fatal(err)
	}
}

func TestVerify(t *testing.T) {
	dir := t.TempDir()
	if err := MaterializeTo(dir); err != nil {
		t.Fatal(err)
	}
	if err := Verify(dir); err != nil {
		t.Errorf("Verify() on full bundle: %v", err)
	}

	empty := t.TempDir()
	err := Verify(empty)
	var missing *MissingResourceError
	if !errors.As(err, &missing) {
		t.Fatalf("Verify() on empty dir = %v, want MissingResourceError", err)
	}
	if missing.Name != "templates" {
		t.Errorf("missing resource = %q, want templates", missing.Name)
	}
}

func TestReadFile(t *testing.T) {
	data, err := ReadFile("templates/vscode-settings.json")
	if err != nil {
		t.Fatalf("ReadFile() error: %v", err)
	}
	if !strings.Contains(string(data), "chat.promptFiles") {
		t.Error("vscode-settings.json missing expected key")
	}

	if _, err := ReadFile("templates/nope.md"); err == nil {
		t.Error("expected error for unknown bundled file")
	}
}

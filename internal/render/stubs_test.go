package render

import (
	"os"
	"path/filepath"
	"testing"
)

func TestPromptStubs(t *testing.T) {
	agentsDir := t.TempDir()
	for _, name := range []string{"sl.specify.agent.md", "sl.plan.agent.md"} {
		if err := os.WriteFile(filepath.Join(agentsDir, name), []byte("command body"), 0644); err != nil {
			t.Fatal(err)
		}
	}
	// Files outside the naming scheme produce no stub.
	if err := os.WriteFile(filepath.Join(agentsDir, "README.md"), []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}

	promptsDir := filepath.Join(t.TempDir(), "prompts")
	count, err := PromptStubs(agentsDir, promptsDir)
	if err != nil {
		t.Fatalf("PromptStubs failed: %v", err)
	}
	if count != 2 {
		t.Errorf("expected 2 stubs, got %d", count)
	}

	data, err := os.ReadFile(filepath.Join(promptsDir, "sl.specify.prompt.md"))
	if err != nil {
		t.Fatalf("reading stub: %v", err)
	}
	want := "---\nagent: sl.specify\n---\n"
	if string(data) != want {
		t.Errorf("stub content = %q, want %q", string(data), want)
	}
}

func TestPromptStubsEmptyDir(t *testing.T) {
	count, err := PromptStubs(t.TempDir(), filepath.Join(t.TempDir(), "prompts"))
	if err != nil {
		t.Fatalf("PromptStubs failed: %v", err)
	}
	if count != 0 {
		t.Errorf("expected 0 stubs, got %d", count)
	}
}

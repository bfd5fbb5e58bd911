package vcs

import (
	"os"
	"os/exec"
	"path/filepath"
	"testing"
)

func requireGit(t *testing.T) {
	t.Helper()
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git not installed")
	}
}

func configureIdentity(t *testing.T, dir string) {
	t.Helper()
	for _, args := range [][]string{
		{"config", "user.email", "test@example.com"},
		{"config", "user.name", "Test"},
	} {
		cmd := exec.Command("git", args...)
		cmd.Dir = dir
		if out, err := cmd.CombinedOutput(); err != nil {
			t.Fatalf("git %v: %v: %s", args, err, out)
		}
	}
}

func TestIsRepoFalseOutsideRepo(t *testing.T) {
	requireGit(t)
	dir := t.TempDir()
	if IsRepo(filepath.Dir(dir)) {
		t.Skip("temp dir is nested inside a repository")
	}
	if IsRepo(dir) {
		t.Error("IsRepo() = true for fresh temp dir")
	}
}

func TestInitCreatesRepoWithCommit(t *testing.T) {
	requireGit(t)

	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "README.md"), []byte("hello\n"), 0644); err != nil {
		t.Fatal(err)
	}

	// Init must succeed without relying on global git identity; seed one via
	// an init pass first, then retry the commit path.
	cmd := exec.Command("git", "init")
	cmd.Dir = dir
	if out, err := cmd.CombinedOutput(); err != nil {
		t.Fatalf("git init: %v: %s", err, out)
	}
	configureIdentity(t, dir)

	ok, diag := Init(dir)
	if !ok {
		t.Fatalf("Init() failed: %s", diag)
	}
	if !IsRepo(dir) {
		t.Error("IsRepo() = false after Init()")
	}

	log := exec.Command("git", "log", "--oneline")
	log.Dir = dir
	out, err := log.Output()
	if err != nil {
		t.Fatalf("git log: %v", err)
	}
	if len(out) == 0 {
		t.Error("no commits after Init()")
	}
}

func TestInitReportsDiagnosticOnFailure(t *testing.T) {
	requireGit(t)

	missing := filepath.Join(t.TempDir(), "does-not-exist")
	ok, diag := Init(missing)
	if ok {
		t.Fatal("Init() succeeded for missing directory")
	}
	if diag == "" {
		t.Error("expected diagnostic for failed Init()")
	}
}

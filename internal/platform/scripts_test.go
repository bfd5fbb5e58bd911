package platform

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

func writeScript(t *testing.T, path, content string, mode os.FileMode) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.Chmod(path, mode); err != nil {
		t.Fatal(err)
	}
}

func modeOf(t *testing.T, path string) os.FileMode {
	t.Helper()
	info, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	return info.Mode().Perm()
}

func skipOnWindows(t *testing.T) {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("no POSIX permission model on Windows")
	}
}

func TestEnsureExecutableScriptsDerivesFromReadBits(t *testing.T) {
	skipOnWindows(t)

	tests := []struct {
		name string
		mode os.FileMode
		want os.FileMode
	}{
		{"world readable", 0o644, 0o755},
		{"group readable", 0o640, 0o750},
		{"owner only", 0o600, 0o700},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root := t.TempDir()
			script := filepath.Join(root, "sh", "run.sh")
			writeScript(t, script, "#!/bin/sh\necho ok\n", tt.mode)

			report := EnsureExecutableScripts(root)
			if report.Updated != 1 {
				t.Errorf("Updated = %d, want 1", report.Updated)
			}
			if len(report.Failures) != 0 {
				t.Errorf("unexpected failures: %v", report.Failures)
			}
			if got := modeOf(t, script); got != tt.want {
				t.Errorf("mode = %o, want %o", got, tt.want)
			}
		})
	}
}

func TestEnsureExecutableScriptsSkips(t *testing.T) {
	skipOnWindows(t)

	root := t.TempDir()

	alreadyExec := filepath.Join(root, "exec.sh")
	writeScript(t, alreadyExec, "#!/bin/sh\n", 0o700)

	noShebang := filepath.Join(root, "plain.sh")
	writeScript(t, noShebang, "echo no shebang\n", 0o644)

	notScript := filepath.Join(root, "notes.txt")
	writeScript(t, notScript, "#!/bin/sh\n", 0o644)

	link := filepath.Join(root, "link.sh")
	if err := os.Symlink(alreadyExec, link); err != nil {
		t.Skipf("symlinks unavailable: %v", err)
	}

	report := EnsureExecutableScripts(root)
	if report.Updated != 0 {
		t.Errorf("Updated = %d, want 0", report.Updated)
	}
	if len(report.Failures) != 0 {
		t.Errorf("unexpected failures: %v", report.Failures)
	}

	if got := modeOf(t, alreadyExec); got != 0o700 {
		t.Errorf("already-executable file changed: %o", got)
	}
	if got := modeOf(t, noShebang); got != 0o644 {
		t.Errorf("shebang-less file changed: %o", got)
	}
	if got := modeOf(t, notScript); got != 0o644 {
		t.Errorf("non-script file changed: %o", got)
	}
}

func TestEnsureExecutableScriptsMissingRoot(t *testing.T) {
	report := EnsureExecutableScripts(filepath.Join(t.TempDir(), "absent"))
	if report.Updated != 0 || len(report.Failures) != 0 {
		t.Errorf("missing root should be a no-op: %+v", report)
	}
}

func TestScriptReportDetail(t *testing.T) {
	if got := (ScriptReport{Updated: 3}).Detail(); got != "3 updated" {
		t.Errorf("Detail() = %q", got)
	}
	r := ScriptReport{Updated: 1, Failures: []string{"a: denied", "b: denied"}}
	if got := r.Detail(); got != "1 updated, 2 failed" {
		t.Errorf("Detail() = %q", got)
	}
}

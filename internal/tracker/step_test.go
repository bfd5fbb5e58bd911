package tracker

import (
	"bytes"
	"strings"
	"testing"
)

func TestStepTrackerPlainOutput(t *testing.T) {
	var out bytes.Buffer
	st := NewStepTrackerWriter(&out, "Scaffolding")

	st.Add("bundle", "Extract bundled resources")
	st.Add("render", "Generate agent commands")
	st.Start("bundle")
	if out.Len() != 0 {
		t.Errorf("pending/running steps should not print in plain mode, got %q", out.String())
	}

	st.Complete("bundle", "")
	st.Complete("render", "16 files")
	st.Skip("git", "unknown step is ignored")
	st.Error("render2", "unknown step is ignored")

	got := out.String()
	if !strings.Contains(got, "[done] Extract bundled resources") {
		t.Errorf("missing done line:\n%s", got)
	}
	if !strings.Contains(got, "[done] Generate agent commands (16 files)") {
		t.Errorf("missing detail line:\n%s", got)
	}
	if strings.Contains(got, "unknown step") {
		t.Errorf("unregistered keys should be ignored:\n%s", got)
	}
}

func TestStepTrackerSkipAndError(t *testing.T) {
	var out bytes.Buffer
	st := NewStepTrackerWriter(&out, "")

	st.Add("git", "Initialize git repository")
	st.Add("chmod", "Set script permissions")
	st.Skip("git", "existing repo detected")
	st.Error("chmod", "permission denied")

	got := out.String()
	if !strings.Contains(got, "[skipped] Initialize git repository (existing repo detected)") {
		t.Errorf("missing skip line:\n%s", got)
	}
	if !strings.Contains(got, "[failed] Set script permissions (permission denied)") {
		t.Errorf("missing failure line:\n%s", got)
	}
}

func TestStepTrackerDuplicateAdd(t *testing.T) {
	var out bytes.Buffer
	st := NewStepTrackerWriter(&out, "")

	st.Add("x", "First label")
	st.Add("x", "Second label")
	st.Complete("x", "")

	if !strings.Contains(out.String(), "First label") {
		t.Errorf("first registration should win:\n%s", out.String())
	}
	if strings.Contains(out.String(), "Second label") {
		t.Errorf("duplicate Add must not replace the step:\n%s", out.String())
	}
}

func TestNopImplementsTracker(t *testing.T) {
	var tr Tracker = Nop{}
	tr.Add("a", "a")
	tr.Start("a")
	tr.Complete("a", "")
	tr.Skip("a", "")
	tr.Error("a", "")
}

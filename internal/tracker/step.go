package tracker

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"golang.org/x/term"

	"github.com/speclite-dev/speclite/internal/ui"
)

type stepStatus int

const (
	statusPending stepStatus = iota
	statusRunning
	statusDone
	statusSkipped
	statusFailed
)

type step struct {
	key    string
	label  string
	detail string
	status stepStatus
}

// StepTracker renders a live step list to a terminal. On an interactive
// terminal the list is redrawn in place after every transition; otherwise
// each finished step prints a single plain line. All writes are best-effort
// and their errors are discarded.
type StepTracker struct {
	mu          sync.Mutex
	out         io.Writer
	interactive bool
	title       string
	steps       []*step
	index       map[string]*step
	rendered    int // lines drawn by the previous frame
}

// NewStepTracker creates a tracker writing to stdout, auto-detecting whether
// in-place redrawing is possible.
func NewStepTracker(title string) *StepTracker {
	return &StepTracker{
		out:         os.Stdout,
		interactive: term.IsTerminal(int(os.Stdout.Fd())),
		title:       title,
		index:       make(map[string]*step),
	}
}

// NewStepTrackerWriter creates a tracker for an explicit writer, used by
// tests. Interactive redrawing is disabled.
func NewStepTrackerWriter(w io.Writer, title string) *StepTracker {
	return &StepTracker{
		out:   w,
		title: title,
		index: make(map[string]*step),
	}
}

func (t *StepTracker) Add(key, label string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if _, ok := t.index[key]; ok {
		return
	}
	s := &step{key: key, label: label, status: statusPending}
	t.steps = append(t.steps, s)
	t.index[key] = s
	t.render()
}

func (t *StepTracker) Start(key string) {
	t.transition(key, statusRunning, "")
}

func (t *StepTracker) Complete(key, detail string) {
	t.transition(key, statusDone, detail)
}

func (t *StepTracker) Skip(key, detail string) {
	t.transition(key, statusSkipped, detail)
}

func (t *StepTracker) Error(key, detail string) {
	t.transition(key, statusFailed, detail)
}

func (t *StepTracker) transition(key string, status stepStatus, detail string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	s, ok := t.index[key]
	if !ok {
		return
	}
	s.status = status
	if detail != "" {
		s.detail = detail
	}
	if t.interactive {
		t.render()
		return
	}
	// Plain mode: one line per finished step, nothing for pending/running.
	if status == statusRunning || status == statusPending {
		return
	}
	_, _ = fmt.Fprintln(t.out, t.plainLine(s))
}

// render redraws the whole step list, overwriting the previous frame.
// Callers hold t.mu.
func (t *StepTracker) render() {
	if !t.interactive {
		return
	}
	if t.rendered > 0 {
		_, _ = fmt.Fprintf(t.out, "\033[%dA", t.rendered)
	}

	lines := make([]string, 0, len(t.steps)+1)
	if t.title != "" {
		lines = append(lines, ui.Bold+t.title+ui.Reset)
	}
	for _, s := range t.steps {
		lines = append(lines, t.styledLine(s))
	}
	for _, line := range lines {
		_, _ = fmt.Fprintf(t.out, "\r\033[K%s\n", line)
	}
	t.rendered = len(lines)
}

func (t *StepTracker) styledLine(s *step) string {
	var glyph, color string
	switch s.status {
	case statusRunning:
		glyph, color = "●", ui.Cyan
	case statusDone:
		glyph, color = "●", ui.Green
	case statusSkipped:
		glyph, color = "○", ui.Yellow
	case statusFailed:
		glyph, color = "●", ui.Red
	default:
		glyph, color = "○", ui.Dim
	}

	var b strings.Builder
	fmt.Fprintf(&b, "  %s%s%s %s", color, glyph, ui.Reset, s.label)
	if s.detail != "" {
		fmt.Fprintf(&b, " %s(%s)%s", ui.Dim, s.detail, ui.Reset)
	}
	return b.String()
}

func (t *StepTracker) plainLine(s *step) string {
	marker := map[stepStatus]string{
		statusDone:    "done",
		statusSkipped: "skipped",
		statusFailed:  "failed",
	}[s.status]

	line := fmt.Sprintf("[%s] %s", marker, s.label)
	if s.detail != "" {
		line += fmt.Sprintf(" (%s)", s.detail)
	}
	return line
}

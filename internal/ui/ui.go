package ui

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"golang.org/x/term"
)

// Option is one selectable entry in a menu.
type Option struct {
	ID    string
	Label string
}

// IsInteractive reports whether both stdin and stdout are attached to a
// terminal, so prompts can be shown and answered.
func IsInteractive() bool {
	return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
}

// SelectOne presents a numbered list and returns the ID of the chosen option.
func SelectOne(r io.Reader, w io.Writer, prompt string, options []Option) (string, error) {
	if len(options) == 0 {
		return "", fmt.Errorf("no options to select from")
	}

	reader := bufio.NewReader(r)
	fmt.Fprintf(w, "\n%s\n", prompt)
	for i, opt := range options {
		fmt.Fprintf(w, "  %d) %s\n", i+1, opt.Label)
	}
	fmt.Fprintf(w, "Enter number [1-%d]: ", len(options))

	line, err := reader.ReadString('\n')
	if err != nil && line == "" {
		return "", fmt.Errorf("reading selection: %w", err)
	}

	num, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil || num < 1 || num > len(options) {
		return "", fmt.Errorf("invalid selection %q: choose 1-%d", strings.TrimSpace(line), len(options))
	}

	return options[num-1].ID, nil
}

// SelectMany presents a numbered list and accepts a comma-separated set of
// numbers. An empty answer selects the first option. Duplicates are dropped,
// order of first mention is preserved.
func SelectMany(r io.Reader, w io.Writer, prompt string, options []Option) ([]string, error) {
	if len(options) == 0 {
		return nil, fmt.Errorf("no options to select from")
	}

	reader := bufio.NewReader(r)
	fmt.Fprintf(w, "\n%s\n", prompt)
	for i, opt := range options {
		fmt.Fprintf(w, "  %d) %s\n", i+1, opt.Label)
	}
	fmt.Fprintf(w, "Enter numbers separated by commas [1-%d, default 1]: ", len(options))

	line, err := reader.ReadString('\n')
	if err != nil && line == "" {
		return nil, fmt.Errorf("reading selection: %w", err)
	}

	line = strings.TrimSpace(line)
	if line == "" {
		return []string{options[0].ID}, nil
	}

	seen := make(map[int]bool)
	var ids []string
	for _, part := range strings.Split(line, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		num, err := strconv.Atoi(part)
		if err != nil || num < 1 || num > len(options) {
			return nil, fmt.Errorf("invalid selection %q: choose numbers 1-%d", part, len(options))
		}
		if seen[num] {
			continue
		}
		seen[num] = true
		ids = append(ids, options[num-1].ID)
	}
	if len(ids) == 0 {
		return []string{options[0].ID}, nil
	}
	return ids, nil
}

// Confirm asks a yes/no question. An empty answer takes the default.
func Confirm(r io.Reader, w io.Writer, prompt string, def bool) (bool, error) {
	hint := "y/N"
	if def {
		hint = "Y/n"
	}
	fmt.Fprintf(w, "%s [%s]: ", prompt, hint)

	reader := bufio.NewReader(r)
	line, err := reader.ReadString('\n')
	if err != nil && line == "" {
		return false, fmt.Errorf("reading confirmation: %w", err)
	}

	switch strings.ToLower(strings.TrimSpace(line)) {
	case "":
		return def, nil
	case "y", "yes":
		return true, nil
	case "n", "no":
		return false, nil
	default:
		return false, fmt.Errorf("invalid answer %q: expected y or n", strings.TrimSpace(line))
	}
}

// Success prints a green check line.
func Success(w io.Writer, msg string) {
	fmt.Fprintf(w, "%s%s✓%s %s\n", Bold, Green, Reset, msg)
}

// Error prints a red cross line.
func Error(w io.Writer, msg string) {
	fmt.Fprintf(w, "%s%s✗%s %s\n", Bold, Red, Reset, msg)
}

// Warning prints a yellow bang line.
func Warning(w io.Writer, msg string) {
	fmt.Fprintf(w, "%s%s!%s %s\n", Bold, Yellow, Reset, msg)
}

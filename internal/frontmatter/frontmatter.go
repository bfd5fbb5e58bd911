package frontmatter

import "strings"

// Delimiter is the marker line bounding a frontmatter block. A well-formed
// template contains it exactly twice.
const Delimiter = "---"

// Build-time-only mapping keys. Their sections carry script commands consumed
// during rendering and must never appear in generated output.
const (
	scriptsKey      = "scripts:"
	agentScriptsKey = "agent_scripts:"
)

// scanState tracks whether the line scanner is currently inside one of the
// nested script-command mappings. A mapping is entered on an exact key-line
// match and exited at the first subsequent line starting at column zero with
// a letter.
type scanState int

const (
	outsideMapping scanState = iota
	insideMapping
)

// ExtractDescription returns the value of the first `description:` line in
// the document, or an empty string if there is none.
func ExtractDescription(text string) string {
	for _, line := range strings.Split(text, "\n") {
		if rest, ok := strings.CutPrefix(line, "description:"); ok {
			return strings.TrimSpace(rest)
		}
	}
	return ""
}

// ExtractScriptCommand returns the command registered for the given script
// variant inside the top-level `scripts:` mapping. It returns an empty string
// if the mapping or the variant entry is absent; a missing variant is a
// rendering degradation, not an error.
func ExtractScriptCommand(text, variant string) string {
	return extractMappingCommand(text, scriptsKey, variant)
}

// ExtractAgentScriptCommand is ExtractScriptCommand scoped to the
// `agent_scripts:` mapping.
func ExtractAgentScriptCommand(text, variant string) string {
	return extractMappingCommand(text, agentScriptsKey, variant)
}

// extractMappingCommand scans for an indented `variant: command` entry inside
// the named top-level mapping.
func extractMappingCommand(text, key, variant string) string {
	state := outsideMapping
	for _, line := range strings.Split(text, "\n") {
		switch state {
		case outsideMapping:
			if line == key {
				state = insideMapping
			}
		case insideMapping:
			if startsWithLetter(line) {
				state = outsideMapping
				continue
			}
			if name, value, ok := splitEntry(line); ok && name == variant {
				return value
			}
		}
	}
	return ""
}

// StripBuildSections removes the `scripts:` and `agent_scripts:` key lines
// and their immediately-following indented lines from the frontmatter block,
// leaving all other metadata and the body untouched.
func StripBuildSections(text string) string {
	lines := strings.Split(text, "\n")
	out := make([]string, 0, len(lines))

	dashCount := 0
	inFrontmatter := false
	state := outsideMapping

	for _, line := range lines {
		if line == Delimiter {
			out = append(out, line)
			dashCount++
			inFrontmatter = dashCount == 1
			continue
		}
		if inFrontmatter {
			if line == scriptsKey || line == agentScriptsKey {
				state = insideMapping
				continue
			}
			if state == insideMapping {
				if startsWithLetter(line) {
					state = outsideMapping
				} else if isIndented(line) {
					continue
				}
				// Blank or otherwise unindented lines fall through and are
				// kept without ending the section.
			}
		}
		out = append(out, line)
	}
	return strings.Join(out, "\n")
}

// splitEntry parses an indented `name: value` mapping entry. The value may be
// empty. Returns ok=false for lines without a colon.
func splitEntry(line string) (name, value string, ok bool) {
	trimmed := strings.TrimSpace(line)
	idx := strings.Index(trimmed, ":")
	if idx < 0 {
		return "", "", false
	}
	return trimmed[:idx], strings.TrimSpace(trimmed[idx+1:]), true
}

func startsWithLetter(line string) bool {
	if line == "" {
		return false
	}
	c := line[0]
	return (c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z')
}

func isIndented(line string) bool {
	return strings.HasPrefix(line, " ") || strings.HasPrefix(line, "\t")
}

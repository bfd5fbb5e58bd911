package render

import (
	"regexp"
	"strings"

	"github.com/speclite-dev/speclite/internal/branding"
)

// resourcePattern matches references to the three canonical top-level
// resource names, either at a reference start or immediately following a
// slash (the optional leading slash is consumed by the rewrite).
var resourcePattern = regexp.MustCompile(`/?(memory|scripts|templates)/`)

// RewritePaths canonicalizes in-body resource references to their
// project-local equivalents under the project namespace directory
// (memory/ → .speclite/memory/ and so on). The rewrite is idempotent:
// references already below the namespace directory are left alone.
func RewritePaths(text string) string {
	prefix := branding.ProjectDir()

	matches := resourcePattern.FindAllStringSubmatchIndex(text, -1)
	if len(matches) == 0 {
		return text
	}

	var b strings.Builder
	b.Grow(len(text))
	last := 0
	for _, m := range matches {
		start, end := m[0], m[1]
		name := text[m[2]:m[3]]
		if strings.HasSuffix(text[:start], prefix) {
			// Already in the rewritten form.
			b.WriteString(text[last:end])
			last = end
			continue
		}
		b.WriteString(text[last:start])
		b.WriteString(prefix)
		b.WriteByte('/')
		b.WriteString(name)
		b.WriteByte('/')
		last = end
	}
	b.WriteString(text[last:])
	return b.String()
}

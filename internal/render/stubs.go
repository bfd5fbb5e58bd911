package render

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/speclite-dev/speclite/internal/branding"
	"github.com/speclite-dev/speclite/internal/frontmatter"
	"go.yaml.in/yaml/v3"
)

const (
	agentFileSuffix  = ".agent.md"
	promptFileSuffix = ".prompt.md"
)

// promptStub is the frontmatter body of a reference stub: it names the
// generated command it points at and nothing else.
type promptStub struct {
	Agent string `yaml:"agent"`
}

// PromptStubs generates one reference-stub document per generated
// *.agent.md command file in agentsDir, writing *.prompt.md files into
// promptsDir (created if absent). The mapping is deterministic and 1:1.
// It returns the number of stubs written.
func PromptStubs(agentsDir, promptsDir string) (int, error) {
	if err := os.MkdirAll(promptsDir, 0755); err != nil {
		return 0, fmt.Errorf("creating prompts directory %s: %w", promptsDir, err)
	}

	entries, err := os.ReadDir(agentsDir)
	if err != nil {
		return 0, fmt.Errorf("reading agents directory: %w", err)
	}

	count := 0
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasPrefix(name, branding.CommandPrefix()) || !strings.HasSuffix(name, agentFileSuffix) {
			continue
		}

		basename := strings.TrimSuffix(name, agentFileSuffix)
		meta, err := yaml.Marshal(promptStub{Agent: basename})
		if err != nil {
			return count, fmt.Errorf("marshaling stub for %s: %w", basename, err)
		}

		content := frontmatter.Delimiter + "\n" + string(meta) + frontmatter.Delimiter + "\n"
		stubPath := filepath.Join(promptsDir, basename+promptFileSuffix)
		if err := os.WriteFile(stubPath, []byte(content), 0644); err != nil {
			return count, fmt.Errorf("writing %s: %w", stubPath, err)
		}
		count++
	}
	return count, nil
}

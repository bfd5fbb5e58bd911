package scaffold

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/speclite-dev/speclite/internal/branding"
	"github.com/speclite-dev/speclite/internal/materialize"
	"github.com/speclite-dev/speclite/internal/platform"
	"github.com/speclite-dev/speclite/internal/registry"
	"github.com/speclite-dev/speclite/internal/render"
	"github.com/speclite-dev/speclite/internal/resources"
	"github.com/speclite-dev/speclite/internal/tracker"
)

// Step keys reported to the tracker, in execution order.
const (
	stepBundle   = "bundle"
	stepGenerate = "generate"
	stepApply    = "apply"
	stepChmod    = "chmod"
)

// Options configures one scaffold run.
type Options struct {
	// ProjectPath is the destination directory. With Here it must already
	// exist; otherwise it must not.
	ProjectPath string
	// Here merges into an existing directory instead of creating a new one.
	Here bool
	// Agents lists the agent profile ids to generate assets for.
	Agents []string
	// Variant selects the script flavor; zero value means the host default.
	Variant registry.ScriptVariant
	// Tracker receives progress events; nil means no reporting.
	Tracker tracker.Tracker
}

// Result summarizes a completed scaffold.
type Result struct {
	ProjectPath string
	Agents      []string
	Rendered    int      // staged output files written across all agents
	Overwritten []string // pre-existing files replaced during a merge
	Merged      []string // settings files deep-merged during a merge
	Warnings    []string
}

// Run builds the project tree for the selected agents: it extracts the
// bundled resources, renders per-agent command files into a staging tree, and
// places the tree at the destination. A fresh destination that fails partway
// is removed; a merge destination is updated file-by-file and keeps whatever
// was already applied when a later step fails.
func Run(opts Options) (*Result, error) {
	tr := opts.Tracker
	if tr == nil {
		tr = tracker.Nop{}
	}

	variant := opts.Variant
	if !registry.ValidVariant(variant) {
		variant = registry.DefaultVariant()
	}

	// Surface a registry load failure as itself, not as an unknown agent.
	if _, err := registry.All(); err != nil {
		return nil, err
	}
	profiles := make([]registry.Profile, 0, len(opts.Agents))
	for _, id := range opts.Agents {
		profile, ok := registry.Get(id)
		if !ok {
			return nil, fmt.Errorf("unknown agent %q", id)
		}
		profiles = append(profiles, profile)
	}
	if len(profiles) == 0 {
		return nil, fmt.Errorf("no agents selected")
	}

	tr.Add(stepBundle, "Extract bundled resources")
	tr.Add(stepGenerate, "Generate agent assets")
	tr.Add(stepApply, "Apply project tree")
	tr.Add(stepChmod, "Set script permissions")

	tr.Start(stepBundle)
	bundleDir, err := os.MkdirTemp("", branding.CLIName()+"-bundle-")
	if err != nil {
		tr.Error(stepBundle, err.Error())
		return nil, fmt.Errorf("creating bundle directory: %w", err)
	}
	defer os.RemoveAll(bundleDir)

	if err := resources.MaterializeTo(bundleDir); err != nil {
		tr.Error(stepBundle, err.Error())
		return nil, err
	}
	if err := resources.Verify(bundleDir); err != nil {
		tr.Error(stepBundle, err.Error())
		return nil, err
	}
	tr.Complete(stepBundle, "")

	tr.Start(stepGenerate)
	stagingDir, err := os.MkdirTemp("", branding.CLIName()+"-staging-")
	if err != nil {
		tr.Error(stepGenerate, err.Error())
		return nil, fmt.Errorf("creating staging directory: %w", err)
	}
	defer os.RemoveAll(stagingDir)

	result := &Result{ProjectPath: opts.ProjectPath, Agents: opts.Agents}

	if err := stageShared(bundleDir, stagingDir); err != nil {
		tr.Error(stepGenerate, err.Error())
		return nil, err
	}
	for _, profile := range profiles {
		count, err := stageAgent(bundleDir, stagingDir, profile, variant)
		if err != nil {
			tr.Error(stepGenerate, err.Error())
			return nil, err
		}
		result.Rendered += count
	}
	tr.Complete(stepGenerate, fmt.Sprintf("%d files", result.Rendered))

	tr.Start(stepApply)
	if !opts.Here {
		// Refuse before Apply so the failure cleanup below can never touch a
		// directory this run did not create.
		if _, err := os.Lstat(opts.ProjectPath); err == nil {
			tr.Error(stepApply, "destination already exists")
			return nil, fmt.Errorf("destination %s already exists", opts.ProjectPath)
		}
	}
	applied, err := materialize.Apply(stagingDir, opts.ProjectPath, opts.Here)
	if err != nil {
		tr.Error(stepApply, err.Error())
		if !opts.Here {
			// A fresh destination is all-or-nothing.
			os.RemoveAll(opts.ProjectPath)
		}
		return nil, fmt.Errorf("applying project tree: %w", err)
	}
	result.Overwritten = applied.Overwritten
	result.Merged = applied.Merged
	result.Warnings = append(result.Warnings, applied.Warnings...)
	tr.Complete(stepApply, "")

	tr.Start(stepChmod)
	report := platform.EnsureExecutableScripts(filepath.Join(opts.ProjectPath, branding.ProjectDir(), "scripts"))
	for _, failure := range report.Failures {
		result.Warnings = append(result.Warnings, "script permissions: "+failure)
	}
	if len(report.Failures) > 0 {
		tr.Error(stepChmod, report.Detail())
	} else {
		tr.Complete(stepChmod, report.Detail())
	}

	return result, nil
}

// stageShared lays out the agent-independent project directory in staging:
// memory, scripts, and document templates under the project dir. Command
// templates and editor settings are agent-specific inputs, not project
// content, so they stay out of the shared tree.
func stageShared(bundleDir, stagingDir string) error {
	projectRoot := filepath.Join(stagingDir, branding.ProjectDir())

	for _, name := range []string{"memory", "scripts"} {
		src := filepath.Join(bundleDir, name)
		dst := filepath.Join(projectRoot, name)
		if err := materialize.CopyDirContents(src, dst); err != nil {
			return fmt.Errorf("staging %s: %w", name, err)
		}
	}

	templatesDst := filepath.Join(projectRoot, "templates")
	if err := os.MkdirAll(templatesDst, 0755); err != nil {
		return err
	}
	entries, err := os.ReadDir(filepath.Join(bundleDir, "templates"))
	if err != nil {
		return fmt.Errorf("reading bundled templates: %w", err)
	}
	for _, entry := range entries {
		if entry.Name() == "commands" || entry.Name() == "vscode-settings.json" {
			continue
		}
		src := filepath.Join(bundleDir, "templates", entry.Name())
		dst := filepath.Join(templatesDst, entry.Name())
		if entry.IsDir() {
			err = materialize.CopyTree(src, dst)
		} else {
			err = copyStagedFile(src, dst)
		}
		if err != nil {
			return fmt.Errorf("staging template %s: %w", entry.Name(), err)
		}
	}
	return nil
}

// stageAgent renders one agent's command files into staging and adds the
// agent's extra assets: the Gemini notice document at the project root, and
// for Copilot the prompt stubs plus the VS Code settings file that enables
// them. The returned count covers every staged output, not just command
// files.
func stageAgent(bundleDir, stagingDir string, profile registry.Profile, variant registry.ScriptVariant) (int, error) {
	outputDir := filepath.Join(stagingDir, filepath.FromSlash(profile.CommandsDir))
	count, err := render.All(filepath.Join(bundleDir, "templates"), outputDir, profile, variant)
	if err != nil {
		return 0, fmt.Errorf("rendering %s commands: %w", profile.ID, err)
	}

	switch profile.ID {
	case "gemini":
		src := filepath.Join(bundleDir, "agent_templates", "gemini", "GEMINI.md")
		dst := filepath.Join(stagingDir, "GEMINI.md")
		if err := copyStagedFile(src, dst); err != nil {
			return count, fmt.Errorf("staging GEMINI.md: %w", err)
		}
		count++
	case "copilot":
		promptsDir := filepath.Join(stagingDir, ".github", "prompts")
		stubs, err := render.PromptStubs(outputDir, promptsDir)
		if err != nil {
			return count, fmt.Errorf("generating prompt stubs: %w", err)
		}
		count += stubs
		settings, err := os.ReadFile(filepath.Join(bundleDir, "templates", "vscode-settings.json"))
		if err != nil {
			return count, fmt.Errorf("reading bundled editor settings: %w", err)
		}
		dst := filepath.Join(stagingDir, ".vscode", "settings.json")
		if err := os.MkdirAll(filepath.Dir(dst), 0755); err != nil {
			return count, err
		}
		if err := os.WriteFile(dst, settings, 0644); err != nil {
			return count, fmt.Errorf("staging editor settings: %w", err)
		}
		count++
	}
	return count, nil
}

func copyStagedFile(src, dst string) error {
	data, err := os.ReadFile(src)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(dst), 0755); err != nil {
		return err
	}
	return os.WriteFile(dst, data, 0644)
}

package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/speclite-dev/speclite/internal/branding"
	"github.com/speclite-dev/speclite/internal/config"
	"github.com/speclite-dev/speclite/internal/registry"
	"github.com/speclite-dev/speclite/internal/scaffold"
	"github.com/speclite-dev/speclite/internal/tools"
	"github.com/speclite-dev/speclite/internal/tracker"
	"github.com/speclite-dev/speclite/internal/ui"
	"github.com/speclite-dev/speclite/internal/vcs"
	"github.com/spf13/cobra"
)

var (
	initAI               string
	initScript           string
	initIgnoreAgentTools bool
	initNoGit            bool
	initHere             bool
	initForce            bool
	initDebug            bool
)

func init() {
	initCmd.Flags().StringVar(&initAI, "ai", "", "Comma-separated agent ids to set up (e.g. claude,copilot)")
	initCmd.Flags().StringVar(&initScript, "script", "", "Script variant: sh or ps (default matches the host)")
	initCmd.Flags().BoolVar(&initIgnoreAgentTools, "ignore-agent-tools", false, "Skip checks for installed agent CLIs")
	initCmd.Flags().BoolVar(&initNoGit, "no-git", false, "Skip git repository initialization")
	initCmd.Flags().BoolVar(&initHere, "here", false, "Initialize in the current directory instead of creating a new one")
	initCmd.Flags().BoolVar(&initForce, "force", false, "Proceed without confirmation when merging into a non-empty directory")
	initCmd.Flags().BoolVar(&initDebug, "debug", false, "Print plain per-step progress instead of the live display")
	rootCmd.AddCommand(initCmd)
}

var initCmd = &cobra.Command{
	Use:   "init [project-name]",
	Short: "Initialize a new spec-driven project",
	Long: `Initialize a project for spec-driven development.

Creates the ` + branding.ProjectDir() + `/ directory with workflow scripts, document templates,
and seed memory, plus the per-agent command files for each selected AI
assistant. Use "." as the project name, or --here, to set up the current
directory in place.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := ""
		if len(args) == 1 {
			name = args[0]
		}
		return runInit(cmd.OutOrStdout(), cmd.InOrStdin(), name)
	},
}

func runInit(out io.Writer, in io.Reader, name string) error {
	here := initHere
	if name == "." {
		here = true
		name = ""
	}
	if name == "" && !here {
		return fmt.Errorf("project name required (or use --here to initialize the current directory)")
	}
	if name != "" && here {
		return fmt.Errorf("--here cannot be combined with a project name")
	}

	var projectPath string
	var err error
	if here {
		projectPath, err = os.Getwd()
		if err != nil {
			return fmt.Errorf("getting current directory: %w", err)
		}
	} else {
		projectPath, err = filepath.Abs(name)
		if err != nil {
			return fmt.Errorf("resolving project path: %w", err)
		}
		if _, err := os.Lstat(projectPath); err == nil {
			return fmt.Errorf("directory %s already exists; use --here inside it to merge", name)
		}
	}

	interactive := ui.IsInteractive()
	if interactive {
		printBanner(out)
	}

	if here && !initForce {
		entries, err := os.ReadDir(projectPath)
		if err != nil {
			return fmt.Errorf("reading current directory: %w", err)
		}
		if len(entries) > 0 {
			if interactive {
				ok, err := ui.Confirm(in, out, fmt.Sprintf("Directory %s is not empty. Merge %s files into it?", projectPath, branding.DisplayName()), false)
				if err != nil {
					return err
				}
				if !ok {
					return fmt.Errorf("aborted")
				}
			} else {
				ui.Warning(out, "initializing into a non-empty directory; existing files with matching names will be overwritten")
			}
		}
	}

	// Flags win over stored defaults, stored defaults over interactive
	// prompts and platform fallbacks.
	config.Load()
	aiSelection := initAI
	if aiSelection == "" {
		aiSelection = config.Get("defaults.ai")
	}
	agents, err := selectAgents(out, in, interactive, aiSelection)
	if err != nil {
		return err
	}

	script := initScript
	if script == "" {
		script = config.Get("defaults.script")
	}
	variant := registry.ScriptVariant(script)
	if script != "" && !registry.ValidVariant(variant) {
		return fmt.Errorf("invalid --script value %q: valid variants are sh, ps", script)
	}
	if script == "" {
		variant = registry.DefaultVariant()
	}

	if !initIgnoreAgentTools {
		if err := checkAgentTools(agents); err != nil {
			return err
		}
	}

	var tr tracker.Tracker
	if initDebug {
		tr = tracker.NewStepTrackerWriter(out, "")
	} else {
		tr = tracker.NewStepTracker(fmt.Sprintf("Initializing %s", filepath.Base(projectPath)))
	}
	result, err := scaffold.Run(scaffold.Options{
		ProjectPath: projectPath,
		Here:        here,
		Agents:      agents,
		Variant:     variant,
		Tracker:     tr,
	})
	if err != nil {
		return err
	}

	runGitStep(tr, projectPath, result)

	fmt.Fprintln(out)
	ui.Success(out, fmt.Sprintf("Project ready at %s", projectPath))
	for _, warning := range result.Warnings {
		ui.Warning(out, warning)
	}
	for _, overwritten := range result.Overwritten {
		ui.Warning(out, "overwrote existing "+overwritten)
	}

	printNextSteps(out, projectPath, here, agents)
	return nil
}

// selectAgents resolves the agent list from an explicit selection (--ai flag
// or stored default), falling back to an interactive menu when possible.
func selectAgents(out io.Writer, in io.Reader, interactive bool, selection string) ([]string, error) {
	if selection != "" {
		// A registry load failure is reported as itself, not as unknown agents.
		if _, err := registry.All(); err != nil {
			return nil, err
		}
		agents := registry.ParseSelection(selection)
		for _, id := range agents {
			if _, ok := registry.Get(id); !ok {
				ids, _ := registry.IDs()
				return nil, fmt.Errorf("unknown agent %q: valid agents are %s", id, strings.Join(ids, ", "))
			}
		}
		if len(agents) == 0 {
			return nil, fmt.Errorf("agent selection %q contains no agent ids", selection)
		}
		return agents, nil
	}

	if !interactive {
		return nil, fmt.Errorf("no terminal for interactive selection: pass --ai with a comma-separated agent list")
	}

	profiles, err := registry.All()
	if err != nil {
		return nil, err
	}
	options := make([]ui.Option, len(profiles))
	for i, p := range profiles {
		options[i] = ui.Option{ID: p.ID, Label: p.Name}
	}
	return ui.SelectMany(in, out, "Select AI assistants to set up:", options)
}

// checkAgentTools fails when a selected agent needs a CLI that is not
// installed, naming where to get it.
func checkAgentTools(agents []string) error {
	var missing []string
	for _, id := range agents {
		profile, ok := registry.Get(id)
		if !ok || !profile.RequiresCLI {
			continue
		}
		if tools.Exists(profile.ID) {
			continue
		}
		entry := profile.Name
		if profile.InstallURL != "" {
			entry += " (" + profile.InstallURL + ")"
		}
		missing = append(missing, entry)
	}
	if len(missing) > 0 {
		return fmt.Errorf("required agent CLIs not found:\n  %s\nInstall them or rerun with --ignore-agent-tools", strings.Join(missing, "\n  "))
	}
	return nil
}

// runGitStep initializes a repository unless told not to, an existing repo is
// found, or git is unavailable. Failures degrade to warnings on the result.
func runGitStep(tr tracker.Tracker, projectPath string, result *scaffold.Result) {
	tr.Add("git", "Initialize git repository")
	switch {
	case initNoGit:
		tr.Skip("git", "--no-git")
	case !vcs.Available():
		tr.Skip("git", "git not installed")
	case vcs.IsRepo(projectPath):
		tr.Skip("git", "existing repository")
	default:
		tr.Start("git")
		if ok, diag := vcs.Init(projectPath); ok {
			tr.Complete("git", "initial commit created")
		} else {
			tr.Error("git", "init failed")
			result.Warnings = append(result.Warnings, "git initialization failed: "+diag)
		}
	}
}

func printNextSteps(out io.Writer, projectPath string, here bool, agents []string) {
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Next steps:")
	step := 1
	if !here {
		fmt.Fprintf(out, "  %d. cd %s\n", step, filepath.Base(projectPath))
		step++
	}
	fmt.Fprintf(out, "  %d. Open the project in your AI assistant:\n", step)
	for _, id := range agents {
		profile, ok := registry.Get(id)
		if !ok {
			continue
		}
		fmt.Fprintf(out, "     - %s: commands in %s\n", profile.Name, profile.CommandsDir)
	}
	step++
	for _, id := range agents {
		if id != "codex" {
			continue
		}
		// Codex only discovers the generated prompts through CODEX_HOME.
		codexHome := filepath.Join(projectPath, ".codex")
		setCmd := fmt.Sprintf("export CODEX_HOME=%q", codexHome)
		if runtime.GOOS == "windows" {
			setCmd = fmt.Sprintf("setx CODEX_HOME %q", codexHome)
		}
		fmt.Fprintf(out, "  %d. Set CODEX_HOME before running Codex: %s\n", step, setCmd)
		step++
		break
	}
	fmt.Fprintf(out, "  %d. Start with /%sconstitution, then /%sspecify your first feature\n",
		step, branding.CommandPrefix(), branding.CommandPrefix())

	fmt.Fprintln(out)
	ui.Warning(out, fmt.Sprintf("Agents will execute the scripts in %s/scripts on your behalf. Review them before use.", branding.ProjectDir()))
}

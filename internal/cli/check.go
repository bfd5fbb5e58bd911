package cli

import (
	"fmt"
	"io"

	"github.com/speclite-dev/speclite/internal/registry"
	"github.com/speclite-dev/speclite/internal/tools"
	"github.com/speclite-dev/speclite/internal/ui"
	"github.com/speclite-dev/speclite/internal/vcs"
	"github.com/spf13/cobra"
)

// Older git releases mishandle some of the branch operations the workflow
// scripts rely on.
const minGitVersion = "2.23.0"

var checkRegistry bool

func init() {
	checkCmd.Flags().BoolVar(&checkRegistry, "registry", false, "Also validate the embedded agent registry against its schema")
	rootCmd.AddCommand(checkCmd)
}

// versionSuffix returns " (vX.Y.Z)" for tools that report a parseable
// version, or nothing.
func versionSuffix(tool string) string {
	current, err := tools.Version(tool)
	if err != nil {
		return ""
	}
	return fmt.Sprintf(" (v%s)", current)
}

// reportRegistry validates the embedded agent registry against its schema and
// prints the outcome.
func reportRegistry(out io.Writer) error {
	result, err := registry.ValidateEmbedded()
	if err != nil {
		return fmt.Errorf("validating agent registry: %w", err)
	}
	if result.Valid {
		profiles, err := registry.All()
		if err != nil {
			return err
		}
		ui.Success(out, fmt.Sprintf("agent registry (%d agents)", len(profiles)))
		return nil
	}
	for _, issue := range result.Issues {
		msg := issue.Message
		if issue.Path != "" {
			msg = issue.Path + ": " + msg
		}
		ui.Error(out, msg)
	}
	return fmt.Errorf("embedded agent registry failed schema validation")
}

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Check that required tools are installed",
	Long:  `Check for git and for the CLIs of every supported AI agent, reporting what is available on this machine.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()

		fmt.Fprintln(out, "Checking installed tools...")
		fmt.Fprintln(out)

		if checkRegistry {
			if err := reportRegistry(out); err != nil {
				return err
			}
		}

		if vcs.Available() {
			if current, err := tools.Version("git"); err == nil {
				ui.Success(out, "git (v"+current+")")
				if ok, err := tools.MeetsMinimum(current, minGitVersion); err == nil && !ok {
					ui.Warning(out, fmt.Sprintf("git %s is older than %s; feature branch workflows may misbehave", current, minGitVersion))
				}
			} else {
				ui.Success(out, "git")
			}
		} else {
			ui.Warning(out, "git (not found; version control steps will be skipped)")
		}

		profiles, err := registry.All()
		if err != nil {
			return err
		}

		anyAgent := false
		for _, profile := range profiles {
			if !profile.RequiresCLI {
				ui.Success(out, fmt.Sprintf("%s (no CLI required)", profile.Name))
				anyAgent = true
				continue
			}
			if tools.Exists(profile.ID) {
				ui.Success(out, profile.Name+versionSuffix(profile.ID))
				anyAgent = true
				continue
			}
			msg := profile.Name + " (not found"
			if profile.InstallURL != "" {
				msg += "; install from " + profile.InstallURL
			}
			msg += ")"
			ui.Warning(out, msg)
		}

		fmt.Fprintln(out)
		if anyAgent {
			fmt.Fprintln(out, "Ready to scaffold projects.")
		} else {
			fmt.Fprintln(out, "No agent tooling detected. Install an agent CLI or use an editor-based agent.")
		}
		return nil
	},
}

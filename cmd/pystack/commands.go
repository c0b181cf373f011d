package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pystack-sh/pystack/pkg/artifacts"
	"github.com/pystack-sh/pystack/pkg/bootstrap"
	"github.com/pystack-sh/pystack/pkg/docs"
	"github.com/pystack-sh/pystack/pkg/logging"
	"github.com/pystack-sh/pystack/pkg/style"
)

func newUpCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:     "up",
		Short:   MsgUpShort,
		Long:    MsgUpLong,
		Example: MsgUpExample,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := logging.GetLogger("cmd.up")
			logger.Info().
				Bool("dryRun", flags.dryRun).
				Bool("force", flags.force).
				Str("dir", flags.projectDir).
				Msg("Starting bootstrap")

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, style.TitleStyle.Render(MsgUpHeader))

			result, err := bootstrap.Up(bootstrap.Options{
				ProjectDir: flags.projectDir,
				Mode:       flags.runMode(),
			})
			if err != nil {
				return err
			}

			printUpResult(cmd, result)
			if result.Failed() {
				return fmt.Errorf("%d artifact(s) failed", len(result.Failures))
			}
			return nil
		},
	}
}

func printUpResult(cmd *cobra.Command, result *bootstrap.UpResult) {
	out := cmd.OutOrStdout()

	if result.ProjectInitialized {
		fmt.Fprintln(out, "  initialized Poetry project")
	}
	for _, section := range result.SectionsAdded {
		fmt.Fprintf(out, "  pyproject.toml: added [%s]\n", section)
	}

	for _, res := range result.Artifacts {
		verb := style.OutcomeVerb(res.Outcome, res.Simulated)
		badge := style.OutcomeStyle(res.Outcome).Sprint(verb)
		fmt.Fprintf(out, "  %s: %s", style.PathStyle.Render(res.Path), badge)
		if res.BackupPath != "" && !res.Simulated {
			fmt.Fprintf(out, " (backup: %s)", res.BackupPath)
		}
		fmt.Fprintln(out)
	}

	if result.Failed() {
		fmt.Fprintf(out, MsgSummaryFailures, len(result.Failures))
		for _, failure := range result.Failures {
			fmt.Fprintf(out, "  %s %s: %v\n",
				style.ErrorStyle.Render("✗"), failure.Artifact, failure.Err)
		}
	}

	switch {
	case result.DryRun:
		fmt.Fprintln(out, style.WarningStyle.Render(MsgDryRunNotice))
	case !result.Failed():
		fmt.Fprintln(out, style.SuccessStyle.Render(MsgSummaryOK))
		fmt.Fprintln(out, style.MutedStyle.Render(MsgSummaryHints))
	}
}

func newStatusCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: MsgStatusShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			entries, err := bootstrap.Status(bootstrap.Options{
				ProjectDir: flags.projectDir,
				Mode:       flags.runMode(),
			})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, entry := range entries {
				state := style.StateStyle(entry.State).Render(string(entry.State))
				fmt.Fprintf(out, "%-40s %s\n", entry.Path, state)
			}
			return nil
		},
	}
}

func newRenderCmd() *cobra.Command {
	return &cobra.Command{
		Use:       "render <artifact>",
		Short:     MsgRenderShort,
		Long:      MsgRenderLong,
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		ValidArgs: artifacts.Names(),
		RunE: func(cmd *cobra.Command, args []string) error {
			content, err := artifacts.Render(args[0])
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(content)
			return err
		},
	}
}

func newDocsCmd() *cobra.Command {
	return &cobra.Command{
		Use:       "docs [topic]",
		Short:     MsgDocsShort,
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: docs.Topics(),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			if len(args) == 0 {
				for _, topic := range docs.Topics() {
					fmt.Fprintln(out, topic)
				}
				return nil
			}

			rendered, err := docs.Render(args[0], style.UseColor(os.Stdout))
			if err != nil {
				return err
			}
			fmt.Fprint(out, rendered)
			return nil
		},
	}
}

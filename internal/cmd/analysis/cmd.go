package analysis

import (
	"context"
	"fmt"
	"io"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	cmds "github.com/vignesh-tw/migration-analysis/internal/cmd"
	"github.com/vignesh-tw/migration-analysis/internal/config"
	"github.com/vignesh-tw/migration-analysis/internal/http"
	"github.com/vignesh-tw/migration-analysis/internal/insights"
	"github.com/vignesh-tw/migration-analysis/internal/progress"
	"github.com/vignesh-tw/migration-analysis/internal/report"
	"github.com/vignesh-tw/migration-analysis/internal/session"
)

var (
	analysisUse   = "analysis"
	analysisShort = "Retrieve migration information"
	analysisLong  = `Compare the duration statistics of a migration job against its base job.

Both jobs are read from the CircleCI insights of the same workflow, on the main branch.
Differentials are migration minus base: negative values mean the migration job is faster.`
	analysisExample = `mig analysis
mig analysis --reporting-window last-30-days --out table
MIG_WORKFLOW=nightly mig analysis -m bazel_test -b cmake_test`
)

// Command creates the `analysis` command. defaults provides the flag defaults.
func Command(g *cmds.Globals, defaults Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:          analysisUse,
		Short:        analysisShort,
		Long:         analysisLong,
		Example:      analysisExample,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			err := Run(cmd.Context(), cmd, g)
			if err != nil {
				log.Debug().Err(err).Str("command", cmds.FullName(cmd)).Msg("Analysis aborted")
			}
			return err
		},
	}

	bindFlags(cmd.Flags(), defaults)

	return cmd
}

// Run reads the token and the followed project from the local configuration, then analyzes
// the jobs of the configured workflow.
func Run(ctx context.Context, cmd *cobra.Command, g *cmds.Globals) error {
	m := config.NewManager(g.ConfigPath)
	token, err := session.New(m.Path).Authorization()
	if err != nil {
		return err
	}

	stored, err := m.Read()
	if err != nil {
		return err
	}

	opts, err := resolveOptions(cmd.Flags(), stored)
	if err != nil {
		return fmt.Errorf("invalid options: %w", err)
	}

	format, err := report.ParseFormat(opts.Out)
	if err != nil {
		return err
	}

	client, err := http.NewCircleCIClient(opts.Slug, opts.Project, opts.Workflow, opts.ReportingWindow, token)
	if err != nil {
		return err
	}
	client.URL = opts.APIURL
	client.HTTPClient = http.NewRetryableClient(opts.Timeout, opts.Retries)

	return analyze(ctx, cmd.OutOrStdout(), &client, opts, format)
}

func analyze(ctx context.Context, out io.Writer, reader insights.JobsReader, opts Options, format report.Format) error {
	log.Debug().
		Str("workflow", opts.Workflow).
		Str("reportingWindow", opts.ReportingWindow).
		Str("migrationJob", opts.MigrationJob).
		Str("baseJob", opts.BaseJob).
		Msg("Analyzing migration")

	progress.Show("Retrieving job metrics of %s", opts.Workflow)
	jobs, err := reader.GetJobs(ctx)
	progress.Stop()
	if err != nil {
		return fmt.Errorf("failed to get jobs: %w", err)
	}
	log.Debug().Int("items", len(jobs.Items)).Msg("Retrieved job metrics")

	insight, err := insights.Compute(opts.MigrationJob, opts.BaseJob, jobs)
	if err != nil {
		return err
	}

	if err := report.Write(out, insight, format); err != nil {
		return fmt.Errorf("failed to render output: %w", err)
	}
	return nil
}

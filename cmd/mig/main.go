package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/fatih/color"
	"github.com/joho/godotenv"
	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	cmds "github.com/vignesh-tw/migration-analysis/internal/cmd"
	"github.com/vignesh-tw/migration-analysis/internal/cmd/analysis"
	"github.com/vignesh-tw/migration-analysis/internal/cmd/configure"
	"github.com/vignesh-tw/migration-analysis/internal/config"
	"github.com/vignesh-tw/migration-analysis/internal/version"
)

var (
	cmdUse   = "mig [OPTIONS] COMMAND"
	cmdShort = "A CLI to get circleci jobs insights"
	cmdLong  = `mig compares the CircleCI job insights of a build being migrated against the build it replaces.

Start by storing your CircleCI token and project:

  mig config --auth <circleci-token> --project <project> --slug <vcs>/<org>`
)

func main() {
	g := &cmds.Globals{}
	cmd := newRootCommand(g, analysis.DefaultOptions())

	if err := execute(newContext(), cmd); err != nil {
		os.Exit(1)
	}
}

// execute runs the command tree and prints the error that aborted it, if any.
// Commands return their errors instead of printing them so that each one is shown once.
func execute(ctx context.Context, root *cobra.Command) error {
	c, err := root.ExecuteContextC(ctx)
	if err != nil {
		if c == nil {
			c = root
		}
		c.PrintErrln("Error:", err)
	}
	return err
}

// newRootCommand assembles the CLI. defaults configures the analysis command.
func newRootCommand(g *cmds.Globals, defaults analysis.Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:              cmdUse,
		Short:            cmdShort,
		Long:             cmdLong,
		SilenceUsage:     true,
		SilenceErrors:    true,
		TraverseChildren: true,
		Version:          fmt.Sprintf("%s\n(build %s)", version.Version, version.GitCommit),
	}

	cmd.SetVersionTemplate("mig version {{.Version}}\n")
	cmd.Flags().BoolP("version", "v", false, "print version")

	flags := cmd.PersistentFlags()
	flags.StringVarP(&g.ConfigPath, "config", "c", config.DefaultPath, "path to the configuration file")
	flags.BoolVar(&g.Verbose, "verbose", false, "turn on verbose logging")
	flags.BoolVar(&g.NoColor, "no-color", false, "disable colorized output")

	cmd.PersistentPreRun = func(_ *cobra.Command, _ []string) {
		setupLogging(g.Verbose, g.NoColor)
		loadDotEnv()
	}

	cmd.AddCommand(
		analysis.Command(g, defaults),
		configure.Command(g),
	)

	return cmd
}

// colorDisabled reports whether output written to the file descriptor fd must stay plain.
func colorDisabled(noColor bool, fd uintptr) bool {
	return noColor || os.Getenv("NO_COLOR") != "" || !(isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd))
}

func setupLogging(verbose bool, noColor bool) {
	// Reports go to stdout, logs to stderr. Either one may be redirected on its own.
	color.NoColor = colorDisabled(noColor, os.Stdout.Fd())
	logNoColor := colorDisabled(noColor, os.Stderr.Fd())

	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	zerolog.DurationFieldInteger = true
	timeFormat := "15:04:05"
	if verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
		zerolog.TimeFieldFormat = time.RFC3339Nano
		timeFormat = "15:04:05.000"
	}

	zerolog.TimestampFunc = func() time.Time {
		return time.Now().In(time.Local)
	}

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: timeFormat, NoColor: logNoColor})
}

// loadDotEnv exports the variables of a .env file in the working directory, if any.
// Variables already set in the environment win.
func loadDotEnv() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Warn().Err(err).Msg("Failed to load .env file")
	}
}

// newContext returns a new context that is canceled when a SIGINT is received.
func newContext() context.Context {
	ctx, cancel := context.WithCancel(context.Background())
	signals := make(chan os.Signal, 1)
	signal.Notify(signals, os.Interrupt)

	go func() {
		for range signals {
			if ctx.Err() != nil {
				os.Exit(1)
			}

			println("\nCancelling the request... (press Ctrl-c again to exit without waiting)\n")
			cancel()
		}
	}()

	return ctx
}

package analysis

import (
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/vignesh-tw/migration-analysis/internal/config"
	"github.com/vignesh-tw/migration-analysis/internal/http"
	"github.com/vignesh-tw/migration-analysis/internal/report"
)

// EnvPrefix is the prefix of the environment variables overriding analysis options, e.g. MIG_WORKFLOW.
const EnvPrefix = "MIG"

// Options configure an analysis.
type Options struct {
	Slug            string        `mapstructure:"slug"`
	Project         string        `mapstructure:"project"`
	Workflow        string        `mapstructure:"workflow"`
	ReportingWindow string        `mapstructure:"reporting-window"`
	MigrationJob    string        `mapstructure:"migration-job"`
	BaseJob         string        `mapstructure:"base-job"`
	Out             string        `mapstructure:"out"`
	Timeout         time.Duration `mapstructure:"timeout"`
	Retries         int           `mapstructure:"retries"`
	APIURL          string        `mapstructure:"api-url"`
}

// DefaultOptions compares the bazel build against the cmake build of the main workflow
// over the last seven days.
func DefaultOptions() Options {
	return Options{
		Workflow:        "build-test-deploy",
		ReportingWindow: "last-7-days",
		MigrationJob:    "bazel_build",
		BaseJob:         "cmake_build",
		Out:             string(report.TextFormat),
		Timeout:         http.DefaultTimeout,
		APIURL:          http.CircleCIBaseURL,
	}
}

func bindFlags(flags *pflag.FlagSet, defaults Options) {
	flags.String("slug", defaults.Slug, "Slug of the project e.g. (github/space). Defaults to the configured slug.")
	flags.String("project", defaults.Project, "Name of the project. Defaults to the configured project.")
	flags.StringP("workflow", "w", defaults.Workflow, "Workflow containing both jobs.")
	flags.StringP("reporting-window", "r", defaults.ReportingWindow, "Reporting window. Options: last-7-days, last-90-days, last-24-hours, last-30-days, last-60-days.")
	flags.StringP("migration-job", "m", defaults.MigrationJob, "Job replacing the base job.")
	flags.StringP("base-job", "b", defaults.BaseJob, "Job being replaced.")
	flags.StringP("out", "o", defaults.Out, "Output format to the console. Options: text, table, json, yaml.")
	flags.Duration("timeout", defaults.Timeout, "Timeout of the request to CircleCI.")
	flags.Int("retries", defaults.Retries, "Number of retries of a failed request to CircleCI.")
	flags.String("api-url", defaults.APIURL, "CircleCI API base URL.")
	_ = flags.MarkHidden("api-url")
}

// resolveOptions merges, by increasing priority, the flag defaults, the stored configuration,
// MIG_* environment variables and the flags set on the command line.
func resolveOptions(flags *pflag.FlagSet, stored config.LocalConfig) (Options, error) {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if stored.Slug != "" {
		v.SetDefault("slug", stored.Slug)
	}
	if stored.Project != "" {
		v.SetDefault("project", stored.Project)
	}

	if err := v.BindPFlags(flags); err != nil {
		return Options{}, err
	}

	var opts Options
	if err := v.Unmarshal(&opts); err != nil {
		return Options{}, err
	}
	return opts, nil
}

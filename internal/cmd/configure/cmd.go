package configure

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	cmds "github.com/vignesh-tw/migration-analysis/internal/cmd"
	"github.com/vignesh-tw/migration-analysis/internal/config"
)

var (
	configureUse   = "config"
	configureShort = "Manage the configuration"
	configureLong  = `Persist locally the CircleCI token and the followed project.

Every value not passed as a flag is stored as an empty string, replacing what was stored before.
Use --interactive to be prompted with the stored values instead.
Values passed as flags along with --interactive replace the stored ones as prompt defaults.`
	configureExample = "mig config --auth <circleci-token> --project vsomeip --slug github/vignesh-tw"
)

// Command creates the `config` command.
func Command(g *cmds.Globals) *cobra.Command {
	var (
		auth        string
		project     string
		slug        string
		interactive bool
	)

	cmd := &cobra.Command{
		Use:          configureUse,
		Short:        configureShort,
		Long:         configureLong,
		Example:      configureExample,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			m := config.NewManager(g.ConfigPath)

			c := config.LocalConfig{
				Authorization: auth,
				Project:       project,
				Slug:          slug,
			}
			if interactive {
				stdio := terminal.Stdio{In: os.Stdin, Out: os.Stdout, Err: os.Stderr}
				var err error
				if c, err = interactiveConfiguration(m, c, stdio); err != nil {
					return fmt.Errorf("interactive configuration failed: %w", err)
				}
			}

			return Run(cmd.OutOrStdout(), m, c)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&auth, "auth", "a", "", "Set the authorization field (CircleCI personal API token)")
	flags.StringVarP(&project, "project", "p", "", "Set the name of the followed project")
	flags.StringVarP(&slug, "slug", "s", "", "Set the slug of the followed project e.g. (github/space)")
	flags.BoolVarP(&interactive, "interactive", "i", false, "Prompt for every value, defaulting to the stored ones")

	cmd.AddCommand(ListCommand(g))

	return cmd
}

// Run replaces the stored configuration with c.
func Run(out io.Writer, m config.Manager, c config.LocalConfig) error {
	if m.Exists() {
		if prev, err := m.Read(); err == nil {
			warnBlanked(prev, c)
		} else {
			log.Debug().Err(err).Str("path", m.Path).Msg("Overwriting unreadable config file")
		}
	}

	if err := m.Write(c.Authorization, c.Project, c.Slug); err != nil {
		return fmt.Errorf("unable to save config: %w", err)
	}

	_, _ = fmt.Fprintf(out, "Configuration saved to %s\n", m.Path)
	return nil
}

// warnBlanked logs every stored value that next is about to erase.
func warnBlanked(prev, next config.LocalConfig) {
	fields := []struct {
		name       string
		prev, next string
	}{
		{"authorization", prev.Authorization, next.Authorization},
		{"project", prev.Project, next.Project},
		{"slug", prev.Slug, next.Slug},
	}
	for _, f := range fields {
		if f.prev != "" && f.next == "" {
			log.Warn().Str("field", f.name).Msg("Stored value is cleared because it was not provided.")
		}
	}
}

// interactiveConfiguration prompts for each value on stdio. Defaults are the values of given,
// falling back to the stored configuration for those left empty.
// An empty token answer keeps the default token.
func interactiveConfiguration(m config.Manager, given config.LocalConfig, stdio terminal.Stdio) (config.LocalConfig, error) {
	var stored config.LocalConfig
	if m.Exists() {
		c, err := m.Read()
		if err != nil {
			log.Warn().Err(err).Msg("Ignoring stored configuration")
		}
		stored = c
	}
	if given.Authorization != "" {
		stored.Authorization = given.Authorization
	}
	if given.Project != "" {
		stored.Project = given.Project
	}
	if given.Slug != "" {
		stored.Slug = given.Slug
	}

	required := func(val interface{}) error {
		if str, ok := val.(string); !ok || str == "" {
			return errors.New("a value is required")
		}
		return nil
	}

	authMsg := "CircleCI token"
	if stored.Authorization != "" {
		authMsg = fmt.Sprintf("CircleCI token (leave empty to keep %s)", mask(stored.Authorization))
	}

	qs := []*survey.Question{
		{
			Name:   "authorization",
			Prompt: &survey.Password{Message: authMsg},
		},
		{
			Name: "project",
			Prompt: &survey.Input{
				Message: "Project name",
				Default: stored.Project,
			},
			Validate: required,
		},
		{
			Name: "slug",
			Prompt: &survey.Input{
				Message: "Project slug",
				Default: stored.Slug,
			},
			Validate: required,
		},
	}

	var c config.LocalConfig
	if err := survey.Ask(qs, &c, survey.WithStdio(stdio.In, stdio.Out, stdio.Err)); err != nil {
		return c, err
	}
	if c.Authorization == "" {
		c.Authorization = stored.Authorization
	}
	_, _ = fmt.Fprintln(stdio.Out) // visual paragraph break

	return c, nil
}

package configure

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	cmds "github.com/vignesh-tw/migration-analysis/internal/cmd"
	"github.com/vignesh-tw/migration-analysis/internal/config"
)

// ListCommand creates the `config list` command.
func ListCommand(g *cmds.Globals) *cobra.Command {
	cmd := &cobra.Command{
		Use: "list",
		Aliases: []string{
			"ls",
		},
		Short:        "Show the stored configuration",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := config.NewManager(g.ConfigPath).Read()
			if err != nil {
				return err
			}
			printConfig(cmd.OutOrStdout(), c)
			return nil
		},
	}

	return cmd
}

func printConfig(out io.Writer, c config.LocalConfig) {
	_, _ = fmt.Fprintf(out, "authorization: %s\n", mask(c.Authorization))
	_, _ = fmt.Fprintf(out, "project:       %s\n", c.Project)
	_, _ = fmt.Fprintf(out, "slug:          %s\n", c.Slug)
}

// mask hides all but the last four characters of s.
func mask(s string) string {
	if len(s) <= 4 {
		return strings.Repeat("*", len(s))
	}
	return strings.Repeat("*", len(s)-4) + s[len(s)-4:]
}

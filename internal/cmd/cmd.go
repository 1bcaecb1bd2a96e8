package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

// Globals holds the values of the persistent flags of the root command.
type Globals struct {
	// ConfigPath is the location of the local configuration file.
	ConfigPath string
	Verbose    bool
	NoColor    bool
}

// FullName returns the full command name by concatenating the command names of any parents,
// except the name of the CLI itself.
func FullName(cmd *cobra.Command) string {
	name := ""

	for cmd.HasParent() {
		// Prepending, because we are looking up names from the bottom up: list < config < mig
		// which ends up correctly as 'config list' (sans mig).
		name = fmt.Sprintf("%s %s", cmd.Name(), name)
		cmd = cmd.Parent()
	}

	return strings.TrimSpace(name)
}

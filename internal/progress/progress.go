// Package progress shows a spinner on the terminal while mig waits for the API.
package progress

import (
	"fmt"
	"os"
	"time"

	"github.com/briandowns/spinner"
	"github.com/mattn/go-isatty"
)

var spinnerSpeed = 300 * time.Millisecond
var spinnerInstance = spinner.New(spinner.CharSets[14], spinnerSpeed, spinner.WithWriter(os.Stderr))

// Enabled controls whether Show draws anything. Defaults to stderr being a terminal.
var Enabled = isatty.IsTerminal(os.Stderr.Fd()) || isatty.IsCygwinTerminal(os.Stderr.Fd())

// Show starts showing a progress spinner.
func Show(text string, args ...interface{}) {
	if !Enabled {
		return
	}
	spinnerInstance.Suffix = " " + fmt.Sprintf(text, args...)
	spinnerInstance.Stop()
	spinnerInstance.Start()
}

// Stop stops the progress spinner.
func Stop() {
	spinnerInstance.Stop()
}

// Package progress shows a terminal spinner while a unit of work executes.
package progress

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/briandowns/spinner"
	"golang.org/x/term"

	"github.com/cellwatch/cellwatch/internal/kernel"
)

// UnitSpinner animates a spinner on stderr while a wrapped runner executes.
// On non-TTY output it degrades to a single printed line.
type UnitSpinner struct {
	isTTY bool
	spin  *spinner.Spinner
}

// NewUnitSpinner creates a spinner matching the terminal's capabilities.
func NewUnitSpinner() *UnitSpinner {
	return &UnitSpinner{
		isTTY: term.IsTerminal(int(os.Stderr.Fd())),
	}
}

// Start begins the animation with the given message.
func (u *UnitSpinner) Start(msg string) {
	if !u.isTTY {
		fmt.Fprintln(os.Stderr, msg)
		return
	}
	u.spin = spinner.New(spinner.CharSets[14], 100*time.Millisecond)
	u.spin.Writer = os.Stderr // keep stdout clean for unit output
	u.spin.Suffix = " " + msg
	u.spin.Start()
}

// Stop halts the animation. Safe to call when never started.
func (u *UnitSpinner) Stop() {
	if u.spin != nil {
		u.spin.Stop()
		u.spin = nil
	}
}

// WrapRunner decorates a runner so the spinner runs exactly while the unit
// executes and is stopped before any notification output renders.
func (u *UnitSpinner) WrapRunner(inner kernel.Runner) kernel.Runner {
	return kernel.RunnerFunc(func(ctx context.Context, unit string) kernel.Result {
		u.Start("Running: " + unit)
		defer u.Stop()
		return inner.Run(ctx, unit)
	})
}

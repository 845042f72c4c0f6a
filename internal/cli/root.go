// Package cli provides the cobra-based cellwatch commands: the interactive
// console, one-shot wrapped execution, and version info.
package cli

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "cellwatch",
	Short: "cell execution watchdog and notifications",
	Long: `cellwatch times units of execution and raises notifications when a unit
finishes: an in-terminal status banner, a desktop-style alert where the
output surface supports it, and an optional Discord webhook message.

The watchdog can run automatically (alert whenever a unit exceeds a duration
threshold) or per unit (wrap one command with a mandatory notification).`,
	Example: `  # Interactive console: commands run as observed units
  cellwatch console

  # Wrap one command with a completion notification
  cellwatch exec -- make test

  # Same, routed to the configured Discord webhook
  cellwatch exec --mode discord -- ./train.sh

  # Seed the webhook from the environment
  JUPYTER_WATCHDOG_WEBHOOK=https://discord.com/api/webhooks/... cellwatch console`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringP("config", "c", "", "Path to config file (JSON)")
}

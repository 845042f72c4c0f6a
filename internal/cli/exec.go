package cli

import (
	"strings"

	"github.com/spf13/cobra"

	cwerrors "github.com/cellwatch/cellwatch/internal/errors"
	"github.com/cellwatch/cellwatch/internal/kernel"
	"github.com/cellwatch/cellwatch/internal/progress"
)

var execCmd = &cobra.Command{
	Use:   "exec [flags] -- <command> [args...]",
	Short: "Run one command with a mandatory completion notification",
	Long: `Run a single command as a watched unit of work. When the command
finishes, cellwatch shows the status banner and, for --mode discord (or any
automatic watchdog alert), posts to the configured webhook.

The command's exit status is passed through: exec fails iff the command
failed.`,
	Example: `  # Local notification only
  cellwatch exec -- make test

  # Post the result to the configured Discord webhook
  cellwatch exec --mode discord -- ./train.sh --epochs 50`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		mode, _ := cmd.Flags().GetString("mode")
		configPath, _ := cmd.Flags().GetString("config")

		unit := strings.Join(args, " ")
		if strings.TrimSpace(unit) == "" {
			return cwerrors.NewArgumentErrorWithUsage(
				"no command given",
				"cellwatch exec [flags] -- <command> [args...]",
				"pass the command to run after '--'",
			)
		}

		spin := progress.NewUnitSpinner()
		app, err := newApp(configPath, cmd.OutOrStdout(), func(r kernel.Runner) kernel.Runner {
			return spin.WrapRunner(r)
		})
		if err != nil {
			return err
		}
		defer app.close()

		res := app.session.Notify(cmd.Context(), mode, unit)
		if !res.Success {
			// The unit's own failure is reported, not altered.
			if res.Err != nil {
				return res.Err
			}
			return cwerrors.NewRuntimeError("unit failed")
		}
		return nil
	},
}

func init() {
	execCmd.Flags().StringP("mode", "m", "system", "Notification mode: system or discord")
	rootCmd.AddCommand(execCmd)
}

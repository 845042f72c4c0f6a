package cli

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	cwerrors "github.com/cellwatch/cellwatch/internal/errors"
)

var consoleCmd = &cobra.Command{
	Use:   "console",
	Short: "Interactive watchdog console",
	Long: `Start an interactive console. Every plain line is executed as a shell
unit observed by the watchdog. Lines starting with a command name (a leading
'%' is accepted) control the session:

  watchdog_auto <seconds>      alert when a unit runs longer than <seconds>
  watchdog_auto 0              disable the watchdog
  watchdog_auto                show the current threshold
  watchdog_setup <url>         set the Discord webhook URL
  notify [system|discord] <command>
                               run <command> with a mandatory notification
  exit                         leave the console`,
	Example: `  cellwatch console
  >>> watchdog_auto 5
  Watchdog enabled. Alerting if cell execution > 5s.
  >>> sleep 10
  >>> notify discord make build`,
	RunE: func(cmd *cobra.Command, args []string) error {
		configPath, _ := cmd.Flags().GetString("config")

		app, err := newApp(configPath, cmd.OutOrStdout(), nil)
		if err != nil {
			return err
		}
		defer app.close()

		return runConsole(cmd, app)
	},
}

func runConsole(cmd *cobra.Command, app *app) error {
	out := cmd.OutOrStdout()
	scanner := bufio.NewScanner(cmd.InOrStdin())

	fmt.Fprintln(out, "cellwatch console. Type 'exit' to quit.")
	fmt.Fprint(out, ">>> ")

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		switch {
		case line == "":
		case line == "exit" || line == "quit":
			return nil
		default:
			handleConsoleLine(cmd, app, line)
		}
		fmt.Fprint(out, ">>> ")
	}
	return scanner.Err()
}

// handleConsoleLine routes one console line: session commands, the notify
// wrapper, or a plain unit of work.
func handleConsoleLine(cmd *cobra.Command, app *app, line string) {
	out := cmd.OutOrStdout()
	stripped := strings.TrimPrefix(line, "%")
	name, rest, _ := strings.Cut(stripped, " ")

	switch name {
	case "watchdog_auto", "watchdog_setup":
		if err := app.session.HandleLine(stripped); err != nil {
			printCommandError(out, err)
		}
	case "notify":
		mode, unit := splitNotifyArgs(strings.TrimSpace(rest))
		if unit == "" {
			fmt.Fprintln(out, "Usage: notify [system|discord] <command>")
			return
		}
		app.session.Notify(cmd.Context(), mode, unit)
	default:
		// A plain unit of work; the watchdog hooks observe it via the bus.
		app.kernel.Run(cmd.Context(), line)
	}
}

// splitNotifyArgs peels a leading mode token off the notify arguments.
// Anything that is not a known mode belongs to the unit.
func splitNotifyArgs(rest string) (mode, unit string) {
	first, remainder, _ := strings.Cut(rest, " ")
	if first == "system" || first == "discord" {
		return first, strings.TrimSpace(remainder)
	}
	return "", rest
}

func printCommandError(out io.Writer, err error) {
	if cliErr := cwerrors.AsCLIError(err); cliErr != nil {
		fmt.Fprint(out, cwerrors.FormatErrorPlain(cliErr))
		return
	}
	fmt.Fprintln(out, "Error:", err)
}

func init() {
	rootCmd.AddCommand(consoleCmd)
}

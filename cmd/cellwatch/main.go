// cellwatch - cell execution watchdog and notifications
// Source: https://github.com/cellwatch/cellwatch

package main

import (
	"fmt"
	"os"

	"github.com/cellwatch/cellwatch/internal/cli"
	cwerrors "github.com/cellwatch/cellwatch/internal/errors"
)

func main() {
	if err := cli.Execute(); err != nil {
		if cliErr := cwerrors.AsCLIError(err); cliErr != nil {
			cwerrors.PrintError(cliErr)
			os.Exit(exitCode(cliErr))
		}
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(cli.ExitFailure)
	}
}

func exitCode(err *cwerrors.CLIError) int {
	switch err.Category {
	case cwerrors.Argument:
		return cli.ExitInvalidArguments
	case cwerrors.Configuration:
		return cli.ExitConfigError
	default:
		return cli.ExitFailure
	}
}

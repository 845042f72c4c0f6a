package errors

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
)

// FormatError formats a CLIError for terminal display with colors.
// Returns an empty string for nil errors.
func FormatError(err *CLIError) string {
	if err == nil {
		return ""
	}

	var b strings.Builder

	header := color.New(color.FgRed, color.Bold)
	b.WriteString(header.Sprintf("%s: ", err.Category))
	b.WriteString(err.Message)
	b.WriteString("\n")

	if err.Usage != "" {
		b.WriteString("\n")
		b.WriteString(color.New(color.Bold).Sprint("Usage:"))
		b.WriteString(" ")
		b.WriteString(err.Usage)
		b.WriteString("\n")
	}

	if len(err.Remediation) > 0 {
		b.WriteString("\n")
		b.WriteString(color.New(color.Bold).Sprint("To fix this:"))
		b.WriteString("\n")
		for i, step := range err.Remediation {
			b.WriteString(fmt.Sprintf("  %d. %s\n", i+1, step))
		}
	}

	return b.String()
}

// FormatErrorPlain formats a CLIError without ANSI colors, for logs and
// non-terminal output.
func FormatErrorPlain(err *CLIError) string {
	if err == nil {
		return ""
	}

	var b strings.Builder

	fmt.Fprintf(&b, "%s: %s\n", err.Category, err.Message)

	if err.Usage != "" {
		fmt.Fprintf(&b, "\nUsage: %s\n", err.Usage)
	}

	if len(err.Remediation) > 0 {
		b.WriteString("\nTo fix this:\n")
		for i, step := range err.Remediation {
			fmt.Fprintf(&b, "  %d. %s\n", i+1, step)
		}
	}

	return b.String()
}

// FormatSimpleError formats an arbitrary error under the given category.
// Returns an empty string for nil errors.
func FormatSimpleError(err error, category ErrorCategory) string {
	if err == nil {
		return ""
	}
	if cliErr := AsCLIError(err); cliErr != nil {
		return FormatError(cliErr)
	}
	return fmt.Sprintf("%s: %s\n", category, err.Error())
}

// PrintError writes a formatted error to stderr. Nil errors print nothing.
func PrintError(err *CLIError) {
	FprintError(os.Stderr, err)
}

// FprintError writes a formatted error to w. Nil errors write nothing.
func FprintError(w io.Writer, err *CLIError) {
	if err == nil {
		return
	}
	fmt.Fprint(w, FormatError(err))
}

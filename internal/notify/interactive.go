package notify

import (
	"os"

	"golang.org/x/term"
)

// interactiveSession reports whether a human is plausibly watching: not a CI
// environment and at least one standard stream is a terminal. Desktop
// notifications are pointless otherwise and are skipped.
func interactiveSession() bool {
	if isCI() {
		return false
	}
	return isInteractive()
}

// isCI checks for common CI environment variables.
func isCI() bool {
	ciVars := []string{
		"CI",
		"GITHUB_ACTIONS",
		"GITLAB_CI",
		"CIRCLECI",
		"TRAVIS",
		"JENKINS_URL",
		"BUILDKITE",
		"DRONE",
		"TEAMCITY_VERSION",
	}
	for _, v := range ciVars {
		if os.Getenv(v) != "" {
			return true
		}
	}
	return false
}

// isInteractive checks if the session has a terminal attached. Stdout is
// checked first because CLI tools often have stdin piped while stdout
// remains connected to the terminal.
func isInteractive() bool {
	if term.IsTerminal(int(os.Stdout.Fd())) {
		return true
	}
	if term.IsTerminal(int(os.Stderr.Fd())) {
		return true
	}
	return term.IsTerminal(int(os.Stdin.Fd()))
}

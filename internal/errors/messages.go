package errors

import "fmt"

// InvalidThresholdSeconds reports a non-numeric watchdog threshold value.
func InvalidThresholdSeconds(input string) *CLIError {
	return NewArgumentErrorWithUsage(
		fmt.Sprintf("seconds must be a number, got %q", input),
		"watchdog_auto <seconds>",
		"pass the threshold in seconds, e.g. 'watchdog_auto 5'",
		"pass 0 to disable the watchdog",
	)
}

// NegativeThresholdSeconds reports a negative watchdog threshold value.
func NegativeThresholdSeconds(seconds float64) *CLIError {
	return NewArgumentError(
		fmt.Sprintf("seconds cannot be negative, got %g", seconds),
		"pass a threshold >= 0 (0 disables the watchdog)",
	)
}

// InvalidWebhookURL reports a webhook URL that is not http(s).
func InvalidWebhookURL(url string) *CLIError {
	return NewArgumentErrorWithUsage(
		fmt.Sprintf("webhook URL must start with http:// or https://, got %q", url),
		"watchdog_setup <webhook_url>",
		"copy the full webhook URL from your Discord channel settings",
	)
}

// WebhookDeliveryFailed reports a failed outbound webhook call.
// Delivery errors are logged only and never returned to the caller.
func WebhookDeliveryFailed(err error) *CLIError {
	return WrapWithMessage(err, Delivery, "failed to send Discord notification")
}

// UnknownCommand reports an unrecognized line command.
func UnknownCommand(name string) *CLIError {
	return NewArgumentError(
		fmt.Sprintf("unknown command %q", name),
		"available commands: watchdog_auto, watchdog_setup, notify",
	)
}

// Package notify builds and dispatches cell-completion notifications.
//
// A notification event fans out to up to three sinks: an in-page colored
// status banner, a browser desktop notification (permission gated, degrades
// to a console warning), and an optional remote webhook. Which sinks fire is
// decided by the notification tag and the configured webhook URL.
package notify

import (
	"fmt"
	"strings"
	"time"

	"github.com/cellwatch/cellwatch/internal/kernel"
)

// Title is the alert title used for desktop and webhook notifications.
const Title = "Jupyter Watchdog Alert"

// Tag labels the origin of a notification event and drives webhook routing:
// "discord" and "watchdog" events go to the webhook, "system" never does.
type Tag string

const (
	// TagSystem is a local-only notification (banner + desktop).
	TagSystem Tag = "system"
	// TagDiscord additionally routes to the configured webhook.
	TagDiscord Tag = "discord"
	// TagWatchdog marks an automatic threshold alert; routes like discord.
	TagWatchdog Tag = "watchdog"
)

// ParseTag maps a user-supplied mode string to a Tag. Empty input means
// system. Unknown non-empty values fall back to system with ok=false so the
// caller can warn.
func ParseTag(mode string) (tag Tag, ok bool) {
	switch Tag(strings.ToLower(strings.TrimSpace(mode))) {
	case "":
		return TagSystem, true
	case TagSystem:
		return TagSystem, true
	case TagDiscord:
		return TagDiscord, true
	default:
		return TagSystem, false
	}
}

// SendsToWebhook reports whether events with this tag are forwarded to a
// configured webhook.
func (t Tag) SendsToWebhook() bool {
	return t == TagDiscord || t == TagWatchdog
}

// BuildBody renders the notification body: status line, elapsed time, and an
// error summary on failure only.
func BuildBody(res kernel.Result, duration time.Duration) string {
	icon, label := "✅", "Success"
	if !res.Success {
		icon, label = "❌", "Failure"
	}

	lines := []string{
		fmt.Sprintf("Status: %s %s", icon, label),
		"Time: " + formatSeconds(duration),
	}
	if !res.Success {
		lines = append(lines, "Error: "+errorSummary(res.Err))
	}
	return strings.Join(lines, "\n")
}

// errorSummary stringifies the unit's error. A panicking Error() must not
// take the whole notification down, so it is recovered into a generic label.
func errorSummary(err error) (s string) {
	defer func() {
		if recover() != nil {
			s = "Unknown Error"
		}
	}()
	if err == nil {
		return "Unknown Error"
	}
	return err.Error()
}

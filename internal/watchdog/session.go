// Package watchdog implements the cell execution watchdog: a session object
// that observes a host kernel through its event bus, times every unit of
// execution, and raises notifications when a configured duration threshold
// is exceeded or when a unit is explicitly wrapped with Notify.
package watchdog

import (
	"context"
	"fmt"
	"io"
	"math"
	"os"
	"strings"
	"time"

	cwerrors "github.com/cellwatch/cellwatch/internal/errors"
	"github.com/cellwatch/cellwatch/internal/kernel"
	"github.com/cellwatch/cellwatch/internal/notify"
)

// Session holds the watchdog state for one extension lifetime. It is built
// explicitly and handed its collaborators; there is no package-level
// singleton.
//
// All methods run on the host's single logical thread of control (the event
// loop that fires the hooks), so the scalar fields need no locking. The only
// concurrency is the dispatcher's fire-and-forget webhook send, which works
// on copies.
type Session struct {
	runner     kernel.Runner
	bus        *kernel.Bus
	dispatcher *notify.Dispatcher
	out        io.Writer

	now func() time.Time

	threshold    time.Duration
	startTime    time.Time
	suppressAuto bool
	webhookURL   string

	// Non-nil iff the hooks are registered on the bus.
	beforeSub *kernel.Subscription
	afterSub  *kernel.Subscription
}

// Option configures a Session at construction time.
type Option func(*Session)

// WithWebhookURL seeds the webhook URL, e.g. from JUPYTER_WATCHDOG_WEBHOOK
// or the config file. Later SetWebhook calls overwrite it.
func WithWebhookURL(url string) Option {
	return func(s *Session) { s.webhookURL = url }
}

// WithOutput directs user-facing status messages to w instead of stdout.
func WithOutput(w io.Writer) Option {
	return func(s *Session) { s.out = w }
}

// withClock substitutes the time source in tests.
func withClock(now func() time.Time) Option {
	return func(s *Session) { s.now = now }
}

// NewSession creates a watchdog session observing bus and executing wrapped
// units through runner. The session starts with the watchdog disabled; call
// SetThreshold to arm it.
func NewSession(runner kernel.Runner, bus *kernel.Bus, dispatcher *notify.Dispatcher, opts ...Option) *Session {
	s := &Session{
		runner:     runner,
		bus:        bus,
		dispatcher: dispatcher,
		out:        os.Stdout,
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Threshold returns the current watchdog threshold (0 = disabled).
func (s *Session) Threshold() time.Duration { return s.threshold }

// WebhookURL returns the currently configured webhook URL, if any.
func (s *Session) WebhookURL() string { return s.webhookURL }

// Enabled reports whether the watchdog hooks are registered.
func (s *Session) Enabled() bool { return s.beforeSub != nil }

// preRun records the unit start timestamp. It has no other side effects and
// cannot fail.
func (s *Session) preRun() {
	s.startTime = s.now()
}

// postRun compares elapsed time against the threshold and raises a watchdog
// notification on strict excess. Suppressed while a Notify-wrapped unit runs
// so the unit is not reported twice.
func (s *Session) postRun(res kernel.Result) {
	if s.threshold <= 0 {
		return
	}
	if s.suppressAuto {
		return
	}

	elapsed := s.now().Sub(s.startTime)
	if elapsed > s.threshold {
		s.dispatcher.Dispatch(res, elapsed, notify.TagWatchdog, s.webhookURL)
	}
}

// SetThreshold updates the watchdog threshold in seconds.
//
// Negative or non-finite values are rejected and leave the state unchanged.
// Zero disables the watchdog and unregisters the hooks; disabling an already
// disabled watchdog just prints a notice. Positive values register the hooks
// on first enable and only update the stored threshold afterwards.
func (s *Session) SetThreshold(seconds float64) error {
	if math.IsNaN(seconds) || math.IsInf(seconds, 0) {
		return cwerrors.InvalidThresholdSeconds(fmt.Sprintf("%v", seconds))
	}
	if seconds < 0 {
		return cwerrors.NegativeThresholdSeconds(seconds)
	}

	if seconds == 0 {
		s.threshold = 0
		if !s.Enabled() {
			fmt.Fprintln(s.out, "Watchdog is already disabled.")
			return nil
		}
		s.bus.Unsubscribe(*s.beforeSub)
		s.bus.Unsubscribe(*s.afterSub)
		s.beforeSub, s.afterSub = nil, nil
		fmt.Fprintln(s.out, "Watchdog disabled.")
		return nil
	}

	s.threshold = time.Duration(seconds * float64(time.Second))
	if s.Enabled() {
		fmt.Fprintf(s.out, "Watchdog threshold updated to %gs.\n", seconds)
		return nil
	}

	before := s.bus.SubscribeBefore(s.preRun)
	after := s.bus.SubscribeAfter(s.postRun)
	s.beforeSub, s.afterSub = &before, &after
	fmt.Fprintf(s.out, "Watchdog enabled. Alerting if cell execution > %gs.\n", seconds)
	return nil
}

// SetWebhook stores the webhook URL for discord/watchdog notifications.
// Empty input prints usage and changes nothing. Anything not starting with
// http:// or https:// is rejected.
func (s *Session) SetWebhook(url string) error {
	url = strings.TrimSpace(url)
	if url == "" {
		fmt.Fprintln(s.out, "Usage: watchdog_setup <webhook_url>")
		return nil
	}
	if !strings.HasPrefix(url, "http://") && !strings.HasPrefix(url, "https://") {
		return cwerrors.InvalidWebhookURL(url)
	}

	s.webhookURL = url
	fmt.Fprintln(s.out, "Discord Webhook URL updated successfully.")
	return nil
}

// Notify executes unit through the host runner with a guaranteed completion
// notification tagged by mode. The automatic watchdog is suppressed for the
// duration of the wrapped unit and always restored, and the unit's result is
// returned unchanged.
func (s *Session) Notify(ctx context.Context, mode, unit string) kernel.Result {
	tag, ok := notify.ParseTag(mode)
	if !ok {
		fmt.Fprintf(s.out, "Warning: unknown notify mode %q, using system.\n", mode)
	}

	start := s.now()
	s.suppressAuto = true
	defer func() { s.suppressAuto = false }()

	res := s.runner.Run(ctx, unit)

	duration := s.now().Sub(start)
	s.dispatcher.Dispatch(res, duration, tag, s.webhookURL)
	return res
}

package notify

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	cwerrors "github.com/cellwatch/cellwatch/internal/errors"
	"github.com/cellwatch/cellwatch/internal/kernel"
)

// Dispatcher fans one notification event out to the banner, desktop, and
// webhook sinks.
//
// The webhook send is fire-and-forget: one goroutine per event, no queue, no
// retry, and the caller never waits on it. Delivery failures are logged and
// dropped. The goroutine only touches copies of the URL and message taken at
// dispatch time, so no locking is needed around session state.
type Dispatcher struct {
	renderer kernel.Renderer
	poster   Poster
	timeout  time.Duration

	// interactive gates the desktop sink; swapped out in tests.
	interactive func() bool

	// inflight lets tests wait for background webhook sends to settle.
	inflight sync.WaitGroup
}

// NewDispatcher creates a dispatcher rendering into renderer and delivering
// webhook messages through poster.
func NewDispatcher(renderer kernel.Renderer, poster Poster) *Dispatcher {
	return &Dispatcher{
		renderer:    renderer,
		poster:      poster,
		timeout:     DefaultWebhookTimeout,
		interactive: interactiveSession,
	}
}

// SetWebhookTimeout overrides the per-send webhook timeout.
func (d *Dispatcher) SetWebhookTimeout(timeout time.Duration) {
	if timeout > 0 {
		d.timeout = timeout
	}
}

// Dispatch sends one notification for a finished unit of execution.
//
// The banner and desktop sinks always fire. The webhook fires only when a
// URL is configured and the tag routes to it ("discord" or "watchdog";
// "system" never leaves the machine).
func (d *Dispatcher) Dispatch(res kernel.Result, duration time.Duration, tag Tag, webhookURL string) {
	body := BuildBody(res, duration)
	banner := BuildBanner(duration)

	if err := d.renderer.DisplayHTML(BannerHTML(banner, res.Success)); err != nil {
		log.Printf("[notify] banner render failed: %v", err)
	}

	if d.interactive() {
		if err := d.renderer.DisplayScript(BrowserScript(Title, body)); err != nil {
			log.Printf("[notify] desktop notification unavailable: %v", err)
		}
	}

	if webhookURL == "" || !tag.SendsToWebhook() {
		return
	}

	content := "**" + Title + "**\n" + body
	d.inflight.Add(1)
	go func(url, content string) {
		defer d.inflight.Done()

		ctx, cancel := context.WithTimeout(context.Background(), d.timeout)
		defer cancel()

		if err := d.poster.Post(ctx, url, content); err != nil {
			log.Printf("[notify] %s", cwerrors.WebhookDeliveryFailed(err).Error())
		}
	}(webhookURL, content)
}

// Flush blocks until all in-flight webhook sends have finished. Callers use
// it before shutdown so a final notification is not cut off mid-send; it is
// never called on the hook path.
func (d *Dispatcher) Flush() {
	d.inflight.Wait()
}

// BuildBanner renders the banner text shown for a finished unit.
func BuildBanner(duration time.Duration) string {
	return "Execution finished in " + formatSeconds(duration)
}

// formatSeconds renders a duration as seconds with two decimals, e.g. "0.05s".
func formatSeconds(d time.Duration) string {
	return fmt.Sprintf("%.2fs", d.Seconds())
}

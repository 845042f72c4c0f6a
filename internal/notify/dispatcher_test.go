// Package notify_test tests notification fan-out and webhook routing.
// Related: internal/notify/dispatcher.go
// Tags: notify, dispatcher, webhook, fan-out
package notify

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cellwatch/cellwatch/internal/kernel"
)

func newTestDispatcher(interactive bool) (*Dispatcher, *mockRenderer, *MockPoster) {
	renderer := &mockRenderer{}
	poster := NewMockPoster()
	d := NewDispatcher(renderer, poster)
	d.interactive = func() bool { return interactive }
	return d, renderer, poster
}

func TestDispatchRendersBannerAndScript(t *testing.T) {
	t.Parallel()
	d, renderer, _ := newTestDispatcher(true)

	d.Dispatch(kernel.Result{Success: true}, 50*time.Millisecond, TagSystem, "")

	require.Len(t, renderer.HTMLCalls, 1)
	assert.Contains(t, renderer.HTMLCalls[0], "Execution finished in 0.05s")
	assert.Contains(t, renderer.HTMLCalls[0], "#28a745")

	require.Len(t, renderer.ScriptCalls, 1)
	assert.Contains(t, renderer.ScriptCalls[0], "Jupyter Watchdog Alert")
}

func TestDispatchFailureBannerUsesFailureColor(t *testing.T) {
	t.Parallel()
	d, renderer, _ := newTestDispatcher(true)

	res := kernel.Result{Success: false, Err: errors.New("boom")}
	d.Dispatch(res, time.Second, TagSystem, "")

	require.Len(t, renderer.HTMLCalls, 1)
	assert.Contains(t, renderer.HTMLCalls[0], "#dc3545")
	assert.Contains(t, renderer.HTMLCalls[0], "❌")
}

func TestDispatchSkipsScriptWhenNonInteractive(t *testing.T) {
	t.Parallel()
	d, renderer, _ := newTestDispatcher(false)

	d.Dispatch(kernel.Result{Success: true}, time.Second, TagSystem, "")

	assert.Len(t, renderer.HTMLCalls, 1, "banner always renders")
	assert.Empty(t, renderer.ScriptCalls, "desktop sink skipped without a terminal")
}

func TestDispatchWebhookRouting(t *testing.T) {
	tests := map[string]struct {
		tag           Tag
		webhookURL    string
		expectedCalls int
	}{
		"system with URL never posts":    {tag: TagSystem, webhookURL: "https://hooks.example/x", expectedCalls: 0},
		"discord with URL posts once":    {tag: TagDiscord, webhookURL: "https://hooks.example/x", expectedCalls: 1},
		"watchdog with URL posts once":   {tag: TagWatchdog, webhookURL: "https://hooks.example/x", expectedCalls: 1},
		"discord without URL never posts": {tag: TagDiscord, webhookURL: "", expectedCalls: 0},
		"watchdog without URL never posts": {tag: TagWatchdog, webhookURL: "", expectedCalls: 0},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			d, _, poster := newTestDispatcher(false)

			d.Dispatch(kernel.Result{Success: true}, time.Second, test.tag, test.webhookURL)
			d.Flush()

			assert.Equal(t, test.expectedCalls, poster.CallCount())
		})
	}
}

func TestDispatchWebhookContent(t *testing.T) {
	t.Parallel()
	d, _, poster := newTestDispatcher(false)

	res := kernel.Result{Success: false, Err: errors.New("boom")}
	d.Dispatch(res, 50*time.Millisecond, TagDiscord, "https://hooks.example/x")
	d.Flush()

	require.Equal(t, 1, poster.CallCount())
	assert.Equal(t, "https://hooks.example/x", poster.LastURL)
	assert.True(t, strings.HasPrefix(poster.LastContent, "**Jupyter Watchdog Alert**\n"))
	assert.Contains(t, poster.LastContent, "Status: ❌ Failure")
	assert.Contains(t, poster.LastContent, "Error: boom")
}

func TestDispatchWebhookFailureNeverPropagates(t *testing.T) {
	t.Parallel()
	d, renderer, poster := newTestDispatcher(false)
	poster.WithError(errors.New("connection refused"))

	// Dispatch must not panic or surface the delivery error.
	assert.NotPanics(t, func() {
		d.Dispatch(kernel.Result{Success: true}, time.Second, TagWatchdog, "https://hooks.example/x")
		d.Flush()
	})

	assert.Equal(t, 1, poster.CallCount())
	assert.Len(t, renderer.HTMLCalls, 1)
}

func TestDispatchOneSendPerEvent(t *testing.T) {
	t.Parallel()
	d, _, poster := newTestDispatcher(false)

	for range 3 {
		d.Dispatch(kernel.Result{Success: true}, time.Second, TagDiscord, "https://hooks.example/x")
	}
	d.Flush()

	assert.Equal(t, 3, poster.CallCount())
}

func TestSetWebhookTimeout(t *testing.T) {
	t.Parallel()
	d, _, _ := newTestDispatcher(false)

	d.SetWebhookTimeout(2 * time.Second)
	assert.Equal(t, 2*time.Second, d.timeout)

	// Zero and negative values keep the previous timeout.
	d.SetWebhookTimeout(0)
	assert.Equal(t, 2*time.Second, d.timeout)
}

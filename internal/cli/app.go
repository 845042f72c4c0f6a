package cli

import (
	"io"
	"os"
	"time"

	"github.com/cellwatch/cellwatch/internal/config"
	"github.com/cellwatch/cellwatch/internal/kernel"
	"github.com/cellwatch/cellwatch/internal/notify"
	"github.com/cellwatch/cellwatch/internal/watchdog"
)

// app is the wired-up extension: config, kernel, dispatcher, and session.
type app struct {
	cfg        *config.Configuration
	bus        *kernel.Bus
	kernel     *kernel.ExecKernel
	dispatcher *notify.Dispatcher
	session    *watchdog.Session
}

// wrapRunner lets commands decorate the runner (e.g. with a spinner) before
// the session is built.
type wrapRunner func(kernel.Runner) kernel.Runner

// newApp loads configuration and wires the session to a local shell kernel.
// Output (unit output, banners, status messages) goes to out.
func newApp(configPath string, out io.Writer, wrap wrapRunner) (*app, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}

	bus := kernel.NewBus()
	k := kernel.NewExecKernel(bus, out, os.Stderr)

	poster := notify.NewHTTPPoster(time.Duration(cfg.WebhookTimeoutSeconds) * time.Second)
	dispatcher := notify.NewDispatcher(kernel.NewConsoleRenderer(out), poster)
	dispatcher.SetWebhookTimeout(time.Duration(cfg.WebhookTimeoutSeconds) * time.Second)

	var runner kernel.Runner = k
	if wrap != nil {
		runner = wrap(runner)
	}

	session := watchdog.NewSession(runner, bus, dispatcher,
		watchdog.WithWebhookURL(cfg.WebhookURL),
		watchdog.WithOutput(out),
	)

	if cfg.ThresholdSeconds > 0 {
		if err := session.SetThreshold(cfg.ThresholdSeconds); err != nil {
			return nil, err
		}
	}

	return &app{
		cfg:        cfg,
		bus:        bus,
		kernel:     k,
		dispatcher: dispatcher,
		session:    session,
	}, nil
}

// close drains in-flight webhook sends so a final notification is not lost
// on process exit.
func (a *app) close() {
	a.dispatcher.Flush()
}

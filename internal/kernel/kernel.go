// Package kernel abstracts the host execution engine that cellwatch observes.
// It provides the unit runner interface, the before/after execution event bus,
// and the output surface used to render notification artifacts.
//
// The package owns no watchdog logic. It exists so the watchdog session can be
// wired to any host (an embedded shell-command kernel, a notebook bridge, or a
// test double) through the same three seams.
package kernel

import "context"

// Result is the outcome of one unit of execution. It is produced by the host
// runner and read-only to observers.
type Result struct {
	// Success is true when the unit completed without error.
	Success bool

	// Err holds the unit's failure, nil on success.
	Err error

	// Value is the unit's result value (e.g. captured output). It is passed
	// through to callers unchanged and never inspected by the watchdog.
	Value string
}

// Runner executes one unit of work synchronously and returns its result.
// Implementations must return a Result even when the unit fails; the error
// travels inside the Result, not as a second return value, so observers can
// distinguish "the unit failed" from "the runner itself broke".
type Runner interface {
	Run(ctx context.Context, unit string) Result
}

// RunnerFunc adapts a plain function to the Runner interface.
type RunnerFunc func(ctx context.Context, unit string) Result

// Run calls f.
func (f RunnerFunc) Run(ctx context.Context, unit string) Result {
	return f(ctx, unit)
}

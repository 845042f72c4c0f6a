// Package testutil provides test doubles shared across cellwatch tests.
package testutil

import (
	"context"
	"sync"
	"time"

	"github.com/cellwatch/cellwatch/internal/kernel"
)

// RunRecord captures one MockRunner invocation.
type RunRecord struct {
	Unit      string
	Timestamp time.Time
}

// MockRunner is a scripted kernel.Runner. Results are returned in the order
// they were queued; once the queue is exhausted it returns a success result.
// An optional OnRun callback fires during each call, which lets tests advance
// a fake clock "while the unit is executing".
type MockRunner struct {
	mu      sync.Mutex
	results []kernel.Result
	next    int
	calls   []RunRecord

	// OnRun runs inside Run, after recording the call and before returning
	// the result.
	OnRun func(unit string)
}

// NewMockRunner creates an empty mock runner.
func NewMockRunner() *MockRunner {
	return &MockRunner{}
}

// WithResult queues a result to return on the next unscripted call.
func (m *MockRunner) WithResult(res kernel.Result) *MockRunner {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.results = append(m.results, res)
	return m
}

// WithFailure queues a failing result carrying err.
func (m *MockRunner) WithFailure(err error) *MockRunner {
	return m.WithResult(kernel.Result{Success: false, Err: err})
}

// Run records the call and returns the next scripted result.
func (m *MockRunner) Run(_ context.Context, unit string) kernel.Result {
	m.mu.Lock()
	m.calls = append(m.calls, RunRecord{Unit: unit, Timestamp: time.Now()})
	var res kernel.Result
	if m.next < len(m.results) {
		res = m.results[m.next]
		m.next++
	} else {
		res = kernel.Result{Success: true}
	}
	onRun := m.OnRun
	m.mu.Unlock()

	if onRun != nil {
		onRun(unit)
	}
	return res
}

// Calls returns a copy of the recorded invocations.
func (m *MockRunner) Calls() []RunRecord {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]RunRecord, len(m.calls))
	copy(out, m.calls)
	return out
}

// CallCount returns how many times Run was invoked.
func (m *MockRunner) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.calls)
}

// FakeClock is a manually advanced time source for deterministic duration
// tests. Pass Now to watchdog sessions via their clock option.
type FakeClock struct {
	mu  sync.Mutex
	now time.Time
}

// NewFakeClock starts a clock at t.
func NewFakeClock(t time.Time) *FakeClock {
	return &FakeClock{now: t}
}

// Now returns the current fake time.
func (c *FakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

// Advance moves the clock forward by d.
func (c *FakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

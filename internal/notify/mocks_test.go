// Package notify_test provides mock sinks for dispatcher testing.
// Related: internal/notify/dispatcher.go
// Tags: notify, mocks, testing
package notify

import (
	"context"
	"sync"
)

// MockPoster records webhook calls and returns a configurable error.
type MockPoster struct {
	mu sync.Mutex

	PostError error
	PostFunc  func(ctx context.Context, url, content string) error

	Calls       int
	LastURL     string
	LastContent string
}

// NewMockPoster creates a mock poster that succeeds by default.
func NewMockPoster() *MockPoster {
	return &MockPoster{}
}

// WithError configures the mock to fail every Post call.
func (m *MockPoster) WithError(err error) *MockPoster {
	m.PostError = err
	return m
}

// Post records the call and returns the configured result.
func (m *MockPoster) Post(ctx context.Context, url, content string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.Calls++
	m.LastURL = url
	m.LastContent = content

	if m.PostFunc != nil {
		return m.PostFunc(ctx, url, content)
	}
	return m.PostError
}

// CallCount returns how many times Post was invoked.
func (m *MockPoster) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.Calls
}

// mockRenderer records rendered HTML and script snippets.
type mockRenderer struct {
	HTMLCalls   []string
	ScriptCalls []string
	HTMLError   error
	ScriptError error
}

func (r *mockRenderer) DisplayHTML(html string) error {
	r.HTMLCalls = append(r.HTMLCalls, html)
	return r.HTMLError
}

func (r *mockRenderer) DisplayScript(script string) error {
	r.ScriptCalls = append(r.ScriptCalls, script)
	return r.ScriptError
}

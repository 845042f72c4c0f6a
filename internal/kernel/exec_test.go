// Package kernel_test tests the shell-command kernel and its event publishing.
// Related: internal/kernel/exec.go
// Tags: kernel, exec, events, results
package kernel

import (
	"bytes"
	"context"
	"io"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func skipOnWindows(t *testing.T) {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("shell semantics differ on windows")
	}
}

func TestExecKernelRunSuccess(t *testing.T) {
	t.Parallel()
	skipOnWindows(t)

	bus := NewBus()
	var out bytes.Buffer
	k := NewExecKernel(bus, &out, io.Discard)

	res := k.Run(context.Background(), "echo hello")

	require.True(t, res.Success)
	require.NoError(t, res.Err)
	assert.Equal(t, "hello", res.Value)
	assert.Contains(t, out.String(), "hello")
}

func TestExecKernelRunFailure(t *testing.T) {
	t.Parallel()
	skipOnWindows(t)

	bus := NewBus()
	k := NewExecKernel(bus, io.Discard, io.Discard)

	res := k.Run(context.Background(), "exit 3")

	assert.False(t, res.Success)
	assert.Error(t, res.Err)
}

func TestExecKernelPublishesEvents(t *testing.T) {
	t.Parallel()
	skipOnWindows(t)

	bus := NewBus()
	k := NewExecKernel(bus, io.Discard, io.Discard)

	var order []string
	bus.SubscribeBefore(func() { order = append(order, "before") })
	bus.SubscribeAfter(func(r Result) {
		order = append(order, "after")
		assert.True(t, r.Success)
	})

	k.Run(context.Background(), "true")

	assert.Equal(t, []string{"before", "after"}, order)
}

func TestExecKernelAfterEventCarriesFailure(t *testing.T) {
	t.Parallel()
	skipOnWindows(t)

	bus := NewBus()
	k := NewExecKernel(bus, io.Discard, io.Discard)

	var got Result
	bus.SubscribeAfter(func(r Result) { got = r })

	k.Run(context.Background(), "false")

	assert.False(t, got.Success)
	assert.Error(t, got.Err)
}

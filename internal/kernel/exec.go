package kernel

import (
	"bytes"
	"context"
	"io"
	"os"
	"os/exec"
	"runtime"
	"strings"
)

// ExecKernel is a host kernel that runs shell commands as units of work.
// Every run publishes BeforeUnit and AfterUnit on the kernel's bus, which is
// what the watchdog session subscribes to.
type ExecKernel struct {
	bus    *Bus
	stdout io.Writer
	stderr io.Writer
}

// NewExecKernel creates a shell-command kernel publishing on bus.
// Unit output is streamed to stdout/stderr and also captured into the Result.
func NewExecKernel(bus *Bus, stdout, stderr io.Writer) *ExecKernel {
	if stdout == nil {
		stdout = os.Stdout
	}
	if stderr == nil {
		stderr = os.Stderr
	}
	return &ExecKernel{bus: bus, stdout: stdout, stderr: stderr}
}

// Bus returns the kernel's event bus.
func (k *ExecKernel) Bus() *Bus { return k.bus }

// Run executes unit as a shell command and returns its result. The unit's
// own failure is reported inside the Result, never as a panic or a swallowed
// error.
func (k *ExecKernel) Run(ctx context.Context, unit string) Result {
	k.bus.EmitBefore()

	var captured bytes.Buffer
	cmd := shellCommand(ctx, unit)
	cmd.Stdout = io.MultiWriter(k.stdout, &captured)
	cmd.Stderr = k.stderr
	cmd.Stdin = os.Stdin

	err := cmd.Run()
	res := Result{
		Success: err == nil,
		Err:     err,
		Value:   strings.TrimRight(captured.String(), "\n"),
	}

	k.bus.EmitAfter(res)
	return res
}

func shellCommand(ctx context.Context, unit string) *exec.Cmd {
	if runtime.GOOS == "windows" {
		return exec.CommandContext(ctx, "cmd", "/C", unit)
	}
	shell := os.Getenv("SHELL")
	if shell == "" {
		shell = "/bin/sh"
	}
	return exec.CommandContext(ctx, shell, "-c", unit)
}

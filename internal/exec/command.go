// Package exec runs external commands for the appdirs CLI.
package exec

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
	"time"
)

// Result contains the outcome of a command execution.
type Result struct {
	Stdout   string
	Stderr   string
	ExitCode int
	Err      error
}

// Success reports whether the command ran and exited zero.
func (r *Result) Success() bool {
	return r.Err == nil && r.ExitCode == 0
}

// Failed reports whether the command errored or exited non-zero.
func (r *Result) Failed() bool {
	return !r.Success()
}

// CommandRunner executes external commands with output capture.
type CommandRunner interface {
	// Run executes a command under the given context. The default timeout
	// applies when the context carries no deadline.
	Run(ctx context.Context, name string, args ...string) *Result

	// RunWithTimeout executes a command with a specific timeout.
	RunWithTimeout(timeout time.Duration, name string, args ...string) *Result
}

// commandRunner implements CommandRunner.
type commandRunner struct {
	defaultTimeout time.Duration
}

// NewCommandRunner creates a new CommandRunner with the given default timeout.
func NewCommandRunner(defaultTimeout time.Duration) CommandRunner {
	return &commandRunner{
		defaultTimeout: defaultTimeout,
	}
}

// Run executes a command and returns the result.
func (r *commandRunner) Run(ctx context.Context, name string, args ...string) *Result {
	if _, ok := ctx.Deadline(); !ok && r.defaultTimeout > 0 {
		var cancel context.CancelFunc

		ctx, cancel = context.WithTimeout(ctx, r.defaultTimeout)
		defer cancel()
	}

	cmd := exec.CommandContext(ctx, name, args...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()

	result := &Result{
		Stdout: stdout.String(),
		Stderr: stderr.String(),
		Err:    err,
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		result.ExitCode = exitErr.ExitCode()
	}

	return result
}

// RunWithTimeout executes a command with a specific timeout.
func (r *commandRunner) RunWithTimeout(timeout time.Duration, name string, args ...string) *Result {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	return r.Run(ctx, name, args...)
}

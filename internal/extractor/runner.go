package extractor

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"time"
)

// Executor abstracts subprocess execution for testability.
type Executor interface {
	Run(ctx context.Context, binary string, args ...string) (stdout, stderr []byte, err error)
}

// Option configures a Runner.
type Option func(*Runner)

// WithExecutor injects a custom executor (primarily for tests).
func WithExecutor(executor Executor) Option {
	return func(r *Runner) {
		if executor != nil {
			r.exec = executor
		}
	}
}

// Runner invokes the extraction tool's dump command.
type Runner struct {
	tool    string
	timeout time.Duration
	exec    Executor
}

// NewRunner constructs a Runner for a located tool path. A timeout of zero
// disables the deadline.
func NewRunner(tool string, timeout time.Duration, opts ...Option) *Runner {
	r := &Runner{
		tool:    tool,
		timeout: timeout,
		exec:    commandExecutor{},
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Dump runs `<tool> dump <dataFile> <outDir>` under the runner's timeout.
//
// Precondition: dataFile must exist and outDir must be writable by the tool.
// Postcondition: nil on a zero exit; otherwise an error carrying the tool's
// output, stderr preferred.
func (r *Runner) Dump(ctx context.Context, dataFile, outDir string) error {
	if r.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.timeout)
		defer cancel()
	}

	stdout, stderr, err := r.exec.Run(ctx, r.tool, "dump", dataFile, outDir)
	if err != nil {
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return fmt.Errorf("extraction tool timed out after %s", r.timeout)
		}
		output := strings.TrimSpace(string(stderr))
		if output == "" {
			output = strings.TrimSpace(string(stdout))
		}
		if output == "" {
			return fmt.Errorf("running extraction tool: %w", err)
		}
		return fmt.Errorf("extraction tool failed: %s: %w", output, err)
	}
	return nil
}

type commandExecutor struct{}

func (commandExecutor) Run(ctx context.Context, binary string, args ...string) ([]byte, []byte, error) {
	cmd := exec.CommandContext(ctx, binary, args...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	err := cmd.Run()
	return stdout.Bytes(), stderr.Bytes(), err
}

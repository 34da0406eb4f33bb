package process

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os/exec"
	"sort"
	"strings"

	"github.com/aretw0/nbserve/pkg/domain"
	"github.com/aretw0/nbserve/pkg/ports"
)

// Runner implements ports.CommandRunner by executing local processes.
// It follows a Strict Registry pattern for security (Allow-Listing): only
// commands registered by name can run, and callers can only append arguments.
type Runner struct {
	registry map[string]RegisteredProcess
	baseDir  string
	logger   *slog.Logger
}

var _ ports.CommandRunner = (*Runner)(nil)

// RegisteredProcess defines an allowed command execution.
type RegisteredProcess struct {
	Command string
	Args    []string // Default args, placed before the invocation args
	Env     []string // Extra KEY=VALUE pairs
}

// RunnerOption configures the runner.
type RunnerOption func(*Runner)

// WithRegistry populates the allow-list from a loaded config.
func WithRegistry(tools map[string]ProcessConfig) RunnerOption {
	return func(r *Runner) {
		for name, tool := range tools {
			r.Register(name, tool.Command, tool.Args...)
			if len(tool.Environment) > 0 {
				proc := r.registry[name]
				proc.Env = envList(tool.Environment)
				r.registry[name] = proc
			}
		}
	}
}

// WithBaseDir sets the working directory for executed processes.
func WithBaseDir(dir string) RunnerOption {
	return func(r *Runner) {
		r.baseDir = dir
	}
}

// WithLogger sets the logger used to report executions.
func WithLogger(logger *slog.Logger) RunnerOption {
	return func(r *Runner) {
		r.logger = logger
	}
}

// NewRunner creates a new Process Runner.
func NewRunner(opts ...RunnerOption) *Runner {
	r := &Runner{
		registry: make(map[string]RegisteredProcess),
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Register adds a trusted command to the allow-list, replacing any previous
// entry with the same name.
func (r *Runner) Register(name string, command string, args ...string) {
	r.registry[name] = RegisteredProcess{
		Command: command,
		Args:    args,
	}
}

// Registered reports whether name is in the allow-list.
func (r *Runner) Registered(name string) (RegisteredProcess, bool) {
	proc, ok := r.registry[name]
	return proc, ok
}

// Execute runs the named command with the registered args followed by inv.Args.
// Arguments are passed directly to the process, never through a shell.
func (r *Runner) Execute(ctx context.Context, inv domain.Invocation) (domain.InvocationResult, error) {
	result := domain.InvocationResult{Name: inv.Name, ExitCode: -1}

	proc, ok := r.registry[inv.Name]
	if !ok {
		return result, fmt.Errorf("%w: %s", domain.ErrCommandNotRegistered, inv.Name)
	}

	args := append(append([]string{}, proc.Args...), inv.Args...)
	cmd := exec.CommandContext(ctx, proc.Command, args...)
	cmd.Dir = r.baseDir
	if inv.Dir != "" {
		cmd.Dir = inv.Dir
	}
	if len(proc.Env) > 0 {
		cmd.Env = append(cmd.Environ(), proc.Env...)
	}

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	r.logger.Debug("Executing process", "name", inv.Name, "command", proc.Command, "args", args)
	err := cmd.Run()

	result.Stdout = stdout.String()
	result.Stderr = stderr.String()
	if cmd.ProcessState != nil {
		result.ExitCode = cmd.ProcessState.ExitCode()
	}

	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return result, fmt.Errorf("execution of %s interrupted: %w", inv.Name, ctxErr)
		}
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return result, fmt.Errorf("execution of %s failed: %v. Stderr: %s", inv.Name, err, strings.TrimSpace(result.Stderr))
		}
		return result, fmt.Errorf("execution of %s failed: %w", inv.Name, err)
	}
	return result, nil
}

func envList(env map[string]string) []string {
	keys := make([]string, 0, len(env))
	for k := range env {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	list := make([]string, 0, len(keys))
	for _, k := range keys {
		list = append(list, k+"="+env[k])
	}
	return list
}

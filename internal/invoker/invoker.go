// Package invoker runs a utility's help subcommand and returns its output.
package invoker

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"unicode/utf8"

	"genman/internal/logging"
)

// Runner executes a program and returns its standard output.
type Runner interface {
	Run(ctx context.Context, name string, args ...string) ([]byte, error)
}

// ExecRunner runs programs with os/exec.
type ExecRunner struct{}

// Run executes name with args and waits for it to exit. A non-zero exit
// status is reported as a *ProcessExecutionError.
func (ExecRunner) Run(ctx context.Context, name string, args ...string) ([]byte, error) {
	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	if err == nil {
		return stdout.Bytes(), nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return nil, &ProcessExecutionError{
			Command:  append([]string{name}, args...),
			ExitCode: exitErr.ExitCode(),
			Output:   stdout.Bytes(),
			Stderr:   stderr.Bytes(),
			Err:      err,
		}
	}
	return nil, fmt.Errorf("failed to run %s: %w", name, err)
}

// ProcessExecutionError reports a help invocation that exited unsuccessfully.
type ProcessExecutionError struct {
	Command  []string
	ExitCode int
	Output   []byte
	Stderr   []byte
	Err      error
}

func (e *ProcessExecutionError) Error() string {
	msg := fmt.Sprintf("command %q exited with status %d", strings.Join(e.Command, " "), e.ExitCode)
	if s := strings.TrimSpace(string(e.Stderr)); s != "" {
		msg += ": " + firstLine(s)
	}
	return msg
}

func (e *ProcessExecutionError) Unwrap() error { return e.Err }

// DecodeError reports help output that is not valid UTF-8.
type DecodeError struct {
	Command []string
	Offset  int
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("output of %q is not valid UTF-8 (byte offset %d)", strings.Join(e.Command, " "), e.Offset)
}

// Invoker fetches help text from a utility.
type Invoker struct {
	runner Runner
	logger *logging.Logger
}

// New returns an Invoker using runner. A nil runner means ExecRunner and a
// nil logger discards messages.
func New(runner Runner, logger *logging.Logger) *Invoker {
	if runner == nil {
		runner = ExecRunner{}
	}
	if logger == nil {
		logger = logging.Discard()
	}
	return &Invoker{runner: runner, logger: logger}
}

// HelpArgs returns the arguments passed to the utility.
func HelpArgs(subcommand string) []string {
	if subcommand == "" {
		return []string{"help"}
	}
	return []string{"help", subcommand}
}

// Help runs "<command> help [<subcommand>]" and returns its output with
// surrounding whitespace removed.
func (i *Invoker) Help(ctx context.Context, command, subcommand string) (string, error) {
	args := HelpArgs(subcommand)
	argv := append([]string{command}, args...)
	i.logger.Info("running %s", strings.Join(argv, " "))

	out, err := i.runner.Run(ctx, command, args...)
	if err != nil {
		return "", err
	}

	if !utf8.Valid(out) {
		return "", &DecodeError{Command: argv, Offset: invalidOffset(out)}
	}

	i.logger.Debug("read %d bytes of help output", len(out))
	return strings.TrimSpace(string(out)), nil
}

func invalidOffset(b []byte) int {
	for off := 0; off < len(b); {
		r, size := utf8.DecodeRune(b[off:])
		if r == utf8.RuneError && size <= 1 {
			return off
		}
		off += size
	}
	return len(b)
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}

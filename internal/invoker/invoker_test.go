package invoker

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"genman/internal/logging"
)

type fakeRunner struct {
	out   []byte
	err   error
	calls [][]string
}

func (f *fakeRunner) Run(_ context.Context, name string, args ...string) ([]byte, error) {
	f.calls = append(f.calls, append([]string{name}, args...))
	return f.out, f.err
}

func TestHelpArgs(t *testing.T) {
	assert.Equal(t, []string{"help"}, HelpArgs(""))
	assert.Equal(t, []string{"help", "deploy"}, HelpArgs("deploy"))
}

func TestInvokerHelp(t *testing.T) {
	t.Run("trims output and logs invocation", func(t *testing.T) {
		runner := &fakeRunner{out: []byte("\n\n  summary:\nwidgets  \n\n")}
		var logs bytes.Buffer
		inv := New(runner, logging.NewLogger(&logs, logging.InfoLevel))

		text, err := inv.Help(context.Background(), "widget", "")
		require.NoError(t, err)
		assert.Equal(t, "summary:\nwidgets", text)
		assert.Equal(t, [][]string{{"widget", "help"}}, runner.calls)
		assert.Contains(t, logs.String(), "running widget help")
	})

	t.Run("passes subcommand", func(t *testing.T) {
		runner := &fakeRunner{out: []byte("summary:\ndeploys")}
		inv := New(runner, nil)

		_, err := inv.Help(context.Background(), "widget", "deploy")
		require.NoError(t, err)
		assert.Equal(t, [][]string{{"widget", "help", "deploy"}}, runner.calls)
	})

	t.Run("rejects invalid UTF-8", func(t *testing.T) {
		runner := &fakeRunner{out: []byte("ok\xffbad")}
		inv := New(runner, nil)

		_, err := inv.Help(context.Background(), "widget", "")
		var decodeErr *DecodeError
		require.ErrorAs(t, err, &decodeErr)
		assert.Equal(t, 2, decodeErr.Offset)
		assert.Equal(t, []string{"widget", "help"}, decodeErr.Command)
	})

	t.Run("propagates runner errors", func(t *testing.T) {
		procErr := &ProcessExecutionError{Command: []string{"widget", "help"}, ExitCode: 2}
		inv := New(&fakeRunner{err: procErr}, nil)

		_, err := inv.Help(context.Background(), "widget", "")
		require.ErrorIs(t, err, procErr)
	})
}

func TestProcessExecutionErrorMessage(t *testing.T) {
	err := &ProcessExecutionError{
		Command:  []string{"widget", "help", "nope"},
		ExitCode: 3,
		Stderr:   []byte("unknown command \"nope\"\nsee widget help\n"),
	}
	assert.Equal(t, `command "widget help nope" exited with status 3: unknown command "nope"`, err.Error())

	quiet := &ProcessExecutionError{Command: []string{"widget", "help"}, ExitCode: 1}
	assert.Equal(t, `command "widget help" exited with status 1`, quiet.Error())
}

// The tests below run the test binary itself as the target utility.

const helperEnv = "GENMAN_HELPER_PROCESS"

func TestHelperProcess(t *testing.T) {
	mode := os.Getenv(helperEnv)
	if mode == "" {
		return
	}

	args := os.Args
	for len(args) > 0 && args[0] != "--" {
		args = args[1:]
	}
	if len(args) > 0 {
		args = args[1:]
	}

	switch mode {
	case "ok":
		fmt.Fprintf(os.Stdout, "summary:\nfake utility invoked with %s\n", strings.Join(args, " "))
	case "fail":
		fmt.Fprintln(os.Stdout, "partial output")
		fmt.Fprintln(os.Stderr, "unknown command")
		os.Exit(3)
	case "binary":
		os.Stdout.Write([]byte{0xfe, 0xfe})
	}
	os.Exit(0)
}

func helperArgs(args ...string) []string {
	return append([]string{"-test.run=TestHelperProcess", "--"}, args...)
}

func TestExecRunner(t *testing.T) {
	t.Run("captures stdout", func(t *testing.T) {
		t.Setenv(helperEnv, "ok")

		out, err := ExecRunner{}.Run(context.Background(), os.Args[0], helperArgs("help", "deploy")...)
		require.NoError(t, err)
		assert.Contains(t, string(out), "fake utility invoked with help deploy")
	})

	t.Run("non-zero exit", func(t *testing.T) {
		t.Setenv(helperEnv, "fail")

		_, err := ExecRunner{}.Run(context.Background(), os.Args[0], helperArgs("help")...)
		var procErr *ProcessExecutionError
		require.ErrorAs(t, err, &procErr)
		assert.Equal(t, 3, procErr.ExitCode)
		assert.Contains(t, string(procErr.Output), "partial output")
		assert.Contains(t, string(procErr.Stderr), "unknown command")
	})

	t.Run("decode failure through invoker", func(t *testing.T) {
		t.Setenv(helperEnv, "binary")

		inv := New(argsRunner{prefix: helperArgs()}, nil)
		_, err := inv.Help(context.Background(), os.Args[0], "")
		var decodeErr *DecodeError
		require.ErrorAs(t, err, &decodeErr)
		assert.Equal(t, 0, decodeErr.Offset)
	})

	t.Run("missing binary", func(t *testing.T) {
		_, err := ExecRunner{}.Run(context.Background(), "genman-no-such-utility-on-path")
		require.Error(t, err)
		var procErr *ProcessExecutionError
		assert.False(t, errors.As(err, &procErr))
	})
}

// argsRunner injects the helper flags ahead of the help arguments.
type argsRunner struct {
	prefix []string
}

func (r argsRunner) Run(ctx context.Context, name string, args ...string) ([]byte, error) {
	return ExecRunner{}.Run(ctx, name, append(append([]string{}, r.prefix...), args...)...)
}

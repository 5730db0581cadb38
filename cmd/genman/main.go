package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"

	"genman/internal/cmd"
)

const (
	exitFailed = 1
	exitPanic  = 2
)

func main() {
	// Interrupting genman also stops the utility whose help is being read
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Stderr, cmd.ExecuteWithContext)
	stop()
	os.Exit(code)
}

// run generates the requested man page and returns the process exit code.
// Nothing is written to the output file when generation fails or panics.
func run(ctx context.Context, stderr io.Writer, generate func(context.Context) error) (code int) {
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(stderr, "genman: panic while generating man page: %v\n%s", r, debug.Stack())
			code = exitPanic
		}
	}()

	if err := generate(ctx); err != nil {
		if ctx.Err() != nil {
			fmt.Fprintln(stderr, "genman: interrupted, no man page written")
		}
		fmt.Fprintln(stderr, cmd.EnhanceErrorMessage(err))
		return exitFailed
	}
	return 0
}

package cmd

import (
	"bytes"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"genman/internal/invoker"
	"genman/internal/manpage"
)

// stdoutPath selects standard output as the output sink.
const stdoutPath = "-"

// newHelpSource is replaced in tests to avoid running real utilities.
var newHelpSource = func(opts *rootOptions) manpage.HelpSource {
	return invoker.New(nil, opts.logger)
}

func runGenerate(cmd *cobra.Command, utility string, opts *rootOptions) error {
	req := manpage.Request{
		Command:    utility,
		Subcommand: opts.subcommand,
		Title:      opts.cfg.Title,
		Version:    opts.cfg.Version,
		Files:      opts.files,
		Also:       opts.cfg.Also,
	}
	if cmd.Flags().Changed("also") {
		req.Also = manpage.SplitAlso(opts.also)
	}

	gen := &manpage.Generator{
		Help:        newHelpSource(opts),
		Environment: opts.cfg.Environment,
		Logger:      opts.logger,
	}

	path := opts.output
	if path == "" {
		path = manpage.Filename(utility, opts.subcommand)
	}

	if path == stdoutPath {
		out := cmd.OutOrStdout()
		if isTerminal(out) {
			opts.logger.Warn("writing troff to a terminal, pipe it to \"man -l -\" to read it")
		}
		return gen.Generate(cmd.Context(), out, req)
	}

	// The file is only created once the page rendered
	var page bytes.Buffer
	if err := gen.Generate(cmd.Context(), &page, req); err != nil {
		return err
	}
	if err := os.WriteFile(path, page.Bytes(), 0o644); err != nil {
		return &OutputError{
			Path:     path,
			Message:  "failed to write man page to",
			Guidance: "Check that the output directory exists and is writable, or use --output -",
			Err:      err,
		}
	}
	opts.logger.Info("man page written to %s", path)
	return nil
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && (isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd()))
}

// Package manpage renders troff man pages from a utility's help output.
package manpage

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"text/template"
	"time"

	"genman/internal/helptext"
	"genman/internal/logging"
	"genman/internal/models"
)

// ErrNoCommand is returned when a request names no utility.
var ErrNoCommand = errors.New("no utility to document")

// HelpSource returns the help output of "<command> help [<subcommand>]".
type HelpSource interface {
	Help(ctx context.Context, command, subcommand string) (string, error)
}

// Generator assembles man pages.
type Generator struct {
	Help HelpSource
	// Environment is documented in the ENVIRONMENT section when non-empty.
	Environment []models.EnvVar
	// Now defaults to time.Now.
	Now    func() time.Time
	Logger *logging.Logger
}

// Generate fetches the help output for req and writes the complete page to
// w. Nothing is written unless the whole page rendered successfully.
func (g *Generator) Generate(ctx context.Context, w io.Writer, req Request) error {
	if req.Command == "" {
		return ErrNoCommand
	}
	if g.Help == nil {
		return errors.New("generator has no help source")
	}
	logger := g.Logger
	if logger == nil {
		logger = logging.Discard()
	}

	var page bytes.Buffer
	err := logger.TimedOperation("man page generation for "+Filename(req.Command, req.Subcommand), func() error {
		text, err := g.Help.Help(ctx, req.Command, req.Subcommand)
		if err != nil {
			return err
		}

		help := helptext.Parse(text)
		logger.Debug("parsed %d commands from help output", len(help.Commands))

		params, err := NewParams(req, help, g.now())
		if err != nil {
			return err
		}
		return g.render(&page, params, help.Commands, req.Also)
	})
	if err != nil {
		return err
	}

	if _, err := w.Write(page.Bytes()); err != nil {
		return fmt.Errorf("failed to write man page: %w", err)
	}
	logger.Debug("wrote %d bytes", page.Len())
	return nil
}

func (g *Generator) now() time.Time {
	if g.Now != nil {
		return g.Now()
	}
	return time.Now()
}

// render writes the page sections in their fixed order.
func (g *Generator) render(buf *bytes.Buffer, p Params, commands []models.Command, also []string) error {
	synopsis := synopsisTemplate
	if p.HasSubcommand() {
		synopsis = subcommandSynopsisTemplate
	}

	for _, t := range []*template.Template{preambleTemplate, headTemplate, synopsis, descriptionTemplate} {
		if err := t.Execute(buf, p); err != nil {
			return fmt.Errorf("failed to render %s: %w", t.Name(), err)
		}
	}

	buf.WriteString(FormatCommandOverview(p.RawCommand(), commands))

	if p.HasExamples() {
		if err := examplesTemplate.Execute(buf, p); err != nil {
			return fmt.Errorf("failed to render %s: %w", examplesTemplate.Name(), err)
		}
	}

	buf.WriteString(FormatEnvironment(g.Environment))
	buf.WriteString(FormatFiles(p.Files()))
	buf.WriteString(FormatSeeAlso(p.RawCommand(), commands))
	buf.WriteString(FormatAlso(also))
	return nil
}

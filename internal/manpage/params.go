package manpage

import (
	"time"

	"genman/internal/helptext"
	"genman/internal/models"
)

// Request describes the page to generate.
type Request struct {
	// Command is the utility to document. Required.
	Command string
	// Subcommand, when set, documents "<Command> <Subcommand>" instead.
	Subcommand string
	Title      string
	// Version defaults to models.DefaultVersion.
	Version string
	// Files is a newline separated list of "<path>\t<description>" entries.
	Files string
	// Also lists extra references for the end of the page.
	Also []string
}

// Params holds every value substituted into the page templates. It is built
// once by NewParams and not modified afterwards; text coming from the
// utility or the user is escaped at construction.
type Params struct {
	rawCommand  string
	command     string
	subcommand  string
	title       string
	version     string
	generated   time.Time
	summary     string
	description string
	options     string
	hasOptions  bool
	examples    string
	hasExamples bool
	files       []models.FileEntry
}

// NewParams builds the document parameters from a request and the parsed
// help output. It fails if the files list is malformed.
func NewParams(req Request, help *helptext.Help, now time.Time) (Params, error) {
	files, err := ParseFiles(req.Files)
	if err != nil {
		return Params{}, err
	}

	version := req.Version
	if version == "" {
		version = models.DefaultVersion
	}

	summary, _ := help.Text(helptext.Summary)
	details, _ := help.Text(helptext.Details)
	examples, hasExamples := help.Text(helptext.Examples)
	optionsText, hasOptionsSection := help.Text(helptext.Options)
	options, hasOptions := FormatOptions(optionsText, hasOptionsSection)

	return Params{
		rawCommand:  req.Command,
		command:     Escape(req.Command),
		subcommand:  Escape(req.Subcommand),
		title:       Escape(req.Title),
		version:     Escape(version),
		generated:   now.UTC(),
		summary:     Escape(summary),
		description: Escape(details),
		options:     options,
		hasOptions:  hasOptions,
		examples:    Escape(examples),
		hasExamples: hasExamples && examples != "",
		files:       files,
	}, nil
}

// RawCommand is the unescaped utility name.
func (p Params) RawCommand() string { return p.rawCommand }

func (p Params) Command() string { return p.command }
func (p Params) Subcommand() string { return p.subcommand }
func (p Params) HasSubcommand() bool { return p.subcommand != "" }
func (p Params) Title() string { return p.title }
func (p Params) Version() string { return p.version }
func (p Params) Summary() string { return p.summary }
func (p Params) Description() string { return p.description }
func (p Params) Options() string { return p.options }
func (p Params) HasOptions() bool { return p.hasOptions }
func (p Params) Examples() string { return p.examples }
func (p Params) HasExamples() bool { return p.hasExamples }
func (p Params) Files() []models.FileEntry { return p.files }

// Page is the page name: the command, or "<command>-<subcommand>".
func (p Params) Page() string {
	if p.subcommand == "" {
		return p.command
	}
	return p.command + `\-` + p.subcommand
}

// Timestamp is the generation time in UTC for the preamble comment.
func (p Params) Timestamp() string {
	return p.generated.Format("2006-01-02 15:04:05 +0000")
}

// Datestamp is the generation date for the title line.
func (p Params) Datestamp() string {
	return p.generated.Format("2006-01-02")
}

// Filename returns the default output file name for a page.
func Filename(command, subcommand string) string {
	if subcommand == "" {
		return command + "." + models.ManSection
	}
	return command + "-" + subcommand + "." + models.ManSection
}

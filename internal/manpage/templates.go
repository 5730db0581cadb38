package manpage

import "text/template"

// The templates hold troff control sequences and are executed as-is. Every
// value they pull from Params is already escaped, except RawCommand, which
// only appears inside comments.

var preambleTemplate = template.Must(template.New("preamble").Parse(`.\"Man page for {{.RawCommand}}
.\"
.\" Large parts of this file are autogenerated from the output of
.\"     "{{.RawCommand}} help commands"
.\"     "{{.RawCommand}} help <command>"
.\"
.\" Generation time: {{.Timestamp}}
.\"

.ie \n(.g .ds Aq \(aq
.el .ds Aq '
`))

var headTemplate = template.Must(template.New("head").Parse(`.TH {{.Page}} 1 "{{.Datestamp}}" "{{.Version}}" "{{.Title}}"
.SH "NAME"
{{.Page}} \-\- {{.Summary}}
`))

var synopsisTemplate = template.Must(template.New("synopsis").Parse(`.SH "SYNOPSIS"
.B "{{.Command}}"
.I "command"
[
.I "command_options"
]
.br
.B "{{.Command}}"
.B "help"
.br
.B "{{.Command}}"
.B "help"
.I "command"
`))

var subcommandSynopsisTemplate = template.Must(template.New("subcommand-synopsis").Parse(`.SH "SYNOPSIS"
.B "{{.Command}} {{.Subcommand}}"
[
.I "options"
]
.br
.B "{{.Command}} {{.Subcommand}}"
.B "help"
`))

var descriptionTemplate = template.Must(template.New("description").Parse(`.SH "DESCRIPTION"
{{with .Description}}{{.}}
{{end}}{{if .HasOptions}}.SH "OPTIONS"
{{.Options}}{{end}}`))

// examplesTemplate reserves the examples block. It renders nothing yet;
// Params still carries the escaped examples text.
var examplesTemplate = template.Must(template.New("examples").Parse(``))

package manpage

import (
	"fmt"
	"strings"

	"genman/internal/helptext"
	"genman/internal/models"
)

// FormatOptions renders the text of an options section as one paragraph per
// option. present reports whether the section appeared in the help output:
// an absent section gives ("", false) while a present section without any
// option gives ("", true).
func FormatOptions(text string, present bool) (string, bool) {
	if !present {
		return "", false
	}

	var b strings.Builder
	for _, opt := range helptext.ParseOptions(text) {
		b.WriteString(".PP\n")
		fmt.Fprintf(&b, "\\fB%s\\fR\n", Escape(opt.Flags))
		b.WriteString(".RS 4\n")
		for _, line := range opt.Description {
			b.WriteString(Escape(line))
			b.WriteByte('\n')
		}
		b.WriteString(".RE\n")
	}
	return b.String(), true
}

// FileEntryError reports a files list entry without a tab separator.
type FileEntryError struct {
	Line  int
	Entry string
}

func (e *FileEntryError) Error() string {
	return fmt.Sprintf("files entry %d %q: expected \"<path>\\t<description>\"", e.Line, e.Entry)
}

// ParseFiles parses a newline separated list of "<path>\t<description>"
// entries. An empty list yields no entries; any entry without a tab is an
// error.
func ParseFiles(list string) ([]models.FileEntry, error) {
	if list == "" {
		return nil, nil
	}

	var files []models.FileEntry
	for i, line := range strings.Split(list, "\n") {
		path, desc, ok := strings.Cut(line, "\t")
		if !ok {
			return nil, &FileEntryError{Line: i + 1, Entry: line}
		}
		files = append(files, models.FileEntry{Path: path, Description: desc})
	}
	return files, nil
}

// FormatFiles renders the FILES section, or nothing for an empty list.
func FormatFiles(files []models.FileEntry) string {
	if len(files) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString(".SH \"FILES\"\n")
	for _, f := range files {
		writeTaggedItem(&b, Escape(f.Path), Escape(f.Description))
	}
	return b.String()
}

// FormatEnvironment renders the ENVIRONMENT section, or nothing for an empty
// table.
func FormatEnvironment(vars []models.EnvVar) string {
	if len(vars) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString(".SH \"ENVIRONMENT\"\n")
	for _, v := range vars {
		writeTaggedItem(&b, Escape(v.Name), Escape(strings.TrimSpace(v.Description)))
	}
	return b.String()
}

func writeTaggedItem(b *strings.Builder, tag, body string) {
	b.WriteString(".TP\n")
	fmt.Fprintf(b, ".I \"%s\"\n", tag)
	b.WriteString(body)
	b.WriteByte('\n')
}

// FormatCommandOverview renders one tagged paragraph per subcommand, or
// nothing when there are none.
func FormatCommandOverview(command string, commands []models.Command) string {
	if len(commands) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString(".SH \"COMMAND OVERVIEW\"\n")
	for _, c := range commands {
		b.WriteString(".TP\n")
		fmt.Fprintf(&b, ".B \"%s %s\"\n", Escape(command), Escape(c.Name))
		b.WriteString(Escape(c.Description))
		b.WriteByte('\n')
	}
	return b.String()
}

// FormatSeeAlso renders the SEE ALSO section. Each subcommand refers to its
// own page; without subcommands the page refers to the base command.
func FormatSeeAlso(command string, commands []models.Command) string {
	refs := make([]string, 0, len(commands))
	for _, c := range commands {
		refs = append(refs, manRef(command+"-"+c.Name))
	}
	if len(refs) == 0 {
		refs = append(refs, manRef(command))
	}
	return ".SH \"SEE ALSO\"\n" + strings.Join(refs, ", ") + "\n"
}

func manRef(page string) string {
	return `\fB` + Escape(page) + `\fR(` + models.ManSection + ")"
}

// FormatAlso renders a link request for every extra reference.
func FormatAlso(refs []string) string {
	var b strings.Builder
	for _, ref := range refs {
		fmt.Fprintf(&b, ".UR %s\n.UE\n", Escape(ref))
	}
	return b.String()
}

// SplitAlso splits a tab separated reference list, dropping empty entries.
func SplitAlso(list string) []string {
	var refs []string
	for _, ref := range strings.Split(list, "\t") {
		if ref = strings.TrimSpace(ref); ref != "" {
			refs = append(refs, ref)
		}
	}
	return refs
}

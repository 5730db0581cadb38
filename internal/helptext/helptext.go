// Package helptext parses the semi-structured output of "<utility> help".
//
// The output is split into a closed set of sections introduced by header
// lines (commands:, summary:, options:, details:, examples:). The commands
// section is parsed into name/description pairs; every other section keeps
// its text.
package helptext

import (
	"strings"
	"unicode"

	"genman/internal/models"
)

// Section identifies one of the recognized help sections.
type Section int

const (
	Commands Section = iota
	Summary
	Options
	Details
	Examples

	numSections
)

var headers = [numSections]string{
	Commands: "commands:",
	Summary:  "summary:",
	Options:  "options:",
	Details:  "details:",
	Examples: "examples:",
}

// Header returns the header line that introduces s.
func (s Section) Header() string {
	if s < 0 || s >= numSections {
		return ""
	}
	return headers[s]
}

func (s Section) String() string {
	return strings.TrimSuffix(s.Header(), ":")
}

// sectionForHeader reports which section a trimmed line opens, if any.
func sectionForHeader(line string) (Section, bool) {
	lower := strings.ToLower(line)
	for s, h := range headers {
		if lower == h {
			return Section(s), true
		}
	}
	return 0, false
}

// Help is the parsed form of a utility's help output.
type Help struct {
	// Commands lists the subcommands in the order they were printed.
	// Duplicates are kept.
	Commands []models.Command

	present [numSections]bool
	lines   [numSections]int
	text    [numSections]strings.Builder
}

// Text returns the accumulated text of s and whether s appeared at all.
// Blank lines at either end of the section are dropped. The commands
// section has no text; use Commands instead.
func (h *Help) Text(s Section) (string, bool) {
	if s < 0 || s >= numSections {
		return "", false
	}
	return strings.Trim(h.text[s].String(), "\n"), h.present[s]
}

// Has reports whether the section header appeared in the output.
func (h *Help) Has(s Section) bool {
	return s >= 0 && s < numSections && h.present[s]
}

func (h *Help) appendLine(s Section, line string) {
	if h.lines[s] > 0 {
		h.text[s].WriteByte('\n')
	}
	h.text[s].WriteString(line)
	h.lines[s]++
}

// open starts s afresh; a repeated header discards the earlier text.
func (h *Help) open(s Section) {
	h.present[s] = true
	h.lines[s] = 0
	h.text[s].Reset()
}

// parser states: no section yet, or inside one of the sections.
type state struct {
	inSection bool
	section   Section
}

// Parse splits help output into sections. Lines are trimmed before use.
// Lines before the first header are discarded.
func Parse(text string) *Help {
	h := &Help{}
	var st state

	for _, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(raw)

		if s, ok := sectionForHeader(line); ok {
			st = state{inSection: true, section: s}
			h.open(s)
			continue
		}

		switch {
		case !st.inSection:
			// preamble before any header
		case st.section == Commands:
			if cmd, ok := parseCommandLine(line); ok {
				h.Commands = append(h.Commands, cmd)
			}
		default:
			h.appendLine(st.section, line)
		}
	}

	return h
}

// parseCommandLine parses "<name> <description>". Lines without a
// description and alias entries are rejected.
func parseCommandLine(line string) (models.Command, bool) {
	i := strings.IndexFunc(line, unicode.IsSpace)
	if i < 0 {
		return models.Command{}, false
	}
	name, desc := line[:i], line[i:]
	if strings.Contains(line, "alias for") {
		return models.Command{}, false
	}
	desc = strings.TrimLeft(desc, "- \t")
	return models.Command{Name: name, Description: strings.TrimSpace(desc)}, true
}

package manpage

import "strings"

// roffEscaper maps each character to its troff-safe form in one pass, so the
// backslashes introduced by one substitution are never escaped again.
// This intentionally differs from replacing each pair in sequence, which
// would turn a backtick into \\*(Aq instead of \'.
var roffEscaper = strings.NewReplacer(
	`\`, `\\`,
	"`", `\'`,
	`'`, `\*(Aq`,
	`-`, `\-`,
)

// Escape makes text safe to embed in generated troff. The \*(Aq string is
// defined by the page preamble.
func Escape(text string) string {
	return roffEscaper.Replace(text)
}

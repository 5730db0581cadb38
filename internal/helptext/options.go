package helptext

import (
	"strings"

	"genman/internal/models"
)

// ParseOptions scans the text of an options section. A line starting with a
// dash opens a new option; any other non-blank line is added to the
// description of the current one. Lines before the first flag line have no
// option to belong to and are dropped.
func ParseOptions(text string) []models.Option {
	var (
		opts    []models.Option
		current *models.Option
	)

	for _, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, "-") {
			if current != nil {
				opts = append(opts, *current)
			}
			current = &models.Option{Flags: line}
			continue
		}
		if current == nil {
			continue
		}
		current.Description = append(current.Description, line)
	}

	if current != nil {
		opts = append(opts, *current)
	}
	return opts
}

package cmd

import (
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"genman/internal/invoker"
	"genman/internal/manpage"
)

// Error type definitions

type ConfigurationError struct {
	Field    string
	Message  string
	Guidance string
	Err      error
}

func (e *ConfigurationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("configuration error: %s: %v", e.Message, e.Err)
	}
	return fmt.Sprintf("configuration error: %s", e.Message)
}

func (e *ConfigurationError) Unwrap() error { return e.Err }

type UsageError struct {
	Message  string
	Guidance string
}

func (e *UsageError) Error() string {
	return fmt.Sprintf("usage error: %s", e.Message)
}

// ErrMissingUtility is returned when no utility name was given.
var ErrMissingUtility = &UsageError{
	Message:  "missing utility name",
	Guidance: "Name the utility to document, for example: genman widget",
}

type OutputError struct {
	Path     string
	Message  string
	Guidance string
	Err      error
}

func (e *OutputError) Error() string {
	return fmt.Sprintf("output error: %s %s: %v", e.Message, e.Path, e.Err)
}

func (e *OutputError) Unwrap() error { return e.Err }

// GetErrorRecovery returns guidance for the typed errors the generator
// produces, or "" when there is none.
func GetErrorRecovery(err error) string {
	var (
		configErr *ConfigurationError
		usageErr  *UsageError
		outputErr *OutputError
		procErr   *invoker.ProcessExecutionError
		decodeErr *invoker.DecodeError
		fileErr   *manpage.FileEntryError
	)

	switch {
	case errors.As(err, &configErr):
		return configErr.Guidance
	case errors.As(err, &usageErr):
		return usageErr.Guidance
	case errors.As(err, &outputErr):
		return outputErr.Guidance
	case errors.As(err, &procErr):
		return fmt.Sprintf("Check that %q works when run by hand", strings.Join(procErr.Command, " "))
	case errors.As(err, &decodeErr):
		return "The utility must print its help as UTF-8 text"
	case errors.As(err, &fileErr):
		return "Separate each files entry path from its description with a tab, one entry per line"
	case errors.Is(err, manpage.ErrNoCommand):
		return ErrMissingUtility.Guidance
	case errors.Is(err, exec.ErrNotFound):
		return "Verify the utility is installed and on your PATH"
	default:
		return ""
	}
}

// EnhanceErrorMessage formats err for the terminal with a Help: line when
// guidance is known.
func EnhanceErrorMessage(err error) string {
	if err == nil {
		return ""
	}

	enhanced := fmt.Sprintf("Error: %s", err)
	if guidance := GetErrorRecovery(err); guidance != "" {
		enhanced += fmt.Sprintf("\nHelp: %s", guidance)
	}
	return enhanced
}

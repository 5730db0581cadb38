package cmd

import (
	"bytes"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"
)

func manHeader() *doc.GenManHeader {
	now := time.Now()
	return &doc.GenManHeader{
		Title:   "GENMAN",
		Section: "1",
		Date:    &now,
		Source:  "genman " + Version,
		Manual:  "User Commands",
	}
}

func newManCmd(root *cobra.Command) *cobra.Command {
	return &cobra.Command{
		Use:    "man",
		Short:  "Print the man page for genman itself",
		Hidden: true,
		Args:   cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return writeManPage(root, cmd.OutOrStdout())
		},
	}
}

func writeManPage(root *cobra.Command, w io.Writer) error {
	return doc.GenMan(root, manHeader(), w)
}

// GenerateManPage generates the genman man page in groff format
func GenerateManPage() (string, error) {
	var buf bytes.Buffer
	if err := writeManPage(newRootCmd(), &buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// WriteManPageToFile writes the man page content to a file
func WriteManPageToFile(filename string) error {
	content, err := GenerateManPage()
	if err != nil {
		return err
	}

	return os.WriteFile(filename, []byte(content), 0644)
}

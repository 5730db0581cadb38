package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

func TestIsTerminal(t *testing.T) {
	if isTerminal(&bytes.Buffer{}) {
		t.Error("a buffer is not a terminal")
	}

	f, err := os.Create(filepath.Join(t.TempDir(), "page.1"))
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if isTerminal(f) {
		t.Error("a regular file is not a terminal")
	}
}

func TestOutputErrorForUnwritablePath(t *testing.T) {
	isolateEnv(t)
	useHelp(t, &stubHelp{text: widgetHelp})

	missingDir := filepath.Join(t.TempDir(), "missing", "widget.1")
	cmd, _, _ := createTestRootCmd("-o", missingDir, "widget")
	err := cmd.Execute()
	outputErr, ok := err.(*OutputError)
	if !ok {
		t.Fatalf("Expected *OutputError, got %T: %v", err, err)
	}
	if outputErr.Path != missingDir {
		t.Errorf("Path = %q, want %q", outputErr.Path, missingDir)
	}
}

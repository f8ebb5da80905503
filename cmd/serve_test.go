package cmd

import (
	"bytes"
	"strings"
	"testing"
)

func TestServeCommandHelp(t *testing.T) {
	cmd := NewRootCmd()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs([]string{"serve", "--help"})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	if !strings.Contains(buf.String(), "Start the Transcript API server") {
		t.Errorf("Expected help output, got %q", buf.String())
	}
}

func TestServeCommandFlags(t *testing.T) {
	cmd := NewRootCmd()
	serveCommand, _, err := cmd.Find([]string{"serve"})
	if err != nil {
		t.Fatalf("Failed to find serve command: %v", err)
	}

	if serveCommand.Flags().Lookup("port") == nil {
		t.Error("Expected port flag to be registered")
	}
	if serveCommand.Flags().Lookup("host") == nil {
		t.Error("Expected host flag to be registered")
	}
}

func TestServeCommandInvalidPort(t *testing.T) {
	cmd := NewRootCmd()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs([]string{"serve", "--port", "invalid"})

	if err := cmd.Execute(); err == nil {
		t.Error("Expected an error for a non-numeric port")
	}
}

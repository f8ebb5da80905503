package cmd

import (
	"bytes"
	"strings"
	"testing"
)

func TestVersionCommand(t *testing.T) {
	tests := []struct {
		name           string
		args           []string
		expectedOutput string
	}{
		{
			name:           "version command shows version info",
			args:           []string{"version"},
			expectedOutput: "Transcript API",
		},
		{
			name:           "version command shows commit",
			args:           []string{"version"},
			expectedOutput: "Git Commit:",
		},
		{
			name:           "version command with --short flag",
			args:           []string{"version", "--short"},
			expectedOutput: "v" + Version,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := NewRootCmd()
			buf := new(bytes.Buffer)
			cmd.SetOut(buf)
			cmd.SetErr(buf)
			cmd.SetArgs(tt.args)

			if err := cmd.Execute(); err != nil {
				t.Fatalf("Execute() error = %v", err)
			}

			if !strings.Contains(buf.String(), tt.expectedOutput) {
				t.Errorf("Expected output to contain %q, got %q", tt.expectedOutput, buf.String())
			}
		})
	}
}

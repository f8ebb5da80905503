package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/voxtape/transcript-api/pkg/config"
)

var transcribeJSON bool

// transcribeCmd runs a single acquisition without starting the server
var transcribeCmd = &cobra.Command{
	Use:   "transcribe <url>",
	Short: "Fetch one YouTube transcript and print it",
	Long: `Run a single transcript acquisition without starting the server.

Accepts the same inputs as the API: full YouTube URLs, short links,
embed and Shorts URLs, or a bare 11-character video ID.

Example:
  transcript-api transcribe https://www.youtube.com/watch?v=dQw4w9WgXcQ
  transcript-api transcribe dQw4w9WgXcQ --json`,
	Args: cobra.ExactArgs(1),
	RunE: runTranscribe,
}

func init() {
	rootCmd.AddCommand(transcribeCmd)
	transcribeCmd.Flags().BoolVar(&transcribeJSON, "json", false, "print the full result as JSON")
}

func runTranscribe(cmd *cobra.Command, args []string) error {
	cfg, err := config.GetConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	deps := buildDependencies(cfg)

	ctx, cancel := context.WithTimeout(cmd.Context(), 5*time.Minute)
	defer cancel()

	result, err := deps.TranscriptService.Acquire(ctx, args[0])
	if err != nil {
		return err
	}

	if transcribeJSON {
		encoded, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(encoded))
		return nil
	}

	fmt.Fprintln(cmd.OutOrStdout(), result.Transcript)
	return nil
}

package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/voxtape/transcript-api/pkg/config"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "transcript-api",
	Short: "Transcript API server",
	Long: `Transcript API - transcript acquisition for YouTube videos and Instagram posts

The server extracts video identifiers from submitted URLs, scrapes
YouTube caption tracks, and falls back to audio download plus
speech-to-text when a video has no captions. Instagram posts run a
scrape, download and transcribe pipeline.

Features:
  • YouTube caption scraping with language preference
  • Speech-to-text fallback via yt-dlp and Deepgram
  • Instagram post transcription via Apify
  • In-memory transcript cache with 24 hour expiry`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

// NewRootCmd creates a new root command (exported for testing)
func NewRootCmd() *cobra.Command {
	return rootCmd
}

func init() {
	cobra.OnInitialize(loadConfig)
}

// loadConfig loads the configuration when a command needs it
func loadConfig() {
	// Version and help never touch configuration
	cmd, _, _ := rootCmd.Find(os.Args[1:])
	if cmd != nil && (cmd.Name() == "version" || cmd.Name() == "help") {
		return
	}

	if err := config.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing config: %v\n", err)
		os.Exit(1)
	}
}

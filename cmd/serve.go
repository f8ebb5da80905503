package cmd

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/voxtape/transcript-api/api"
	"github.com/voxtape/transcript-api/api/types"
	"github.com/voxtape/transcript-api/internal/services/apify"
	"github.com/voxtape/transcript-api/internal/services/deepgram"
	instagramService "github.com/voxtape/transcript-api/internal/services/instagram"
	"github.com/voxtape/transcript-api/internal/services/transcripts"
	"github.com/voxtape/transcript-api/internal/services/youtube"
	"github.com/voxtape/transcript-api/pkg/config"
	"github.com/voxtape/transcript-api/pkg/download"
	"github.com/voxtape/transcript-api/pkg/ytdlp"
)

var (
	serverHost string
	serverPort int
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the API server",
	Long: `Start the Transcript API server with the configured settings.

The server accepts YouTube and Instagram transcription requests,
serves the transcript cache, and exposes health and documentation
endpoints.

Example:
  transcript-api serve
  transcript-api serve --port 9090
  transcript-api serve --host 0.0.0.0 --port 8080`,
	RunE: runServer,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	// Server flags
	serveCmd.Flags().StringVar(&serverHost, "host", "", "server host (overrides config)")
	serveCmd.Flags().IntVar(&serverPort, "port", 0, "server port (overrides config)")
}

func runServer(cmd *cobra.Command, args []string) error {
	cfg, err := config.GetConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Use config values if flags not provided
	if serverHost == "" {
		serverHost = cfg.Server.Host
	}
	if serverPort == 0 {
		serverPort = cfg.Server.Port
	}

	address := fmt.Sprintf("%s:%d", serverHost, serverPort)

	server := api.NewServer(address)
	server.SetDependencies(buildDependencies(cfg))
	if err := server.Initialize(); err != nil {
		return fmt.Errorf("failed to initialize server: %w", err)
	}

	fmt.Printf("Starting Transcript API server on %s\n", address)

	// Channel to listen for interrupt signals
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	// Channel to receive server errors
	serverErr := make(chan error, 1)

	go func() {
		if err := server.Start(); err != nil && err != http.ErrServerClosed {
			serverErr <- fmt.Errorf("server error: %w", err)
		}
	}()

	fmt.Printf("Server is ready to handle requests at %s\n", address)

	// Wait for interrupt signal or server error
	select {
	case <-stop:
		fmt.Println("\nShutting down server...")
	case err := <-serverErr:
		fmt.Fprintf(os.Stderr, "\n%v\n", err)
		fmt.Println("Shutting down server...")
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Server forced to shutdown: %v\n", err)
		return err
	}

	fmt.Println("Server gracefully stopped")
	return nil
}

// buildDependencies wires every handler dependency from configuration.
// Optional providers stay nil when their feature flag is off or their
// credentials are missing, and the API degrades to captions only.
func buildDependencies(cfg *config.Config) *types.Dependencies {
	ytClient := youtube.NewClient(youtube.Config{
		BaseURL:   cfg.YouTube.BaseURL,
		UserAgent: cfg.YouTube.UserAgent,
		Timeout:   cfg.YouTube.Timeout,
	})

	policy := transcripts.DefaultRetryPolicy()
	policy.MaxRetries = cfg.Retry.MaxRetries
	policy.InitialDelay = cfg.Retry.InitialDelay
	policy.Multiplier = cfg.Retry.Multiplier
	policy.MaxDelay = cfg.Retry.MaxDelay

	cacheStore := transcripts.NewCache(cfg.Cache.TTL)
	resolver := transcripts.NewResolver(cfg.YouTube.PreferredLanguages)

	var transcriber *deepgram.Client
	if cfg.Speech.APIKey != "" {
		transcriber = deepgram.NewClient(deepgram.Config{
			APIKey:         cfg.Speech.APIKey,
			BaseURL:        cfg.Speech.BaseURL,
			Model:          cfg.Speech.Model,
			Timeout:        cfg.Speech.Timeout,
			DetectLanguage: cfg.Speech.DetectLanguage,
			Language:       cfg.Speech.Language,
		})
	}

	var speech transcripts.SpeechSource
	speechEnabled := cfg.Features.EnableSpeechFallback && transcriber != nil
	if speechEnabled {
		downloader := ytdlp.New(ytdlp.Config{
			Path:            cfg.Ytdlp.Path,
			StrategyTimeout: cfg.Ytdlp.StrategyTimeout,
			TempDir:         cfg.Storage.TempDir,
			Proxy:           cfg.Ytdlp.Proxy,
			POToken:         cfg.Ytdlp.POToken,
			VisitorData:     cfg.Ytdlp.VisitorData,
			CookiesFile:     cfg.Ytdlp.CookiesFile,
		})
		speech = transcripts.NewSpeechAdapter(downloader, transcriber)
	}

	deps := &types.Dependencies{
		TranscriptService: transcripts.NewService(transcripts.NewWatchPageAdapter(ytClient), speech, cacheStore, resolver, policy),
		Cache:             cacheStore,
		SpeechEnabled:     speechEnabled,
	}

	if cfg.Features.EnableInstagram && cfg.Apify.Token != "" && transcriber != nil {
		scraper := apify.NewClient(apify.Config{
			Token:        cfg.Apify.Token,
			BaseURL:      cfg.Apify.BaseURL,
			Actor:        cfg.Apify.Actor,
			Timeout:      cfg.Apify.Timeout,
			ResultsLimit: cfg.Apify.ResultsLimit,
		})

		fetchOpts := download.DefaultOptions()
		fetchOpts.TempDir = cfg.Storage.TempDir
		if cfg.Instagram.MaxVideoSize > 0 {
			fetchOpts.MaxSize = cfg.Instagram.MaxVideoSize
		}
		if cfg.Instagram.UserAgent != "" {
			fetchOpts.UserAgent = cfg.Instagram.UserAgent
		}
		if cfg.Instagram.Referer != "" {
			fetchOpts.Referer = cfg.Instagram.Referer
		}

		deps.InstagramService = instagramService.NewService(scraper, download.NewDownloader(fetchOpts), transcriber)
	}

	return deps
}

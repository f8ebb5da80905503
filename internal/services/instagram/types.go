package instagram

import (
	"context"
	"io"

	"github.com/voxtape/transcript-api/internal/services/apify"
	"github.com/voxtape/transcript-api/internal/services/deepgram"
	"github.com/voxtape/transcript-api/pkg/download"
)

// Result is one finished Instagram transcription
type Result struct {
	Transcript  string  `json:"transcript"`
	Language    string  `json:"language"`
	Confidence  float64 `json:"confidence"`
	PostCode    string  `json:"postCode"`
	Author      string  `json:"author"`
	Caption     string  `json:"caption"`
	VideoSizeMB float64 `json:"videoSizeMB"`
	ElapsedMs   int64   `json:"elapsedMs"`
}

// PostScraper resolves a post URL into its video location and metadata.
// Satisfied by apify.Client.
type PostScraper interface {
	ScrapePost(ctx context.Context, postURL string) (*apify.Post, error)
}

// VideoFetcher downloads the post's video into temporary storage.
// Satisfied by download.Downloader.
type VideoFetcher interface {
	DownloadToTemp(ctx context.Context, url string, postCode string) (*download.DownloadResult, error)
}

// AudioTranscriber turns raw media bytes into text. Satisfied by
// deepgram.Client, which accepts video containers directly.
type AudioTranscriber interface {
	Transcribe(ctx context.Context, audio io.Reader, contentType string) (*deepgram.Transcription, error)
}

// TranscriptionService is the pipeline surface consumed by HTTP
// handlers
type TranscriptionService interface {
	Transcribe(ctx context.Context, rawURL string) (*Result, error)
}

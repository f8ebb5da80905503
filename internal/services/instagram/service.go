package instagram

import (
	"context"
	"errors"
	"log"
	"math"
	"os"
	"regexp"
	"strings"
	"time"

	"github.com/voxtape/transcript-api/internal/services/apify"
	"github.com/voxtape/transcript-api/internal/services/deepgram"
	"github.com/voxtape/transcript-api/internal/services/transcripts"
	"github.com/voxtape/transcript-api/pkg/download"
)

// postURLPattern accepts posts, reels and IGTV links
var postURLPattern = regexp.MustCompile(`instagram\.com/(?:p|reel|reels|tv)/([A-Za-z0-9_-]+)`)

// Service runs the scrape, download, transcribe pipeline for one post
type Service struct {
	scraper     PostScraper
	fetcher     VideoFetcher
	transcriber AudioTranscriber
}

// NewService creates a new Instagram transcription service
func NewService(scraper PostScraper, fetcher VideoFetcher, transcriber AudioTranscriber) *Service {
	return &Service{
		scraper:     scraper,
		fetcher:     fetcher,
		transcriber: transcriber,
	}
}

// Transcribe resolves a post URL, downloads its video and produces a
// transcript. Results are not cached; posts are rarely requested twice
// and their CDN URLs expire quickly anyway.
func (s *Service) Transcribe(ctx context.Context, rawURL string) (*Result, error) {
	start := time.Now()

	postURL := strings.TrimSpace(rawURL)
	if postURL == "" {
		return nil, transcripts.NewInvalidInputError("url", "URL is required")
	}
	if !postURLPattern.MatchString(postURL) {
		return nil, transcripts.NewInvalidInputError("url", "Invalid Instagram URL")
	}

	post, err := s.scraper.ScrapePost(ctx, postURL)
	if err != nil {
		return nil, classifyScrapeError(postCodeFromURL(postURL), err)
	}

	video, err := s.fetcher.DownloadToTemp(ctx, post.VideoURL, post.ShortCode)
	if err != nil {
		return nil, transcripts.NewUpstreamError(post.ShortCode, err)
	}
	defer func() {
		if cleanupErr := download.CleanupTempFile(video.FilePath); cleanupErr != nil {
			log.Printf("Failed to cleanup video file: %v", cleanupErr)
		}
	}()

	file, err := os.Open(video.FilePath)
	if err != nil {
		return nil, transcripts.NewUpstreamError(post.ShortCode, err)
	}
	defer file.Close()

	transcription, err := s.transcriber.Transcribe(ctx, file, mediaContentType(video.ContentType))
	if err != nil {
		return nil, classifyTranscribeError(post.ShortCode, err)
	}

	elapsed := time.Since(start)
	log.Printf("[DEBUG] Transcribed post %s by %s in %v", post.ShortCode, post.OwnerUsername, elapsed.Round(time.Millisecond))

	return &Result{
		Transcript:  transcription.Text,
		Language:    transcription.Language,
		Confidence:  transcription.Confidence,
		PostCode:    post.ShortCode,
		Author:      post.OwnerUsername,
		Caption:     post.Caption,
		VideoSizeMB: roundMB(video.ContentLength),
		ElapsedMs:   elapsed.Milliseconds(),
	}, nil
}

// postCodeFromURL recovers the short code for error context before the
// scraper has run
func postCodeFromURL(postURL string) string {
	if match := postURLPattern.FindStringSubmatch(postURL); match != nil {
		return match[1]
	}
	return ""
}

// classifyScrapeError maps scraper failures onto the acquisition
// taxonomy
func classifyScrapeError(postCode string, err error) error {
	switch {
	case errors.Is(err, apify.ErrNoResults):
		return transcripts.NewUnavailableError(postCode, "post not found")
	case errors.Is(err, apify.ErrNoVideo):
		return transcripts.NewUnavailableError(postCode, "post has no video")
	case errors.Is(err, apify.ErrRateLimited):
		return transcripts.NewBlockedError(postCode, "scraper rate limited")
	default:
		return transcripts.NewUpstreamError(postCode, err)
	}
}

// classifyTranscribeError maps transcription failures onto the
// acquisition taxonomy
func classifyTranscribeError(postCode string, err error) error {
	if errors.Is(err, deepgram.ErrRateLimited) {
		return transcripts.NewBlockedError(postCode, "transcription provider rate limited")
	}
	return transcripts.NewUpstreamError(postCode, err)
}

// mediaContentType falls back to MP4 when the CDN is vague about what
// it served
func mediaContentType(contentType string) string {
	if contentType == "" || contentType == "application/octet-stream" {
		return "video/mp4"
	}
	return contentType
}

// roundMB converts bytes to megabytes rounded to two decimals
func roundMB(bytes int64) float64 {
	return math.Round(float64(bytes)/(1024*1024)*100) / 100
}

package transcripts

import (
	"context"
	"errors"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/voxtape/transcript-api/internal/services/deepgram"
	"github.com/voxtape/transcript-api/pkg/ytdlp"
)

const defaultWatchURLBase = "https://www.youtube.com/watch?v="

// SpeechAdapter adapts the audio download ladder plus the Deepgram
// client to the SpeechSource interface
type SpeechAdapter struct {
	downloader   *ytdlp.YtDlp
	transcriber  *deepgram.Client
	watchURLBase string
}

// NewSpeechAdapter creates a new adapter for the speech fallback path
func NewSpeechAdapter(downloader *ytdlp.YtDlp, transcriber *deepgram.Client) SpeechSource {
	return &SpeechAdapter{
		downloader:   downloader,
		transcriber:  transcriber,
		watchURLBase: defaultWatchURLBase,
	}
}

// Transcribe downloads the video's audio and runs it through
// speech-to-text. The ladder carries its own internal fallback, so
// failures here are terminal rather than retryable.
func (a *SpeechAdapter) Transcribe(ctx context.Context, videoID string) (*SpeechResult, error) {
	result, cleanup, err := a.downloader.DownloadAudio(ctx, a.watchURLBase+videoID)
	if err != nil {
		return nil, classifySpeechError(videoID, err)
	}
	defer func() {
		if cleanupErr := cleanup(); cleanupErr != nil {
			log.Printf("Failed to cleanup downloaded audio: %v", cleanupErr)
		}
	}()

	audio, err := os.Open(result.Path)
	if err != nil {
		return nil, NewUpstreamError(videoID, err)
	}
	defer audio.Close()

	transcription, err := a.transcriber.Transcribe(ctx, audio, audioContentType(result.Path))
	if err != nil {
		return nil, classifySpeechError(videoID, err)
	}

	return &SpeechResult{
		Text:       transcription.Text,
		Language:   transcription.Language,
		Confidence: transcription.Confidence,
	}, nil
}

// classifySpeechError maps download and transcription failures onto
// the acquisition taxonomy
func classifySpeechError(videoID string, err error) error {
	switch {
	case errors.Is(err, ytdlp.ErrVideoUnavailable):
		return NewUnavailableError(videoID, "video is unavailable")
	case errors.Is(err, deepgram.ErrRateLimited):
		return NewBlockedError(videoID, "transcription provider rate limited")
	default:
		return NewUpstreamError(videoID, err)
	}
}

// audioContentType picks the MIME type for the downloaded audio by
// extension, defaulting to MP4 audio
func audioContentType(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".webm":
		return "audio/webm"
	case ".opus", ".ogg":
		return "audio/ogg"
	case ".mp3":
		return "audio/mpeg"
	default:
		return "audio/mp4"
	}
}

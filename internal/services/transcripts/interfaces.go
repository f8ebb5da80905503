package transcripts

import "context"

// CaptionSource supplies caption tracks for a video identifier.
// Implementations translate their provider's failures into the
// acquisition error taxonomy before returning them.
type CaptionSource interface {
	// ListTracks returns every caption track the provider advertises
	// for the video
	ListTracks(ctx context.Context, videoID string) ([]Track, error)

	// FetchSnippets downloads one track and returns its snippet texts
	// in original order
	FetchSnippets(ctx context.Context, videoID string, track Track) ([]string, error)
}

// SpeechSource produces a transcript from the video's audio. Used when
// no caption track exists at all.
type SpeechSource interface {
	Transcribe(ctx context.Context, videoID string) (*SpeechResult, error)
}

// TranscriptService is the acquisition surface consumed by HTTP
// handlers and the CLI
type TranscriptService interface {
	Acquire(ctx context.Context, rawInput string) (*Result, error)
}

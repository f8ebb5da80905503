package transcripts

import (
	"context"
	"errors"

	"github.com/voxtape/transcript-api/internal/services/youtube"
)

// WatchPageAdapter adapts the youtube.Client to the CaptionSource interface
type WatchPageAdapter struct {
	client *youtube.Client
}

// NewWatchPageAdapter creates a new adapter for the watch page caption client
func NewWatchPageAdapter(client *youtube.Client) CaptionSource {
	return &WatchPageAdapter{
		client: client,
	}
}

// ListTracks fetches the caption tracks advertised for a video
func (a *WatchPageAdapter) ListTracks(ctx context.Context, videoID string) ([]Track, error) {
	raw, err := a.client.ListCaptionTracks(ctx, videoID)
	if err != nil {
		return nil, classifyCaptionError(videoID, err)
	}

	tracks := make([]Track, 0, len(raw))
	for _, t := range raw {
		tracks = append(tracks, Track{
			URL:       t.BaseURL,
			Name:      t.Name,
			Language:  t.Language,
			Generated: t.Generated,
		})
	}
	return tracks, nil
}

// FetchSnippets downloads one caption track and returns its snippet
// texts in original order
func (a *WatchPageAdapter) FetchSnippets(ctx context.Context, videoID string, track Track) ([]string, error) {
	transcript, err := a.client.FetchTrack(ctx, track.URL)
	if err != nil {
		return nil, classifyCaptionError(videoID, err)
	}

	texts := make([]string, 0, len(transcript.Snippets))
	for _, snippet := range transcript.Snippets {
		texts = append(texts, snippet.Text)
	}
	return texts, nil
}

// classifyCaptionError maps the provider's raw failures onto the
// acquisition taxonomy. Anything unrecognized lands in the
// unclassified bucket, which is never retried.
func classifyCaptionError(videoID string, err error) error {
	switch {
	case errors.Is(err, youtube.ErrRateLimited):
		return NewBlockedError(videoID, "rate limited by upstream")
	case errors.Is(err, youtube.ErrBadStatus):
		return NewBlockedError(videoID, "upstream request failed")
	case errors.Is(err, youtube.ErrNoCaptions):
		return NewNoCaptionsError(videoID)
	case errors.Is(err, youtube.ErrUnavailable):
		return NewUnavailableError(videoID, "video is unavailable")
	default:
		return NewUpstreamError(videoID, err)
	}
}

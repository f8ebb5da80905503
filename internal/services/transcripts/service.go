package transcripts

import (
	"context"
	"errors"
	"log"
	"strings"
)

// Service orchestrates transcript acquisition: identifier extraction,
// cache lookup, caption resolution wrapped in retry, and an optional
// speech fallback for videos with no captions at all.
type Service struct {
	captions CaptionSource
	speech   SpeechSource
	cache    *Cache
	resolver *Resolver
	policy   RetryPolicy
}

// NewService creates a new acquisition service. A nil speech source
// disables the audio fallback; nil cache and resolver fall back to
// defaults.
func NewService(captions CaptionSource, speech SpeechSource, cache *Cache, resolver *Resolver, policy RetryPolicy) *Service {
	if cache == nil {
		cache = NewCache(DefaultCacheTTL)
	}
	if resolver == nil {
		resolver = NewResolver(nil)
	}
	return &Service{
		captions: captions,
		speech:   speech,
		cache:    cache,
		resolver: resolver,
		policy:   policy,
	}
}

// Cache exposes the cache for the administrative and health surfaces
func (s *Service) Cache() *Cache {
	return s.cache
}

// Acquire resolves a raw URL or identifier into a transcript result,
// consulting the cache before touching the network
func (s *Service) Acquire(ctx context.Context, rawInput string) (*Result, error) {
	input := strings.TrimSpace(rawInput)
	if input == "" {
		return nil, NewInvalidInputError("url", "URL is required")
	}

	videoID, ok := ExtractVideoID(input)
	if !ok {
		return nil, NewInvalidInputError("url", "Invalid YouTube URL")
	}

	if hit, ok := s.cache.Get(videoID); ok {
		log.Printf("[DEBUG] Cache hit for %s", videoID)
		hit.Cached = true
		return &hit, nil
	}

	result, err := s.fetchCaptions(ctx, videoID)
	if err != nil && s.speech != nil && errors.Is(err, ErrCaptionsUnavailable) {
		log.Printf("[DEBUG] No captions for %s, falling back to speech transcription", videoID)
		result, err = s.transcribeAudio(ctx, videoID)
	}
	if err != nil {
		return nil, err
	}

	s.cache.Put(videoID, *result)
	return result, nil
}

// fetchCaptions runs the caption path under the retry policy: list the
// advertised tracks, pick one, download it, and join the snippet texts
// with single spaces in original order.
func (s *Service) fetchCaptions(ctx context.Context, videoID string) (*Result, error) {
	var result *Result

	err := WithRetry(ctx, s.policy, func() error {
		tracks, err := s.captions.ListTracks(ctx, videoID)
		if err != nil {
			return err
		}

		track, err := s.resolver.Resolve(videoID, tracks)
		if err != nil {
			return err
		}

		snippets, err := s.captions.FetchSnippets(ctx, videoID, *track)
		if err != nil {
			return err
		}

		result = &Result{
			Transcript: strings.Join(snippets, " "),
			Language:   track.Language,
			VideoID:    videoID,
			Source:     SourceCaptions,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}

// transcribeAudio runs the speech fallback. The download ladder does
// its own stepping through client identities, so no outer retry.
func (s *Service) transcribeAudio(ctx context.Context, videoID string) (*Result, error) {
	speech, err := s.speech.Transcribe(ctx, videoID)
	if err != nil {
		return nil, err
	}

	return &Result{
		Transcript: speech.Text,
		Language:   speech.Language,
		VideoID:    videoID,
		Source:     SourceSpeech,
	}, nil
}

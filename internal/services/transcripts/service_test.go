package transcripts

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// Mock implementations for testing

type MockCaptionSource struct {
	mock.Mock
}

func (m *MockCaptionSource) ListTracks(ctx context.Context, videoID string) ([]Track, error) {
	args := m.Called(ctx, videoID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Track), args.Error(1)
}

func (m *MockCaptionSource) FetchSnippets(ctx context.Context, videoID string, track Track) ([]string, error) {
	args := m.Called(ctx, videoID, track)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

type MockSpeechSource struct {
	mock.Mock
}

func (m *MockSpeechSource) Transcribe(ctx context.Context, videoID string) (*SpeechResult, error) {
	args := m.Called(ctx, videoID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*SpeechResult), args.Error(1)
}

// quickPolicy keeps retry delays at test scale
func quickPolicy() RetryPolicy {
	return RetryPolicy{
		MaxRetries:   3,
		InitialDelay: time.Millisecond,
		Multiplier:   2.0,
		MaxDelay:     5 * time.Millisecond,
		Retryable:    IsRetryable,
	}
}

func TestAcquireFreshThenCached(t *testing.T) {
	captions := new(MockCaptionSource)
	track := Track{URL: "https://captions.example/en", Language: "en"}
	captions.On("ListTracks", mock.Anything, "dQw4w9WgXcQ").Return([]Track{track}, nil).Once()
	captions.On("FetchSnippets", mock.Anything, "dQw4w9WgXcQ", track).Return([]string{"never gonna", "give you up"}, nil).Once()

	service := NewService(captions, nil, NewCache(time.Hour), NewResolver(nil), quickPolicy())

	first, err := service.Acquire(context.Background(), "https://www.youtube.com/watch?v=dQw4w9WgXcQ")
	require.NoError(t, err)
	assert.Equal(t, "never gonna give you up", first.Transcript)
	assert.Equal(t, "en", first.Language)
	assert.Equal(t, "dQw4w9WgXcQ", first.VideoID)
	assert.False(t, first.Cached)
	assert.Equal(t, SourceCaptions, first.Source)

	// Any shape of the same video hits the cache; the provider is not
	// consulted again
	second, err := service.Acquire(context.Background(), "dQw4w9WgXcQ")
	require.NoError(t, err)
	assert.True(t, second.Cached)
	assert.Equal(t, first.Transcript, second.Transcript)
	assert.Equal(t, first.Language, second.Language)

	captions.AssertExpectations(t)
}

func TestAcquireInvalidInput(t *testing.T) {
	captions := new(MockCaptionSource)
	service := NewService(captions, nil, NewCache(time.Hour), NewResolver(nil), quickPolicy())

	tests := []struct {
		name  string
		input string
	}{
		{"empty", ""},
		{"whitespace only", "   "},
		{"unrelated URL", "https://example.com/some/page"},
		{"token too short", "abc"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := service.Acquire(context.Background(), tt.input)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}

	captions.AssertNotCalled(t, "ListTracks", mock.Anything, mock.Anything)
}

func TestAcquireNoCaptionsWithoutFallback(t *testing.T) {
	captions := new(MockCaptionSource)
	captions.On("ListTracks", mock.Anything, "dQw4w9WgXcQ").Return([]Track{}, nil).Once()

	cache := NewCache(time.Hour)
	service := NewService(captions, nil, cache, NewResolver(nil), quickPolicy())

	_, err := service.Acquire(context.Background(), "dQw4w9WgXcQ")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrCaptionsUnavailable)
	assert.Equal(t, 0, cache.Len(), "failures are never cached")

	captions.AssertExpectations(t)
}

func TestAcquireSpeechFallback(t *testing.T) {
	captions := new(MockCaptionSource)
	captions.On("ListTracks", mock.Anything, "dQw4w9WgXcQ").Return([]Track{}, nil).Once()

	speech := new(MockSpeechSource)
	speech.On("Transcribe", mock.Anything, "dQw4w9WgXcQ").Return(&SpeechResult{
		Text:       "transcribed from audio",
		Language:   "en",
		Confidence: 0.94,
	}, nil).Once()

	service := NewService(captions, speech, NewCache(time.Hour), NewResolver(nil), quickPolicy())

	result, err := service.Acquire(context.Background(), "dQw4w9WgXcQ")
	require.NoError(t, err)
	assert.Equal(t, "transcribed from audio", result.Transcript)
	assert.Equal(t, SourceSpeech, result.Source)
	assert.False(t, result.Cached)

	// Speech results are cached like caption results
	cached, err := service.Acquire(context.Background(), "dQw4w9WgXcQ")
	require.NoError(t, err)
	assert.True(t, cached.Cached)
	assert.Equal(t, SourceSpeech, cached.Source)

	captions.AssertExpectations(t)
	speech.AssertExpectations(t)
}

func TestAcquireSpeechFallbackNotUsedForUnavailable(t *testing.T) {
	captions := new(MockCaptionSource)
	captions.On("ListTracks", mock.Anything, "gone4w9WgXc").Return(nil, NewUnavailableError("gone4w9WgXc", "removed")).Once()

	speech := new(MockSpeechSource)

	service := NewService(captions, speech, NewCache(time.Hour), NewResolver(nil), quickPolicy())

	_, err := service.Acquire(context.Background(), "gone4w9WgXc")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrVideoUnavailable)

	speech.AssertNotCalled(t, "Transcribe", mock.Anything, mock.Anything)
}

func TestAcquireSpeechFallbackFailureSurfaces(t *testing.T) {
	captions := new(MockCaptionSource)
	captions.On("ListTracks", mock.Anything, "dQw4w9WgXcQ").Return([]Track{}, nil).Once()

	speech := new(MockSpeechSource)
	speech.On("Transcribe", mock.Anything, "dQw4w9WgXcQ").Return(nil, NewUpstreamError("dQw4w9WgXcQ", assert.AnError)).Once()

	service := NewService(captions, speech, NewCache(time.Hour), NewResolver(nil), quickPolicy())

	_, err := service.Acquire(context.Background(), "dQw4w9WgXcQ")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUpstreamFailed)
}

func TestAcquireRetriesBlockedThenSucceeds(t *testing.T) {
	captions := new(MockCaptionSource)
	track := Track{URL: "https://captions.example/en", Language: "en"}
	captions.On("ListTracks", mock.Anything, "dQw4w9WgXcQ").Return(nil, NewBlockedError("dQw4w9WgXcQ", "rate limited")).Twice()
	captions.On("ListTracks", mock.Anything, "dQw4w9WgXcQ").Return([]Track{track}, nil).Once()
	captions.On("FetchSnippets", mock.Anything, "dQw4w9WgXcQ", track).Return([]string{"hello", "world"}, nil).Once()

	service := NewService(captions, nil, NewCache(time.Hour), NewResolver(nil), quickPolicy())

	result, err := service.Acquire(context.Background(), "dQw4w9WgXcQ")
	require.NoError(t, err)
	assert.Equal(t, "hello world", result.Transcript)

	captions.AssertExpectations(t)
	captions.AssertNumberOfCalls(t, "ListTracks", 3)
}

func TestAcquireBlockedUntilExhaustion(t *testing.T) {
	captions := new(MockCaptionSource)
	captions.On("ListTracks", mock.Anything, "dQw4w9WgXcQ").Return(nil, NewBlockedError("dQw4w9WgXcQ", "rate limited"))

	cache := NewCache(time.Hour)
	service := NewService(captions, nil, cache, NewResolver(nil), quickPolicy())

	_, err := service.Acquire(context.Background(), "dQw4w9WgXcQ")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUpstreamBlocked)

	// Initial attempt plus the full retry budget
	captions.AssertNumberOfCalls(t, "ListTracks", 4)
	assert.Equal(t, 0, cache.Len())
}

func TestAcquireCacheClearForcesRefetch(t *testing.T) {
	captions := new(MockCaptionSource)
	track := Track{URL: "https://captions.example/en", Language: "en"}
	captions.On("ListTracks", mock.Anything, "dQw4w9WgXcQ").Return([]Track{track}, nil)
	captions.On("FetchSnippets", mock.Anything, "dQw4w9WgXcQ", track).Return([]string{"text"}, nil)

	cache := NewCache(time.Hour)
	service := NewService(captions, nil, cache, NewResolver(nil), quickPolicy())

	_, err := service.Acquire(context.Background(), "dQw4w9WgXcQ")
	require.NoError(t, err)

	removed := cache.Clear()
	assert.Equal(t, 1, removed)

	result, err := service.Acquire(context.Background(), "dQw4w9WgXcQ")
	require.NoError(t, err)
	assert.False(t, result.Cached, "a cleared cache means a fresh fetch")

	captions.AssertNumberOfCalls(t, "ListTracks", 2)
}

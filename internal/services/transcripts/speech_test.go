package transcripts

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/voxtape/transcript-api/internal/services/deepgram"
	"github.com/voxtape/transcript-api/pkg/ytdlp"
)

func TestClassifySpeechError(t *testing.T) {
	tests := []struct {
		name     string
		raw      error
		sentinel error
	}{
		{"unavailable video maps to video unavailable", ytdlp.ErrVideoUnavailable, ErrVideoUnavailable},
		{"transcriber rate limit maps to blocked", deepgram.ErrRateLimited, ErrUpstreamBlocked},
		{"exhausted ladder maps to upstream failed", ytdlp.ErrAllStrategiesFailed, ErrUpstreamFailed},
		{"missing binary maps to upstream failed", ytdlp.ErrBinaryNotFound, ErrUpstreamFailed},
		{"empty transcript maps to upstream failed", deepgram.ErrEmptyTranscript, ErrUpstreamFailed},
		{"anything else maps to upstream failed", errors.New("disk full"), ErrUpstreamFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wrapped := fmt.Errorf("speech path: %w", tt.raw)

			mapped := classifySpeechError("dQw4w9WgXcQ", wrapped)
			assert.ErrorIs(t, mapped, tt.sentinel)
			assert.Equal(t, "dQw4w9WgXcQ", VideoIDFromError(mapped))
		})
	}
}

func TestAudioContentType(t *testing.T) {
	tests := []struct {
		path     string
		expected string
	}{
		{"/tmp/audio_1.m4a", "audio/mp4"},
		{"/tmp/audio_1.M4A", "audio/mp4"},
		{"/tmp/audio_1.webm", "audio/webm"},
		{"/tmp/audio_1.opus", "audio/ogg"},
		{"/tmp/audio_1.ogg", "audio/ogg"},
		{"/tmp/audio_1.mp3", "audio/mpeg"},
		{"/tmp/audio_1", "audio/mp4"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, audioContentType(tt.path), "path %s", tt.path)
	}
}

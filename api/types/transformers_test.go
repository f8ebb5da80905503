package types

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/voxtape/transcript-api/internal/services/instagram"
	"github.com/voxtape/transcript-api/internal/services/transcripts"
)

func TestFromTranscript(t *testing.T) {
	result := &transcripts.Result{
		Transcript: "never gonna give you up",
		Language:   "en",
		VideoID:    "dQw4w9WgXcQ",
		Cached:     true,
		Source:     transcripts.SourceCaptions,
	}

	resp := FromTranscript(result)

	assert.Equal(t, "never gonna give you up", resp.Transcript)
	assert.Equal(t, "en", resp.Language)
	assert.Equal(t, "dQw4w9WgXcQ", resp.VideoID)
	assert.True(t, resp.Cached)
	assert.Equal(t, "captions", resp.Source)
}

func TestFromTranscriptNil(t *testing.T) {
	assert.Nil(t, FromTranscript(nil))
}

func TestFromInstagramTranscript(t *testing.T) {
	result := &instagram.Result{
		Transcript:  "hello from the reel",
		Language:    "en",
		Confidence:  0.97,
		PostCode:    "Cabc123",
		Author:      "someuser",
		Caption:     "my caption",
		VideoSizeMB: 1.5,
		ElapsedMs:   4200,
	}

	resp := FromInstagramTranscript(result)

	assert.Equal(t, "hello from the reel", resp.Transcript)
	assert.Equal(t, "Cabc123", resp.PostCode)
	assert.Equal(t, "someuser", resp.Author)
	assert.Equal(t, 0.97, resp.Confidence)
	assert.Equal(t, 1.5, resp.VideoSizeMB)
	assert.Equal(t, int64(4200), resp.ElapsedMs)
	assert.Nil(t, FromInstagramTranscript(nil))
}

func TestFromError(t *testing.T) {
	tests := []struct {
		name           string
		err            error
		expectedStatus int
		expectedType   string
		expectedError  string
		expectedVideo  string
	}{
		{
			name:           "missing url",
			err:            transcripts.NewInvalidInputError("url", "URL is required"),
			expectedStatus: http.StatusBadRequest,
			expectedType:   ErrorTypeInvalidInput,
			expectedError:  "URL is required",
		},
		{
			name:           "unrecognized url",
			err:            transcripts.NewInvalidInputError("url", "Invalid YouTube URL"),
			expectedStatus: http.StatusBadRequest,
			expectedType:   ErrorTypeInvalidInput,
			expectedError:  "Invalid YouTube URL",
		},
		{
			name:           "no captions",
			err:            transcripts.NewNoCaptionsError("dQw4w9WgXcQ"),
			expectedStatus: http.StatusNotFound,
			expectedType:   ErrorTypeCaptionsUnavailable,
			expectedError:  "No captions available",
			expectedVideo:  "dQw4w9WgXcQ",
		},
		{
			name:           "video unavailable",
			err:            transcripts.NewUnavailableError("dQw4w9WgXcQ", "private"),
			expectedStatus: http.StatusNotFound,
			expectedType:   ErrorTypeVideoUnavailable,
			expectedError:  "Video unavailable",
			expectedVideo:  "dQw4w9WgXcQ",
		},
		{
			name:           "blocked upstream",
			err:            transcripts.NewBlockedError("dQw4w9WgXcQ", "captcha"),
			expectedStatus: http.StatusTooManyRequests,
			expectedType:   ErrorTypeUpstreamBlocked,
			expectedError:  "Rate limited or request failed",
			expectedVideo:  "dQw4w9WgXcQ",
		},
		{
			name:           "upstream failure",
			err:            transcripts.NewUpstreamError("dQw4w9WgXcQ", assert.AnError),
			expectedStatus: http.StatusInternalServerError,
			expectedType:   ErrorTypeUpstreamFailed,
			expectedError:  "Transcription failed",
			expectedVideo:  "dQw4w9WgXcQ",
		},
		{
			name:           "error outside the taxonomy",
			err:            errors.New("something odd"),
			expectedStatus: http.StatusInternalServerError,
			expectedType:   ErrorTypeUpstreamFailed,
			expectedError:  "Transcription failed",
		},
		{
			name:           "wrapped taxonomy error still classifies",
			err:            fmt.Errorf("acquire: %w", transcripts.NewNoCaptionsError("aaa11BBB22c")),
			expectedStatus: http.StatusNotFound,
			expectedType:   ErrorTypeCaptionsUnavailable,
			expectedError:  "No captions available",
			expectedVideo:  "aaa11BBB22c",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, resp := FromError(tt.err)

			assert.Equal(t, tt.expectedStatus, status)
			assert.Equal(t, tt.expectedType, resp.ErrorType)
			assert.Equal(t, tt.expectedError, resp.Error)
			assert.Equal(t, tt.expectedVideo, resp.VideoID)
			assert.Empty(t, resp.PostCode)
		})
	}
}

func TestFromInstagramError(t *testing.T) {
	status, resp := FromInstagramError(transcripts.NewUnavailableError("Cimg456", "post has no video"))

	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, ErrorTypeVideoUnavailable, resp.ErrorType)
	assert.Equal(t, "Cimg456", resp.PostCode)
	assert.Empty(t, resp.VideoID)
}

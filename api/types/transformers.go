package types

import (
	"errors"
	"net/http"

	"github.com/voxtape/transcript-api/internal/services/instagram"
	"github.com/voxtape/transcript-api/internal/services/transcripts"
)

// FromTranscript converts an acquisition result to its API
// representation
func FromTranscript(result *transcripts.Result) *TranscribeResponse {
	if result == nil {
		return nil
	}
	return &TranscribeResponse{
		Transcript: result.Transcript,
		Language:   result.Language,
		VideoID:    result.VideoID,
		Cached:     result.Cached,
		Source:     result.Source,
	}
}

// FromInstagramTranscript converts an Instagram pipeline result to its
// API representation
func FromInstagramTranscript(result *instagram.Result) *InstagramTranscribeResponse {
	if result == nil {
		return nil
	}
	return &InstagramTranscribeResponse{
		Transcript:  result.Transcript,
		Language:    result.Language,
		Confidence:  result.Confidence,
		PostCode:    result.PostCode,
		Author:      result.Author,
		Caption:     result.Caption,
		VideoSizeMB: result.VideoSizeMB,
		ElapsedMs:   result.ElapsedMs,
	}
}

// FromError maps a service error onto an HTTP status and wire body.
// Anything outside the taxonomy collapses to upstream_failed so the
// set of error_type values clients see stays closed.
func FromError(err error) (int, *ErrorResponse) {
	resp := &ErrorResponse{
		VideoID: transcripts.VideoIDFromError(err),
	}

	var invalid transcripts.InvalidInputError
	switch {
	case errors.As(err, &invalid):
		resp.Error = invalid.Message
		resp.ErrorType = ErrorTypeInvalidInput
		return http.StatusBadRequest, resp
	case errors.Is(err, transcripts.ErrInvalidInput):
		resp.Error = "Invalid request"
		resp.ErrorType = ErrorTypeInvalidInput
		return http.StatusBadRequest, resp
	case errors.Is(err, transcripts.ErrCaptionsUnavailable):
		resp.Error = "No captions available"
		resp.ErrorType = ErrorTypeCaptionsUnavailable
		return http.StatusNotFound, resp
	case errors.Is(err, transcripts.ErrVideoUnavailable):
		resp.Error = "Video unavailable"
		resp.ErrorType = ErrorTypeVideoUnavailable
		return http.StatusNotFound, resp
	case errors.Is(err, transcripts.ErrUpstreamBlocked):
		resp.Error = "Rate limited or request failed"
		resp.ErrorType = ErrorTypeUpstreamBlocked
		return http.StatusTooManyRequests, resp
	default:
		resp.Error = "Transcription failed"
		resp.ErrorType = ErrorTypeUpstreamFailed
		return http.StatusInternalServerError, resp
	}
}

// FromInstagramError maps a pipeline error the same way but reports
// the identifier as a post code
func FromInstagramError(err error) (int, *ErrorResponse) {
	status, resp := FromError(err)
	resp.PostCode = resp.VideoID
	resp.VideoID = ""
	return status, resp
}

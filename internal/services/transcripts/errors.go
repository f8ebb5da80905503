package transcripts

import (
	"errors"
	"fmt"
)

// The closed acquisition error taxonomy. Every failure leaving this
// package matches exactly one of these.
var (
	ErrInvalidInput        = errors.New("invalid input")
	ErrCaptionsUnavailable = errors.New("captions unavailable")
	ErrVideoUnavailable    = errors.New("video unavailable")
	ErrUpstreamBlocked     = errors.New("upstream blocked")
	ErrUpstreamFailed      = errors.New("upstream failed")
)

// InvalidInputError represents a request the caller got wrong
type InvalidInputError struct {
	Field   string
	Message string
}

func (e InvalidInputError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
}

func (e InvalidInputError) Is(target error) bool {
	return target == ErrInvalidInput
}

// NoCaptionsError represents a video that advertises no usable captions
type NoCaptionsError struct {
	VideoID string
}

func (e NoCaptionsError) Error() string {
	return fmt.Sprintf("no captions available for video %s", e.VideoID)
}

func (e NoCaptionsError) Is(target error) bool {
	return target == ErrCaptionsUnavailable
}

// UnavailableError represents a video that is gone, private or region
// locked. Terminal: no acquisition strategy can recover it.
type UnavailableError struct {
	VideoID string
	Reason  string
}

func (e UnavailableError) Error() string {
	return fmt.Sprintf("video %s unavailable: %s", e.VideoID, e.Reason)
}

func (e UnavailableError) Is(target error) bool {
	return target == ErrVideoUnavailable
}

// BlockedError represents an upstream refusal that may clear on a later
// attempt, such as rate limiting or a captcha wall
type BlockedError struct {
	VideoID string
	Reason  string
}

func (e BlockedError) Error() string {
	return fmt.Sprintf("upstream blocked request for video %s: %s", e.VideoID, e.Reason)
}

func (e BlockedError) Is(target error) bool {
	return target == ErrUpstreamBlocked
}

// UpstreamError represents an unclassified upstream failure. Not
// retried; retrying unknown failure modes hides real defects.
type UpstreamError struct {
	VideoID string
	Err     error
}

func (e UpstreamError) Error() string {
	return fmt.Sprintf("upstream failure for video %s: %v", e.VideoID, e.Err)
}

func (e UpstreamError) Is(target error) bool {
	return target == ErrUpstreamFailed
}

func (e UpstreamError) Unwrap() error {
	return e.Err
}

// Helper functions for creating errors

// NewInvalidInputError creates a new InvalidInputError
func NewInvalidInputError(field, message string) error {
	return InvalidInputError{
		Field:   field,
		Message: message,
	}
}

// NewNoCaptionsError creates a new NoCaptionsError
func NewNoCaptionsError(videoID string) error {
	return NoCaptionsError{
		VideoID: videoID,
	}
}

// NewUnavailableError creates a new UnavailableError
func NewUnavailableError(videoID, reason string) error {
	return UnavailableError{
		VideoID: videoID,
		Reason:  reason,
	}
}

// NewBlockedError creates a new BlockedError
func NewBlockedError(videoID, reason string) error {
	return BlockedError{
		VideoID: videoID,
		Reason:  reason,
	}
}

// NewUpstreamError creates a new UpstreamError
func NewUpstreamError(videoID string, err error) error {
	return UpstreamError{
		VideoID: videoID,
		Err:     err,
	}
}

// IsRetryable reports whether a later attempt could plausibly succeed.
// Only blocked/rate-limited failures qualify; terminal and unclassified
// errors propagate immediately.
func IsRetryable(err error) bool {
	return errors.Is(err, ErrUpstreamBlocked)
}

// IsTerminal reports whether the failure is permanent for this video
func IsTerminal(err error) bool {
	return errors.Is(err, ErrCaptionsUnavailable) ||
		errors.Is(err, ErrVideoUnavailable)
}

// VideoIDFromError recovers the identifier a taxonomy error was raised
// for, so failure responses can carry it when extraction succeeded
func VideoIDFromError(err error) string {
	var noCaptions NoCaptionsError
	if errors.As(err, &noCaptions) {
		return noCaptions.VideoID
	}
	var unavailable UnavailableError
	if errors.As(err, &unavailable) {
		return unavailable.VideoID
	}
	var blocked BlockedError
	if errors.As(err, &blocked) {
		return blocked.VideoID
	}
	var upstream UpstreamError
	if errors.As(err, &upstream) {
		return upstream.VideoID
	}
	return ""
}

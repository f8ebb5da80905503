package ytdlp

import (
	"errors"
	"fmt"
	"strings"
)

// Common errors
var (
	ErrBinaryNotFound      = errors.New("yt-dlp binary not found")
	ErrVideoUnavailable    = errors.New("video unavailable")
	ErrAllStrategiesFailed = errors.New("all download strategies failed")
	ErrNoOutput            = errors.New("yt-dlp produced no output file")
)

// StrategyError represents one failed download attempt
type StrategyError struct {
	Strategy string // The strategy that was tried (e.g., "iOS Client")
	URL      string // The video being downloaded
	Err      error  // The underlying error
	Stderr   string // stderr output from yt-dlp
}

func (e *StrategyError) Error() string {
	if e.Stderr != "" {
		return fmt.Sprintf("yt-dlp strategy %q failed for %s: %v (stderr: %s)", e.Strategy, e.URL, e.Err, e.Stderr)
	}
	return fmt.Sprintf("yt-dlp strategy %q failed for %s: %v", e.Strategy, e.URL, e.Err)
}

func (e *StrategyError) Unwrap() error {
	return e.Err
}

// BotDetected reports whether stderr points at a bot wall, a login
// wall or an age gate, all of which another client may get past
func (e *StrategyError) BotDetected() bool {
	lower := strings.ToLower(e.Stderr)
	return strings.Contains(lower, "bot") ||
		strings.Contains(lower, "sign in") ||
		strings.Contains(lower, "age")
}

// VideoGone reports whether stderr says the video itself cannot be
// had, in which case trying further clients is pointless
func (e *StrategyError) VideoGone() bool {
	lower := strings.ToLower(e.Stderr)
	return strings.Contains(lower, "unavailable") ||
		strings.Contains(lower, "private")
}

// NewStrategyError creates a new StrategyError
func NewStrategyError(strategy, url string, err error, stderr string) *StrategyError {
	return &StrategyError{
		Strategy: strategy,
		URL:      url,
		Err:      err,
		Stderr:   stderr,
	}
}

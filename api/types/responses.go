package types

// Error type discriminators carried in the error_type field of every
// ErrorResponse. Clients branch on these, not on the error text.
const (
	ErrorTypeInvalidInput        = "invalid_input"
	ErrorTypeCaptionsUnavailable = "captions_unavailable"
	ErrorTypeVideoUnavailable    = "video_unavailable"
	ErrorTypeUpstreamBlocked     = "upstream_blocked"
	ErrorTypeUpstreamFailed      = "upstream_failed"
)

// TranscribeResponse is the success body for YouTube transcription
type TranscribeResponse struct {
	Transcript string `json:"transcript"`
	Language   string `json:"language"`
	VideoID    string `json:"videoId"`
	Cached     bool   `json:"cached"`
	Source     string `json:"source,omitempty" example:"captions"`
}

// InstagramTranscribeResponse is the success body for Instagram
// transcription
type InstagramTranscribeResponse struct {
	Transcript  string  `json:"transcript"`
	Language    string  `json:"language"`
	Confidence  float64 `json:"confidence"`
	PostCode    string  `json:"postCode"`
	Author      string  `json:"author"`
	Caption     string  `json:"caption"`
	VideoSizeMB float64 `json:"videoSizeMB"`
	ElapsedMs   int64   `json:"elapsedMs"`
}

// ErrorResponse is the failure body for every endpoint. VideoID and
// PostCode are present only when identifier extraction succeeded
// before the failure.
type ErrorResponse struct {
	Error     string `json:"error"`
	ErrorType string `json:"error_type"`
	VideoID   string `json:"videoId,omitempty"`
	PostCode  string `json:"postCode,omitempty"`
}

// ClearCacheResponse reports the outcome of a cache flush
type ClearCacheResponse struct {
	Message string `json:"message"`
	Removed int    `json:"removed"`
}

// HealthResponse is the body of the health endpoint
type HealthResponse struct {
	Status    string          `json:"status"`
	Timestamp string          `json:"timestamp"`
	CacheSize int             `json:"cache_size"`
	Providers map[string]bool `json:"providers,omitempty"`
}

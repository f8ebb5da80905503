package types

// TranscribeRequest represents a transcription request for either
// platform. Validation happens in the handlers so the error body can
// carry the taxonomy type instead of a binding message.
type TranscribeRequest struct {
	URL string `json:"url" example:"https://www.youtube.com/watch?v=dQw4w9WgXcQ"`
}

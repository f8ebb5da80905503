package transcripts

// Transcript sources
const (
	SourceCaptions = "captions"
	SourceSpeech   = "speech"
)

// Track is one caption track advertised by the provider for a video
type Track struct {
	URL       string // provider handle used to fetch the snippets
	Name      string // human readable track name
	Language  string // BCP-47 style language tag
	Generated bool   // machine-generated (ASR) rather than human-authored
}

// Result is the engine's output for one acquisition
type Result struct {
	Transcript string `json:"transcript"`
	Language   string `json:"language"`
	VideoID    string `json:"videoId"`
	Cached     bool   `json:"cached"`
	Source     string `json:"source,omitempty"`
}

// SpeechResult is what a speech-to-text fallback produces
type SpeechResult struct {
	Text       string
	Language   string
	Confidence float64
}

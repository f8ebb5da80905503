package types

import (
	"github.com/voxtape/transcript-api/internal/services/instagram"
	"github.com/voxtape/transcript-api/internal/services/transcripts"
)

// Dependencies holds all the dependencies needed by handlers
type Dependencies struct {
	TranscriptService transcripts.TranscriptService
	InstagramService  instagram.TranscriptionService
	Cache             *transcripts.Cache

	// SpeechEnabled records whether the speech fallback was wired at
	// startup, so the health report can say which providers are live
	SpeechEnabled bool
}

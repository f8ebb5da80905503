package deepgram

// Transcription is the distilled result of one audio transcription run
type Transcription struct {
	Text       string
	Language   string
	Confidence float64
}

// listenResponse mirrors the fragment of the /v1/listen response we
// consume. The full payload carries word timings and metadata we have
// no use for.
type listenResponse struct {
	Results struct {
		Channels []struct {
			DetectedLanguage string `json:"detected_language"`
			Alternatives     []struct {
				Transcript string  `json:"transcript"`
				Confidence float64 `json:"confidence"`
			} `json:"alternatives"`
		} `json:"channels"`
	} `json:"results"`
}

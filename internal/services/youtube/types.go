package youtube

// CaptionTrack describes one caption track advertised on a watch page
type CaptionTrack struct {
	BaseURL   string
	Name      string
	Language  string
	Generated bool // true for ASR (machine-generated) tracks
}

// captionList mirrors the fragment of player response JSON we care
// about. More is returned; field matching is case-insensitive so the
// camelCased wire names resolve without tags.
type captionList struct {
	PlayerCaptionsTracklistRenderer struct {
		CaptionTracks []rawTrack
		// There is more, ex AudioTracks, TranslationLanguages
	}
}

type rawTrack struct {
	BaseUrl string
	Name    struct {
		SimpleText string
	}
	LanguageCode   string
	Kind           string
	IsTranslatable bool
}

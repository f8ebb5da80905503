package transcripts

// DefaultPreferredLanguages is the language preference applied when
// none is configured
var DefaultPreferredLanguages = []string{"en", "en-US", "en-GB"}

// Resolver picks which caption track to use for a video
type Resolver struct {
	preferred []string
}

// NewResolver creates a resolver with the given preferred language
// tags, falling back to the defaults when the list is empty
func NewResolver(preferred []string) *Resolver {
	if len(preferred) == 0 {
		preferred = DefaultPreferredLanguages
	}
	return &Resolver{preferred: preferred}
}

// Resolve selects a track by quality preference subordinate to
// language preference:
//  1. first track in a preferred language
//  2. first human-authored track
//  3. first track of any kind
//
// Only a video with no tracks at all fails.
func (r *Resolver) Resolve(videoID string, tracks []Track) (*Track, error) {
	if len(tracks) == 0 {
		return nil, NewNoCaptionsError(videoID)
	}

	for _, lang := range r.preferred {
		for i := range tracks {
			if tracks[i].Language == lang {
				return &tracks[i], nil
			}
		}
	}

	for i := range tracks {
		if !tracks[i].Generated {
			return &tracks[i], nil
		}
	}

	return &tracks[0], nil
}

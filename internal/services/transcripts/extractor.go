package transcripts

import (
	"regexp"
	"strings"
)

// identifierPatterns is tried in order. Specific URL shapes come
// before the bare token form so an identifier-shaped fragment inside a
// malformed URL cannot win by accident.
var identifierPatterns = []*regexp.Regexp{
	regexp.MustCompile(`[?&]v=([A-Za-z0-9_-]{11})`),     // watch page query parameter
	regexp.MustCompile(`youtu\.be/([A-Za-z0-9_-]{11})`), // short link
	regexp.MustCompile(`embed/([A-Za-z0-9_-]{11})`),     // embed player path
	regexp.MustCompile(`shorts/([A-Za-z0-9_-]{11})`),    // shorts path
	regexp.MustCompile(`^([A-Za-z0-9_-]{11})$`),         // bare identifier
}

// ExtractVideoID parses a free-form URL or raw token into the canonical
// 11 character video identifier. The second return is false when no
// pattern matches.
func ExtractVideoID(input string) (string, bool) {
	input = strings.TrimSpace(input)
	if input == "" {
		return "", false
	}

	for _, pattern := range identifierPatterns {
		if match := pattern.FindStringSubmatch(input); match != nil {
			return match[1], true
		}
	}

	return "", false
}

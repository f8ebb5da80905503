package timedtext

import (
	"encoding/xml"
	"fmt"
	"html"
	"strings"
	"time"
)

// Snippet represents one timed caption line
type Snippet struct {
	Start time.Duration
	Dur   time.Duration
	Text  string
}

// Transcript represents a parsed timedtext caption track
type Transcript struct {
	Snippets []Snippet
	Duration time.Duration
}

// xmlDocument mirrors the legacy YouTube timedtext layout: a flat list
// of <text start dur> elements under the root
type xmlDocument struct {
	Entries []struct {
		Text  string  `xml:",chardata"`
		Start float64 `xml:"start,attr"`
		Dur   float64 `xml:"dur,attr"`
	} `xml:"text"`
}

// Parse parses timedtext XML content into an ordered snippet sequence.
// Caption text is double-escaped in the wire format, so entities are
// unescaped once more after XML decoding.
func Parse(content []byte) (*Transcript, error) {
	var doc xmlDocument
	if err := xml.Unmarshal(content, &doc); err != nil {
		return nil, fmt.Errorf("parsing timedtext xml: %w", err)
	}

	transcript := &Transcript{
		Snippets: make([]Snippet, 0, len(doc.Entries)),
	}

	for _, entry := range doc.Entries {
		text := cleanText(entry.Text)
		if text == "" {
			continue
		}

		snippet := Snippet{
			Start: time.Duration(entry.Start * float64(time.Second)),
			Dur:   time.Duration(entry.Dur * float64(time.Second)),
			Text:  text,
		}
		transcript.Snippets = append(transcript.Snippets, snippet)
	}

	if len(transcript.Snippets) > 0 {
		last := transcript.Snippets[len(transcript.Snippets)-1]
		transcript.Duration = last.Start + last.Dur
	}

	return transcript, nil
}

// JoinText concatenates snippet texts with single-space separators in
// original order
func (t *Transcript) JoinText() string {
	var builder strings.Builder
	for i, snippet := range t.Snippets {
		if i > 0 {
			builder.WriteString(" ")
		}
		builder.WriteString(snippet.Text)
	}
	return builder.String()
}

// IsEmpty reports whether the track carried no usable text
func (t *Transcript) IsEmpty() bool {
	return len(t.Snippets) == 0
}

// cleanText unescapes remaining HTML entities and collapses the line
// breaks YouTube inserts mid-snippet
func cleanText(text string) string {
	text = html.UnescapeString(text)
	text = strings.ReplaceAll(text, "\n", " ")
	return strings.TrimSpace(strings.Join(strings.Fields(text), " "))
}

package transcripts

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractVideoID(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		expectedID  string
		expectMatch bool
	}{
		{
			name:        "watch page URL",
			input:       "https://www.youtube.com/watch?v=dQw4w9WgXcQ",
			expectedID:  "dQw4w9WgXcQ",
			expectMatch: true,
		},
		{
			name:        "watch page URL with extra query params",
			input:       "https://www.youtube.com/watch?v=dQw4w9WgXcQ&t=42s&list=PLx",
			expectedID:  "dQw4w9WgXcQ",
			expectMatch: true,
		},
		{
			name:        "watch page URL with v not first",
			input:       "https://www.youtube.com/watch?feature=share&v=dQw4w9WgXcQ",
			expectedID:  "dQw4w9WgXcQ",
			expectMatch: true,
		},
		{
			name:        "short link",
			input:       "https://youtu.be/dQw4w9WgXcQ",
			expectedID:  "dQw4w9WgXcQ",
			expectMatch: true,
		},
		{
			name:        "short link with share suffix",
			input:       "https://youtu.be/dQw4w9WgXcQ?si=AbCdEf",
			expectedID:  "dQw4w9WgXcQ",
			expectMatch: true,
		},
		{
			name:        "embed URL",
			input:       "https://www.youtube.com/embed/dQw4w9WgXcQ",
			expectedID:  "dQw4w9WgXcQ",
			expectMatch: true,
		},
		{
			name:        "shorts URL",
			input:       "https://www.youtube.com/shorts/dQw4w9WgXcQ",
			expectedID:  "dQw4w9WgXcQ",
			expectMatch: true,
		},
		{
			name:        "bare identifier",
			input:       "dQw4w9WgXcQ",
			expectedID:  "dQw4w9WgXcQ",
			expectMatch: true,
		},
		{
			name:        "bare identifier with surrounding whitespace",
			input:       "  dQw4w9WgXcQ\n",
			expectedID:  "dQw4w9WgXcQ",
			expectMatch: true,
		},
		{
			name:        "identifier with underscore and dash",
			input:       "https://youtu.be/a_b-C1d2E3f",
			expectedID:  "a_b-C1d2E3f",
			expectMatch: true,
		},
		{
			name:        "empty input",
			input:       "",
			expectMatch: false,
		},
		{
			name:        "token too short",
			input:       "abc123",
			expectMatch: false,
		},
		{
			name:        "bare token too long",
			input:       "dQw4w9WgXcQextra",
			expectMatch: false,
		},
		{
			name:        "unrelated URL",
			input:       "https://example.com/some/page",
			expectMatch: false,
		},
		{
			name:        "watch URL with short video param",
			input:       "https://www.youtube.com/watch?v=short",
			expectMatch: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, ok := ExtractVideoID(tt.input)
			assert.Equal(t, tt.expectMatch, ok)
			if tt.expectMatch {
				assert.Equal(t, tt.expectedID, id)
			} else {
				assert.Empty(t, id)
			}
		})
	}
}

func TestExtractVideoIDSameVideoAcrossShapes(t *testing.T) {
	shapes := []string{
		"https://www.youtube.com/watch?v=dQw4w9WgXcQ",
		"https://youtu.be/dQw4w9WgXcQ",
		"https://www.youtube.com/embed/dQw4w9WgXcQ",
		"https://www.youtube.com/shorts/dQw4w9WgXcQ",
		"dQw4w9WgXcQ",
	}

	for _, shape := range shapes {
		id, ok := ExtractVideoID(shape)
		assert.True(t, ok, "expected a match for %q", shape)
		assert.Equal(t, "dQw4w9WgXcQ", id, "input %q", shape)
	}
}

package deepgram

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"time"

	"github.com/abadojack/whatlanggo"
)

// Common errors returned by the transcription client
var (
	ErrMissingAPIKey   = errors.New("deepgram api key is required")
	ErrRateLimited     = errors.New("deepgram rate limited")
	ErrBadStatus       = errors.New("deepgram returned non 200 status")
	ErrEmptyTranscript = errors.New("deepgram returned no transcript")
)

// Client talks to the Deepgram speech-to-text API
type Client struct {
	httpClient     *http.Client
	apiKey         string
	baseURL        string
	model          string
	detectLanguage bool
	language       string
}

// Config holds configuration for the Deepgram client
type Config struct {
	APIKey         string
	BaseURL        string
	Model          string
	Timeout        time.Duration
	DetectLanguage bool
	Language       string
}

// NewClient creates a new Deepgram client
func NewClient(cfg Config) *Client {
	httpClient := &http.Client{
		Timeout: cfg.Timeout,
	}

	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://api.deepgram.com"
	}

	if cfg.Model == "" {
		cfg.Model = "nova-2"
	}

	return &Client{
		httpClient:     httpClient,
		apiKey:         cfg.APIKey,
		baseURL:        cfg.BaseURL,
		model:          cfg.Model,
		detectLanguage: cfg.DetectLanguage,
		language:       cfg.Language,
	}
}

// Transcribe sends raw audio to /v1/listen and returns the first
// alternative of the first channel. When the API does not report a
// language, one is inferred from the transcript text itself.
func (c *Client) Transcribe(ctx context.Context, audio io.Reader, contentType string) (*Transcription, error) {
	if c.apiKey == "" {
		return nil, ErrMissingAPIKey
	}

	params := url.Values{}
	params.Set("model", c.model)
	params.Set("smart_format", "true")
	params.Set("punctuate", "true")
	if c.language != "" {
		params.Set("language", c.language)
	} else if c.detectLanguage {
		params.Set("detect_language", "true")
	}

	fullURL := fmt.Sprintf("%s/v1/listen?%s", c.baseURL, params.Encode())

	// Inherit only the deadline so inbound request values never
	// cross into the upstream call
	cleanCtx := context.Background()
	if deadline, ok := ctx.Deadline(); ok {
		var cancel context.CancelFunc
		cleanCtx, cancel = context.WithDeadline(cleanCtx, deadline)
		defer cancel()
	}

	req, err := http.NewRequestWithContext(cleanCtx, "POST", fullURL, audio)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Authorization", "Token "+c.apiKey)
	req.Header.Set("Content-Type", contentType)

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("executing request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		log.Printf("[ERROR] Deepgram returned status %d: %s", resp.StatusCode, string(body))
		if resp.StatusCode == http.StatusTooManyRequests {
			return nil, fmt.Errorf("got status %d: %w", resp.StatusCode, ErrRateLimited)
		}
		return nil, fmt.Errorf("got status %d: %w", resp.StatusCode, ErrBadStatus)
	}

	var parsed listenResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("unmarshaling response: %w", err)
	}

	channels := parsed.Results.Channels
	if len(channels) == 0 || len(channels[0].Alternatives) == 0 {
		return nil, ErrEmptyTranscript
	}

	alt := channels[0].Alternatives[0]
	if alt.Transcript == "" {
		return nil, ErrEmptyTranscript
	}

	language := channels[0].DetectedLanguage
	if language == "" && c.language != "" {
		language = c.language
	}
	if language == "" {
		language = whatlanggo.DetectLang(alt.Transcript).Iso6391()
		log.Printf("[DEBUG] Deepgram reported no language, inferred %q from text", language)
	}

	log.Printf("[DEBUG] Transcribed %d chars in %v (language=%s, confidence=%.2f)",
		len(alt.Transcript), time.Since(start).Round(time.Millisecond), language, alt.Confidence)

	return &Transcription{
		Text:       alt.Transcript,
		Language:   language,
		Confidence: alt.Confidence,
	}, nil
}

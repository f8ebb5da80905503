package youtube

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/voxtape/transcript-api/pkg/timedtext"
)

// Watch pages run a few hundred KB; anything past this is not a watch page
const maxWatchPageBytes = 10 << 20

// Common errors raised while scraping caption data
var (
	ErrBadStatus   = errors.New("unexpected non 200 status code")
	ErrRateLimited = errors.New("too many requests")
	ErrNoCaptions  = errors.New("no caption tracks")
	ErrUnavailable = errors.New("video unavailable")
)

// Client scrapes caption tracks from watch pages. No API key is
// involved; availability depends on the page markup staying stable.
type Client struct {
	httpClient *http.Client
	baseURL    string
	userAgent  string
}

// Config holds configuration for the caption client
type Config struct {
	BaseURL   string
	UserAgent string
	Timeout   time.Duration
}

// NewClient creates a new caption scraping client
func NewClient(cfg Config) *Client {
	httpClient := &http.Client{
		Timeout: cfg.Timeout,
	}

	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://www.youtube.com"
	}

	if cfg.UserAgent == "" {
		cfg.UserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36"
	}

	return &Client{
		httpClient: httpClient,
		baseURL:    cfg.BaseURL,
		userAgent:  cfg.UserAgent,
	}
}

// ListCaptionTracks fetches the watch page for a video and extracts the
// advertised caption tracks
func (c *Client) ListCaptionTracks(ctx context.Context, videoID string) ([]CaptionTrack, error) {
	pageURL := fmt.Sprintf("%s/watch?v=%s", c.baseURL, videoID)

	body, err := c.get(ctx, pageURL)
	if err != nil {
		return nil, err
	}
	content := string(body)

	if strings.Contains(content, `action="https://consent.youtube.com/s"`) {
		return nil, fmt.Errorf("watch page for %q returned a consent form: %w", videoID, ErrBadStatus)
	}

	split := strings.Split(content, `"captions":`)
	if len(split) <= 1 {
		if strings.Contains(content, `class="g-recaptcha"`) {
			log.Printf("[DEBUG] Watch page for %s served a captcha", videoID)
			return nil, fmt.Errorf("video %q got captcha: %w", videoID, ErrRateLimited)
		}

		if strings.Contains(content, `"playabilityStatus"`) && strings.Contains(content, `"ERROR"`) {
			return nil, fmt.Errorf("video %q not playable: %w", videoID, ErrUnavailable)
		}

		return nil, fmt.Errorf("no captions json on watch page: %w", ErrNoCaptions)
	}

	rawCaptions := strings.ReplaceAll(strings.Split(split[1], `,"videoDetails`)[0], "\n", "")
	var list captionList
	if err := json.Unmarshal([]byte(rawCaptions), &list); err != nil {
		return nil, fmt.Errorf("unmarshaling caption list for %q: %w", videoID, err)
	}

	raw := list.PlayerCaptionsTracklistRenderer.CaptionTracks
	tracks := make([]CaptionTrack, 0, len(raw))
	for _, t := range raw {
		tracks = append(tracks, CaptionTrack{
			BaseURL:   t.BaseUrl,
			Name:      t.Name.SimpleText,
			Language:  t.LanguageCode,
			Generated: t.Kind == "asr",
		})
	}

	log.Printf("[DEBUG] Found %d caption tracks for %s", len(tracks), videoID)
	return tracks, nil
}

// FetchTrack downloads and parses the timedtext document behind a
// caption track's base URL
func (c *Client) FetchTrack(ctx context.Context, trackURL string) (*timedtext.Transcript, error) {
	body, err := c.get(ctx, trackURL)
	if err != nil {
		return nil, err
	}

	transcript, err := timedtext.Parse(body)
	if err != nil {
		return nil, fmt.Errorf("parsing caption track: %w", err)
	}

	return transcript, nil
}

// get performs a GET with the browser user agent and reads the capped body.
// A clean context inherits the deadline only, so request-scoped values from
// inbound middleware never leak into upstream calls.
func (c *Client) get(ctx context.Context, fullURL string) ([]byte, error) {
	cleanCtx := context.Background()
	if deadline, ok := ctx.Deadline(); ok {
		var cancel context.CancelFunc
		cleanCtx, cancel = context.WithDeadline(cleanCtx, deadline)
		defer cancel()
	}

	req, err := http.NewRequestWithContext(cleanCtx, "GET", fullURL, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept-Language", "en-US,en;q=0.9")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("executing request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxWatchPageBytes))
	if err != nil {
		return nil, fmt.Errorf("reading response body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		log.Printf("[ERROR] Upstream returned status %d for %s", resp.StatusCode, fullURL)
		if resp.StatusCode == http.StatusTooManyRequests {
			return nil, fmt.Errorf("got status %d: %w", resp.StatusCode, ErrRateLimited)
		}
		return nil, fmt.Errorf("got status %d: %w", resp.StatusCode, ErrBadStatus)
	}

	return body, nil
}

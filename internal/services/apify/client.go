package apify

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"
)

// Common errors returned by the scraper client
var (
	ErrMissingToken = errors.New("apify token is required")
	ErrNoResults    = errors.New("scraper returned no items")
	ErrNoVideo      = errors.New("post has no video")
	ErrRateLimited  = errors.New("apify rate limited")
	ErrBadStatus    = errors.New("apify returned non 2xx status")
)

// Client runs the Instagram scraper actor on the Apify platform
type Client struct {
	httpClient   *http.Client
	token        string
	baseURL      string
	actor        string
	resultsLimit int
}

// Config holds configuration for the Apify client
type Config struct {
	Token        string
	BaseURL      string
	Actor        string
	Timeout      time.Duration
	ResultsLimit int
}

// NewClient creates a new Apify client
func NewClient(cfg Config) *Client {
	httpClient := &http.Client{
		Timeout: cfg.Timeout,
	}

	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://api.apify.com"
	}

	if cfg.Actor == "" {
		cfg.Actor = "apify~instagram-scraper"
	}

	if cfg.ResultsLimit <= 0 {
		cfg.ResultsLimit = 1
	}

	return &Client{
		httpClient:   httpClient,
		token:        cfg.Token,
		baseURL:      cfg.BaseURL,
		actor:        cfg.Actor,
		resultsLimit: cfg.ResultsLimit,
	}
}

// ScrapePost runs the actor synchronously against a single post URL and
// returns the first scraped item that carries a video
func (c *Client) ScrapePost(ctx context.Context, postURL string) (*Post, error) {
	if c.token == "" {
		return nil, ErrMissingToken
	}

	input := runInput{
		DirectURLs:   []string{postURL},
		ResultsLimit: c.resultsLimit,
	}
	payload, err := json.Marshal(input)
	if err != nil {
		return nil, fmt.Errorf("marshaling actor input: %w", err)
	}

	fullURL := fmt.Sprintf("%s/v2/acts/%s/run-sync-get-dataset-items?token=%s", c.baseURL, c.actor, c.token)

	// Inherit only the deadline; actor runs take tens of seconds and
	// must not be cut short by inbound request values
	cleanCtx := context.Background()
	if deadline, ok := ctx.Deadline(); ok {
		var cancel context.CancelFunc
		cleanCtx, cancel = context.WithDeadline(cleanCtx, deadline)
		defer cancel()
	}

	req, err := http.NewRequestWithContext(cleanCtx, "POST", fullURL, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

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

	// run-sync endpoints answer 201 on success
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		log.Printf("[ERROR] Apify returned status %d: %s", resp.StatusCode, string(body))
		if resp.StatusCode == http.StatusTooManyRequests {
			return nil, fmt.Errorf("got status %d: %w", resp.StatusCode, ErrRateLimited)
		}
		return nil, fmt.Errorf("got status %d: %w", resp.StatusCode, ErrBadStatus)
	}

	var items []scrapedItem
	if err := json.Unmarshal(body, &items); err != nil {
		return nil, fmt.Errorf("unmarshaling dataset items: %w", err)
	}

	if len(items) == 0 {
		return nil, ErrNoResults
	}

	item := items[0]
	log.Printf("[DEBUG] Scraped post %s by %s in %v", item.ShortCode, item.OwnerUsername, time.Since(start).Round(time.Millisecond))

	if item.VideoURL == "" {
		return nil, fmt.Errorf("post %q: %w", item.ShortCode, ErrNoVideo)
	}

	return &Post{
		VideoURL:      item.VideoURL,
		ShortCode:     item.ShortCode,
		OwnerUsername: item.OwnerUsername,
		Caption:       item.Caption,
	}, nil
}

package apify

// Post holds the fields we keep from a scraped Instagram post
type Post struct {
	VideoURL      string
	ShortCode     string
	OwnerUsername string
	Caption       string
}

// runInput is the actor input for a direct-URL scrape
type runInput struct {
	DirectURLs   []string `json:"directUrls"`
	ResultsLimit int      `json:"resultsLimit"`
}

// scrapedItem mirrors one dataset item returned by the scraper actor.
// Image posts come back without a videoUrl.
type scrapedItem struct {
	Type          string `json:"type"`
	ShortCode     string `json:"shortCode"`
	Caption       string `json:"caption"`
	VideoURL      string `json:"videoUrl"`
	OwnerUsername string `json:"ownerUsername"`
}

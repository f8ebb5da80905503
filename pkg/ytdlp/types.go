package ytdlp

import "time"

// Config holds configuration for the downloader
type Config struct {
	Path            string        // yt-dlp binary path or name
	StrategyTimeout time.Duration // wall clock budget per strategy
	TempDir         string        // where downloaded audio lands
	Proxy           string        // optional proxy URL
	POToken         string        // proof-of-origin token for the web client
	VisitorData     string        // visitor data paired with the PO token
	CookiesFile     string        // optional Netscape cookies file
}

// DownloadResult describes a finished audio download
type DownloadResult struct {
	Path     string // path of the audio file on disk
	Size     int64  // file size in bytes
	Strategy string // name of the strategy that succeeded
}

// strategy is one rung of the download ladder
type strategy struct {
	name string
	args []string
}

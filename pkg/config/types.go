package config

import "time"

// Config represents the complete application configuration
type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Cache     CacheConfig     `mapstructure:"cache"`
	Retry     RetryConfig     `mapstructure:"retry"`
	YouTube   YouTubeConfig   `mapstructure:"youtube"`
	Speech    SpeechConfig    `mapstructure:"speech"`
	Apify     ApifyConfig     `mapstructure:"apify"`
	Instagram InstagramConfig `mapstructure:"instagram"`
	Ytdlp     YtdlpConfig     `mapstructure:"ytdlp"`
	Storage   StorageConfig   `mapstructure:"storage"`
	Features  FeaturesConfig  `mapstructure:"features"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
	MaxHeaderBytes  int           `mapstructure:"max_header_bytes"`
}

// CacheConfig contains transcript cache settings
type CacheConfig struct {
	TTL time.Duration `mapstructure:"ttl"`
}

// RetryConfig contains retry policy settings for upstream fetches
type RetryConfig struct {
	MaxRetries   int           `mapstructure:"max_retries"`
	InitialDelay time.Duration `mapstructure:"initial_delay"`
	Multiplier   float64       `mapstructure:"multiplier"`
	MaxDelay     time.Duration `mapstructure:"max_delay"`
}

// YouTubeConfig contains caption scraping settings
type YouTubeConfig struct {
	BaseURL            string        `mapstructure:"base_url"`
	Timeout            time.Duration `mapstructure:"timeout"`
	UserAgent          string        `mapstructure:"user_agent"`
	PreferredLanguages []string      `mapstructure:"preferred_languages"`
}

// SpeechConfig contains Deepgram speech-to-text settings
type SpeechConfig struct {
	APIKey         string        `mapstructure:"api_key"`
	BaseURL        string        `mapstructure:"base_url"`
	Model          string        `mapstructure:"model"`
	Timeout        time.Duration `mapstructure:"timeout"`
	DetectLanguage bool          `mapstructure:"detect_language"`
	Language       string        `mapstructure:"language"`
}

// ApifyConfig contains Apify actor API settings
type ApifyConfig struct {
	Token        string        `mapstructure:"token"`
	BaseURL      string        `mapstructure:"base_url"`
	Actor        string        `mapstructure:"actor"`
	Timeout      time.Duration `mapstructure:"timeout"`
	ResultsLimit int           `mapstructure:"results_limit"`
}

// InstagramConfig contains settings for downloading Instagram video files
type InstagramConfig struct {
	UserAgent    string `mapstructure:"user_agent"`
	Referer      string `mapstructure:"referer"`
	MaxVideoSize int64  `mapstructure:"max_video_size"`
}

// YtdlpConfig contains settings for the yt-dlp audio download ladder
type YtdlpConfig struct {
	Path            string        `mapstructure:"path"`
	StrategyTimeout time.Duration `mapstructure:"strategy_timeout"`
	Proxy           string        `mapstructure:"proxy"`
	POToken         string        `mapstructure:"po_token"`
	VisitorData     string        `mapstructure:"visitor_data"`
	CookiesFile     string        `mapstructure:"cookies_file"`
}

// StorageConfig contains temp file settings
type StorageConfig struct {
	TempDir string `mapstructure:"temp_dir"`
}

// FeaturesConfig contains feature flags
type FeaturesConfig struct {
	EnableSpeechFallback bool `mapstructure:"enable_speech_fallback"`
	EnableInstagram      bool `mapstructure:"enable_instagram"`
}

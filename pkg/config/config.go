package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

var (
	once    sync.Once
	initErr error
)

// Init initializes the configuration system
// This should be called once at application startup
func Init() error {
	once.Do(func() {
		// Load a local .env file first so its values are visible to AutomaticEnv.
		// A missing file is not an error.
		_ = godotenv.Load()

		// Set default values
		setDefaults()

		// Set up environment variable reading for overrides
		viper.SetEnvPrefix("VOXTAPE")
		viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
		viper.AutomaticEnv()

		// Load config from fixed location (cleaned for safety)
		configPath := filepath.Clean("./config/settings.yaml")
		viper.SetConfigFile(configPath)

		// Try to read the config file
		if err := viper.ReadInConfig(); err != nil {
			// If the config file doesn't exist, just use defaults and env vars
			if !os.IsNotExist(err) {
				initErr = fmt.Errorf("error reading config file %s: %w", configPath, err)
				return
			}
		}

		// Validate the configuration
		if err := validate(); err != nil {
			initErr = fmt.Errorf("invalid configuration: %w", err)
		}
	})

	return initErr
}

// GetConfig returns the current configuration as a struct
// Init() must be called before using this
func GetConfig() (*Config, error) {
	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}
	return &config, nil
}

// Get returns a config value by key using Viper directly
func Get(key string) any {
	return viper.Get(key)
}

// GetString returns a string config value
func GetString(key string) string {
	return viper.GetString(key)
}

// GetInt returns an int config value
func GetInt(key string) int {
	return viper.GetInt(key)
}

// GetBool returns a bool config value
func GetBool(key string) bool {
	return viper.GetBool(key)
}

// GetDuration returns a time.Duration config value
func GetDuration(key string) time.Duration {
	return viper.GetDuration(key)
}

// GetStringSlice returns a string slice config value
func GetStringSlice(key string) []string {
	return viper.GetStringSlice(key)
}

// validate validates the configuration using Viper values
func validate() error {
	port := viper.GetInt("server.port")
	if port <= 0 || port > 65535 {
		return fmt.Errorf("invalid server port: %d", port)
	}

	if viper.GetDuration("cache.ttl") <= 0 {
		return fmt.Errorf("cache TTL must be positive: %s", viper.GetDuration("cache.ttl"))
	}

	// Validate API keys aren't using placeholder values
	if err := validateAPIKeys(); err != nil {
		return err
	}

	// Auto-correct out-of-range retry settings
	if viper.GetInt("retry.max_retries") < 0 {
		viper.Set("retry.max_retries", 3)
	}
	if viper.GetDuration("retry.initial_delay") <= 0 {
		viper.Set("retry.initial_delay", time.Second)
	}
	if viper.GetFloat64("retry.multiplier") < 1 {
		viper.Set("retry.multiplier", 2.0)
	}
	if viper.GetDuration("retry.max_delay") < viper.GetDuration("retry.initial_delay") {
		viper.Set("retry.max_delay", 10*time.Second)
	}

	return nil
}

// validateAPIKeys validates that API keys are not using placeholder values
func validateAPIKeys() error {
	// Check for production environment
	env := viper.GetString("environment")
	isProduction := env == "production" || env == "prod"

	// List of placeholder values that shouldn't be used
	placeholders := []string{
		"YOUR_KEY_HERE",
		"YOUR_API_KEY",
		"YOUR_TOKEN_HERE",
		"changeme",
		"CHANGEME",
	}

	speechKey := viper.GetString("speech.api_key")
	for _, placeholder := range placeholders {
		if speechKey == placeholder {
			if isProduction {
				return fmt.Errorf("invalid Deepgram API key: cannot use placeholder values in production")
			}
			fmt.Println("Warning: Deepgram API key is using a placeholder value")
			break
		}
	}

	apifyToken := viper.GetString("apify.token")
	for _, placeholder := range placeholders {
		if apifyToken == placeholder {
			if isProduction {
				return fmt.Errorf("invalid Apify token: cannot use placeholder values in production")
			}
			fmt.Println("Warning: Apify token is using a placeholder value")
			break
		}
	}

	return nil
}

// Validate validates a Config struct (for testing)
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}

	if c.Cache.TTL <= 0 {
		return fmt.Errorf("cache TTL must be positive: %s", c.Cache.TTL)
	}

	if c.Retry.MaxRetries < 0 {
		c.Retry.MaxRetries = 3
	}
	if c.Retry.InitialDelay <= 0 {
		c.Retry.InitialDelay = time.Second
	}
	if c.Retry.Multiplier < 1 {
		c.Retry.Multiplier = 2.0
	}
	if c.Retry.MaxDelay < c.Retry.InitialDelay {
		c.Retry.MaxDelay = 10 * time.Second
	}

	return nil
}

// setDefaults sets default configuration values
func setDefaults() {
	// Environment defaults
	viper.SetDefault("environment", "development")

	// Server defaults
	viper.SetDefault("server.host", "0.0.0.0")
	viper.SetDefault("server.port", 8080)
	viper.SetDefault("server.read_timeout", 30*time.Second)
	viper.SetDefault("server.write_timeout", 5*time.Minute)
	viper.SetDefault("server.shutdown_timeout", 10*time.Second)
	viper.SetDefault("server.max_header_bytes", 1048576)

	// Cache defaults
	viper.SetDefault("cache.ttl", 24*time.Hour)

	// Retry defaults
	viper.SetDefault("retry.max_retries", 3)
	viper.SetDefault("retry.initial_delay", 1*time.Second)
	viper.SetDefault("retry.multiplier", 2.0)
	viper.SetDefault("retry.max_delay", 10*time.Second)

	// YouTube caption scraping defaults
	viper.SetDefault("youtube.base_url", "https://www.youtube.com")
	viper.SetDefault("youtube.timeout", 30*time.Second)
	viper.SetDefault("youtube.user_agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36")
	viper.SetDefault("youtube.preferred_languages", []string{"en", "en-US", "en-GB"})

	// Deepgram defaults
	viper.SetDefault("speech.base_url", "https://api.deepgram.com")
	viper.SetDefault("speech.model", "nova-2")
	viper.SetDefault("speech.timeout", 2*time.Minute)
	viper.SetDefault("speech.detect_language", true)

	// Apify defaults
	viper.SetDefault("apify.base_url", "https://api.apify.com")
	viper.SetDefault("apify.actor", "apify~instagram-scraper")
	viper.SetDefault("apify.timeout", 90*time.Second)
	viper.SetDefault("apify.results_limit", 1)

	// Instagram download defaults
	viper.SetDefault("instagram.user_agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36")
	viper.SetDefault("instagram.referer", "https://www.instagram.com/")
	viper.SetDefault("instagram.max_video_size", int64(209715200))

	// yt-dlp defaults
	viper.SetDefault("ytdlp.path", "yt-dlp")
	viper.SetDefault("ytdlp.strategy_timeout", 2*time.Minute)
	viper.SetDefault("ytdlp.proxy", "")
	viper.SetDefault("ytdlp.po_token", "")
	viper.SetDefault("ytdlp.visitor_data", "")
	viper.SetDefault("ytdlp.cookies_file", "")

	// Storage defaults
	viper.SetDefault("storage.temp_dir", "./tmp")

	// Features defaults
	viper.SetDefault("features.enable_speech_fallback", true)
	viper.SetDefault("features.enable_instagram", true)
}

package ytdlp

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"time"
)

// YtDlp wraps the yt-dlp binary behind a ladder of player-client
// strategies. YouTube blocks clients unevenly, so a download that
// fails as one client often succeeds as another.
type YtDlp struct {
	path            string
	strategyTimeout time.Duration
	tempDir         string
	proxy           string
	poToken         string
	visitorData     string
	cookiesFile     string
}

// New creates a new downloader
func New(cfg Config) *YtDlp {
	if cfg.Path == "" {
		cfg.Path = "yt-dlp"
	}
	if cfg.StrategyTimeout <= 0 {
		cfg.StrategyTimeout = 2 * time.Minute
	}
	if cfg.TempDir == "" {
		cfg.TempDir = os.TempDir()
	}

	return &YtDlp{
		path:            cfg.Path,
		strategyTimeout: cfg.StrategyTimeout,
		tempDir:         cfg.TempDir,
		proxy:           cfg.Proxy,
		poToken:         cfg.POToken,
		visitorData:     cfg.VisitorData,
		cookiesFile:     cfg.CookiesFile,
	}
}

// ValidateBinary checks if yt-dlp is available
func (y *YtDlp) ValidateBinary() error {
	if _, err := exec.LookPath(y.path); err != nil {
		return fmt.Errorf("%w: %s", ErrBinaryNotFound, y.path)
	}
	return nil
}

// strategies builds the ladder in fixed order. Rungs whose
// prerequisites are not configured are left out.
func (y *YtDlp) strategies() []strategy {
	var ladder []strategy

	if y.poToken != "" && y.visitorData != "" {
		ladder = append(ladder, strategy{
			name: "PO Token + Visitor Data",
			args: []string{"--extractor-args",
				fmt.Sprintf("youtube:player_client=web;po_token=web+%s;visitor_data=%s", y.poToken, y.visitorData)},
		})
	}
	if y.cookiesFile != "" {
		ladder = append(ladder, strategy{
			name: "Cookies File",
			args: []string{"--cookies", y.cookiesFile},
		})
	}

	ladder = append(ladder,
		strategy{name: "iOS Client", args: []string{"--extractor-args", "youtube:player_client=ios"}},
		strategy{name: "TV Embedded", args: []string{"--extractor-args", "youtube:player_client=tv_embedded"}},
		strategy{name: "Mobile Web", args: []string{"--extractor-args", "youtube:player_client=mweb"}},
		strategy{name: "Android TestSuite", args: []string{"--extractor-args", "youtube:player_client=android_testsuite"}},
		strategy{name: "Web Client", args: []string{"--extractor-args", "youtube:player_client=web"}},
	)

	return ladder
}

// DownloadAudio walks the strategy ladder until one attempt yields an
// audio file. The returned cleanup removes the file and must be called
// once the audio has been consumed.
func (y *YtDlp) DownloadAudio(ctx context.Context, videoURL string) (*DownloadResult, func() error, error) {
	if err := y.ValidateBinary(); err != nil {
		return nil, nil, err
	}
	if err := os.MkdirAll(y.tempDir, 0o755); err != nil {
		return nil, nil, fmt.Errorf("creating temp dir: %w", err)
	}

	var lastErr error
	for _, s := range y.strategies() {
		log.Printf("[DEBUG] Trying download strategy %q for %s", s.name, videoURL)

		result, cleanup, err := y.tryStrategy(ctx, videoURL, s)
		if err == nil {
			log.Printf("[DEBUG] Strategy %q succeeded for %s (%d bytes)", s.name, videoURL, result.Size)
			return result, cleanup, nil
		}
		lastErr = err

		var stratErr *StrategyError
		if errors.As(err, &stratErr) {
			if stratErr.VideoGone() {
				return nil, nil, fmt.Errorf("strategy %q: %w", s.name, ErrVideoUnavailable)
			}
			if stratErr.BotDetected() {
				log.Printf("[DEBUG] Strategy %q hit a bot wall, advancing", s.name)
				continue
			}
		}
		log.Printf("[DEBUG] Strategy %q failed: %v", s.name, err)

		if ctx.Err() != nil {
			return nil, nil, ctx.Err()
		}
	}

	return nil, nil, fmt.Errorf("%w: %v", ErrAllStrategiesFailed, lastErr)
}

// tryStrategy runs one yt-dlp invocation under the per-strategy budget
func (y *YtDlp) tryStrategy(ctx context.Context, videoURL string, s strategy) (*DownloadResult, func() error, error) {
	runCtx, cancel := context.WithTimeout(ctx, y.strategyTimeout)
	defer cancel()

	// Literal extension is unknown up front; let yt-dlp fill it in
	// and glob for the result afterwards
	base := "audio_" + strconv.FormatInt(time.Now().UnixNano(), 10)
	template := filepath.Join(y.tempDir, base+".%(ext)s")

	args := []string{
		"-f", "bestaudio[ext=m4a]/bestaudio",
		"--no-playlist",
		"--quiet",
		"--no-warnings",
		"-o", template,
	}
	if y.proxy != "" {
		args = append(args, "--proxy", y.proxy)
	}
	args = append(args, s.args...)
	args = append(args, videoURL)

	cmd := exec.CommandContext(runCtx, y.path, args...)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		y.removeOutputs(base)
		return nil, nil, NewStrategyError(s.name, videoURL, err, stderr.String())
	}

	matches, err := filepath.Glob(filepath.Join(y.tempDir, base+".*"))
	if err != nil || len(matches) == 0 {
		return nil, nil, NewStrategyError(s.name, videoURL, ErrNoOutput, stderr.String())
	}

	outPath := matches[0]
	info, err := os.Stat(outPath)
	if err != nil {
		return nil, nil, NewStrategyError(s.name, videoURL, err, stderr.String())
	}

	cleanup := func() error {
		return os.Remove(outPath)
	}

	return &DownloadResult{
		Path:     outPath,
		Size:     info.Size(),
		Strategy: s.name,
	}, cleanup, nil
}

// removeOutputs drops partial files a failed attempt may have left
func (y *YtDlp) removeOutputs(base string) {
	matches, err := filepath.Glob(filepath.Join(y.tempDir, base+".*"))
	if err != nil {
		return
	}
	for _, m := range matches {
		if removeErr := os.Remove(m); removeErr != nil {
			log.Printf("Failed to cleanup partial download %s: %v", m, removeErr)
		}
	}
}

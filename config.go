package xlists

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// ClientConfig holds all configuration for the list client.
type ClientConfig struct {
	// Proxy is an optional proxy URL for API requests.
	Proxy string

	// UserAgent overrides the default browser User-Agent.
	UserAgent string

	// PageSize is the member count requested per ListMembers page.
	PageSize int

	// MaxPages bounds the pagination loop. The server is supposed to stop
	// returning cursors eventually; this guard keeps a misbehaving server
	// from spinning the loop forever.
	MaxPages int
}

// defaults fills in zero-value config fields.
func (cfg *ClientConfig) defaults() {
	if cfg.PageSize == 0 {
		cfg.PageSize = 20
	}
	if cfg.MaxPages == 0 {
		cfg.MaxPages = defaultMaxPages
	}
}

// defaultMaxPages bounds pagination when no explicit cap is configured.
const defaultMaxPages = 500

// FileConfig is the optional on-disk configuration for the CLI.
type FileConfig struct {
	CDPURL   string `yaml:"cdp_url"`
	Output   string `yaml:"output"`
	LogLevel string `yaml:"log_level"`
	Proxy    string `yaml:"proxy"`
	PageSize int    `yaml:"page_size"`
	MaxPages int    `yaml:"max_pages"`
}

func fileDefaults() FileConfig {
	return FileConfig{
		CDPURL:   "http://localhost:9222",
		Output:   "list_export.json",
		LogLevel: "info",
	}
}

// LoadFileConfig reads a yaml config file, falling back to defaults when the
// file does not exist.
func LoadFileConfig(path string) (FileConfig, error) {
	cfg := fileDefaults()
	b, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return cfg, fmt.Errorf("parse %s: %w", path, err)
	}
	if cfg.CDPURL == "" {
		cfg.CDPURL = fileDefaults().CDPURL
	}
	if cfg.Output == "" {
		cfg.Output = fileDefaults().Output
	}
	return cfg, nil
}

// NewLogger builds a slog text logger at the given level.
func NewLogger(level string) *slog.Logger {
	lvl := slog.LevelInfo
	switch strings.ToLower(level) {
	case "debug":
		lvl = slog.LevelDebug
	case "info":
		lvl = slog.LevelInfo
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	}
	h := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl})
	return slog.New(h)
}

// probeTimeout bounds every exchange with the local debugging endpoint.
// API fetches ride the HTTP client's own longer timeout.
const probeTimeout = 5 * time.Second

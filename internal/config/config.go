package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	toml "github.com/pelletier/go-toml/v2"
	"golang.org/x/text/language"
)

// Config holds everything roster reads from config.toml.
type Config struct {
	Endpoint       string
	Seed           string
	FetchSize      int
	PageSize       int
	TotalResults   int
	RequestTimeout time.Duration
	ActionDelay    time.Duration
	NoticeTTL      time.Duration
	Locale         language.Tag
	LogFile        string
	LogLevel       string
}

const (
	defaultConfigPath     = "~/.config/roster/config.toml"
	defaultEndpoint       = "https://randomuser.me/api/"
	defaultSeed           = "abc"
	defaultFetchSize      = 50
	defaultPageSize       = 10
	defaultTotalResults   = 1000
	defaultRequestTimeout = 10 * time.Second
	defaultActionDelay    = time.Second
	defaultNoticeTTL      = 3 * time.Second
	defaultLogFile        = "~/.local/state/roster/roster.log"
	defaultLogLevel       = "info"
)

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		Endpoint:       defaultEndpoint,
		Seed:           defaultSeed,
		FetchSize:      defaultFetchSize,
		PageSize:       defaultPageSize,
		TotalResults:   defaultTotalResults,
		RequestTimeout: defaultRequestTimeout,
		ActionDelay:    defaultActionDelay,
		NoticeTTL:      defaultNoticeTTL,
		Locale:         language.Und,
		LogFile:        mustExpand(defaultLogFile),
		LogLevel:       defaultLogLevel,
	}
}

// Load locates and parses the roster config, falling back to defaults when missing.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Default()

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var raw struct {
		Endpoint       string `toml:"endpoint"`
		Seed           string `toml:"seed"`
		FetchSize      int    `toml:"fetch_size"`
		PageSize       int    `toml:"page_size"`
		TotalResults   int    `toml:"total_results"`
		RequestTimeout string `toml:"request_timeout"`
		ActionDelay    string `toml:"action_delay"`
		NoticeTTL      string `toml:"notice_ttl"`
		Locale         string `toml:"locale"`
		LogFile        string `toml:"log_file"`
		LogLevel       string `toml:"log_level"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	if v := strings.TrimSpace(raw.Endpoint); v != "" {
		cfg.Endpoint = v
	}
	if v := strings.TrimSpace(raw.Seed); v != "" {
		cfg.Seed = v
	}
	if raw.FetchSize > 0 {
		cfg.FetchSize = raw.FetchSize
	}
	if raw.PageSize > 0 {
		cfg.PageSize = raw.PageSize
	}
	if raw.TotalResults > 0 {
		cfg.TotalResults = raw.TotalResults
	}
	if cfg.RequestTimeout, err = parseDuration("request_timeout", raw.RequestTimeout, cfg.RequestTimeout); err != nil {
		return Config{}, err
	}
	// A zero action delay is allowed; it makes the simulated actions instant.
	if cfg.ActionDelay, err = parseDuration("action_delay", raw.ActionDelay, cfg.ActionDelay); err != nil {
		return Config{}, err
	}
	if cfg.NoticeTTL, err = parseDuration("notice_ttl", raw.NoticeTTL, cfg.NoticeTTL); err != nil {
		return Config{}, err
	}
	if v := strings.TrimSpace(raw.Locale); v != "" {
		tag, err := language.Parse(v)
		if err != nil {
			return Config{}, fmt.Errorf("parse config: locale %q: %w", v, err)
		}
		cfg.Locale = tag
	}
	if v := strings.TrimSpace(raw.LogFile); v != "" {
		cfg.LogFile = mustExpand(v)
	}
	if v := strings.TrimSpace(raw.LogLevel); v != "" {
		cfg.LogLevel = strings.ToLower(v)
	}

	return cfg, nil
}

func parseDuration(field, value string, fallback time.Duration) (time.Duration, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("parse config: %s: %w", field, err)
	}
	if d < 0 {
		return 0, fmt.Errorf("parse config: %s must not be negative", field)
	}
	return d, nil
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func mustExpand(path string) string {
	expanded, err := expandPath(path)
	if err != nil {
		return path
	}
	return expanded
}

// ExpandPath resolves a leading tilde and returns an absolute path.
func ExpandPath(path string) (string, error) {
	return expandPath(path)
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}

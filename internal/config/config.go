// Package config loads client settings from defaults, a TOML file and the
// environment, in that order.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

const (
	appDir         = "todo"
	configFileName = "config.toml"
	logFileName    = "todo.log"

	DefaultAPIURL         = "http://localhost:3000"
	DefaultToken          = "ACE"
	DefaultSearchDelay    = 2 * time.Second
	DefaultRequestTimeout = 10 * time.Second
	DefaultTheme          = "classic"

	EnvAPIURL  = "TODO_API_URL"
	EnvToken   = "TODO_TOKEN"
	EnvLogFile = "TODO_LOG_FILE"
)

// Config holds everything the client needs to talk to the API.
type Config struct {
	// APIURL is the base URL every /todos path is resolved against.
	APIURL string `toml:"api_url"`

	// Token is sent as a bearer token when no stored credential exists.
	Token string `toml:"token"`

	// SearchDelay is the quiet period after typing before a search runs.
	SearchDelay time.Duration `toml:"search_delay"`

	// RequestTimeout bounds each HTTP request.
	RequestTimeout time.Duration `toml:"request_timeout"`

	// LogFile receives the client log; the TUI owns the terminal.
	LogFile string `toml:"log_file"`

	// Theme picks the palette: classic, neon or mono.
	Theme string `toml:"theme"`
}

// Default returns a Config with default values.
func Default() *Config {
	return &Config{
		APIURL:         DefaultAPIURL,
		Token:          DefaultToken,
		SearchDelay:    DefaultSearchDelay,
		RequestTimeout: DefaultRequestTimeout,
		LogFile:        defaultLogFile(),
		Theme:          DefaultTheme,
	}
}

// DefaultPath is the user config file location.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, appDir, configFileName)
}

func defaultLogFile() string {
	dir, err := os.UserCacheDir()
	if err != nil {
		dir = os.TempDir()
	}
	return filepath.Join(dir, appDir, logFileName)
}

// Load builds the config. An empty path means the default location, which
// may be absent; an explicit path must exist. Partial files merge with
// defaults, then environment variables override both.
func Load(path string) (*Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		path = DefaultPath()
	}
	if path != "" {
		err := loadFile(cfg, path)
		if err != nil && (explicit || !errors.Is(err, os.ErrNotExist)) {
			return nil, err
		}
	}

	loadFromEnv(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func loadFile(cfg *Config, path string) error {
	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return err
		}
		return fmt.Errorf("parse %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, k := range undecoded {
			keys = append(keys, k.String())
		}
		return fmt.Errorf("%s: unknown keys: %s", path, strings.Join(keys, ", "))
	}
	return nil
}

func loadFromEnv(cfg *Config) {
	if v := strings.TrimSpace(os.Getenv(EnvAPIURL)); v != "" {
		cfg.APIURL = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvToken)); v != "" {
		cfg.Token = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvLogFile)); v != "" {
		cfg.LogFile = v
	}
}

// Validate rejects values the client cannot work with.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.APIURL) == "" {
		return fmt.Errorf("api_url must not be empty")
	}
	if c.SearchDelay < 0 {
		return fmt.Errorf("search_delay must not be negative, got %s", c.SearchDelay)
	}
	if c.RequestTimeout < 0 {
		return fmt.Errorf("request_timeout must not be negative, got %s", c.RequestTimeout)
	}
	return nil
}

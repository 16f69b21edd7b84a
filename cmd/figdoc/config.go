package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/fwojciec/figdoc"
	"github.com/fwojciec/figdoc/fs"
	"gopkg.in/yaml.v3"
)

// Config is the persistent configuration stored in config.yaml.
type Config struct {
	Token      string           `yaml:"token,omitempty"`
	Extraction ExtractionConfig `yaml:"extraction"`
	HTTP       HTTPConfig       `yaml:"http"`
	Cache      CacheConfig      `yaml:"cache"`
}

// ExtractionConfig holds extraction defaults.
type ExtractionConfig struct {
	Depth       int    `yaml:"depth,omitempty"`
	Format      string `yaml:"format"`
	Concurrency int    `yaml:"concurrency"`
}

// HTTPConfig holds Figma API client settings.
type HTTPConfig struct {
	Timeout           time.Duration `yaml:"timeout"`
	MaxRetries        int           `yaml:"maxRetries"`
	RequestsPerSecond float64       `yaml:"requestsPerSecond"`
}

// CacheConfig holds payload cache settings.
type CacheConfig struct {
	Enabled bool          `yaml:"enabled"`
	TTL     time.Duration `yaml:"ttl"`
	Path    string        `yaml:"path,omitempty"`
}

// DefaultConfig returns the configuration used when no file exists.
func DefaultConfig() *Config {
	return &Config{
		Extraction: ExtractionConfig{
			Format:      "json",
			Concurrency: 4,
		},
		HTTP: HTTPConfig{
			Timeout:           30 * time.Second,
			MaxRetries:        3,
			RequestsPerSecond: 2,
		},
		Cache: CacheConfig{
			Enabled: true,
			TTL:     figdoc.DefaultCacheTTL,
		},
	}
}

// configKeys lists the keys accepted by "config get" and "config set".
var configKeys = []string{
	"token",
	"extraction.depth",
	"extraction.format",
	"extraction.concurrency",
	"http.timeout",
	"http.maxRetries",
	"http.requestsPerSecond",
	"cache.enabled",
	"cache.ttl",
	"cache.path",
}

// LoadConfig reads the config file at path. A missing file yields the
// defaults. Fields absent from the file keep their default values.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config %q: %w", path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, figdoc.Errorf(figdoc.EINVALID, "invalid config file %s: %v", path, err)
	}
	return cfg, nil
}

// SaveConfig writes cfg to path atomically, readable only by the owner
// since it may hold the access token.
func SaveConfig(path string, cfg *Config) error {
	return fs.WriteFile(path, 0600, func(w io.Writer) error {
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(cfg); err != nil {
			return err
		}
		return enc.Close()
	})
}

// Get returns the value of a dotted config key as text.
func (c *Config) Get(key string) (string, error) {
	switch key {
	case "token":
		return c.Token, nil
	case "extraction.depth":
		if c.Extraction.Depth == 0 {
			return "", nil
		}
		return strconv.Itoa(c.Extraction.Depth), nil
	case "extraction.format":
		return c.Extraction.Format, nil
	case "extraction.concurrency":
		return strconv.Itoa(c.Extraction.Concurrency), nil
	case "http.timeout":
		return c.HTTP.Timeout.String(), nil
	case "http.maxRetries":
		return strconv.Itoa(c.HTTP.MaxRetries), nil
	case "http.requestsPerSecond":
		return strconv.FormatFloat(c.HTTP.RequestsPerSecond, 'g', -1, 64), nil
	case "cache.enabled":
		return strconv.FormatBool(c.Cache.Enabled), nil
	case "cache.ttl":
		return c.Cache.TTL.String(), nil
	case "cache.path":
		return c.Cache.Path, nil
	}
	return "", unknownKeyError(key)
}

// Set parses value and assigns it to a dotted config key.
func (c *Config) Set(key, value string) error {
	var err error
	switch key {
	case "token":
		if err := figdoc.ValidateToken(value); err != nil {
			return err
		}
		c.Token = value
	case "extraction.depth":
		c.Extraction.Depth, err = parsePositiveInt(key, value, true)
	case "extraction.format":
		if _, ok := formatNames[value]; !ok {
			return figdoc.Errorf(figdoc.EINVALID, "invalid format '%s': expected one of json, text, markdown, summary", value)
		}
		c.Extraction.Format = value
	case "extraction.concurrency":
		c.Extraction.Concurrency, err = parsePositiveInt(key, value, false)
	case "http.timeout":
		c.HTTP.Timeout, err = parseDuration(key, value)
	case "http.maxRetries":
		var n int
		n, err = strconv.Atoi(value)
		if err != nil || n < 0 {
			return figdoc.Errorf(figdoc.EINVALID, "invalid value for %s: '%s'", key, value)
		}
		c.HTTP.MaxRetries = n
	case "http.requestsPerSecond":
		var f float64
		f, err = strconv.ParseFloat(value, 64)
		if err != nil || f < 0 {
			return figdoc.Errorf(figdoc.EINVALID, "invalid value for %s: '%s'", key, value)
		}
		c.HTTP.RequestsPerSecond = f
	case "cache.enabled":
		var b bool
		b, err = strconv.ParseBool(value)
		if err != nil {
			return figdoc.Errorf(figdoc.EINVALID, "invalid value for %s: '%s'", key, value)
		}
		c.Cache.Enabled = b
	case "cache.ttl":
		c.Cache.TTL, err = parseDuration(key, value)
	case "cache.path":
		c.Cache.Path = value
	default:
		return unknownKeyError(key)
	}
	return err
}

func parsePositiveInt(key, value string, allowZero bool) (int, error) {
	n, err := strconv.Atoi(value)
	if err != nil || n < 0 || (n == 0 && !allowZero) {
		return 0, figdoc.Errorf(figdoc.EINVALID, "invalid value for %s: '%s'", key, value)
	}
	return n, nil
}

func parseDuration(key, value string) (time.Duration, error) {
	d, err := time.ParseDuration(value)
	if err != nil || d <= 0 {
		return 0, figdoc.Errorf(figdoc.EINVALID, "invalid value for %s: '%s' (e.g. 30s, 1h)", key, value)
	}
	return d, nil
}

func unknownKeyError(key string) error {
	return figdoc.Errorf(figdoc.EINVALID, "unknown config key '%s'. Valid keys: %s", key, strings.Join(configKeys, ", "))
}

// defaultConfigPath returns FIGDOC_CONFIG or ~/.config/figdoc/config.yaml.
func defaultConfigPath() string {
	if path := os.Getenv("FIGDOC_CONFIG"); path != "" {
		return path
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return "figdoc.yaml"
	}
	return filepath.Join(dir, "figdoc", "config.yaml")
}

// defaultDBPath returns FIGDOC_DB or ~/.figdoc/cache.db.
func defaultDBPath() string {
	if path := os.Getenv("FIGDOC_DB"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "figdoc.db"
	}
	dir := filepath.Join(home, ".figdoc")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "cache.db")
}

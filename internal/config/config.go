// Package config loads the CLI configuration file.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v2"

	"github.com/gwillem/whatsapp-go/internal/store"
)

// DefaultServerURL is the relay `wa serve` listens on by default.
const DefaultServerURL = "ws://127.0.0.1:8080/ws"

// Config is the on-disk configuration. Zero fields take defaults.
type Config struct {
	ServerURL          string        `yaml:"server_url"`
	DBPath             string        `yaml:"db_path"`
	LogLevel           string        `yaml:"log_level"`
	DeviceCacheTTL     time.Duration `yaml:"device_cache_ttl"`
	EncryptConcurrency int           `yaml:"encrypt_concurrency"`
	QueryTimeout       time.Duration `yaml:"query_timeout"`
	PreKeyBatch        int           `yaml:"prekey_batch"`
}

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		ServerURL:          DefaultServerURL,
		DBPath:             filepath.Join(store.DefaultDataDir(), "default.db"),
		LogLevel:           "info",
		DeviceCacheTTL:     5 * time.Minute,
		EncryptConcurrency: 100,
		QueryTimeout:       20 * time.Second,
		PreKeyBatch:        30,
	}
}

// DefaultPath returns $XDG_DATA_HOME/whatsapp-go/config.yaml.
func DefaultPath() string {
	return filepath.Join(store.DefaultDataDir(), "config.yaml")
}

// Load reads path over the defaults. A missing file yields the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("config: read %s: %w", path, err)
	}
	var file Config
	if err := yaml.UnmarshalStrict(data, &file); err != nil {
		return cfg, fmt.Errorf("config: parse %s: %w", path, err)
	}
	cfg.merge(file)
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

func (c *Config) merge(o Config) {
	if o.ServerURL != "" {
		c.ServerURL = o.ServerURL
	}
	if o.DBPath != "" {
		c.DBPath = o.DBPath
	}
	if o.LogLevel != "" {
		c.LogLevel = o.LogLevel
	}
	if o.DeviceCacheTTL != 0 {
		c.DeviceCacheTTL = o.DeviceCacheTTL
	}
	if o.EncryptConcurrency != 0 {
		c.EncryptConcurrency = o.EncryptConcurrency
	}
	if o.QueryTimeout != 0 {
		c.QueryTimeout = o.QueryTimeout
	}
	if o.PreKeyBatch != 0 {
		c.PreKeyBatch = o.PreKeyBatch
	}
}

// Validate rejects values no component accepts.
func (c Config) Validate() error {
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return err
	}
	switch {
	case c.DeviceCacheTTL < 0:
		return fmt.Errorf("device_cache_ttl must not be negative")
	case c.QueryTimeout < 0:
		return fmt.Errorf("query_timeout must not be negative")
	case c.EncryptConcurrency < 0:
		return fmt.Errorf("encrypt_concurrency must not be negative")
	case c.PreKeyBatch < 0 || c.PreKeyBatch > 812:
		return fmt.Errorf("prekey_batch must be between 0 and 812")
	}
	return nil
}

// Save writes c to path, creating its directory.
func (c Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("config: encode: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("config: create dir: %w", err)
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("config: write %s: %w", path, err)
	}
	return nil
}

// Logger returns a text logger writing to w at the configured level.
func (c Config) Logger(w io.Writer) *logrus.Logger {
	l := logrus.New()
	l.SetOutput(w)
	if lvl, err := logrus.ParseLevel(c.LogLevel); err == nil {
		l.SetLevel(lvl)
	}
	return l
}

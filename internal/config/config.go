// Package config loads the publisher settings.
//
// Sources are applied in order, later ones winning: built-in defaults, an
// optional YAML file, a .env file, then CONTENTPUB_* environment variables.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/aretw0/contentpub/pkg/presentation"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"
)

// EnvPrefix prefixes every environment override.
const EnvPrefix = "contentpub"

// Config is the full publisher configuration.
type Config struct {
	PublishingAPI PublishingAPIConfig  `yaml:"publishing_api" envconfig:"PUBLISHING_API"`
	Pages         presentation.Options `yaml:"pages" envconfig:"PAGES"`
	Redis         RedisConfig          `yaml:"redis" envconfig:"REDIS"`
	Stub          StubConfig           `yaml:"stub" envconfig:"STUB"`

	FlowsDir string        `yaml:"flows_dir" envconfig:"FLOWS_DIR"`
	LogLevel string        `yaml:"log_level" envconfig:"LOG_LEVEL"`
	DryRun   bool          `yaml:"dry_run" envconfig:"DRY_RUN"`
	LockTTL  time.Duration `yaml:"lock_ttl" envconfig:"LOCK_TTL"`
}

// PublishingAPIConfig locates the remote content store.
type PublishingAPIConfig struct {
	URL         string        `yaml:"url" envconfig:"URL"`
	BearerToken string        `yaml:"bearer_token" envconfig:"BEARER_TOKEN"`
	Timeout     time.Duration `yaml:"timeout" envconfig:"TIMEOUT"`
}

// RedisConfig enables the distributed flow lock when URL is set.
type RedisConfig struct {
	URL    string `yaml:"url" envconfig:"URL"`
	Prefix string `yaml:"prefix" envconfig:"PREFIX"`
}

// StubConfig configures the local stub store server.
type StubConfig struct {
	Addr string `yaml:"addr" envconfig:"ADDR"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		PublishingAPI: PublishingAPIConfig{
			URL:     "http://localhost:3093",
			Timeout: 10 * time.Second,
		},
		Pages:    presentation.DefaultOptions(),
		Redis:    RedisConfig{Prefix: "contentpub:"},
		Stub:     StubConfig{Addr: ":3093"},
		FlowsDir: "flows",
		LogLevel: "info",
		LockTTL:  30 * time.Second,
	}
}

// Load builds the configuration from path (optional) and the environment.
// dotenv lists .env files to read; with none, ./.env is tried. Missing .env
// files are ignored, a missing config file named explicitly is not.
func Load(path string, dotenv ...string) (*Config, error) {
	cfg := Default()

	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config %s: %w", path, err)
		}
		if err := yaml.Unmarshal(raw, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
		}
	}

	if err := godotenv.Load(dotenv...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	if err := envconfig.Process(EnvPrefix, cfg); err != nil {
		return nil, fmt.Errorf("failed to read environment: %w", err)
	}

	cfg.Pages = cfg.Pages.WithDefaults()
	return cfg, nil
}

// Validate checks settings needed to talk to a real store.
func (c *Config) Validate() error {
	if !c.DryRun && c.PublishingAPI.URL == "" {
		return fmt.Errorf("publishing_api.url is required unless dry_run is set")
	}
	return nil
}

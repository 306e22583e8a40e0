package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/GustavoCaso/budget/internal/logger"
)

type Config struct {
	Store    string        `toml:"store"    yaml:"store"`
	Currency string        `toml:"currency" yaml:"currency"`
	Logger   logger.Config `toml:"logger"   yaml:"logger"`
}

const (
	defaultStore     = "budget.txt"
	defaultCurrency  = "€"
	defaultLogLevel  = logger.LevelInfo
	defaultLogFormat = logger.FormatText
	defaultLogOutput = "stderr"
)

var ErrUnsupportedFormat = errors.New("unsupported configuration format")

// Parse reads the configuration file at path, when present, and applies the
// BUDGET_* environment overrides and defaults on top of it.
func Parse(path string) (*Config, error) {
	conf := &Config{}

	content, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err = decode(path, content, conf); err != nil {
			return nil, err
		}
	case errors.Is(err, fs.ErrNotExist):
	default:
		return nil, err
	}

	conf.parseEnv()

	return conf, nil
}

func decode(path string, content []byte, conf *Config) error {
	switch filepath.Ext(path) {
	case ".toml":
		if err := toml.Unmarshal(content, conf); err != nil {
			return fmt.Errorf("invalid TOML in %s: %w", path, err)
		}
	case ".yml", ".yaml":
		if err := yaml.Unmarshal(content, conf); err != nil {
			return fmt.Errorf("invalid YAML in %s: %w", path, err)
		}
	default:
		return fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}

	return nil
}

func (c *Config) parseEnv() {
	c.Store = envOr("BUDGET_STORE", c.Store, defaultStore)
	c.Currency = envOr("BUDGET_CURRENCY", c.Currency, defaultCurrency)
	c.Logger.Level = logger.Level(envOr("BUDGET_LOG_LEVEL", string(c.Logger.Level), string(defaultLogLevel)))
	c.Logger.Format = logger.Format(envOr("BUDGET_LOG_FORMAT", string(c.Logger.Format), string(defaultLogFormat)))
	c.Logger.Output = envOr("BUDGET_LOG_OUTPUT", c.Logger.Output, defaultLogOutput)
}

func envOr(key, current, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	if current != "" {
		return current
	}
	return fallback
}

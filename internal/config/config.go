// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Realmwright Contributors

// Package config loads server configuration from defaults, an optional YAML
// file, and command-line flags, in that order of precedence.
package config

import (
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/samber/oops"
	"github.com/spf13/pflag"
)

// Config holds the server configuration.
type Config struct {
	// HTTPAddr is the web server listen address.
	HTTPAddr string `koanf:"http_addr"`

	// MetricsAddr is the metrics/health listen address. Empty disables it.
	MetricsAddr string `koanf:"metrics_addr"`

	// DatabaseURL is the PostgreSQL connection string. Taken from the
	// DATABASE_URL environment variable when not set elsewhere.
	DatabaseURL string `koanf:"database_url"`

	// LogFormat is "json" or "text".
	LogFormat string `koanf:"log_format"`

	// CookieSecure controls the Secure attribute on session cookies.
	CookieSecure bool `koanf:"cookie_secure"`
}

// Defaults for the server configuration.
const (
	DefaultHTTPAddr    = "127.0.0.1:8080"
	DefaultMetricsAddr = "127.0.0.1:9100"
	DefaultLogFormat   = "json"
)

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	if c.HTTPAddr == "" {
		return oops.Code("CONFIG_INVALID").Errorf("http_addr is required")
	}
	if c.DatabaseURL == "" {
		return oops.Code("CONFIG_INVALID").Errorf("database_url is required (set DATABASE_URL)")
	}
	if c.LogFormat != "json" && c.LogFormat != "text" {
		return oops.Code("CONFIG_INVALID").Errorf("log_format must be 'json' or 'text', got %q", c.LogFormat)
	}
	return nil
}

// Load builds the configuration. Precedence, lowest to highest: built-in
// defaults, the YAML file at path (skipped when path is empty), the
// DATABASE_URL environment variable, then the given flag set.
func Load(path string, flags *pflag.FlagSet) (*Config, error) {
	k := koanf.New(".")

	defaults := map[string]any{
		"http_addr":     DefaultHTTPAddr,
		"metrics_addr":  DefaultMetricsAddr,
		"log_format":    DefaultLogFormat,
		"cookie_secure": false,
	}
	for key, value := range defaults {
		if err := k.Set(key, value); err != nil {
			return nil, oops.Code("CONFIG_LOAD_FAILED").With("key", key).Wrap(err)
		}
	}

	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, oops.Code("CONFIG_LOAD_FAILED").With("path", path).Wrap(err)
		}
	}

	if url := os.Getenv("DATABASE_URL"); url != "" {
		if err := k.Set("database_url", url); err != nil {
			return nil, oops.Code("CONFIG_LOAD_FAILED").With("key", "database_url").Wrap(err)
		}
	}

	if flags != nil {
		// Flags are spelled with hyphens; config keys use underscores.
		provider := posflag.ProviderWithValue(flags, ".", k, func(key, value string) (string, any) {
			return strings.ReplaceAll(key, "-", "_"), value
		})
		if err := k.Load(provider, nil); err != nil {
			return nil, oops.Code("CONFIG_LOAD_FAILED").With("operation", "load flags").Wrap(err)
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, oops.Code("CONFIG_LOAD_FAILED").With("operation", "unmarshal").Wrap(err)
	}
	return &cfg, nil
}

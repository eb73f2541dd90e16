// Package config provides the site configuration store. It discovers
// YAML configuration files in a site's base directory, merges caller
// overrides, and exposes typed key access.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/opoopress/opoopress/internal/defs"
)

// Config is an immutable view of a site's configuration.
type Config struct {
	values map[string]any
	files  []string
}

// Load reads the site configuration from basedir. Missing files are
// not an error: the returned Config simply reports zero discovered
// files. The override map, when non-nil, takes precedence over every
// file value.
func Load(basedir string, override map[string]any) (*Config, error) {
	cfg := &Config{values: make(map[string]any)}

	path := filepath.Join(basedir, defs.ConfigYAML)
	data, err := os.ReadFile(path)
	switch {
	case os.IsNotExist(err):
		slog.Debug("no site config file", "path", path)
	case err != nil:
		return nil, fmt.Errorf("read %s: %w", defs.ConfigYAML, err)
	default:
		if err := yaml.Unmarshal(data, &cfg.values); err != nil {
			return nil, fmt.Errorf("parse %s: %w", defs.ConfigYAML, ErrInvalidYAML)
		}
		if cfg.values == nil {
			cfg.values = make(map[string]any)
		}
		cfg.files = append(cfg.files, path)
	}

	for k, v := range override {
		cfg.values[k] = v
	}

	return cfg, nil
}

// Files returns the configuration files the store was loaded from.
// An uninitialized site yields an empty list.
func (c *Config) Files() []string {
	return c.files
}

// Get returns the raw value for key, or nil when absent.
func (c *Config) Get(key string) any {
	return c.values[key]
}

// GetString returns the value for key as a string. Non-string scalars
// are formatted; absent keys and nested values yield "".
func (c *Config) GetString(key string) string {
	v, ok := c.values[key]
	if !ok || v == nil {
		return ""
	}
	switch s := v.(type) {
	case string:
		return s
	case map[string]any, []any:
		return ""
	default:
		return fmt.Sprintf("%v", s)
	}
}

// GetStringSlice returns the value for key as a list of strings.
// Absent keys and non-list values yield nil.
func (c *Config) GetStringSlice(key string) []string {
	switch v := c.values[key].(type) {
	case []string:
		return v
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			if s, ok := item.(string); ok {
				out = append(out, s)
			} else {
				out = append(out, fmt.Sprintf("%v", item))
			}
		}
		return out
	default:
		return nil
	}
}

// Author: Kaviru Hapuarachchi
// GitHub: https://github.com/Kavirubc
// Created: 2026-02-02
// Last Modified: 2026-10-14

// Package config handles loading and merging migration configuration.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/similigh/jira-migrator/internal/core/rules"
	"github.com/similigh/jira-migrator/internal/migration"
	"github.com/similigh/jira-migrator/internal/ratelimit"
)

// Config is the root configuration structure.
type Config struct {
	// Extends names a parent config file whose settings this one overrides.
	// Relative paths are resolved against the directory of this file.
	Extends string `yaml:"extends,omitempty" toml:"extends,omitempty"`

	// Preset is a built-in rule table (e.g. "spr", "redis", "none").
	Preset string `yaml:"preset,omitempty" toml:"preset,omitempty"`

	// Rules are added on top of the preset.
	Rules rules.Table `yaml:"rules,omitempty" toml:"rules,omitempty"`

	// GitHub configures the destination repository.
	GitHub GitHubConfig `yaml:"github" toml:"github"`

	// RateLimit paces GitHub API calls.
	RateLimit RateLimitConfig `yaml:"rate_limit" toml:"rate_limit"`

	// Migration configures import post-processing.
	Migration MigrationConfig `yaml:"migration" toml:"migration"`

	// Log configures logging.
	Log LogConfig `yaml:"log" toml:"log"`
}

// GitHubConfig holds GitHub connection settings.
type GitHubConfig struct {
	Owner string `yaml:"owner" toml:"owner"`
	Repo  string `yaml:"repo" toml:"repo"`
	Token string `yaml:"token,omitempty" toml:"token,omitempty"`

	// APIURL overrides the REST endpoint, e.g. for GitHub Enterprise.
	APIURL string `yaml:"api_url,omitempty" toml:"api_url,omitempty"`
}

// RateLimitConfig holds the request pacing settings.
type RateLimitConfig struct {
	// Interval is the minimum time between requests, e.g. "350ms".
	Interval    string `yaml:"interval" toml:"interval"`
	ReportEvery int    `yaml:"report_every" toml:"report_every"`
}

// MigrationConfig holds import post-processing settings.
type MigrationConfig struct {
	SkipVersions []string           `yaml:"skip_versions,omitempty" toml:"skip_versions,omitempty"`
	DropAssignee DropAssigneeConfig `yaml:"drop_assignee" toml:"drop_assignee"`
}

// DropAssigneeConfig selects issues whose assignee is not migrated.
type DropAssigneeConfig struct {
	VersionContains string   `yaml:"version_contains,omitempty" toml:"version_contains,omitempty"`
	Labels          []string `yaml:"labels,omitempty" toml:"labels,omitempty"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level string `yaml:"level" toml:"level"`
}

// Load reads a config file from the given path and expands environment variables.
// Files ending in .toml are parsed as TOML, everything else as YAML.
func Load(path string) (*Config, error) {
	cfg, err := loadRaw(path)
	if err != nil {
		return nil, err
	}

	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadWithInheritance loads a config and resolves its 'extends' chain.
// The fetcher function retrieves parent configs; nil reads local files.
func LoadWithInheritance(path string, fetcher func(ref string) ([]byte, error)) (*Config, error) {
	if fetcher == nil {
		fetcher = os.ReadFile
	}

	cfg, err := loadRaw(path)
	if err != nil {
		return nil, err
	}

	seen := map[string]bool{path: true}
	dir := filepath.Dir(path)
	for cfg.Extends != "" {
		ref := cfg.Extends
		if !filepath.IsAbs(ref) {
			ref = filepath.Join(dir, ref)
		}
		if seen[ref] {
			return nil, fmt.Errorf("config inheritance cycle at '%s'", ref)
		}
		seen[ref] = true

		parentData, err := fetcher(ref)
		if err != nil {
			return nil, fmt.Errorf("failed to fetch parent config '%s': %w", ref, err)
		}
		parent, err := parseRaw(parentData, formatOf(ref))
		if err != nil {
			return nil, fmt.Errorf("failed to parse parent config '%s': %w", ref, err)
		}

		// Merge: child overrides parent, then continue with the parent's parent.
		merged := mergeConfigs(parent, cfg)
		merged.Extends = parent.Extends
		cfg = merged
		dir = filepath.Dir(ref)
	}

	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func loadRaw(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	return parseRaw(data, formatOf(path))
}

func formatOf(path string) string {
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		return "toml"
	}
	return "yaml"
}

// parseRaw parses config data without applying defaults.
func parseRaw(data []byte, format string) (*Config, error) {
	// Expand environment variables in the content
	expanded := []byte(os.ExpandEnv(string(data)))

	var cfg Config
	switch format {
	case "toml":
		if err := toml.Unmarshal(expanded, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	default:
		if err := yaml.Unmarshal(expanded, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}
	return &cfg, nil
}

// Default returns the configuration used when no config file is found.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// FindConfigPath searches for a config file in standard locations.
func FindConfigPath(explicit string) string {
	if explicit != "" {
		if _, err := os.Stat(explicit); err == nil {
			return explicit
		}
		return ""
	}

	// Search in common locations
	candidates := []string{
		".github/jira-migrator.yaml",
		".github/jira-migrator.yml",
		".jira-migrator.yaml",
		".jira-migrator.yml",
		".jira-migrator.toml",
	}

	for _, c := range candidates {
		if _, err := os.Stat(c); err == nil {
			abs, _ := filepath.Abs(c)
			return abs
		}
	}

	return ""
}

// applyDefaults sets default values for unset fields.
func (c *Config) applyDefaults() {
	if c.Preset == "" {
		c.Preset = rules.DefaultPreset
	}
	if c.RateLimit.Interval == "" {
		c.RateLimit.Interval = ratelimit.DefaultInterval.String()
	}
	if c.RateLimit.ReportEvery == 0 {
		c.RateLimit.ReportEvery = ratelimit.DefaultReportEvery
	}
	if c.Migration.SkipVersions == nil {
		c.Migration.SkipVersions = migration.DefaultSkipVersions
	}
	if c.Migration.DropAssignee.VersionContains == "" && c.Migration.DropAssignee.Labels == nil {
		d := migration.DefaultAssigneeDropper()
		c.Migration.DropAssignee = DropAssigneeConfig{VersionContains: d.VersionContains, Labels: d.Labels}
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.GitHub.Token == "" {
		c.GitHub.Token = os.Getenv("GITHUB_TOKEN")
	}
}

// Validate checks settings that would otherwise fail later.
func (c *Config) Validate() error {
	if _, err := c.Interval(); err != nil {
		return err
	}
	table, err := c.Table()
	if err != nil {
		return err
	}
	if _, err := rules.Build(table); err != nil {
		return fmt.Errorf("invalid rules: %w", err)
	}
	return nil
}

// Interval returns the parsed rate limit interval.
func (c *Config) Interval() (time.Duration, error) {
	d, err := time.ParseDuration(c.RateLimit.Interval)
	if err != nil {
		return 0, fmt.Errorf("invalid rate_limit.interval %q: %w", c.RateLimit.Interval, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("invalid rate_limit.interval %q: must be positive", c.RateLimit.Interval)
	}
	return d, nil
}

// Table returns the preset rules extended with the configured rules.
func (c *Config) Table() (rules.Table, error) {
	preset, err := rules.Preset(c.Preset)
	if err != nil {
		return rules.Table{}, err
	}
	table := rules.Merge(preset, c.Rules)
	if err := table.Validate(); err != nil {
		return rules.Table{}, fmt.Errorf("invalid rules: %w", err)
	}
	return table, nil
}

// LogLevel returns the configured log level.
func (c *Config) LogLevel() slog.Level {
	return ParseLevel(c.Log.Level)
}

// ParseLevel parses a log level string into slog.Level.
func ParseLevel(levelStr string) slog.Level {
	switch strings.ToLower(levelStr) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// mergeConfigs merges a child config onto a parent config.
// Non-zero values in child override parent; rules are layered.
func mergeConfigs(parent, child *Config) *Config {
	result := *parent

	if child.Preset != "" {
		result.Preset = child.Preset
	}
	result.Rules = rules.Merge(parent.Rules, child.Rules)

	// GitHub: override if any field is set
	if child.GitHub.Owner != "" {
		result.GitHub.Owner = child.GitHub.Owner
	}
	if child.GitHub.Repo != "" {
		result.GitHub.Repo = child.GitHub.Repo
	}
	if child.GitHub.Token != "" {
		result.GitHub.Token = child.GitHub.Token
	}
	if child.GitHub.APIURL != "" {
		result.GitHub.APIURL = child.GitHub.APIURL
	}

	if child.RateLimit.Interval != "" {
		result.RateLimit.Interval = child.RateLimit.Interval
	}
	if child.RateLimit.ReportEvery != 0 {
		result.RateLimit.ReportEvery = child.RateLimit.ReportEvery
	}

	// Lists: child completely overrides if set
	if child.Migration.SkipVersions != nil {
		result.Migration.SkipVersions = child.Migration.SkipVersions
	}
	if child.Migration.DropAssignee.VersionContains != "" {
		result.Migration.DropAssignee.VersionContains = child.Migration.DropAssignee.VersionContains
	}
	if child.Migration.DropAssignee.Labels != nil {
		result.Migration.DropAssignee.Labels = child.Migration.DropAssignee.Labels
	}

	if child.Log.Level != "" {
		result.Log.Level = child.Log.Level
	}

	return &result
}

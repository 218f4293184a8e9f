// Author: Kaviru Hapuarachchi
// GitHub: https://github.com/Kavirubc
// Created: 2026-10-14
// Last Modified: 2026-10-14

// Package commands implements the jira-migrator CLI commands.
package commands

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/similigh/jira-migrator/internal/core/config"
	"github.com/similigh/jira-migrator/internal/core/labels"
	"github.com/similigh/jira-migrator/internal/core/rules"
	"github.com/similigh/jira-migrator/internal/migration"
)

var (
	cfgFile  string
	verbose  bool
	logLevel string

	// cfg is loaded before every command runs.
	cfg *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "jira-migrator",
	Short: "Map Jira issues to GitHub labels",
	Long: `jira-migrator resolves the GitHub labels of Jira issues being migrated.

Label rules come from a built-in preset (see 'jira-migrator presets') extended
by the rules in the config file. Use 'labels' to list every label the rules can
produce, 'provision' to create them on GitHub, and 'resolve' to compute the
labels of an exported set of issues.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Path to config file (default: search .github/jira-migrator.yaml, .jira-migrator.yaml, .jira-migrator.toml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level: debug, info, warn, error (overrides config)")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func setup(cmd *cobra.Command, _ []string) error {
	loaded, path, err := loadConfig(cfgFile)
	if err != nil {
		return err
	}
	cfg = loaded

	level := cfg.LogLevel()
	if logLevel != "" {
		level = config.ParseLevel(logLevel)
	}
	if verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(newLogger(cmd.ErrOrStderr(), level))

	if path != "" {
		slog.Debug("loaded config", "path", path, "preset", cfg.Preset)
	} else {
		slog.Debug("no config file found, using defaults", "preset", cfg.Preset)
	}
	return nil
}

// loadConfig finds and loads the config file. An explicit path that does not
// exist is an error; no config file at all yields the defaults.
func loadConfig(explicit string) (*config.Config, string, error) {
	path := config.FindConfigPath(explicit)
	if path == "" {
		if explicit != "" {
			return nil, "", fmt.Errorf("config file not found: %s", explicit)
		}
		return config.Default(), "", nil
	}

	loaded, err := config.LoadWithInheritance(path, nil)
	if err != nil {
		return nil, "", fmt.Errorf("failed to load config from %s: %w", path, err)
	}
	return loaded, path, nil
}

func newLogger(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// buildEngine builds the label resolver from the configured rules.
func buildEngine(c *config.Config) (*labels.CompositeHandler, error) {
	table, err := c.Table()
	if err != nil {
		return nil, err
	}
	handler, err := rules.Build(table)
	if err != nil {
		return nil, fmt.Errorf("failed to build label rules: %w", err)
	}
	return handler, nil
}

// newConverter wires the resolver and the configured import processors.
func newConverter(c *config.Config, handler labels.Handler) *migration.Converter {
	dropper := &migration.AssigneeDropper{
		VersionContains: c.Migration.DropAssignee.VersionContains,
		Labels:          c.Migration.DropAssignee.Labels,
	}
	return migration.NewConverter(
		handler,
		migration.NewMilestoneFilter(c.Migration.SkipVersions),
		migration.CompositeProcessor{dropper},
	)
}

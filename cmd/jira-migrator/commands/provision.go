// Author: Kaviru Hapuarachchi
// GitHub: https://github.com/Kavirubc
// Created: 2026-10-14
// Last Modified: 2026-10-14

package commands

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/similigh/jira-migrator/internal/integrations/github"
	"github.com/similigh/jira-migrator/internal/ratelimit"
)

var (
	provisionOwner  string
	provisionRepo   string
	provisionDryRun bool
)

var provisionCmd = &cobra.Command{
	Use:   "provision",
	Short: "Create the configured labels in a GitHub repository",
	Long: `Create every label the configured rules can produce in the target GitHub
repository, skipping labels that already exist. API calls are paced by the
configured rate limit.

Usage:
  jira-migrator provision --owner spring-projects --repo spring-data-redis [--dry-run]`,
	Args: cobra.NoArgs,
	RunE: runProvision,
}

func init() {
	rootCmd.AddCommand(provisionCmd)

	provisionCmd.Flags().StringVar(&provisionOwner, "owner", "", "Repository owner (default: github.owner from config)")
	provisionCmd.Flags().StringVar(&provisionRepo, "repo", "", "Repository name (default: github.repo from config)")
	provisionCmd.Flags().BoolVar(&provisionDryRun, "dry-run", false, "Report missing labels without creating them")
}

func runProvision(cmd *cobra.Command, _ []string) error {
	owner, repo := provisionOwner, provisionRepo
	if owner == "" {
		owner = cfg.GitHub.Owner
	}
	if repo == "" {
		repo = cfg.GitHub.Repo
	}
	if owner == "" || repo == "" {
		return fmt.Errorf("--owner and --repo are required (or set github.owner and github.repo in config)")
	}
	if cfg.GitHub.Token == "" && !provisionDryRun {
		return fmt.Errorf("GITHUB_TOKEN is required to create labels (set via environment or config file)")
	}

	handler, err := buildEngine(cfg)
	if err != nil {
		return err
	}
	interval, err := cfg.Interval()
	if err != nil {
		return err
	}

	limiter := ratelimit.New(interval,
		ratelimit.WithReportEvery(cfg.RateLimit.ReportEvery),
		ratelimit.WithLogger(slog.Default()),
	)
	ctx := cmd.Context()
	client := github.NewClient(ctx, cfg.GitHub.Token, limiter)
	if cfg.GitHub.APIURL != "" {
		if err := client.SetBaseURL(cfg.GitHub.APIURL); err != nil {
			return err
		}
	}

	slog.Info("provisioning labels", "repo", owner+"/"+repo, "dry_run", provisionDryRun)
	result, err := client.EnsureLabels(ctx, owner, repo, handler.AllLabels(), provisionDryRun)
	if result != nil {
		printProvisionResult(cmd.OutOrStdout(), result, provisionDryRun)
	}
	if err != nil {
		return fmt.Errorf("failed to provision labels in %s/%s: %w", owner, repo, err)
	}
	return nil
}

func printProvisionResult(w io.Writer, result *github.EnsureResult, dryRun bool) {
	green := color.New(color.FgGreen).SprintFunc()
	gray := color.New(color.FgHiBlack).SprintFunc()
	yellow := color.New(color.FgYellow).SprintFunc()

	verb := "created"
	if dryRun {
		verb = "would create"
	}
	for _, name := range result.Created {
		fmt.Fprintf(w, "%s %s\n", green("+"), name)
	}
	for _, name := range result.Existing {
		fmt.Fprintf(w, "%s %s\n", gray("="), gray(name))
	}
	fmt.Fprintf(w, "\n%s: %d %s, %d existing\n", yellow("labels"), len(result.Created), verb, len(result.Existing))
}

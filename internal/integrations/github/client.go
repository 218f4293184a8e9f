// Author: Kaviru Hapuarachchi
// GitHub: https://github.com/Kavirubc
// Created: 2026-02-02
// Last Modified: 2026-10-14

package github

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/go-github/v60/github"

	"github.com/similigh/jira-migrator/internal/core/labels"
	"github.com/similigh/jira-migrator/internal/ratelimit"
)

// Client wraps the GitHub API client.
type Client struct {
	client  *github.Client
	limiter *ratelimit.Limiter
	logger  *slog.Logger
}

// ListLabels returns all labels defined in a repository.
func (c *Client) ListLabels(ctx context.Context, org, repo string) ([]labels.Label, error) {
	opts := &github.ListOptions{PerPage: 100}
	var out []labels.Label
	for {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, err
		}
		page, resp, err := c.client.Issues.ListLabels(ctx, org, repo, opts)
		if err != nil {
			return nil, fmt.Errorf("failed to list labels: %w", err)
		}
		for _, l := range page {
			out = append(out, labels.Label{Name: l.GetName(), Color: l.GetColor()})
		}
		if resp == nil || resp.NextPage == 0 {
			return out, nil
		}
		opts.Page = resp.NextPage
	}
}

// CreateLabel creates a label in a repository.
func (c *Client) CreateLabel(ctx context.Context, org, repo string, label labels.Label) error {
	if strings.TrimSpace(label.Name) == "" {
		return fmt.Errorf("label name cannot be empty")
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return err
	}
	_, _, err := c.client.Issues.CreateLabel(ctx, org, repo, &github.Label{
		Name:  github.String(label.Name),
		Color: github.String(label.Color),
	})
	if err != nil {
		return fmt.Errorf("failed to create label %q: %w", label.Name, err)
	}
	return nil
}

// EnsureResult reports what EnsureLabels found and did.
type EnsureResult struct {
	Existing []string
	Created  []string
}

// EnsureLabels creates every label that does not exist in the repository yet.
// Label names are compared case-insensitively, as GitHub does. With dryRun
// set, missing labels are reported as created without calling the API.
func (c *Client) EnsureLabels(ctx context.Context, org, repo string, wanted []labels.Label, dryRun bool) (*EnsureResult, error) {
	existing, err := c.ListLabels(ctx, org, repo)
	if err != nil {
		return nil, err
	}
	have := make(map[string]bool, len(existing))
	for _, l := range existing {
		have[strings.ToLower(l.Name)] = true
	}

	result := &EnsureResult{}
	for _, l := range wanted {
		if have[strings.ToLower(l.Name)] {
			result.Existing = append(result.Existing, l.Name)
			continue
		}
		if !dryRun {
			if err := c.CreateLabel(ctx, org, repo, l); err != nil {
				return result, err
			}
			c.logger.Info("created label", "repo", org+"/"+repo, "label", l.Name, "color", l.Color)
		}
		have[strings.ToLower(l.Name)] = true
		result.Created = append(result.Created, l.Name)
	}
	return result, nil
}

// Author: Kaviru Hapuarachchi
// GitHub: https://github.com/Kavirubc
// Created: 2026-02-02
// Last Modified: 2026-10-14

package github

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/google/go-github/v60/github"
	"golang.org/x/oauth2"

	"github.com/similigh/jira-migrator/internal/ratelimit"
)

// NewClient creates a new GitHub client using the provided token.
// If token is empty, it returns an unauthenticated client. Every API call
// waits for a permit from limiter; a nil limiter uses the default interval.
func NewClient(ctx context.Context, token string, limiter *ratelimit.Limiter) *Client {
	var tc *http.Client

	if token != "" {
		ts := oauth2.StaticTokenSource(
			&oauth2.Token{AccessToken: token},
		)
		tc = oauth2.NewClient(ctx, ts)
	}

	return newClient(github.NewClient(tc), limiter)
}

func newClient(gh *github.Client, limiter *ratelimit.Limiter) *Client {
	if limiter == nil {
		limiter = ratelimit.New(ratelimit.DefaultInterval)
	}
	return &Client{
		client:  gh,
		limiter: limiter,
		logger:  slog.Default().With("component", "github"),
	}
}

// SetBaseURL points the client at another API endpoint, such as a GitHub
// Enterprise server ("https://github.example.com/api/v3").
func (c *Client) SetBaseURL(rawURL string) error {
	if !strings.HasSuffix(rawURL, "/") {
		rawURL += "/"
	}
	u, err := url.Parse(rawURL)
	if err != nil {
		return fmt.Errorf("invalid GitHub API URL %q: %w", rawURL, err)
	}
	if u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("invalid GitHub API URL %q: scheme and host are required", rawURL)
	}
	c.client.BaseURL = u
	return nil
}

// Package github fetches a user's public repositories for profile
// enrichment. The core consumes the RepoFetcher interface; the HTTP client
// lives here so nothing else depends on a specific transport.
package github

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"devlink/internal/models"
)

// Repository is the subset of repository fields returned to clients.
type Repository struct {
	Name            string `json:"name"`
	HTMLURL         string `json:"html_url"`
	Description     string `json:"description"`
	StargazersCount int    `json:"stargazers_count"`
	WatchersCount   int    `json:"watchers_count"`
	ForksCount      int    `json:"forks_count"`
}

// RepoFetcher fetches the most recent public repositories for a username.
type RepoFetcher interface {
	FetchRepositories(ctx context.Context, username string) ([]Repository, error)
}

// Client fetches repositories from the GitHub REST API.
type Client struct {
	httpClient *http.Client
	baseURL    string
	token      string
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL overrides the API base URL. Used by tests.
func WithBaseURL(u string) Option {
	return func(c *Client) { c.baseURL = u }
}

// WithToken attaches a bearer token to outbound requests, raising the API
// rate limit for authenticated callers.
func WithToken(token string) Option {
	return func(c *Client) { c.token = token }
}

// NewClient returns a GitHub API client.
func NewClient(opts ...Option) *Client {
	c := &Client{
		httpClient: &http.Client{Timeout: 10 * time.Second},
		baseURL:    "https://api.github.com",
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// FetchRepositories returns the user's five oldest-created public
// repositories. Any upstream non-200 response surfaces as an upstream
// failure so callers respond 404 "No GitHub profile found".
func (c *Client) FetchRepositories(ctx context.Context, username string) ([]Repository, error) {
	url := fmt.Sprintf("%s/users/%s/repos?per_page=5&sort=created:asc", c.baseURL, username)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	req.Header.Set("Accept", "application/vnd.github+json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, models.NewUpstreamError("No GitHub profile found", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, models.NewUpstreamError("No GitHub profile found",
			fmt.Errorf("github responded %d", resp.StatusCode))
	}

	var repos []Repository
	if err := json.NewDecoder(resp.Body).Decode(&repos); err != nil {
		return nil, models.NewUpstreamError("No GitHub profile found", err)
	}
	return repos, nil
}

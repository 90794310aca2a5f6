package provider

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// GitHubClient implements ports.CommitActivityChecker against the GitHub REST API.
type GitHubClient struct {
	base
}

func NewGitHubClient(apiURL string, opts ...Option) *GitHubClient {
	if apiURL == "" {
		apiURL = "https://api.github.com"
	}
	return &GitHubClient{base: newBase(apiURL, opts)}
}

type githubEvent struct {
	Type      string    `json:"type"`
	CreatedAt time.Time `json:"created_at"`
}

// HasCommitsSince checks repo commits when repo is set ("name" or "owner/name"),
// otherwise the user's public PushEvents.
func (c *GitHubClient) HasCommitsSince(ctx context.Context, username, repo, token string, since time.Time) (bool, error) {
	if repo != "" {
		return c.repoCommitsSince(ctx, username, repo, token, since)
	}

	var events []githubEvent
	u := fmt.Sprintf("%s/users/%s/events?per_page=100", c.baseURL, url.PathEscape(username))
	if err := c.getJSON(ctx, "github", u, githubHeader(token), &events); err != nil {
		return false, err
	}
	for _, e := range events {
		if e.Type == "PushEvent" && !e.CreatedAt.Before(since) {
			return true, nil
		}
	}
	return false, nil
}

func (c *GitHubClient) repoCommitsSince(ctx context.Context, username, repo, token string, since time.Time) (bool, error) {
	full := repo
	if !strings.Contains(repo, "/") {
		full = username + "/" + repo
	}
	q := url.Values{}
	q.Set("since", since.UTC().Format(time.RFC3339))
	q.Set("per_page", "1")
	u := fmt.Sprintf("%s/repos/%s/commits?%s", c.baseURL, full, q.Encode())

	var commits []struct {
		SHA string `json:"sha"`
	}
	if err := c.getJSON(ctx, "github", u, githubHeader(token), &commits); err != nil {
		var se *StatusError
		// 409 is GitHub's answer for a repository with no commits at all.
		if errors.As(err, &se) && se.Status == http.StatusConflict {
			return false, nil
		}
		return false, err
	}
	return len(commits) > 0, nil
}

func githubHeader(token string) http.Header {
	h := http.Header{}
	h.Set("Accept", "application/vnd.github+json")
	h.Set("X-GitHub-Api-Version", "2022-11-28")
	if token != "" {
		h.Set("Authorization", "Bearer "+token)
	}
	return h
}

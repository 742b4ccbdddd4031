// Package gateway provides access to GitHub, both through the REST API
// and by reading public profile pages.
package gateway

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"sort"
	"strings"
	"time"

	"github.com/gofri/go-github-ratelimit/github_ratelimit"
	"github.com/google/go-github/v62/github"
	"golang.org/x/oauth2"

	"github.com/mtlprog/profilecheck/internal/domain"
)

// reposPerPage is the GitHub maximum page size for repository listings.
const reposPerPage = 100

// RepoFetcher summarizes the public repositories of a GitHub user.
type RepoFetcher interface {
	FetchRepoSummary(ctx context.Context, username string) (*domain.RepoSummary, error)
}

// GitHubGateway is the REST implementation of RepoFetcher.
type GitHubGateway struct {
	restClient *github.Client
}

// NewGitHubGateway creates a gateway talking to apiURL, or api.github.com when
// apiURL is empty. An empty token makes unauthenticated requests.
func NewGitHubGateway(token, apiURL string) (*GitHubGateway, error) {
	rateLimitWaiter, err := github_ratelimit.NewRateLimitWaiter(nil, github_ratelimit.WithSingleSleepLimit(time.Minute, nil))
	if err != nil {
		return nil, fmt.Errorf("failed to create rate limit waiter: %w", err)
	}

	var transport http.RoundTripper = rateLimitWaiter
	if token != "" {
		transport = &oauth2.Transport{
			Base:   rateLimitWaiter,
			Source: oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token}),
		}
	}

	client := github.NewClient(&http.Client{Transport: transport, Timeout: 20 * time.Second})
	if apiURL != "" {
		if !strings.HasSuffix(apiURL, "/") {
			apiURL += "/"
		}
		baseURL, err := url.Parse(apiURL)
		if err != nil {
			return nil, fmt.Errorf("parse github api url: %w", err)
		}
		client.BaseURL = baseURL
	}

	return &GitHubGateway{restClient: client}, nil
}

// FetchRepoSummary lists every repository owned by username and collects
// the distinct lower-cased languages along with source and fork counts.
func (g *GitHubGateway) FetchRepoSummary(ctx context.Context, username string) (*domain.RepoSummary, error) {
	opts := &github.RepositoryListByUserOptions{
		ListOptions: github.ListOptions{PerPage: reposPerPage},
	}

	languages := make(map[string]struct{})
	summary := &domain.RepoSummary{}
	for {
		repos, resp, err := g.restClient.Repositories.ListByUser(ctx, username, opts)
		if err != nil {
			var errResp *github.ErrorResponse
			if errors.As(err, &errResp) && errResp.Response != nil && errResp.Response.StatusCode == http.StatusNotFound {
				return nil, fmt.Errorf("%w: %s", domain.ErrGitHubUserNotFound, username)
			}
			return nil, fmt.Errorf("%w: list repositories: %v", domain.ErrGitHubUnavailable, err)
		}

		for _, repo := range repos {
			summary.RepoCount++
			if repo.GetFork() {
				summary.ForkCount++
			} else {
				summary.SourceCount++
			}
			if lang := repo.GetLanguage(); lang != "" {
				languages[strings.ToLower(lang)] = struct{}{}
			}
		}

		if resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
		slog.Debug("fetching next page of repositories", "username", username, "page", resp.NextPage)
	}

	summary.Languages = make([]string, 0, len(languages))
	for lang := range languages {
		summary.Languages = append(summary.Languages, lang)
	}
	sort.Strings(summary.Languages)

	return summary, nil
}

// ParseUsername extracts the GitHub username from a profile URL such as
// https://github.com/octocat or from a bare username.
func ParseUsername(profile string) (string, error) {
	trimmed := strings.TrimSpace(profile)
	if u, err := url.Parse(trimmed); err == nil && u.Host != "" {
		trimmed = u.Path
	}

	segments := strings.Split(strings.Trim(trimmed, "/"), "/")
	username := segments[len(segments)-1]
	if username == "" || strings.ContainsAny(username, " ?#") {
		return "", fmt.Errorf("%w: %q", domain.ErrInvalidGitHubProfile, profile)
	}
	return username, nil
}

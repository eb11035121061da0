package github

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	gh "github.com/google/go-github/v58/github"

	"reposearch/internal/domain"
)

// DataSource searches repositories by query text.
type DataSource interface {
	// SearchRepositories returns one page of repositories matching query.
	SearchRepositories(ctx context.Context, query string, page, perPage int) (*domain.SearchResponse, error)
}

// Options configures a Client.
type Options struct {
	BaseURL   string // empty uses https://api.github.com/
	Token     string // optional; unauthenticated requests get a low rate limit
	Timeout   time.Duration
	UserAgent string
}

// Client is a DataSource backed by the GitHub REST API.
type Client struct {
	client *gh.Client
}

// NewClient returns a ready-to-use search client.
func NewClient(opts Options) (*Client, error) {
	httpClient := &http.Client{Timeout: opts.Timeout}

	c := gh.NewClient(httpClient)
	if opts.Token != "" {
		c = c.WithAuthToken(opts.Token)
	}

	if opts.BaseURL != "" {
		u, err := url.Parse(opts.BaseURL)
		if err != nil {
			return nil, fmt.Errorf("failed to parse api url: %w", err)
		}
		if !strings.HasSuffix(u.Path, "/") {
			u.Path += "/"
		}
		c.BaseURL = u
	}

	if opts.UserAgent != "" {
		c.UserAgent = opts.UserAgent
	}

	return &Client{client: c}, nil
}

// SearchRepositories implements DataSource.
func (c *Client) SearchRepositories(ctx context.Context, query string, page, perPage int) (*domain.SearchResponse, error) {
	opts := &gh.SearchOptions{
		ListOptions: gh.ListOptions{
			Page:    page,
			PerPage: perPage,
		},
	}

	result, _, err := c.client.Search.Repositories(ctx, query, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to search repositories: %w", err)
	}

	resp := &domain.SearchResponse{
		TotalCount: result.GetTotal(),
		Items:      make([]domain.Repo, 0, len(result.Repositories)),
	}
	for _, r := range result.Repositories {
		resp.Items = append(resp.Items, toRepo(r))
	}

	return resp, nil
}

func toRepo(r *gh.Repository) domain.Repo {
	return domain.Repo{
		ID:          r.GetID(),
		FullName:    r.GetFullName(),
		Description: r.GetDescription(),
		Stars:       r.GetStargazersCount(),
		Forks:       r.GetForksCount(),
		URL:         r.GetHTMLURL(),
	}
}

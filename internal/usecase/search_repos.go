package usecase

import (
	"context"
	"fmt"
	"strings"

	"reposearch/internal/domain"
	apperrors "reposearch/internal/errors"
	"reposearch/internal/github"
)

// SearchParams selects one page of search results.
type SearchParams struct {
	Query   string
	Page    int
	PerPage int
}

// SearchResult is the unwrapped search response.
type SearchResult struct {
	Repos      []domain.Repo
	TotalCount int
}

// SearchRepos searches GitHub repositories.
type SearchRepos struct {
	*UseCase[SearchParams, SearchResult]
}

// NewSearchRepos creates the search use case. Zero Page and PerPage in
// params are replaced by defaultPage and defaultPerPage.
func NewSearchRepos(source github.DataSource, executor Executor, defaultPage, defaultPerPage int) *SearchRepos {
	fn := func(ctx context.Context, p SearchParams) (SearchResult, error) {
		query := strings.TrimSpace(p.Query)
		if query == "" {
			return SearchResult{}, apperrors.ErrEmptyQuery
		}
		if p.Page <= 0 {
			p.Page = defaultPage
		}
		if p.PerPage <= 0 {
			p.PerPage = defaultPerPage
		}

		resp, err := source.SearchRepositories(ctx, query, p.Page, p.PerPage)
		if err != nil {
			return SearchResult{}, fmt.Errorf("%w: %w", apperrors.ErrSearchFailed, err)
		}

		return SearchResult{Repos: resp.Items, TotalCount: resp.TotalCount}, nil
	}

	return &SearchRepos{UseCase: New("SearchRepos", executor, fn)}
}

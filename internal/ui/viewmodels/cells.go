package viewmodels

import (
	"slices"

	"reposearch/internal/config"
	"reposearch/internal/domain"
	"reposearch/internal/resource"
	"reposearch/internal/usecase"
)

// TextUiModel is the content of the search box.
type TextUiModel struct {
	Text string
}

// AlertKind classifies the status line.
type AlertKind int

const (
	AlertNone AlertKind = iota
	AlertLoading
	AlertError
)

// AlertText is the status line shown above the results.
type AlertText struct {
	Kind    AlertKind
	Message string
}

// ButtonKind selects the search button's role.
type ButtonKind int

const (
	ButtonSearch ButtonKind = iota
	ButtonRetry
)

// ButtonLabel is the search button's caption.
type ButtonLabel struct {
	Kind ButtonKind
	Text string
}

// SearchState is the latest search invocation as seen by the coordinator.
// Result is nil before the first search.
type SearchState struct {
	Generation uint64
	Query      string
	Result     resource.Resource[usecase.SearchResult]
}

func listOf(r resource.Resource[usecase.SearchResult]) []domain.Repo {
	return resource.Fold(r,
		func() []domain.Repo { return []domain.Repo{} },
		func(s usecase.SearchResult) []domain.Repo {
			if s.Repos == nil {
				return []domain.Repo{}
			}
			return s.Repos
		},
		func(error) []domain.Repo { return []domain.Repo{} },
	)
}

func alertOf(r resource.Resource[usecase.SearchResult], labels config.Labels) AlertText {
	return resource.Fold(r,
		func() AlertText { return AlertText{Kind: AlertLoading, Message: labels.Loading} },
		func(usecase.SearchResult) AlertText { return AlertText{Kind: AlertNone} },
		func(error) AlertText { return AlertText{Kind: AlertError, Message: labels.Error} },
	)
}

func buttonOf(r resource.Resource[usecase.SearchResult], labels config.Labels) ButtonLabel {
	return resource.Fold(r,
		func() ButtonLabel { return searchButton(labels) },
		func(usecase.SearchResult) ButtonLabel { return searchButton(labels) },
		func(error) ButtonLabel { return ButtonLabel{Kind: ButtonRetry, Text: labels.Retry} },
	)
}

func searchButton(labels config.Labels) ButtonLabel {
	return ButtonLabel{Kind: ButtonSearch, Text: labels.Search}
}

func reposEqual(a, b []domain.Repo) bool {
	return slices.Equal(a, b)
}

package domain

// Repo represents a GitHub repository returned by a search
type Repo struct {
	ID          int64
	FullName    string
	Description string // empty when the repository has no description
	Stars       int
	Forks       int
	URL         string // html url of the repository page
}

// HasDescription reports whether the repository carries a description
func (r Repo) HasDescription() bool {
	return r.Description != ""
}

// SearchResponse is one page of repository search results
type SearchResponse struct {
	TotalCount int
	Items      []Repo
}

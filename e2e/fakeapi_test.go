//go:build e2e && unix

package e2e

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
)

type fakeRepo struct {
	ID          int64  `json:"id"`
	FullName    string `json:"full_name"`
	Description string `json:"description,omitempty"`
	Stars       int    `json:"stargazers_count"`
	Forks       int    `json:"forks_count"`
	URL         string `json:"html_url"`
}

// fakeAPI answers /search/repositories from canned pages. Queries listed
// in failing get a 500.
type fakeAPI struct {
	mu      sync.Mutex
	pages   map[string][]fakeRepo
	failing map[string]bool
	queries []string
}

func newFakeAPI(t *testing.T) (*fakeAPI, string) {
	t.Helper()

	api := &fakeAPI{
		pages: map[string][]fakeRepo{
			"rust": {
				{ID: 1, FullName: "rust-lang/rust", Description: "Empowering everyone to build reliable software", Stars: 90000, Forks: 12000, URL: "https://github.com/rust-lang/rust"},
				{ID: 2, FullName: "rust-lang/book", Stars: 14000, Forks: 3000, URL: "https://github.com/rust-lang/book"},
			},
		},
		failing: map[string]bool{"boom": true},
	}

	server := httptest.NewServer(http.HandlerFunc(api.handle))
	t.Cleanup(server.Close)
	return api, server.URL
}

func (a *fakeAPI) handle(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/search/repositories" {
		http.NotFound(w, r)
		return
	}

	q := r.URL.Query().Get("q")

	a.mu.Lock()
	a.queries = append(a.queries, q)
	items := a.pages[q]
	fail := a.failing[q]
	a.mu.Unlock()

	if fail {
		http.Error(w, `{"message": "internal error"}`, http.StatusInternalServerError)
		return
	}
	if items == nil {
		items = []fakeRepo{}
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]any{
		"total_count":        len(items),
		"incomplete_results": false,
		"items":              items,
	})
}

// heal makes a failing query succeed with the given page
func (a *fakeAPI) heal(query string, items []fakeRepo) {
	a.mu.Lock()
	defer a.mu.Unlock()
	delete(a.failing, query)
	a.pages[query] = items
}

func (a *fakeAPI) count(query string) int {
	a.mu.Lock()
	defer a.mu.Unlock()
	n := 0
	for _, q := range a.queries {
		if q == query {
			n++
		}
	}
	return n
}

package github

import (
	"context"
	"fmt"
	"sync"

	"reposearch/internal/domain"
)

// SearchCall records one call made to a MockDataSource.
type SearchCall struct {
	Query   string
	Page    int
	PerPage int
}

// MockDataSource is a DataSource for tests.
type MockDataSource struct {
	mu sync.Mutex

	// Responses by query. Queries without an entry return an empty page.
	Responses map[string]*domain.SearchResponse

	// Errors by query, checked before Responses.
	Errors map[string]error

	// Gates by query. A call blocks until its gate is closed.
	Gates map[string]chan struct{}

	// IgnoreCancel keeps a gated call blocked after its context is
	// cancelled, simulating a result that arrives late.
	IgnoreCancel bool

	calls []SearchCall
}

// NewMockDataSource creates an empty mock.
func NewMockDataSource() *MockDataSource {
	return &MockDataSource{
		Responses: make(map[string]*domain.SearchResponse),
		Errors:    make(map[string]error),
		Gates:     make(map[string]chan struct{}),
	}
}

// SearchRepositories implements DataSource.
func (m *MockDataSource) SearchRepositories(ctx context.Context, query string, page, perPage int) (*domain.SearchResponse, error) {
	m.mu.Lock()
	m.calls = append(m.calls, SearchCall{Query: query, Page: page, PerPage: perPage})
	gate := m.Gates[query]
	ignoreCancel := m.IgnoreCancel
	m.mu.Unlock()

	if gate != nil {
		if ignoreCancel {
			<-gate
		} else {
			select {
			case <-gate:
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		}
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if err, ok := m.Errors[query]; ok {
		return nil, fmt.Errorf("search %q: %w", query, err)
	}
	if resp, ok := m.Responses[query]; ok {
		return resp, nil
	}
	return &domain.SearchResponse{}, nil
}

// Calls returns a copy of the recorded calls.
func (m *MockDataSource) Calls() []SearchCall {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]SearchCall, len(m.calls))
	copy(out, m.calls)
	return out
}

// SetResponse sets the response returned for query.
func (m *MockDataSource) SetResponse(query string, resp *domain.SearchResponse) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Responses[query] = resp
}

// SetError makes calls for query fail with err. A nil err clears it.
func (m *MockDataSource) SetError(query string, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err == nil {
		delete(m.Errors, query)
		return
	}
	m.Errors[query] = err
}

package state

import (
	"reposearch/internal/domain"
)

// AppState holds the TUI's copy of the view-model cells plus local
// presentation state.
type AppState struct {
	// Mirrors of the view-model cells
	SearchText  string
	Repos       []domain.Repo
	AlertText   string // empty when there is nothing to report
	AlertError  bool   // alert reports a failure
	Loading     bool
	ButtonLabel string
	ButtonRetry bool // button re-runs a failed search

	// Selection state
	SelectedIndex int // index into Repos

	// UI state
	ViewportOffset int // first visible row
	ViewportHeight int // rows available for the result list
	StatusMessage  string
}

// NewAppState creates a new application state
func NewAppState() *AppState {
	return &AppState{
		Repos:          make([]domain.Repo, 0),
		ViewportHeight: 10, // Default
	}
}

// SetRepos replaces the result list, keeping the selection in range.
func (s *AppState) SetRepos(repos []domain.Repo) {
	s.Repos = repos
	if len(repos) == 0 {
		s.SelectedIndex = 0
		s.ViewportOffset = 0
		return
	}
	if s.SelectedIndex >= len(repos) {
		s.SelectedIndex = len(repos) - 1
	}
	s.EnsureVisible()
}

// SelectedRepo returns the repository under the cursor.
func (s *AppState) SelectedRepo() (domain.Repo, bool) {
	if s.SelectedIndex < 0 || s.SelectedIndex >= len(s.Repos) {
		return domain.Repo{}, false
	}
	return s.Repos[s.SelectedIndex], true
}

// MoveSelection moves the cursor by delta rows, clamped to the list.
func (s *AppState) MoveSelection(delta int) {
	if len(s.Repos) == 0 {
		return
	}
	s.SelectedIndex += delta
	if s.SelectedIndex < 0 {
		s.SelectedIndex = 0
	}
	if s.SelectedIndex >= len(s.Repos) {
		s.SelectedIndex = len(s.Repos) - 1
	}
	s.EnsureVisible()
}

// SelectFirst moves the cursor to the first row.
func (s *AppState) SelectFirst() {
	s.SelectedIndex = 0
	s.EnsureVisible()
}

// SelectLast moves the cursor to the last row.
func (s *AppState) SelectLast() {
	if len(s.Repos) > 0 {
		s.SelectedIndex = len(s.Repos) - 1
	}
	s.EnsureVisible()
}

// EnsureVisible scrolls the viewport so the cursor row is shown.
func (s *AppState) EnsureVisible() {
	height := s.ViewportHeight
	if height < 1 {
		height = 1
	}
	if s.SelectedIndex < s.ViewportOffset {
		s.ViewportOffset = s.SelectedIndex
	}
	if s.SelectedIndex >= s.ViewportOffset+height {
		s.ViewportOffset = s.SelectedIndex - height + 1
	}
	if s.ViewportOffset < 0 {
		s.ViewportOffset = 0
	}
}

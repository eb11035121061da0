package state

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"reposearch/internal/domain"
)

func repos(n int) []domain.Repo {
	out := make([]domain.Repo, n)
	for i := range out {
		out[i] = domain.Repo{ID: int64(i + 1)}
	}
	return out
}

func TestAppState_SetReposClampsSelection(t *testing.T) {
	s := NewAppState()
	s.SetRepos(repos(5))
	s.SelectLast()
	assert.Equal(t, 4, s.SelectedIndex)

	s.SetRepos(repos(2))
	assert.Equal(t, 1, s.SelectedIndex)

	s.SetRepos(nil)
	assert.Equal(t, 0, s.SelectedIndex)
	_, ok := s.SelectedRepo()
	assert.False(t, ok)
}

func TestAppState_MoveSelectionScrolls(t *testing.T) {
	s := NewAppState()
	s.ViewportHeight = 3
	s.SetRepos(repos(10))

	s.MoveSelection(4)
	assert.Equal(t, 4, s.SelectedIndex)
	assert.Equal(t, 2, s.ViewportOffset)

	s.MoveSelection(-10)
	assert.Equal(t, 0, s.SelectedIndex)
	assert.Equal(t, 0, s.ViewportOffset)

	s.MoveSelection(100)
	assert.Equal(t, 9, s.SelectedIndex)
	assert.Equal(t, 7, s.ViewportOffset)

	repo, ok := s.SelectedRepo()
	assert.True(t, ok)
	assert.Equal(t, int64(10), repo.ID)
}

func TestAppState_MoveSelectionEmpty(t *testing.T) {
	s := NewAppState()
	s.MoveSelection(1)
	assert.Equal(t, 0, s.SelectedIndex)
}

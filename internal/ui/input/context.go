package input

import (
	"reposearch/internal/ui/state"
)

// ModelContext implements the Context interface for the input handler
type ModelContext struct {
	State *state.AppState
}

// CurrentIndex returns the current selected index
func (c *ModelContext) CurrentIndex() int {
	return c.State.SelectedIndex
}

// TotalItems returns the number of result rows
func (c *ModelContext) TotalItems() int {
	return len(c.State.Repos)
}

// CanRetry reports whether the last search failed
func (c *ModelContext) CanRetry() bool {
	return c.State.AlertError
}

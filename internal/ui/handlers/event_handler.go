package handlers

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"reposearch/internal/eventbus"
	"reposearch/internal/ui/state"
	"reposearch/internal/ui/viewmodels"
)

// TextSetter receives search text restored from the view model
type TextSetter interface {
	SetText(text string)
}

// EventHandler applies view-model cell updates and domain events to the
// TUI state
type EventHandler struct {
	state *state.AppState
	input TextSetter
}

// NewEventHandler creates a new event handler
func NewEventHandler(appState *state.AppState, input TextSetter) *EventHandler {
	return &EventHandler{
		state: appState,
		input: input,
	}
}

// HandleCellUpdate applies a cell message. It reports whether msg was one.
func (h *EventHandler) HandleCellUpdate(msg tea.Msg) bool {
	switch m := msg.(type) {
	case TextMsg:
		h.state.SearchText = m.Text
		// The box decides whether the value is a stale echo
		if h.input != nil {
			h.input.SetText(m.Text)
		}

	case ListMsg:
		h.state.SetRepos(m)

	case AlertMsg:
		h.state.AlertText = m.Message
		h.state.AlertError = m.Kind == viewmodels.AlertError
		h.state.Loading = m.Kind == viewmodels.AlertLoading

	case ButtonMsg:
		h.state.ButtonLabel = m.Text
		h.state.ButtonRetry = m.Kind == viewmodels.ButtonRetry

	default:
		return false
	}
	return true
}

// HandleEvent processes domain events and returns any necessary commands
func (h *EventHandler) HandleEvent(event eventbus.DomainEvent) tea.Cmd {
	switch e := event.(type) {
	case eventbus.SearchSucceededEvent:
		h.state.StatusMessage = fmt.Sprintf("%d repositories for %q", e.Count, e.Query)

	case eventbus.SearchFailedEvent:
		h.state.StatusMessage = ""

	case eventbus.DetailOpenedEvent:
		h.state.StatusMessage = fmt.Sprintf("Opened %s", e.URL)

	case eventbus.ConfigSavedEvent:
		h.state.StatusMessage = fmt.Sprintf("Config saved to %s", e.Path)
	}

	return nil
}

package handlers

import (
	tea "github.com/charmbracelet/bubbletea"

	"reposearch/internal/domain"
	"reposearch/internal/eventbus"
	"reposearch/internal/ui/viewmodels"
)

// TextMsg carries a new value of the search text cell
type TextMsg viewmodels.TextUiModel

// ListMsg carries a new value of the result list cell
type ListMsg []domain.Repo

// AlertMsg carries a new value of the status cell
type AlertMsg viewmodels.AlertText

// ButtonMsg carries a new value of the button cell
type ButtonMsg viewmodels.ButtonLabel

// SingleEventMsg carries a one-shot view-model event
type SingleEventMsg struct {
	Event viewmodels.SingleEvent
}

// EventMsg wraps a domain event for the UI
type EventMsg struct {
	Event eventbus.DomainEvent
}

// ClosedMsg reports that a subscription ended
type ClosedMsg struct {
	Source string
}

// Listen returns a command that waits for the next value on ch.
func Listen[T any](source string, ch <-chan T, wrap func(T) tea.Msg) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		v, ok := <-ch
		if !ok {
			return ClosedMsg{Source: source}
		}
		return wrap(v)
	}
}

package input

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"reposearch/internal/ui/input/modes"
	"reposearch/internal/ui/input/types"
)

type Handler struct {
	currentMode types.Mode
	modes       map[types.Mode]types.ModeHandler
	textInput   *textinput.Model // search box
	pending     []string         // edits sent to the view model and not yet echoed back
}

// maxPending bounds pending when echoes stop arriving
const maxPending = 64

// New creates a handler with the search box focused.
func New(placeholder string) *Handler {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.Prompt = ""
	ti.Focus()

	h := &Handler{
		currentMode: types.ModeInput,
		textInput:   &ti,
		modes:       make(map[types.Mode]types.ModeHandler),
	}

	h.modes[types.ModeInput] = modes.NewSearchMode(h.textInput)
	h.modes[types.ModeList] = modes.NewListMode()

	return h
}

func (h *Handler) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, tea.Cmd) {
	handler := h.modes[h.currentMode]
	if handler == nil {
		return nil, nil
	}

	actions, consumed := handler.HandleKey(msg, ctx)

	var cmd tea.Cmd
	var allActions []types.Action

	if !consumed && !h.isTextMode(h.currentMode) {
		return nil, nil
	}

	for _, action := range actions {
		if changeMode, ok := action.(types.ChangeModeAction); ok {
			if h.modes[h.currentMode] != nil {
				allActions = append(allActions, h.modes[h.currentMode].Exit(ctx)...)
			}

			h.currentMode = changeMode.Mode

			if h.modes[h.currentMode] != nil {
				allActions = append(allActions, h.modes[h.currentMode].Enter(ctx)...)
			}

			if h.isTextMode(h.currentMode) {
				cmd = textinput.Blink
			}
			allActions = append(allActions, action)
		} else {
			allActions = append(allActions, action)
		}
	}

	// Keys the search mode did not claim edit the query
	if h.isTextMode(h.currentMode) && !consumed {
		before := h.textInput.Value()
		var textCmd tea.Cmd
		*h.textInput, textCmd = h.textInput.Update(msg)
		cmd = textCmd
		if after := h.textInput.Value(); after != before {
			allActions = append(allActions, types.UpdateTextAction{Text: after})
			h.pending = append(h.pending, after)
			if len(h.pending) > maxPending {
				h.pending = h.pending[len(h.pending)-maxPending:]
			}
		}
	}

	return allActions, cmd
}

func (h *Handler) CurrentMode() types.Mode {
	return h.currentMode
}

func (h *Handler) TextInput() *textinput.Model {
	return h.textInput
}

// SetText applies search text coming back from the view model. Echoes of
// edits the box sent are consumed in order, and nothing is applied while
// edits are still in flight, so a late echo never undoes newer keystrokes.
func (h *Handler) SetText(text string) {
	for i, sent := range h.pending {
		if sent == text {
			h.pending = h.pending[i+1:]
			return
		}
	}
	if len(h.pending) > 0 {
		return
	}
	if h.textInput.Value() != text {
		h.textInput.SetValue(text)
		h.textInput.CursorEnd()
	}
}

// Text returns the current query.
func (h *Handler) Text() string {
	return h.textInput.Value()
}

func (h *Handler) isTextMode(mode types.Mode) bool {
	return mode == types.ModeInput
}

// Update handles non-keyboard messages for text input
func (h *Handler) Update(msg tea.Msg) tea.Cmd {
	if h.isTextMode(h.currentMode) {
		var cmd tea.Cmd
		*h.textInput, cmd = h.textInput.Update(msg)
		return cmd
	}
	return nil
}

// Init returns the initial command for the handler
func (h *Handler) Init() tea.Cmd {
	return textinput.Blink
}

// ChangeMode switches mode without running enter/exit actions
func (h *Handler) ChangeMode(mode types.Mode) {
	h.currentMode = mode
	if h.isTextMode(mode) {
		h.textInput.Focus()
	} else {
		h.textInput.Blur()
	}
}

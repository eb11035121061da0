package modes

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"reposearch/internal/ui/input/types"
)

// SearchMode edits the query in the search box.
type SearchMode struct {
	TextInputMode
}

func NewSearchMode(ti *textinput.Model) *SearchMode {
	return &SearchMode{
		TextInputMode: NewTextInputMode(types.ModeInput, "search", ti),
	}
}

func (m *SearchMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch msg.String() {
	case "ctrl+c":
		return []types.Action{types.QuitAction{Force: true}}, true
	case "enter":
		return []types.Action{
			types.SubmitTextAction{Text: m.value()},
			types.ChangeModeAction{Mode: types.ModeList},
		}, true
	case "tab", "down", "esc":
		return []types.Action{types.ChangeModeAction{Mode: types.ModeList}}, true
	default:
		// Let the main handler update the text input
		return nil, false
	}
}

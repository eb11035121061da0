package modes

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"reposearch/internal/ui/input/types"
)

// ListMode browses the result list.
type ListMode struct {
	lastKeyWasG bool
	lastGTime   time.Time
}

func NewListMode() *ListMode {
	return &ListMode{}
}

func (m *ListMode) Name() string {
	return "list"
}

func (m *ListMode) Enter(ctx types.Context) []types.Action {
	return nil
}

func (m *ListMode) Exit(ctx types.Context) []types.Action {
	m.lastKeyWasG = false
	return nil
}

func (m *ListMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch msg.Type {
	case tea.KeyCtrlC:
		return []types.Action{types.QuitAction{Force: true}}, true

	case tea.KeyUp:
		if ctx.CurrentIndex() == 0 {
			return []types.Action{types.ChangeModeAction{Mode: types.ModeInput}}, true
		}
		return []types.Action{types.NavigateAction{Direction: "up"}}, true

	case tea.KeyDown:
		return []types.Action{types.NavigateAction{Direction: "down"}}, true

	case tea.KeyPgUp:
		return []types.Action{types.NavigateAction{Direction: "pageup"}}, true

	case tea.KeyPgDown:
		return []types.Action{types.NavigateAction{Direction: "pagedown"}}, true

	case tea.KeyHome:
		return []types.Action{types.NavigateAction{Direction: "home"}}, true

	case tea.KeyEnd:
		return []types.Action{types.NavigateAction{Direction: "end"}}, true

	case tea.KeyEnter:
		if ctx.TotalItems() > 0 {
			return []types.Action{types.OpenDetailAction{Index: -1}}, true
		}
		if ctx.CanRetry() {
			return []types.Action{types.RetryAction{}}, true
		}
		return nil, false

	case tea.KeyTab, tea.KeyEsc:
		return []types.Action{types.ChangeModeAction{Mode: types.ModeInput}}, true
	}

	key := msg.String()
	if key != "g" {
		m.lastKeyWasG = false
	}

	switch key {
	case "j":
		return []types.Action{types.NavigateAction{Direction: "down"}}, true

	case "k":
		return []types.Action{types.NavigateAction{Direction: "up"}}, true

	case "g":
		// gg jumps to the top
		if m.lastKeyWasG && time.Since(m.lastGTime) < 500*time.Millisecond {
			m.lastKeyWasG = false
			return []types.Action{types.NavigateAction{Direction: "home"}}, true
		}
		m.lastKeyWasG = true
		m.lastGTime = time.Now()
		return nil, true

	case "G":
		return []types.Action{types.NavigateAction{Direction: "end"}}, true

	case "/", "i":
		return []types.Action{types.ChangeModeAction{Mode: types.ModeInput}}, true

	case "r":
		return []types.Action{types.RetryAction{}}, true

	case "?":
		return []types.Action{types.ToggleHelpAction{}}, true

	case "q":
		return []types.Action{types.QuitAction{Force: false}}, true
	}

	return nil, false
}

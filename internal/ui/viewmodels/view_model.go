package viewmodels

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"

	"reposearch/internal/ui/state"
	"reposearch/internal/ui/views"
)

// ViewModel transforms application state into view-ready data
type ViewModel struct {
	state            *state.AppState
	width            int
	height           int
	help             help.Model
	keys             help.KeyMap
	spinner          spinner.Model
	inputTransformer *InputTransformer
}

// NewViewModel creates a new view model
func NewViewModel(appState *state.AppState, textInput textinput.Model) *ViewModel {
	return &ViewModel{
		state:            appState,
		inputTransformer: NewInputTransformer(textInput),
	}
}

// SetDimensions sets the current terminal dimensions
func (vm *ViewModel) SetDimensions(width, height int) {
	vm.width = width
	vm.height = height
}

// SetHelp sets the help model and the bindings it describes
func (vm *ViewModel) SetHelp(helpModel help.Model, keys help.KeyMap) {
	vm.help = helpModel
	vm.keys = keys
}

// SetSpinner sets the loading spinner
func (vm *ViewModel) SetSpinner(s spinner.Model) {
	vm.spinner = s
}

// SetInputMode sets the current input mode
func (vm *ViewModel) SetInputMode(mode InputMode) {
	vm.inputTransformer.SetMode(mode)
}

// UpdateTextInput updates the text input model
func (vm *ViewModel) UpdateTextInput(textInput textinput.Model) {
	vm.inputTransformer.textInput = textInput
}

// BuildViewState creates a ViewState for rendering
func (vm *ViewModel) BuildViewState() views.ViewState {
	helpView := ""
	if vm.keys != nil {
		helpView = vm.help.ShortHelpView(vm.keys.ShortHelp())
	}

	return views.ViewState{
		Width:          vm.width,
		Height:         vm.height,
		InputView:      vm.inputTransformer.GetInputText(),
		InputFocused:   vm.inputTransformer.mode == InputModeSearch,
		ButtonLabel:    vm.state.ButtonLabel,
		ButtonRetry:    vm.state.ButtonRetry,
		AlertText:      vm.state.AlertText,
		AlertError:     vm.state.AlertError,
		Loading:        vm.state.Loading,
		Spinner:        vm.spinner.View(),
		Repos:          vm.state.Repos,
		SelectedIndex:  vm.state.SelectedIndex,
		ListFocused:    vm.inputTransformer.mode == InputModeList,
		ViewportOffset: vm.state.ViewportOffset,
		ViewportHeight: vm.state.ViewportHeight,
		SearchQuery:    vm.state.SearchText,
		StatusMessage:  vm.state.StatusMessage,
		HelpView:       helpView,
		ModeLabel:      vm.inputTransformer.GetInputModeString(),
	}
}

// keyMap is the short help shown in the footer
type keyMap struct {
	bindings []key.Binding
}

func (k keyMap) ShortHelp() []key.Binding  { return k.bindings }
func (k keyMap) FullHelp() [][]key.Binding { return [][]key.Binding{k.bindings} }

// SearchKeys returns the footer bindings for the search box
func SearchKeys() help.KeyMap {
	return keyMap{bindings: []key.Binding{
		key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "search")),
		key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "results")),
		key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
	}}
}

// ListKeys returns the footer bindings for the result list
func ListKeys() help.KeyMap {
	return keyMap{bindings: []key.Binding{
		key.NewBinding(key.WithKeys("up", "k", "down", "j"), key.WithHelp("↑/↓", "move")),
		key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "open")),
		key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "edit query")),
		key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "retry")),
		key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
	}}
}

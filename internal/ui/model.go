package ui

import (
	"fmt"
	"log"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"reposearch/internal/config"
	"reposearch/internal/domain"
	"reposearch/internal/eventbus"
	"reposearch/internal/ui/commands"
	"reposearch/internal/ui/handlers"
	"reposearch/internal/ui/input"
	inputtypes "reposearch/internal/ui/input/types"
	"reposearch/internal/ui/state"
	"reposearch/internal/ui/viewmodels"
	"reposearch/internal/ui/views"
)

// Subscription names reported by handlers.ClosedMsg
const (
	sourceText   = "text"
	sourceList   = "list"
	sourceAlert  = "alert"
	sourceButton = "button"
	sourceEvents = "events"
)

// buttonWidth is the room reserved right of the search box
const buttonWidth = 16

// Model represents the UI state
type Model struct {
	bus    eventbus.EventBus
	config *config.Config
	state  *state.AppState // TUI copy of the view-model cells
	vm     *viewmodels.SearchViewModel

	// UI-specific state not in AppState
	width       int
	height      int
	help        help.Model
	spinner     spinner.Model
	inPagerMode bool // tracks if we're currently in pager mode

	// Handlers
	renderer     *views.Renderer
	eventHandler *handlers.EventHandler
	viewModel    *viewmodels.ViewModel
	cmdExecutor  *commands.Executor
	inputHandler *input.Handler
	pager        *Pager
	helpRenderer *HelpRenderer

	// Cell subscriptions
	textCh      <-chan viewmodels.TextUiModel
	listCh      <-chan []domain.Repo
	alertCh     <-chan viewmodels.AlertText
	buttonCh    <-chan viewmodels.ButtonLabel
	unsubscribe []func()
}

// NewModel creates a new UI model bound to the search view model. A nil
// opener shows repositories in the pager.
func NewModel(bus eventbus.EventBus, cfg *config.Config, vm *viewmodels.SearchViewModel, opener commands.Opener) *Model {
	appState := state.NewAppState()

	m := &Model{
		bus:          bus,
		config:       cfg,
		state:        appState,
		vm:           vm,
		help:         help.New(),
		spinner:      spinner.New(spinner.WithSpinner(spinner.Dot)),
		renderer:     views.NewRenderer(),
		inputHandler: input.New("Search GitHub repositories"),
		pager:        NewPager(),
		helpRenderer: NewHelpRenderer(),
	}

	m.eventHandler = handlers.NewEventHandler(appState, m.inputHandler)

	m.cmdExecutor = commands.NewExecutor(&commands.CommandContext{
		State:      appState,
		Bus:        bus,
		Dispatcher: vm,
		Opener:     opener,
		Pager:      m.pager,
	})

	m.viewModel = viewmodels.NewViewModel(appState, *m.inputHandler.TextInput())
	m.viewModel.SetHelp(m.help, viewmodels.SearchKeys())

	var unsub func()
	m.textCh, unsub = vm.SearchText().Subscribe()
	m.unsubscribe = append(m.unsubscribe, unsub)
	m.listCh, unsub = vm.List().Subscribe()
	m.unsubscribe = append(m.unsubscribe, unsub)
	m.alertCh, unsub = vm.Alert().Subscribe()
	m.unsubscribe = append(m.unsubscribe, unsub)
	m.buttonCh, unsub = vm.Button().Subscribe()
	m.unsubscribe = append(m.unsubscribe, unsub)

	return m
}

// SetProgram sets the program reference for terminal management
func (m *Model) SetProgram(p *tea.Program) {
	m.pager.SetProgram(p)
}

// Close releases the cell subscriptions
func (m *Model) Close() {
	for _, unsub := range m.unsubscribe {
		unsub()
	}
	m.unsubscribe = nil
}

// Init returns an initial command
func (m *Model) Init() tea.Cmd {
	return tea.Batch(
		m.listenText(),
		m.listenList(),
		m.listenAlert(),
		m.listenButton(),
		m.listenEvents(),
		m.spinner.Tick,
		m.inputHandler.Init(),
	)
}

func (m *Model) listenText() tea.Cmd {
	return handlers.Listen(sourceText, m.textCh, func(v viewmodels.TextUiModel) tea.Msg {
		return handlers.TextMsg(v)
	})
}

func (m *Model) listenList() tea.Cmd {
	return handlers.Listen(sourceList, m.listCh, func(v []domain.Repo) tea.Msg {
		return handlers.ListMsg(v)
	})
}

func (m *Model) listenAlert() tea.Cmd {
	return handlers.Listen(sourceAlert, m.alertCh, func(v viewmodels.AlertText) tea.Msg {
		return handlers.AlertMsg(v)
	})
}

func (m *Model) listenButton() tea.Cmd {
	return handlers.Listen(sourceButton, m.buttonCh, func(v viewmodels.ButtonLabel) tea.Msg {
		return handlers.ButtonMsg(v)
	})
}

func (m *Model) listenEvents() tea.Cmd {
	return handlers.Listen(sourceEvents, m.vm.Events(), func(e viewmodels.SingleEvent) tea.Msg {
		return handlers.SingleEventMsg{Event: e}
	})
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.viewModel.SetHelp(m.help, m.currentKeys())
		m.updateViewportHeight()
		if w := msg.Width - buttonWidth - 8; w > 10 {
			m.inputHandler.TextInput().Width = w
		}
		return m, nil

	case tea.KeyMsg:
		if m.inPagerMode {
			return m, nil
		}

		ctx := &input.ModelContext{State: m.state}
		actions, cmd := m.inputHandler.HandleKey(msg, ctx)

		cmds := []tea.Cmd{}
		if cmd != nil {
			cmds = append(cmds, cmd)
		}

		for _, action := range actions {
			if actionCmd := m.processAction(action); actionCmd != nil {
				cmds = append(cmds, actionCmd)
			}
		}

		return m, tea.Batch(cmds...)

	default:
		return m.handleNonKeyboardMsg(msg)
	}
}

// handleNonKeyboardMsg handles view-model updates, command results and ticks
func (m *Model) handleNonKeyboardMsg(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case handlers.TextMsg:
		m.eventHandler.HandleCellUpdate(msg)
		return m, m.listenText()

	case handlers.ListMsg:
		m.eventHandler.HandleCellUpdate(msg)
		return m, m.listenList()

	case handlers.AlertMsg:
		m.eventHandler.HandleCellUpdate(msg)
		return m, m.listenAlert()

	case handlers.ButtonMsg:
		m.eventHandler.HandleCellUpdate(msg)
		return m, m.listenButton()

	case handlers.SingleEventMsg:
		next := m.listenEvents()
		switch e := msg.Event.(type) {
		case viewmodels.GoToDetail:
			return m, tea.Batch(next, m.cmdExecutor.ExecuteOpenDetail(e, m.renderer.RenderDetail))
		}
		return m, next

	case handlers.EventMsg:
		return m, m.eventHandler.HandleEvent(msg.Event)

	case handlers.ClosedMsg:
		log.Printf("UI: %s subscription closed", msg.Source)
		return m, nil

	case commands.DetailOpenedMsg:
		if msg.Err != nil {
			log.Printf("Failed to open %s: %v", msg.URL, msg.Err)
			m.state.StatusMessage = fmt.Sprintf("Failed to open %s: %v", msg.URL, msg.Err)
			return m, clearStatusAfter(3 * time.Second)
		}
		return m, nil

	case commands.PagerClosedMsg:
		if msg.Err != nil {
			// Pager failed: log only; do not surface in status bar
			log.Printf("Help pager failed: %v", msg.Err)
		}
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case pauseRenderingMsg:
		m.inPagerMode = true
		return m, nil

	case resumeRenderingMsg:
		m.inPagerMode = false
		return m, nil

	case clearStatusMsg:
		m.state.StatusMessage = ""
		return m, nil
	}

	// Cursor blink and other text input messages
	return m, m.inputHandler.Update(msg)
}

// processAction processes an action from the input handler
func (m *Model) processAction(action inputtypes.Action) tea.Cmd {
	switch a := action.(type) {
	case inputtypes.NavigateAction:
		switch a.Direction {
		case "up":
			m.state.MoveSelection(-1)
		case "down":
			m.state.MoveSelection(1)
		case "pageup":
			m.state.MoveSelection(-m.state.ViewportHeight)
		case "pagedown":
			m.state.MoveSelection(m.state.ViewportHeight)
		case "home":
			m.state.SelectFirst()
		case "end":
			m.state.SelectLast()
		}

	case inputtypes.ChangeModeAction:
		m.viewModel.SetHelp(m.help, m.currentKeys())

	case inputtypes.UpdateTextAction:
		return m.cmdExecutor.ExecuteTextChanged(a.Text)

	case inputtypes.SubmitTextAction:
		m.state.SelectFirst()
		return m.cmdExecutor.ExecuteSearch(a.Text)

	case inputtypes.RetryAction:
		m.state.SelectFirst()
		return m.cmdExecutor.ExecuteSearch(m.inputHandler.Text())

	case inputtypes.OpenDetailAction:
		repo, ok := m.state.SelectedRepo()
		if !ok {
			return nil
		}
		return m.cmdExecutor.ExecuteSelectRepo(repo)

	case inputtypes.ToggleHelpAction:
		return m.cmdExecutor.ExecuteShowHelp(m.helpRenderer.RenderHelpContent())

	case inputtypes.QuitAction:
		return tea.Quit
	}

	return nil
}

// currentKeys returns the footer bindings for the focused widget
func (m *Model) currentKeys() help.KeyMap {
	if m.inputHandler.CurrentMode() == inputtypes.ModeList {
		return viewmodels.ListKeys()
	}
	return viewmodels.SearchKeys()
}

// updateViewportHeight sizes the result list to the terminal
func (m *Model) updateViewportHeight() {
	m.state.ViewportHeight = max(1, m.height-views.HeaderLines-views.FooterLines-2)
	m.state.EnsureVisible()
}

// View renders the UI
func (m *Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	if m.inPagerMode {
		return ""
	}

	m.viewModel.SetDimensions(m.width, m.height)
	m.viewModel.SetSpinner(m.spinner)
	m.viewModel.UpdateTextInput(*m.inputHandler.TextInput())
	if m.inputHandler.CurrentMode() == inputtypes.ModeList {
		m.viewModel.SetInputMode(viewmodels.InputModeList)
	} else {
		m.viewModel.SetInputMode(viewmodels.InputModeSearch)
	}

	content := m.renderer.Render(m.viewModel.BuildViewState())
	return lipgloss.NewStyle().MaxHeight(m.height).Render(content)
}

func clearStatusAfter(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg { return clearStatusMsg{} })
}

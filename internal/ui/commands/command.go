package commands

import (
	"fmt"
	"log"

	tea "github.com/charmbracelet/bubbletea"

	"reposearch/internal/domain"
	"reposearch/internal/eventbus"
	"reposearch/internal/ui/state"
	"reposearch/internal/ui/viewmodels"
)

// Command represents an executable action
type Command interface {
	Execute() tea.Cmd
}

// Dispatcher accepts view-model actions
type Dispatcher interface {
	Dispatch(action viewmodels.UiAction) bool
}

// Pager shows text full-screen until the user closes it
type Pager interface {
	Show(content string) error
}

// CommandContext provides context for command execution
type CommandContext struct {
	State      *state.AppState
	Bus        eventbus.EventBus
	Dispatcher Dispatcher
	Opener     Opener // nil shows details in the pager
	Pager      Pager
}

// DetailOpenedMsg reports the outcome of opening a repository
type DetailOpenedMsg struct {
	URL string
	Err error
}

// PagerClosedMsg reports that a pager session ended
type PagerClosedMsg struct {
	Err error
}

// SearchCommand starts a search for the query
type SearchCommand struct {
	ctx   *CommandContext
	query string
}

// NewSearchCommand creates a new search command
func NewSearchCommand(ctx *CommandContext, query string) *SearchCommand {
	return &SearchCommand{ctx: ctx, query: query}
}

// Execute dispatches the search
func (c *SearchCommand) Execute() tea.Cmd {
	c.ctx.State.StatusMessage = ""
	if !c.ctx.Dispatcher.Dispatch(viewmodels.Search{Query: c.query}) {
		log.Printf("SearchCommand: view model closed, dropping search %q", c.query)
	}
	return nil
}

// TextChangedCommand forwards an edit of the search box
type TextChangedCommand struct {
	ctx  *CommandContext
	text string
}

// NewTextChangedCommand creates a new text changed command
func NewTextChangedCommand(ctx *CommandContext, text string) *TextChangedCommand {
	return &TextChangedCommand{ctx: ctx, text: text}
}

// Execute dispatches the edit
func (c *TextChangedCommand) Execute() tea.Cmd {
	c.ctx.Dispatcher.Dispatch(viewmodels.TextChanged{Text: c.text})
	return nil
}

// SelectRepoCommand reports a chosen result row
type SelectRepoCommand struct {
	ctx  *CommandContext
	repo domain.Repo
}

// NewSelectRepoCommand creates a new select command
func NewSelectRepoCommand(ctx *CommandContext, repo domain.Repo) *SelectRepoCommand {
	return &SelectRepoCommand{ctx: ctx, repo: repo}
}

// Execute dispatches the selection
func (c *SelectRepoCommand) Execute() tea.Cmd {
	c.ctx.Dispatcher.Dispatch(viewmodels.SelectItem{Repo: c.repo})
	return nil
}

// OpenDetailCommand shows a repository requested by a GoToDetail event
type OpenDetailCommand struct {
	ctx    *CommandContext
	detail viewmodels.GoToDetail
	render func(domain.Repo) string
}

// NewOpenDetailCommand creates a new open detail command. render builds
// the pager page when no opener is configured.
func NewOpenDetailCommand(ctx *CommandContext, detail viewmodels.GoToDetail, render func(domain.Repo) string) *OpenDetailCommand {
	return &OpenDetailCommand{ctx: ctx, detail: detail, render: render}
}

// Execute opens the repository off the update loop
func (c *OpenDetailCommand) Execute() tea.Cmd {
	url := c.detail.URL
	opener := c.ctx.Opener
	pager := c.ctx.Pager
	bus := c.ctx.Bus
	content := ""
	if opener == nil {
		content = c.render(c.detail.Repo)
	}

	return func() tea.Msg {
		var err error
		switch {
		case opener != nil:
			err = opener.Open(url)
		case pager != nil:
			err = pager.Show(content)
		default:
			err = fmt.Errorf("no opener or pager configured")
		}

		if err == nil && bus != nil {
			bus.Publish(eventbus.DetailOpenedEvent{URL: url})
		}
		return DetailOpenedMsg{URL: url, Err: err}
	}
}

// ShowHelpCommand shows the key help in the pager
type ShowHelpCommand struct {
	ctx     *CommandContext
	content string
}

// NewShowHelpCommand creates a new help command
func NewShowHelpCommand(ctx *CommandContext, content string) *ShowHelpCommand {
	return &ShowHelpCommand{ctx: ctx, content: content}
}

// Execute runs the pager off the update loop
func (c *ShowHelpCommand) Execute() tea.Cmd {
	pager := c.ctx.Pager
	content := c.content
	return func() tea.Msg {
		if pager == nil {
			return PagerClosedMsg{Err: fmt.Errorf("pager not set")}
		}
		return PagerClosedMsg{Err: pager.Show(content)}
	}
}

package commands

import (
	tea "github.com/charmbracelet/bubbletea"

	"reposearch/internal/domain"
	"reposearch/internal/ui/viewmodels"
)

// Executor handles command execution
type Executor struct {
	ctx *CommandContext
}

// NewExecutor creates a new command executor
func NewExecutor(ctx *CommandContext) *Executor {
	return &Executor{ctx: ctx}
}

// ExecuteSearch creates and executes a search command
func (e *Executor) ExecuteSearch(query string) tea.Cmd {
	return NewSearchCommand(e.ctx, query).Execute()
}

// ExecuteTextChanged creates and executes a text changed command
func (e *Executor) ExecuteTextChanged(text string) tea.Cmd {
	return NewTextChangedCommand(e.ctx, text).Execute()
}

// ExecuteSelectRepo creates and executes a select command
func (e *Executor) ExecuteSelectRepo(repo domain.Repo) tea.Cmd {
	return NewSelectRepoCommand(e.ctx, repo).Execute()
}

// ExecuteOpenDetail creates and executes an open detail command
func (e *Executor) ExecuteOpenDetail(detail viewmodels.GoToDetail, render func(domain.Repo) string) tea.Cmd {
	return NewOpenDetailCommand(e.ctx, detail, render).Execute()
}

// ExecuteShowHelp creates and executes a help command
func (e *Executor) ExecuteShowHelp(content string) tea.Cmd {
	return NewShowHelpCommand(e.ctx, content).Execute()
}

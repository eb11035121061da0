package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"reposearch/internal/domain"
)

// ViewState contains all the state needed for rendering
type ViewState struct {
	Width          int
	Height         int
	InputView      string // rendered search box content
	InputFocused   bool
	ButtonLabel    string
	ButtonRetry    bool
	AlertText      string
	AlertError     bool
	Loading        bool
	Spinner        string // current spinner frame
	Repos          []domain.Repo
	SelectedIndex  int
	ListFocused    bool
	ViewportOffset int
	ViewportHeight int
	SearchQuery    string
	StatusMessage  string
	HelpView       string // short key help
	ModeLabel      string // focused widget, shown before the key help
}

// HeaderLines is the number of rows above the result list: title, search
// box, and alert line.
const HeaderLines = 6

// FooterLines is the number of rows below the result list.
const FooterLines = 2

// Renderer handles all view rendering
type Renderer struct {
	styles     *Styles
	repoRender *RepositoryRenderer
}

// NewRenderer creates a new renderer
func NewRenderer() *Renderer {
	styles := NewStyles()
	return &Renderer{
		styles:     styles,
		repoRender: NewRepositoryRenderer(styles),
	}
}

// RenderDetail renders the pager page for a repository
func (r *Renderer) RenderDetail(repo domain.Repo) string {
	return r.repoRender.RenderDetail(repo)
}

// Render produces the complete view
func (r *Renderer) Render(state ViewState) string {
	content := &strings.Builder{}

	termWidth := state.Width
	if termWidth <= 0 {
		termWidth = 80 // Default terminal width
	}
	availableWidth := termWidth - 4 // Account for main container padding

	// Title with right-aligned status
	logo := r.styles.Title.Render("reposearch")
	rightContent := ""
	if state.StatusMessage != "" {
		rightContent = r.styles.Status.Render(state.StatusMessage)
	}
	paddingWidth := availableWidth - lipgloss.Width(logo) - lipgloss.Width(rightContent)
	if rightContent != "" && paddingWidth > 0 {
		content.WriteString(logo + strings.Repeat(" ", paddingWidth) + rightContent)
	} else {
		content.WriteString(logo)
	}
	content.WriteString("\n")

	// Search box and button
	content.WriteString(r.renderSearchBar(state, availableWidth))
	content.WriteString("\n")

	// Alert line
	content.WriteString(r.renderAlert(state))
	content.WriteString("\n")

	// Main content
	if len(state.Repos) == 0 {
		if !state.Loading && !state.AlertError {
			content.WriteString(r.styles.Dim.Render("No repositories. Type a query and press Enter."))
		}
	} else {
		content.WriteString(r.renderRepositoryList(state, availableWidth))
	}

	helpText := state.HelpView
	if helpText == "" {
		helpText = "Press ? for help"
	}
	helpText = r.styles.Help.Render(helpText)
	if state.ModeLabel != "" {
		helpText = r.styles.Status.Render("["+state.ModeLabel+"]") + " " + helpText
	}

	// Push help to the bottom
	currentLines := strings.Count(content.String(), "\n") + 1
	availableLines := state.Height - 2
	if availableLines <= 0 {
		availableLines = 22 // Default terminal height minus padding
	}
	if paddingNeeded := availableLines - currentLines - 1; paddingNeeded > 0 {
		content.WriteString(strings.Repeat("\n", paddingNeeded))
	}
	content.WriteString("\n")
	content.WriteString(helpText)

	mainStyle := r.styles.Main
	if state.Height > 0 {
		mainStyle = mainStyle.MaxHeight(state.Height)
	}
	return mainStyle.Render(content.String())
}

func (r *Renderer) renderSearchBar(state ViewState, width int) string {
	buttonStyle := r.styles.Button
	if state.ButtonRetry {
		buttonStyle = r.styles.ButtonRetry
	}
	button := buttonStyle.Render(state.ButtonLabel)

	inputStyle := r.styles.Input
	if state.InputFocused {
		inputStyle = r.styles.InputFocused
	}
	// Border and padding take four columns
	inputWidth := width - lipgloss.Width(button) - 1 - 4
	if inputWidth < 10 {
		inputWidth = 10
	}
	input := inputStyle.Width(inputWidth).Render(state.InputView)

	return lipgloss.JoinHorizontal(lipgloss.Center, input, " ", button)
}

func (r *Renderer) renderAlert(state ViewState) string {
	switch {
	case state.AlertText == "":
		return ""
	case state.AlertError:
		return r.styles.StatusError.Render("✗ " + state.AlertText)
	case state.Loading:
		return r.styles.StatusLoading.Render(fmt.Sprintf("%s %s", state.Spinner, state.AlertText))
	default:
		return r.styles.StatusLoading.Render(state.AlertText)
	}
}

// renderRepositoryList renders the visible window of results
func (r *Renderer) renderRepositoryList(state ViewState, width int) string {
	var lines []string
	total := len(state.Repos)

	effectiveHeight := state.ViewportHeight
	if effectiveHeight < 1 {
		effectiveHeight = 1
	}
	needsTopIndicator := state.ViewportOffset > 0
	needsBottomIndicator := total > state.ViewportOffset+effectiveHeight

	if needsTopIndicator {
		effectiveHeight--
	}
	if needsBottomIndicator {
		effectiveHeight--
	}
	if effectiveHeight < 1 {
		effectiveHeight = 1
	}

	start := state.ViewportOffset
	if state.SelectedIndex >= start+effectiveHeight {
		start = state.SelectedIndex - effectiveHeight + 1
	}
	end := start + effectiveHeight
	if end > total {
		end = total
	}

	if needsTopIndicator {
		lines = append(lines, r.styles.Scroll.Render(fmt.Sprintf("↑ %d more above ↑", start)))
	}

	for i := start; i < end; i++ {
		selected := state.ListFocused && i == state.SelectedIndex
		lines = append(lines, r.repoRender.RenderRepository(state.Repos[i], selected, state.SearchQuery, width))
	}

	if needsBottomIndicator {
		itemsBelow := total - end
		if itemsBelow < 0 {
			itemsBelow = 0
		}
		lines = append(lines, r.styles.Scroll.Render(fmt.Sprintf("↓ %d more below ↓", itemsBelow)))
	}

	return strings.Join(lines, "\n")
}

package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// HelpRenderer handles help content rendering
type HelpRenderer struct{}

// NewHelpRenderer creates a new help renderer
func NewHelpRenderer() *HelpRenderer {
	return &HelpRenderer{}
}

// RenderHelpContent renders the key reference shown in the pager
func (r *HelpRenderer) RenderHelpContent() string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("99")).
		MarginBottom(1)

	sectionStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("39")).
		MarginTop(1)

	keyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("220"))

	descStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("252"))

	line := func(k, desc string) string {
		return fmt.Sprintf("  %s  %s\n", keyStyle.Render(fmt.Sprintf("%-12s", k)), descStyle.Render(desc))
	}

	var help strings.Builder

	help.WriteString(titleStyle.Render("reposearch Help"))
	help.WriteString("\n")

	help.WriteString(sectionStyle.Render("Search box"))
	help.WriteString("\n")
	help.WriteString(line("type", "Edit the query"))
	help.WriteString(line("Enter", "Search GitHub repositories"))
	help.WriteString(line("Tab/↓/Esc", "Move to the results"))
	help.WriteString("\n")

	help.WriteString(sectionStyle.Render("Results"))
	help.WriteString("\n")
	help.WriteString(line("↑/↓, j/k", "Navigate up/down"))
	help.WriteString(line("PgUp/PgDn", "Page up/down"))
	help.WriteString(line("gg/G", "Go to top/bottom"))
	help.WriteString(line("Enter", "Open repository (retry after a failure)"))
	help.WriteString(line("r", "Retry the current query"))
	help.WriteString(line("/, i, Tab", "Edit the query"))
	help.WriteString("\n")

	help.WriteString(sectionStyle.Render("Other"))
	help.WriteString("\n")
	help.WriteString(line("?", "Show this help"))
	help.WriteString(line("q", "Quit"))
	help.WriteString(line("Ctrl+C", "Quit from anywhere"))

	return help.String()
}

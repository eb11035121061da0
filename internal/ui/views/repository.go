package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"reposearch/internal/domain"
)

// RepositoryRenderer handles rendering of repository items
type RepositoryRenderer struct {
	styles *Styles
}

// NewRepositoryRenderer creates a new repository renderer
func NewRepositoryRenderer(styles *Styles) *RepositoryRenderer {
	return &RepositoryRenderer{
		styles: styles,
	}
}

// RenderRepository renders one result row: name, counts, and the
// description when the repository has one.
func (r *RepositoryRenderer) RenderRepository(repo domain.Repo, isSelected bool, searchQuery string, width int) string {
	// Background color for selection
	bgColor := ""
	if isSelected {
		bgColor = "238"
	}
	bg := lipgloss.NewStyle().Background(lipgloss.Color(bgColor))

	nameStyle := r.styles.RepoName.Background(lipgloss.Color(bgColor))
	name := repo.FullName
	if searchQuery != "" && strings.Contains(strings.ToLower(name), strings.ToLower(searchQuery)) {
		name = r.highlightMatch(name, searchQuery,
			nameStyle.Foreground(lipgloss.Color("226")), nameStyle)
	} else {
		name = nameStyle.Render(name)
	}

	parts := []string{
		name,
		bg.Render("  "),
		r.styles.Stars.Background(lipgloss.Color(bgColor)).Render(fmt.Sprintf("★ %s", FormatCount(repo.Stars))),
		bg.Render("  "),
		r.styles.Forks.Background(lipgloss.Color(bgColor)).Render(fmt.Sprintf("⑂ %s", FormatCount(repo.Forks))),
	}

	line := strings.Join(parts, "")

	if repo.HasDescription() {
		// Description fills what is left of the row
		available := width - lipgloss.Width(line) - 6
		if available > 10 {
			desc := Truncate(singleLine(repo.Description), available)
			line += bg.Render("  ") + r.styles.Description.Background(lipgloss.Color(bgColor)).Render(desc)
		}
	}

	return line
}

// RenderDetail renders a repository page for the pager
func (r *RepositoryRenderer) RenderDetail(repo domain.Repo) string {
	var b strings.Builder

	b.WriteString(r.styles.Title.Render(repo.FullName))
	b.WriteString("\n")
	if repo.HasDescription() {
		b.WriteString(repo.Description)
		b.WriteString("\n\n")
	}
	b.WriteString(fmt.Sprintf("%s  %d\n", r.styles.Stars.Render("★ Stars"), repo.Stars))
	b.WriteString(fmt.Sprintf("%s  %d\n", r.styles.Forks.Render("⑂ Forks"), repo.Forks))
	b.WriteString(fmt.Sprintf("%s    %s\n", r.styles.Dim.Render("URL"), repo.URL))
	b.WriteString(fmt.Sprintf("%s     %d\n", r.styles.Dim.Render("ID"), repo.ID))

	return b.String()
}

// highlightMatch highlights matching text within a string
func (r *RepositoryRenderer) highlightMatch(text, query string, highlightStyle, normalStyle lipgloss.Style) string {
	lowerText := strings.ToLower(text)
	lowerQuery := strings.ToLower(query)

	index := strings.Index(lowerText, lowerQuery)
	if index == -1 {
		return normalStyle.Render(text)
	}

	before := text[:index]
	match := text[index : index+len(query)]
	after := text[index+len(query):]

	var result []string
	if before != "" {
		result = append(result, normalStyle.Render(before))
	}
	result = append(result, highlightStyle.Render(match))
	if after != "" {
		result = append(result, normalStyle.Render(after))
	}

	return strings.Join(result, "")
}

// FormatCount abbreviates large counts, e.g. 12345 -> 12.3k
func FormatCount(n int) string {
	switch {
	case n >= 1_000_000:
		return fmt.Sprintf("%.1fm", float64(n)/1_000_000)
	case n >= 1_000:
		return fmt.Sprintf("%.1fk", float64(n)/1_000)
	default:
		return fmt.Sprintf("%d", n)
	}
}

// Truncate shortens s to at most width runes, marking the cut with "..."
func Truncate(s string, width int) string {
	runes := []rune(s)
	if len(runes) <= width {
		return s
	}
	if width <= 3 {
		return string(runes[:width])
	}
	return string(runes[:width-3]) + "..."
}

func singleLine(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

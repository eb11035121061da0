package views

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles contains all the style definitions for the UI
type Styles struct {
	Title         lipgloss.Style
	Dim           lipgloss.Style
	Status        lipgloss.Style
	Help          lipgloss.Style
	Main          lipgloss.Style
	Scroll        lipgloss.Style
	Highlight     lipgloss.Style
	Input         lipgloss.Style
	InputFocused  lipgloss.Style
	Button        lipgloss.Style
	ButtonRetry   lipgloss.Style
	RepoName      lipgloss.Style
	Description   lipgloss.Style
	Stars         lipgloss.Style
	Forks         lipgloss.Style
	StatusError   lipgloss.Style
	StatusLoading lipgloss.Style
	SelectionBg   lipgloss.Style
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	return &Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")).
			MarginBottom(1),
		Dim: lipgloss.NewStyle().Faint(true),
		Status: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")),
		Help: lipgloss.NewStyle().Faint(true),
		Main: lipgloss.NewStyle().
			Padding(1, 2).
			MaxHeight(100), // Will be dynamically adjusted
		Scroll:    lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true),
		Highlight: lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true),
		Input: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("241")).
			Padding(0, 1),
		InputFocused: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("99")).
			Padding(0, 1),
		Button: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("33")).
			Foreground(lipgloss.Color("33")).
			Padding(0, 1),
		ButtonRetry: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("203")).
			Foreground(lipgloss.Color("203")).
			Padding(0, 1),
		RepoName:      lipgloss.NewStyle().Bold(true),
		Description:   lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
		Stars:         lipgloss.NewStyle().Foreground(lipgloss.Color("220")), // yellow
		Forks:         lipgloss.NewStyle().Foreground(lipgloss.Color("78")),  // green
		StatusError:   lipgloss.NewStyle().Foreground(lipgloss.Color("203")), // red
		StatusLoading: lipgloss.NewStyle().Foreground(lipgloss.Color("241")), // gray
		SelectionBg:   lipgloss.NewStyle().Background(lipgloss.Color("238")),
	}
}

// Package styles holds the lipgloss style set shared by the editor panes
// and chrome.
package styles

import "github.com/charmbracelet/lipgloss/v2"

// Style definitions for the UI.
var (
	PaneTitle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205"))

	PaneTitleInactive = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("241"))

	Selected = lipgloss.NewStyle().
			Background(lipgloss.Color("205")).
			Foreground(lipgloss.Color("0"))

	Row = lipgloss.NewStyle().
		Foreground(lipgloss.Color("252"))

	// Green accent for environment-variable bindings, yellow for comments,
	// mirroring the conventional shell highlighting.
	EnvVar = lipgloss.NewStyle().
		Foreground(lipgloss.Color("35"))

	Comment = lipgloss.NewStyle().
		Foreground(lipgloss.Color("178"))

	Breadcrumb = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	Help = lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))

	StatusInfo = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252"))

	StatusSuccess = lipgloss.NewStyle().
			Foreground(lipgloss.Color("35"))

	StatusError = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	Divider = lipgloss.NewStyle().
		Foreground(lipgloss.Color("238"))
)

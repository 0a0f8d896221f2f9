package tui

import (
	"time"

	"github.com/envtree/envtree/internal/tui/styles"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"
)

// statusClearMsg asks the status bar to drop an expired message.
type statusClearMsg struct {
	id int
}

// StatusBar shows the current path on the left and transient messages on
// the right.
type StatusBar struct {
	width   int
	path    string
	message string
	kind    string
	msgID   int

	clearAfter time.Duration
}

// NewStatusBar creates a new status bar
func NewStatusBar() *StatusBar {
	return &StatusBar{
		clearAfter: 5 * time.Second,
	}
}

// SetSize sets the rendered width
func (s *StatusBar) SetSize(width int) {
	s.width = width
}

// SetPath updates the breadcrumb for the current tree position
func (s *StatusBar) SetPath(path string) {
	if path == "" {
		path = "/"
	}
	s.path = path
}

// SetMessage shows a transient message and returns the command that
// clears it once it expires.
func (s *StatusBar) SetMessage(content, kind string) tea.Cmd {
	s.message = content
	s.kind = kind
	s.msgID++
	id := s.msgID
	return tea.Tick(s.clearAfter, func(time.Time) tea.Msg {
		return statusClearMsg{id: id}
	})
}

// Update handles message expiry. A newer message keeps its own timer.
func (s *StatusBar) Update(msg tea.Msg) {
	if m, ok := msg.(statusClearMsg); ok && m.id == s.msgID {
		s.message = ""
	}
}

// View renders the status bar
func (s *StatusBar) View() string {
	left := styles.Breadcrumb.Render("Path: " + s.path)

	var right string
	switch s.kind {
	case "success":
		right = styles.StatusSuccess.Render(s.message)
	case "error":
		right = styles.StatusError.Render(s.message)
	default:
		right = styles.StatusInfo.Render(s.message)
	}

	gap := s.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		return left
	}
	return left + lipgloss.NewStyle().Width(gap).Render("") + right
}

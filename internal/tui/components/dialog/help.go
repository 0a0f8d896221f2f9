package dialog

import (
	"github.com/envtree/envtree/internal/tui/events"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"
)

// HelpDialog displays the key reference
type HelpDialog struct {
	*BaseDialog

	eventBroker *events.Broker

	keyStyle  lipgloss.Style
	descStyle lipgloss.Style
}

var helpEntries = []struct {
	keys string
	desc string
}{
	{"↑/k, ↓/j", "move the cursor"},
	{"tab", "switch between sections and settings"},
	{"enter", "open section / edit setting"},
	{"esc", "back one level, exit at the root"},
	{"ctrl+s", "save edits to the export store"},
	{"?", "toggle this help"},
	{"ctrl+c", "quit"},
}

// NewHelpDialog creates a new help dialog
func NewHelpDialog(eventBroker *events.Broker) *HelpDialog {
	return &HelpDialog{
		BaseDialog:  NewBaseDialog("Help"),
		eventBroker: eventBroker,

		keyStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true).
			Width(12),

		descStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")),
	}
}

// Init initializes the dialog
func (d *HelpDialog) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (d *HelpDialog) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if !d.isOpen {
		return d, nil
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "esc", "q", "?", "enter":
			return d, d.Close()
		}
	}

	return d, nil
}

// View renders the dialog
func (d *HelpDialog) View() string {
	if !d.isOpen {
		return ""
	}

	rows := make([]string, 0, len(helpEntries))
	for _, e := range helpEntries {
		rows = append(rows, d.keyStyle.Render(e.keys)+d.descStyle.Render(e.desc))
	}

	return d.RenderDialog(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

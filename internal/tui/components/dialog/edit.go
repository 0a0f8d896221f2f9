package dialog

import (
	"github.com/envtree/envtree/internal/tui/events"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"
)

// EditDialog collects a new value for a single setting. Submitting an
// empty input cancels, matching the "empty edit is no change" rule.
type EditDialog struct {
	*BaseDialog

	eventBroker *events.Broker
	input       *SimpleTextInput

	key     string
	current string
	envVar  string
	comment string

	// Styling
	labelStyle   lipgloss.Style
	valueStyle   lipgloss.Style
	envStyle     lipgloss.Style
	commentStyle lipgloss.Style
}

// NewEditDialog creates a new value edit dialog
func NewEditDialog(eventBroker *events.Broker) *EditDialog {
	return &EditDialog{
		BaseDialog:  NewBaseDialog("Edit value"),
		eventBroker: eventBroker,
		input:       NewSimpleTextInput(),

		labelStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")),

		valueStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")),

		envStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("35")),

		commentStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("178")).
			Italic(true),
	}
}

// SetSetting configures the dialog for one leaf before opening it.
func (d *EditDialog) SetSetting(key, current, envVar, comment string) {
	d.key = key
	d.current = current
	d.envVar = envVar
	d.comment = comment
	d.input.SetValue("")
	d.input.Placeholder(current)
}

// Init initializes the dialog
func (d *EditDialog) Init() tea.Cmd {
	return nil
}

// Open opens the dialog with the input focused
func (d *EditDialog) Open() tea.Cmd {
	d.input.Focus()
	return d.BaseDialog.Open()
}

// Close closes the dialog
func (d *EditDialog) Close() tea.Cmd {
	d.input.Blur()
	return d.BaseDialog.Close()
}

// Update handles messages
func (d *EditDialog) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if !d.isOpen {
		return d, nil
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "esc":
			return d, d.Cancel()
		case "enter":
			value := d.input.Value()
			if value == "" {
				return d, d.Cancel()
			}
			d.SetResult(value)
			return d, d.Close()
		}
	}

	return d, d.input.Update(msg)
}

// View renders the dialog
func (d *EditDialog) View() string {
	if !d.isOpen {
		return ""
	}

	header := d.labelStyle.Render("Key: ") + d.valueStyle.Render(d.key)
	if d.envVar != "" {
		header += "  " + d.envStyle.Render("$"+d.envVar)
	}

	lines := []string{
		header,
		d.labelStyle.Render("Current: ") + d.valueStyle.Render(d.current),
		d.labelStyle.Render("New value: ") + d.input.View(),
	}
	if d.comment != "" {
		lines = append(lines, d.commentStyle.Render(d.comment))
	}

	help := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241")).
		Italic(true).
		Render("Enter to apply • Esc to cancel")

	content := lipgloss.JoinVertical(
		lipgloss.Left,
		append(lines, "", help)...,
	)

	return d.RenderDialog(content)
}

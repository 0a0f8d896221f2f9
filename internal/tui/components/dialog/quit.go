package dialog

import (
	"github.com/envtree/envtree/internal/tui/events"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"
)

// Quit dialog results, read by the model on close.
const (
	QuitSave    = "save"
	QuitDiscard = "discard"
)

// QuitDialog asks what to do with unsaved changes before exiting
type QuitDialog struct {
	*BaseDialog

	selected    int // index into options; default Cancel for safety
	eventBroker *events.Broker

	// Styling
	buttonStyle         lipgloss.Style
	selectedButtonStyle lipgloss.Style
	questionStyle       lipgloss.Style
}

var quitOptions = []struct {
	label  string
	result string
}{
	{"Save & quit", QuitSave},
	{"Discard", QuitDiscard},
	{"Cancel", ""},
}

// NewQuitDialog creates a new quit confirmation dialog
func NewQuitDialog(eventBroker *events.Broker) *QuitDialog {
	return &QuitDialog{
		BaseDialog:  NewBaseDialog("Unsaved changes"),
		selected:    len(quitOptions) - 1,
		eventBroker: eventBroker,

		questionStyle: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205")),

		buttonStyle: lipgloss.NewStyle().
			Padding(0, 3).
			Background(lipgloss.Color("235")).
			Foreground(lipgloss.Color("252")),

		selectedButtonStyle: lipgloss.NewStyle().
			Padding(0, 3).
			Background(lipgloss.Color("205")).
			Foreground(lipgloss.Color("0")).
			Bold(true),
	}
}

// Open opens the dialog with Cancel preselected
func (d *QuitDialog) Open() tea.Cmd {
	d.selected = len(quitOptions) - 1
	return d.BaseDialog.Open()
}

// Init initializes the dialog
func (d *QuitDialog) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (d *QuitDialog) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if !d.isOpen {
		return d, nil
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			// Ctrl+C while the dialog is open = quit without saving
			// (double Ctrl+C pattern)
			d.SetResult(QuitDiscard)
			return d, d.Close()
		case "esc", "n", "N":
			return d, d.Cancel()
		case "s", "S":
			d.SetResult(QuitSave)
			return d, d.Close()
		case "d", "D", "q", "Q":
			d.SetResult(QuitDiscard)
			return d, d.Close()
		case "left", "h":
			if d.selected > 0 {
				d.selected--
			}
		case "right", "l", "tab":
			d.selected = (d.selected + 1) % len(quitOptions)
		case "enter", " ":
			opt := quitOptions[d.selected]
			if opt.result == "" {
				return d, d.Cancel()
			}
			d.SetResult(opt.result)
			return d, d.Close()
		}
	}

	return d, nil
}

// View renders the dialog
func (d *QuitDialog) View() string {
	if !d.isOpen {
		return ""
	}

	question := d.questionStyle.Render("Save changes to the export store before quitting?")

	buttons := make([]string, 0, len(quitOptions)*2-1)
	for i, opt := range quitOptions {
		style := d.buttonStyle
		if i == d.selected {
			style = d.selectedButtonStyle
		}
		if i > 0 {
			buttons = append(buttons, "  ")
		}
		buttons = append(buttons, style.Render(opt.label))
	}

	buttonRow := lipgloss.JoinHorizontal(lipgloss.Center, buttons...)

	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241")).
		Italic(true)
	helpText := helpStyle.Render("s save • d discard • Esc cancel")

	content := lipgloss.JoinVertical(
		lipgloss.Center,
		question,
		"",
		buttonRow,
		"",
		helpText,
	)

	return d.RenderDialog(content)
}

package dialog

import (
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"
)

// BaseDialog provides common dialog functionality: open/close lifecycle,
// result handling, and centered overlay rendering.
type BaseDialog struct {
	width  int
	height int

	title     string
	isOpen    bool
	result    any
	cancelled bool

	// Styling
	borderStyle  lipgloss.Style
	titleStyle   lipgloss.Style
	overlayStyle lipgloss.Style
}

// NewBaseDialog creates a new base dialog
func NewBaseDialog(title string) *BaseDialog {
	return &BaseDialog{
		title: title,

		borderStyle: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("86")).
			Padding(1),

		titleStyle: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205")).
			MarginBottom(1),

		overlayStyle: lipgloss.NewStyle().
			Background(lipgloss.Color("0")).
			Foreground(lipgloss.Color("7")),
	}
}

// IsOpen returns whether the dialog is open
func (d *BaseDialog) IsOpen() bool {
	return d.isOpen
}

// Open opens the dialog
func (d *BaseDialog) Open() tea.Cmd {
	d.isOpen = true
	d.cancelled = false
	d.result = nil
	return nil
}

// Close closes the dialog
func (d *BaseDialog) Close() tea.Cmd {
	d.isOpen = false
	return nil
}

// Cancel closes the dialog as cancelled
func (d *BaseDialog) Cancel() tea.Cmd {
	d.cancelled = true
	return d.Close()
}

// GetResult returns the dialog result
func (d *BaseDialog) GetResult() any {
	return d.result
}

// IsCancelled returns whether the dialog was cancelled
func (d *BaseDialog) IsCancelled() bool {
	return d.cancelled
}

// SetResult sets the dialog result
func (d *BaseDialog) SetResult(result any) {
	d.result = result
}

// SetSize sets the overlay size
func (d *BaseDialog) SetSize(width, height int) tea.Cmd {
	d.width = width
	d.height = height
	return nil
}

// RenderDialog renders content inside the dialog frame, centered on a
// full-screen overlay.
func (d *BaseDialog) RenderDialog(content string) string {
	if !d.isOpen {
		return ""
	}

	var dialogContent string
	if d.title != "" {
		title := d.titleStyle.Render(d.title)
		dialogContent = lipgloss.JoinVertical(lipgloss.Left, title, content)
	} else {
		dialogContent = content
	}

	// Border and padding size to the content.
	box := d.borderStyle.Render(dialogContent)

	overlay := d.overlayStyle.
		Width(d.width).
		Height(d.height)

	return overlay.Render(lipgloss.Place(
		d.width,
		d.height,
		lipgloss.Center,
		lipgloss.Center,
		box,
	))
}

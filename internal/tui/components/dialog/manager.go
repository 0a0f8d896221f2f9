package dialog

import (
	"github.com/envtree/envtree/internal/tui/events"
	tea "github.com/charmbracelet/bubbletea/v2"
)

// DialogType identifies the type of dialog
type DialogType string

const (
	EditDialogType DialogType = "edit"
	QuitDialogType DialogType = "quit"
	HelpDialogType DialogType = "help"
)

// Manager manages all dialogs in the application
type Manager struct {
	dialogs      map[DialogType]Dialog
	activeDialog DialogType
	eventBroker  *events.Broker
	width        int
	height       int
}

// NewManager creates a new dialog manager
func NewManager(eventBroker *events.Broker) *Manager {
	m := &Manager{
		dialogs:     make(map[DialogType]Dialog),
		eventBroker: eventBroker,
	}

	m.dialogs[EditDialogType] = NewEditDialog(eventBroker)
	m.dialogs[QuitDialogType] = NewQuitDialog(eventBroker)
	m.dialogs[HelpDialogType] = NewHelpDialog(eventBroker)

	return m
}

// Init initializes all dialogs
func (m *Manager) Init() tea.Cmd {
	var cmds []tea.Cmd
	for _, d := range m.dialogs {
		cmds = append(cmds, d.Init())
	}
	return tea.Batch(cmds...)
}

// Update handles updates for the active dialog
func (m *Manager) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		cmds = append(cmds, m.SetSize(wsm.Width, wsm.Height))
	}

	if m.activeDialog != "" {
		if d, ok := m.dialogs[m.activeDialog]; ok {
			model, cmd := d.Update(msg)
			if updated, ok := model.(Dialog); ok {
				m.dialogs[m.activeDialog] = updated

				if !updated.IsOpen() {
					closed := m.activeDialog
					m.activeDialog = ""
					m.eventBroker.PublishAsync(events.Event{
						Type: events.DialogCloseEvent,
						Payload: events.DialogPayload{
							DialogID: string(closed),
							Data:     updated.GetResult(),
						},
					})
				}
			}
			cmds = append(cmds, cmd)
		}
	}

	return m, tea.Batch(cmds...)
}

// View renders the active dialog
func (m *Manager) View() string {
	if m.activeDialog == "" {
		return ""
	}

	if d, ok := m.dialogs[m.activeDialog]; ok {
		return d.View()
	}

	return ""
}

// SetSize sets the size for all dialogs
func (m *Manager) SetSize(width, height int) tea.Cmd {
	m.width = width
	m.height = height

	var cmds []tea.Cmd
	for _, d := range m.dialogs {
		cmds = append(cmds, d.SetSize(width, height))
	}
	return tea.Batch(cmds...)
}

// OpenDialog opens a specific dialog
func (m *Manager) OpenDialog(dialogType DialogType) tea.Cmd {
	if d, ok := m.dialogs[dialogType]; ok {
		m.activeDialog = dialogType

		m.eventBroker.PublishAsync(events.Event{
			Type: events.DialogOpenEvent,
			Payload: events.DialogPayload{
				DialogID: string(dialogType),
			},
		})

		return d.Open()
	}
	return nil
}

// IsDialogOpen returns whether any dialog is open
func (m *Manager) IsDialogOpen() bool {
	return m.activeDialog != ""
}

// GetActiveDialog returns the currently active dialog type
func (m *Manager) GetActiveDialog() DialogType {
	return m.activeDialog
}

// SetSetting configures the edit dialog for one leaf before opening it
func (m *Manager) SetSetting(key, current, envVar, comment string) {
	if d, ok := m.dialogs[EditDialogType].(*EditDialog); ok {
		d.SetSetting(key, current, envVar, comment)
	}
}

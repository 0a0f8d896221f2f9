// Package tui wires the editing session into a Bubble Tea program: two
// panes over the current tree position, a status bar, and modal dialogs
// for edits, help, and the exit confirmation.
package tui

import (
	"fmt"
	"strings"

	"github.com/envtree/envtree/internal/document"
	"github.com/envtree/envtree/internal/session"
	"github.com/envtree/envtree/internal/tui/components/dialog"
	"github.com/envtree/envtree/internal/tui/events"
	"github.com/envtree/envtree/internal/tui/styles"
	"github.com/charmbracelet/bubbles/v2/key"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"
)

// Rows of fixed chrome around the pane lists: pane titles, spacer,
// status bar, help line.
const chromeRows = 4

// Model is the root TUI model. All document and ledger state lives in the
// session; the model only holds presentation state.
type Model struct {
	width  int
	height int

	docPath string
	keys    KeyMap

	session *session.Session
	status  *StatusBar
	dialogs *dialog.Manager

	eventBroker *events.Broker
	eventSub    <-chan events.Event

	// Leaf being edited while the edit dialog is open.
	editing *document.Node
}

// New creates the root model for one editing session
func New(docPath string, sess *session.Session, eventBroker *events.Broker) *Model {
	m := &Model{
		docPath:     docPath,
		keys:        DefaultKeyMap(),
		session:     sess,
		status:      NewStatusBar(),
		dialogs:     dialog.NewManager(eventBroker),
		eventBroker: eventBroker,
	}
	m.eventSub = eventBroker.Subscribe()
	m.status.SetPath(sess.Breadcrumb())
	return m
}

// Init initializes the model and starts event processing
func (m *Model) Init() tea.Cmd {
	return tea.Batch(
		m.dialogs.Init(),
		m.listenForEvents(),
	)
}

// Update handles all TUI updates
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	if event, ok := msg.(events.Event); ok {
		cmd := m.handleEvent(event)
		return m, tea.Batch(cmd, m.listenForEvents())
	}

	m.status.Update(msg)

	// An open dialog owns the keyboard.
	if m.dialogs.IsDialogOpen() {
		model, cmd := m.dialogs.Update(msg)
		if dm, ok := model.(*dialog.Manager); ok {
			m.dialogs = dm
		}
		cmds = append(cmds, cmd)
		if _, ok := msg.(tea.KeyMsg); ok {
			return m, tea.Batch(cmds...)
		}
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.session.SetWindow(max(1, m.height-chromeRows))
		m.status.SetSize(m.width)
		cmds = append(cmds, m.dialogs.SetSize(m.width, m.height))

	case tea.KeyPressMsg:
		cmds = append(cmds, m.handleKey(msg))
	}

	return m, tea.Batch(cmds...)
}

func (m *Model) handleKey(msg tea.KeyPressMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Quit):
		if m.session.Ledger().Dirty() {
			return m.dialogs.OpenDialog(dialog.QuitDialogType)
		}
		return tea.Quit

	case key.Matches(msg, m.keys.Help):
		return m.dialogs.OpenDialog(dialog.HelpDialogType)

	case key.Matches(msg, m.keys.Save):
		return m.saveStore()

	case key.Matches(msg, m.keys.Up):
		m.session.MoveUp()

	case key.Matches(msg, m.keys.Down):
		m.session.MoveDown()

	case key.Matches(msg, m.keys.TogglePane):
		m.session.TogglePane()

	case key.Matches(msg, m.keys.Activate):
		if leaf := m.session.Activate(); leaf != nil {
			m.editing = leaf
			m.dialogs.SetSetting(leaf.Key, leaf.DisplayValue, leaf.EnvVar, leaf.Comment)
			return m.dialogs.OpenDialog(dialog.EditDialogType)
		}
		m.status.SetPath(m.session.Breadcrumb())

	case key.Matches(msg, m.keys.Back):
		switch m.session.Back() {
		case session.ExitClean:
			return tea.Quit
		case session.ExitConfirm:
			return m.dialogs.OpenDialog(dialog.QuitDialogType)
		}
		m.status.SetPath(m.session.Breadcrumb())
	}

	return nil
}

func (m *Model) handleEvent(event events.Event) tea.Cmd {
	switch event.Type {
	case events.DialogCloseEvent:
		if payload, ok := event.Payload.(events.DialogPayload); ok {
			return m.handleDialogClose(payload)
		}

	case events.StatusMessageEvent:
		if payload, ok := event.Payload.(events.StatusMessagePayload); ok {
			return m.status.SetMessage(payload.Message, payload.Type)
		}

	case events.ValueEditedEvent:
		if payload, ok := event.Payload.(events.EditPayload); ok {
			return m.status.SetMessage(
				fmt.Sprintf("%s = %s (unsaved)", payload.Identity, payload.Value), "info")
		}

	case events.StoreSavedEvent:
		if payload, ok := event.Payload.(events.SavePayload); ok {
			return m.status.SetMessage(
				fmt.Sprintf("wrote %d entries to %s", payload.Entries, payload.Path), "success")
		}
	}

	return nil
}

func (m *Model) handleDialogClose(payload events.DialogPayload) tea.Cmd {
	switch dialog.DialogType(payload.DialogID) {
	case dialog.EditDialogType:
		leaf := m.editing
		m.editing = nil
		value, _ := payload.Data.(string)
		if m.session.ApplyEdit(leaf, value) {
			m.eventBroker.PublishAsync(events.Event{
				Type: events.ValueEditedEvent,
				Payload: events.EditPayload{
					Identity: leaf.Identity(),
					Value:    value,
				},
			})
		}

	case dialog.QuitDialogType:
		switch payload.Data {
		case dialog.QuitSave:
			if err := m.session.Save(); err != nil {
				return m.status.SetMessage(err.Error(), "error")
			}
			return tea.Quit
		case dialog.QuitDiscard:
			return tea.Quit
		}
	}

	return nil
}

func (m *Model) saveStore() tea.Cmd {
	led := m.session.Ledger()
	if err := led.Persist(); err != nil {
		return m.status.SetMessage(err.Error(), "error")
	}
	m.eventBroker.PublishAsync(events.Event{
		Type: events.StoreSavedEvent,
		Payload: events.SavePayload{
			Path:    led.Path(),
			Entries: led.Len(),
		},
	})
	return nil
}

func (m *Model) listenForEvents() tea.Cmd {
	return func() tea.Msg {
		return <-m.eventSub
	}
}

// View renders the UI
func (m *Model) View() tea.View {
	if m.width <= 0 || m.height <= 0 {
		return tea.NewView("")
	}

	if m.dialogs.IsDialogOpen() {
		return tea.NewView(m.dialogs.View())
	}

	navWidth := m.width / 3
	editWidth := m.width - navWidth - 1
	listHeight := max(1, m.height-chromeRows)

	nav := m.renderNavPane(navWidth, listHeight)
	edit := m.renderEditPane(editWidth, listHeight)

	divider := styles.Divider.Render(
		strings.TrimSuffix(strings.Repeat("│\n", listHeight+2), "\n"))

	panes := lipgloss.JoinHorizontal(lipgloss.Top, nav, divider, edit)

	s := panes + "\n" + m.status.View() + "\n" + m.helpLine()
	return tea.NewView(s)
}

func (m *Model) renderNavPane(width, height int) string {
	title := styles.PaneTitleInactive
	if m.session.Pane() == session.NavPane {
		title = styles.PaneTitle
	}

	cursor, offset := m.session.NavCursor()
	var rows []string
	for i, node := range m.session.Sections() {
		line := "  " + node.Key
		if node.Comment != "" {
			line += " " + node.Comment
		}
		rows = append(rows, m.renderRow(line, width,
			m.session.Pane() == session.NavPane && i == cursor))
	}

	return m.renderPane(title.Render("Navigation"), rows, width, height, offset)
}

func (m *Model) renderEditPane(width, height int) string {
	title := styles.PaneTitleInactive
	if m.session.Pane() == session.EditPane {
		title = styles.PaneTitle
	}

	cursor, offset := m.session.EditCursor()
	var rows []string
	for i, node := range m.session.Settings() {
		selected := m.session.Pane() == session.EditPane && i == cursor
		if selected {
			line := node.Key + ": " + node.DisplayValue
			if node.EnvVar != "" {
				line += " ($" + node.EnvVar + ")"
			}
			rows = append(rows, m.renderRow(line, width, true))
			continue
		}
		line := styles.Row.Render(node.Key+": "+node.DisplayValue)
		if node.EnvVar != "" {
			line += styles.EnvVar.Render(" ($" + node.EnvVar + ")")
		}
		if node.Comment != "" {
			line += " " + styles.Comment.Render(node.Comment)
		}
		rows = append(rows, lipgloss.NewStyle().MaxWidth(width).Render(line))
	}

	return m.renderPane(title.Render("Properties"), rows, width, height, offset)
}

// renderRow styles one list row; selected rows drop their accent colors
// for the inverse bar, like the original curses highlight.
func (m *Model) renderRow(line string, width int, selected bool) string {
	style := styles.Row
	if selected {
		style = styles.Selected
	}
	return lipgloss.NewStyle().MaxWidth(width).Render(style.Render(line))
}

// renderPane assembles title, spacer, and the visible window of rows,
// padded to a fixed height so the panes stay aligned.
func (m *Model) renderPane(title string, rows []string, width, height, offset int) string {
	visible := rows
	if offset < len(rows) {
		visible = rows[offset:]
	} else {
		visible = nil
	}
	if len(visible) > height {
		visible = visible[:height]
	}

	lines := append([]string{" " + title, ""}, visible...)
	for len(lines) < height+2 {
		lines = append(lines, "")
	}

	pane := lipgloss.NewStyle().Width(width)
	return pane.Render(strings.Join(lines, "\n"))
}

func (m *Model) helpLine() string {
	bindings := []key.Binding{
		m.keys.Up, m.keys.Down, m.keys.TogglePane, m.keys.Activate,
		m.keys.Back, m.keys.Save, m.keys.Help,
	}
	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		parts = append(parts, h.Key+" "+h.Desc)
	}
	return styles.Help.Render(" " + strings.Join(parts, " • "))
}

package events

// EventType identifies the type of event
type EventType string

const (
	// UI events
	StatusMessageEvent EventType = "ui.status"
	DialogOpenEvent    EventType = "ui.dialog.open"
	DialogCloseEvent   EventType = "ui.dialog.close"

	// Ledger events
	ValueEditedEvent EventType = "value.edited"
	StoreSavedEvent  EventType = "store.saved"
)

// Event is a single message routed through the broker
type Event struct {
	Type    EventType
	Payload any
}

// StatusMessagePayload carries a transient status bar message
type StatusMessagePayload struct {
	Message string
	Type    string // "info", "success", "error"
}

// DialogPayload accompanies dialog open/close events
type DialogPayload struct {
	DialogID string
	Data     any
}

// EditPayload accompanies a recorded value edit
type EditPayload struct {
	Identity string
	Value    string
}

// SavePayload accompanies a store write
type SavePayload struct {
	Path    string
	Entries int
}

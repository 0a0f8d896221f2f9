// Package session holds the navigation and edit state machine for one
// editing session: current tree position, active pane, per-pane cursor and
// scroll state. It is deliberately free of terminal concerns; the TUI
// layer translates key events into these transitions, and every value
// mutation goes through here to the ledger.
package session

import (
	"github.com/envtree/envtree/internal/document"
	"github.com/envtree/envtree/internal/ledger"
)

// Pane identifies which of the two panes owns the cursor.
type Pane int

const (
	// NavPane lists the non-leaf children of the current node.
	NavPane Pane = iota
	// EditPane lists the leaf children of the current node.
	EditPane
)

// ExitAction is what a Back transition at the root asks of the caller.
type ExitAction int

const (
	// ExitNone means the transition was handled internally.
	ExitNone ExitAction = iota
	// ExitClean means the session may end, nothing unsaved.
	ExitClean
	// ExitConfirm means there are unsaved changes to resolve first.
	ExitConfirm
)

// Session is the explicit, single-owner state of one editing session.
type Session struct {
	root    *document.Node
	current *document.Node
	ledger  *ledger.Ledger

	pane       Pane
	navCursor  int
	editCursor int
	navOffset  int
	editOffset int
	window     int // visible rows per pane list
}

// New starts a session at the root of doc with led as its change ledger.
func New(root *document.Node, led *ledger.Ledger) *Session {
	return &Session{root: root, current: root, ledger: led, window: 1}
}

// Root returns the document root.
func (s *Session) Root() *document.Node { return s.root }

// Current returns the tree position being browsed.
func (s *Session) Current() *document.Node { return s.current }

// Ledger returns the change ledger edits write through to.
func (s *Session) Ledger() *ledger.Ledger { return s.ledger }

// Pane returns the active pane.
func (s *Session) Pane() Pane { return s.pane }

// NavCursor returns cursor and scroll offset for the navigation pane.
func (s *Session) NavCursor() (cursor, offset int) { return s.navCursor, s.navOffset }

// EditCursor returns cursor and scroll offset for the settings pane.
func (s *Session) EditCursor() (cursor, offset int) { return s.editCursor, s.editOffset }

// Sections lists the navigable children of the current position.
func (s *Session) Sections() []*document.Node { return s.current.Sections() }

// Settings lists the editable children of the current position.
func (s *Session) Settings() []*document.Node { return s.current.Settings() }

// Breadcrumb returns the path identity of the current position.
func (s *Session) Breadcrumb() string { return s.current.Path() }

// SetWindow sets how many list rows each pane can show. The scroll
// offsets are re-clamped so the cursors stay visible after a resize.
func (s *Session) SetWindow(rows int) {
	if rows < 1 {
		rows = 1
	}
	s.window = rows
	s.follow(&s.navCursor, &s.navOffset)
	s.follow(&s.editCursor, &s.editOffset)
}

// MoveUp moves the active pane's cursor one row up, clamped at the top.
func (s *Session) MoveUp() {
	cursor, offset := s.active()
	if *cursor > 0 {
		*cursor--
	}
	s.follow(cursor, offset)
}

// MoveDown moves the active pane's cursor one row down, clamped at the
// last item. No wraparound; an empty pane is a no-op.
func (s *Session) MoveDown() {
	count := s.activeCount()
	cursor, offset := s.active()
	if *cursor < count-1 {
		*cursor++
	}
	s.follow(cursor, offset)
}

// TogglePane switches between the navigation and settings panes. Both
// cursors and scroll offsets reset to the top, same as descending or
// ascending a level.
func (s *Session) TogglePane() {
	if s.pane == NavPane {
		s.pane = EditPane
	} else {
		s.pane = NavPane
	}
	s.resetCursors()
}

// Activate acts on the selected item. In the navigation pane it descends
// into the selected section and returns nil; in the settings pane it
// returns the selected leaf for the caller to edit. Empty panes are a
// no-op either way.
func (s *Session) Activate() *document.Node {
	if s.pane == EditPane {
		items := s.Settings()
		if len(items) == 0 || s.editCursor >= len(items) {
			return nil
		}
		return items[s.editCursor]
	}
	items := s.Sections()
	if len(items) == 0 || s.navCursor >= len(items) {
		return nil
	}
	s.current = items[s.navCursor]
	s.resetCursors()
	return nil
}

// Back retreats one step: settings pane to navigation pane, otherwise one
// level up the tree. At the root it requests session exit, with
// confirmation when the ledger holds unsaved changes.
func (s *Session) Back() ExitAction {
	if s.pane == EditPane {
		s.pane = NavPane
		return ExitNone
	}
	if s.current.Parent != nil {
		s.current = s.current.Parent
		s.resetCursors()
		return ExitNone
	}
	if s.ledger.Dirty() {
		return ExitConfirm
	}
	return ExitClean
}

// ApplyEdit records value for leaf under its environment-variable binding
// or path identity and updates the displayed value. Empty input means
// "no change", not a clear.
func (s *Session) ApplyEdit(leaf *document.Node, value string) bool {
	if leaf == nil || value == "" {
		return false
	}
	leaf.DisplayValue = value
	s.ledger.Record(leaf.Identity(), value)
	return true
}

// Save persists the ledger's current snapshot to the store.
func (s *Session) Save() error {
	return s.ledger.Persist()
}

func (s *Session) active() (cursor, offset *int) {
	if s.pane == EditPane {
		return &s.editCursor, &s.editOffset
	}
	return &s.navCursor, &s.navOffset
}

func (s *Session) activeCount() int {
	if s.pane == EditPane {
		return len(s.Settings())
	}
	return len(s.Sections())
}

// follow drags the scroll offset along so the cursor stays inside the
// visible window.
func (s *Session) follow(cursor, offset *int) {
	if *cursor < *offset {
		*offset = *cursor
	}
	if *cursor >= *offset+s.window {
		*offset = *cursor - s.window + 1
	}
}

func (s *Session) resetCursors() {
	s.navCursor, s.editCursor = 0, 0
	s.navOffset, s.editOffset = 0, 0
}

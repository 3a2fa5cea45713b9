package dashboard

import "sync"

// MenuState tracks the one row whose action menu is open. Opening a row
// closes any other.
type MenuState struct {
	mu   sync.Mutex
	open string
}

// Toggle opens the menu of id, or closes it when it is already open.
func (m *MenuState) Toggle(id string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.open == id {
		m.open = ""

		return
	}
	m.open = id
}

// ClickOutside closes whatever menu is open.
func (m *MenuState) ClickOutside() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.open = ""
}

// Open returns the id of the open menu, or "" when none is.
func (m *MenuState) Open() string {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.open
}

// IsOpen reports whether id is the open row.
func (m *MenuState) IsOpen(id string) bool {
	return id != "" && m.Open() == id
}

// Package session holds the single active identity and the navigation
// state attached to it. The manager has two states: logged out (no
// identity) and logged in. At most one identity is active at a time.
package session

import (
	"sync"
	"time"

	"github.com/stemsi/schoolms-backend/internal/model"
)

// HistoryEntry records one navigation event. The history is append-only
// telemetry: it is never truncated and never used for back-navigation.
type HistoryEntry struct {
	View      string            `json:"view"`
	Params    map[string]string `json:"params"`
	Timestamp time.Time         `json:"timestamp"`
}

// Manager tracks the active identity, the current view and the
// navigation history.
type Manager struct {
	mu       sync.RWMutex
	identity *model.Identity
	view     string
	params   map[string]string
	history  []HistoryEntry
}

// NewManager returns a logged-out manager.
func NewManager() *Manager {
	return &Manager{view: "dashboard"}
}

// Login activates the given identity and resets navigation to the
// dashboard. Any previous identity is replaced.
func (m *Manager) Login(identity *model.Identity) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.identity = identity
	m.view = "dashboard"
	m.params = nil
}

// Logout clears the identity and all navigation state unconditionally.
func (m *Manager) Logout() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.identity = nil
	m.view = "dashboard"
	m.params = nil
	m.history = nil
}

// Current returns the active identity, or nil when logged out.
func (m *Manager) Current() *model.Identity {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.identity
}

// RecordNavigation appends a history entry and sets the current view.
func (m *Manager) RecordNavigation(view string, params map[string]string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.view = view
	m.params = params
	m.history = append(m.history, HistoryEntry{
		View:      view,
		Params:    params,
		Timestamp: time.Now(),
	})
}

// CurrentView returns the current view name and parameters.
func (m *Manager) CurrentView() (string, map[string]string) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.view, m.params
}

// History returns a copy of the navigation history.
func (m *Manager) History() []HistoryEntry {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]HistoryEntry, len(m.history))
	copy(out, m.history)
	return out
}

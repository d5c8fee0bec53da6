package state

import (
	"sync"

	"github.com/vladimiradmaev/health-diary-bot/internal/domain"
)

// Manager tracks the pending entry for each chat and hands out the per-chat
// locks that serialize message handling. States live in memory for the
// process lifetime.
type Manager struct {
	mu       sync.Mutex
	pending  map[int64]domain.PendingEntry
	chatLock map[int64]*sync.Mutex
}

// NewManager creates a new state manager.
func NewManager() *Manager {
	return &Manager{
		pending:  make(map[int64]domain.PendingEntry),
		chatLock: make(map[int64]*sync.Mutex),
	}
}

// SetPending records which kind of free-text reply is expected next.
func (m *Manager) SetPending(chatID int64, entry domain.PendingEntry) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.pending[chatID] = entry
}

// Pending returns the chat's pending entry, if any.
func (m *Manager) Pending(chatID int64) (domain.PendingEntry, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	entry, ok := m.pending[chatID]
	return entry, ok
}

// ClearPending removes the chat's pending entry.
func (m *Manager) ClearPending(chatID int64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.pending, chatID)
}

// LockChat acquires the chat's handling lock and returns the unlock func.
// The lock covers the whole read-state, parse, append, reply sequence so
// rapid messages from one chat cannot interleave; different chats are never
// blocked by each other's lock.
func (m *Manager) LockChat(chatID int64) func() {
	m.mu.Lock()
	lock, ok := m.chatLock[chatID]
	if !ok {
		lock = &sync.Mutex{}
		m.chatLock[chatID] = lock
	}
	m.mu.Unlock()

	lock.Lock()
	return lock.Unlock
}

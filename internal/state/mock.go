// internal/state/mock.go
package state

import "sync"

// Memory is an in-process Storage, used when persistence is disabled and in tests.
type Memory struct {
	mu     sync.Mutex
	items  map[string]string
	writes int
}

// NewMemory creates an empty memory storage.
func NewMemory() *Memory {
	return &Memory{items: make(map[string]string)}
}

func (m *Memory) GetItem(key string) (string, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.items[key]
	return v, ok
}

func (m *Memory) SetItem(key, value string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.items[key] = value
	m.writes++
}

// Test helpers

// Writes returns how many times SetItem was called.
func (m *Memory) Writes() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.writes
}

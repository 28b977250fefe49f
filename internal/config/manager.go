package config

import (
	"sync"
)

// Observer is called with the new configuration after a reload.
type Observer func(File)

// Subscription is an active observer registration.
type Subscription struct {
	id      uint64
	manager *Manager
}

// Unsubscribe removes the observer.
func (s *Subscription) Unsubscribe() {
	if s.manager != nil {
		s.manager.unsubscribe(s.id)
		s.manager = nil
	}
}

// Manager holds the live configuration and fans reloads out to
// subscribers.
type Manager struct {
	mu sync.RWMutex

	path      string
	current   File
	observers map[uint64]Observer
	nextID    uint64
}

// NewManager creates a manager for the configuration at path, loading
// it immediately. A load failure falls back to the defaults and is
// returned so the caller can log it.
func NewManager(path string) (*Manager, error) {
	f, err := Load(path)
	m := &Manager{
		path:      path,
		current:   f,
		observers: make(map[uint64]Observer),
	}
	return m, err
}

// Current returns the live configuration snapshot.
func (m *Manager) Current() File {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.current
}

// Path returns the configuration file path.
func (m *Manager) Path() string {
	return m.path
}

// Subscribe registers an observer for reloads. The observer is not
// called with the current configuration; read Current for that.
func (m *Manager) Subscribe(obs Observer) *Subscription {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.nextID++
	id := m.nextID
	m.observers[id] = obs
	return &Subscription{id: id, manager: m}
}

// Reload re-reads the file and notifies subscribers. On failure the
// previous configuration stays active.
func (m *Manager) Reload() error {
	f, err := Load(m.path)
	if err != nil {
		return err
	}

	m.mu.Lock()
	m.current = f
	obs := make([]Observer, 0, len(m.observers))
	for _, o := range m.observers {
		obs = append(obs, o)
	}
	m.mu.Unlock()

	for _, o := range obs {
		o(f)
	}
	return nil
}

func (m *Manager) unsubscribe(id uint64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.observers, id)
}

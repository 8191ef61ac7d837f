package winreg

import "sync"

// MemStore is an in-memory Store used by tests.
type MemStore struct {
	mu     sync.Mutex
	values map[string]string
}

// NewMemStore returns a store seeded with the given values. A nil seed
// yields an empty store.
func NewMemStore(seed map[string]string) *MemStore {
	m := &MemStore{values: make(map[string]string, len(seed))}
	for k, v := range seed {
		m.values[k] = v
	}
	return m
}

func (m *MemStore) GetString(name string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.values[name]
	if !ok {
		return "", ErrNotExist
	}
	return v, nil
}

func (m *MemStore) SetString(name, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[name] = value
	return nil
}

func (m *MemStore) Close() error { return nil }

// Values returns a snapshot of the current contents.
func (m *MemStore) Values() map[string]string {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make(map[string]string, len(m.values))
	for k, v := range m.values {
		out[k] = v
	}
	return out
}

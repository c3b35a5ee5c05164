package storage

// MemStore is an in-memory Store used by tests and by callers that
// want scheduling logic without persistence. The zero value is not
// usable; call NewMemStore.
type MemStore struct {
	data map[string]string
	// FailWrites makes Set and Remove report failure, for exercising
	// the degraded-storage paths.
	FailWrites bool
}

func NewMemStore() *MemStore {
	return &MemStore{data: make(map[string]string)}
}

func (m *MemStore) Get(key string) (string, bool) {
	v, ok := m.data[key]
	return v, ok
}

func (m *MemStore) Set(key, value string) bool {
	if m.FailWrites {
		return false
	}
	m.data[key] = value
	return true
}

func (m *MemStore) Remove(key string) bool {
	if m.FailWrites {
		return false
	}
	delete(m.data, key)
	return true
}

package storage

import (
	"fmt"
	"sync"
)

// KV is a byte-oriented key/value store. Load returns nil, nil for a key
// that has never been saved.
type KV interface {
	Load(key string) ([]byte, error)
	Save(key string, data []byte) error
}

// Updater is implemented by stores that can read and rewrite a key
// atomically with respect to other writers.
type Updater interface {
	Update(key string, fn func(old []byte) ([]byte, error)) error
}

// Update applies fn to the current value of key and saves the result.
// Stores implementing Updater do this atomically; for others it is a plain
// load followed by a save. If fn returns an error nothing is saved.
func Update(kv KV, key string, fn func(old []byte) ([]byte, error)) error {
	if u, ok := kv.(Updater); ok {
		return u.Update(key, fn)
	}

	old, err := kv.Load(key)
	if err != nil {
		return err
	}
	data, err := fn(old)
	if err != nil {
		return err
	}
	return kv.Save(key, data)
}

// MemoryStore is an in-memory KV, safe for concurrent use. It backs tests
// and runs where nothing should touch the disk.
type MemoryStore struct {
	mu   sync.Mutex
	data map[string][]byte
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{data: make(map[string][]byte)}
}

// Load returns a copy of the value stored under key.
func (m *MemoryStore) Load(key string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	v, ok := m.data[key]
	if !ok {
		return nil, nil
	}
	return append([]byte(nil), v...), nil
}

// Save stores a copy of data under key.
func (m *MemoryStore) Save(key string, data []byte) error {
	if key == "" {
		return fmt.Errorf("storage: empty key")
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = append([]byte(nil), data...)
	return nil
}

// Update implements Updater.
func (m *MemoryStore) Update(key string, fn func(old []byte) ([]byte, error)) error {
	if key == "" {
		return fmt.Errorf("storage: empty key")
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	var old []byte
	if v, ok := m.data[key]; ok {
		old = append([]byte(nil), v...)
	}
	data, err := fn(old)
	if err != nil {
		return err
	}
	m.data[key] = append([]byte(nil), data...)
	return nil
}

var (
	_ KV      = (*MemoryStore)(nil)
	_ Updater = (*MemoryStore)(nil)
)

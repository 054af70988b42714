package storage

import (
	"context"
	"strconv"
	"sync"
	"time"
)

// MemoryKV is an in-process KV backend used for demo mode and tests.
// Expirations are checked lazily on access.
type MemoryKV struct {
	mu      sync.RWMutex
	data    map[string]string
	expires map[string]time.Time
}

func NewMemoryKV() *MemoryKV {
	return &MemoryKV{
		data:    make(map[string]string),
		expires: make(map[string]time.Time),
	}
}

func (m *MemoryKV) expired(key string) bool {
	deadline, ok := m.expires[key]
	return ok && time.Now().After(deadline)
}

func (m *MemoryKV) Get(_ context.Context, key string) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	val, ok := m.data[key]
	if !ok || m.expired(key) {
		return "", ErrKeyMissing
	}
	return val, nil
}

func (m *MemoryKV) Set(_ context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.data[key] = value
	delete(m.expires, key)
	return nil
}

func (m *MemoryKV) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.data, key)
	delete(m.expires, key)
	return nil
}

func (m *MemoryKV) Exists(_ context.Context, key string) (bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	_, ok := m.data[key]
	return ok && !m.expired(key), nil
}

func (m *MemoryKV) Clear(_ context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.data = make(map[string]string)
	m.expires = make(map[string]time.Time)
	return nil
}

func (m *MemoryKV) Incr(_ context.Context, key string) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.expired(key) {
		delete(m.data, key)
		delete(m.expires, key)
	}

	var n int64
	if val, ok := m.data[key]; ok {
		n, _ = strconv.ParseInt(val, 10, 64)
	}
	n++
	m.data[key] = strconv.FormatInt(n, 10)
	return n, nil
}

func (m *MemoryKV) Expire(_ context.Context, key string, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.data[key]; ok {
		m.expires[key] = time.Now().Add(ttl)
	}
	return nil
}

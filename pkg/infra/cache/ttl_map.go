package cache

import (
	"sync"
	"time"
)

type ttlEntry[V any] struct {
	value     V
	expiresAt time.Time
}

// TTLMap is a process-local map whose entries expire after a fixed TTL.
// Expired entries are removed lazily on access.
type TTLMap[V any] struct {
	mu   sync.RWMutex
	data map[string]ttlEntry[V]
	ttl  time.Duration
	now  func() time.Time
}

func NewTTLMap[V any](ttl time.Duration) *TTLMap[V] {
	return &TTLMap[V]{
		data: make(map[string]ttlEntry[V]),
		ttl:  ttl,
		now:  time.Now,
	}
}

func (m *TTLMap[V]) Get(key string) (V, bool) {
	m.mu.RLock()
	entry, exists := m.data[key]
	m.mu.RUnlock()

	var zero V
	if !exists {
		return zero, false
	}
	if m.now().After(entry.expiresAt) {
		m.mu.Lock()
		if current, ok := m.data[key]; ok && m.now().After(current.expiresAt) {
			delete(m.data, key)
		}
		m.mu.Unlock()
		return zero, false
	}
	return entry.value, true
}

func (m *TTLMap[V]) Set(key string, value V) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = ttlEntry[V]{value: value, expiresAt: m.now().Add(m.ttl)}
}

func (m *TTLMap[V]) Delete(key string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, key)
}

func (m *TTLMap[V]) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data = make(map[string]ttlEntry[V])
}

func (m *TTLMap[V]) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.data)
}

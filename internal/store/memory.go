package store

import (
	"context"
	"sync"
)

// MemoryBlobs is an in-process BlobStore. Nothing survives the process.
type MemoryBlobs struct {
	mu   sync.Mutex
	data map[string]string
}

// NewMemoryBlobs returns an empty MemoryBlobs.
func NewMemoryBlobs() *MemoryBlobs {
	return &MemoryBlobs{data: make(map[string]string)}
}

func (m *MemoryBlobs) Read(_ context.Context, key string) (string, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.data[key]
	return v, ok, nil
}

func (m *MemoryBlobs) Write(_ context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = value
	return nil
}

package store

import (
	"context"
	"fmt"
	"sync"
)

// Memory is a process-local Persistence. The zero value is ready to use.
type Memory struct {
	mu    sync.Mutex
	blobs map[string][]byte
	err   error
}

// NewMemory returns an empty Memory.
func NewMemory() *Memory {
	return &Memory{}
}

// Fail makes every later Read and Write fail with err wrapped in
// ErrUnavailable. A nil err restores normal operation.
func (m *Memory) Fail(err error) {
	m.mu.Lock()
	m.err = err
	m.mu.Unlock()
}

func (m *Memory) Read(_ context.Context, key string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnavailable, m.err)
	}
	v, ok := m.blobs[key]
	if !ok {
		return nil, ErrKeyNotFound
	}
	return append([]byte(nil), v...), nil
}

func (m *Memory) Write(_ context.Context, key string, data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return fmt.Errorf("%w: %w", ErrUnavailable, m.err)
	}
	if m.blobs == nil {
		m.blobs = make(map[string][]byte)
	}
	m.blobs[key] = append([]byte(nil), data...)
	return nil
}

func (m *Memory) Close() error { return nil }

func (m *Memory) Describe() string { return "memory" }

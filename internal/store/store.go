// Package store provides the key→JSON-blob persistence contract the core
// reads and writes through. Every driver stores opaque blobs under logical
// keys (products, sessions, settings, logo); no driver knows the shape of
// what it holds.
package store

import (
	"context"
	"errors"
	"sync"
)

// ErrNotFound is returned by Get when the key has never been set.
var ErrNotFound = errors.New("store: key not found")

// Logical keys written by the repositories.
const (
	KeyProducts = "products"
	KeySessions = "sessions"
	KeySettings = "settings"
	KeyLogo     = "logo"
)

// BlobStore is the persistence collaborator contract.
type BlobStore interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, blob []byte) error
	// Ping reports backend connectivity for health checks.
	Ping(ctx context.Context) error
}

// MemoryStore is the in-process driver, used by tests and as a zero-setup
// development default.
type MemoryStore struct {
	mu    sync.RWMutex
	blobs map[string][]byte
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{blobs: make(map[string][]byte)}
}

func (m *MemoryStore) Get(_ context.Context, key string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	blob, ok := m.blobs[key]
	if !ok {
		return nil, ErrNotFound
	}
	out := make([]byte, len(blob))
	copy(out, blob)
	return out, nil
}

func (m *MemoryStore) Set(_ context.Context, key string, blob []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	stored := make([]byte, len(blob))
	copy(stored, blob)
	m.blobs[key] = stored
	return nil
}

func (m *MemoryStore) Ping(_ context.Context) error { return nil }

var _ BlobStore = (*MemoryStore)(nil)

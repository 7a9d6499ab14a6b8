package storage

import (
	"context"
	"sort"
	"sync"
)

// MemoryStore keeps every namespace in process memory. It backs tests and
// KV_BACKEND=memory; nothing survives a restart.
type MemoryStore struct {
	mu         sync.Mutex
	namespaces map[string]map[string]string
}

// NewMemoryStore creates an empty in-memory store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		namespaces: map[string]map[string]string{},
	}
}

// Namespace returns the backend for name, creating it on first use
func (s *MemoryStore) Namespace(name string) Backend {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.namespaces[name]; !ok {
		s.namespaces[name] = map[string]string{}
	}
	return &memoryNamespace{store: s, name: name}
}

func (s *MemoryStore) Ping(ctx context.Context) error { return ctx.Err() }

func (s *MemoryStore) Close() error { return nil }

type memoryNamespace struct {
	store *MemoryStore
	name  string
}

func (n *memoryNamespace) Get(ctx context.Context, key string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	n.store.mu.Lock()
	defer n.store.mu.Unlock()
	value, ok := n.store.namespaces[n.name][key]
	if !ok {
		return "", &KeyNotFoundError{Namespace: n.name, Key: key}
	}
	return value, nil
}

func (n *memoryNamespace) Put(ctx context.Context, key, value string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	n.store.mu.Lock()
	defer n.store.mu.Unlock()
	n.store.namespaces[n.name][key] = value
	return nil
}

func (n *memoryNamespace) Delete(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	n.store.mu.Lock()
	defer n.store.mu.Unlock()
	delete(n.store.namespaces[n.name], key)
	return nil
}

func (n *memoryNamespace) List(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	n.store.mu.Lock()
	defer n.store.mu.Unlock()
	keys := make([]string, 0, len(n.store.namespaces[n.name]))
	for key := range n.store.namespaces[n.name] {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys, nil
}

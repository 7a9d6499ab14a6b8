package storage

import (
	"context"
	"errors"
	"fmt"
)

// Backend is a single key-value namespace. Writes are last-writer-wins per key and
// nothing spans more than one key.
type Backend interface {
	// Get returns the raw stored payload or a *KeyNotFoundError.
	Get(ctx context.Context, key string) (string, error)
	// Put creates or overwrites the value at key.
	Put(ctx context.Context, key, value string) error
	// Delete removes key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error
	// List enumerates every key in the namespace. Order is not part of the contract.
	List(ctx context.Context) ([]string, error)
}

// Store hands out namespaced backends over one underlying connection.
type Store interface {
	Namespace(name string) Backend
	Ping(ctx context.Context) error
	Close() error
}

// KeyNotFoundError is returned by Get when the key has no value.
type KeyNotFoundError struct {
	Namespace string
	Key       string
}

func (e *KeyNotFoundError) Error() string {
	return fmt.Sprintf("KEY_NOT_FOUND: Key '%s' not found in namespace '%s'", e.Key, e.Namespace)
}

// IsKeyNotFoundError checks if an error is a missing key error
func IsKeyNotFoundError(err error) bool {
	var target *KeyNotFoundError
	return errors.As(err, &target)
}

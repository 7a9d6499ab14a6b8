package services

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"rollout-config/src/storage"

	"github.com/stretchr/testify/require"
)

// droppingBackend accepts writes without storing them.
type droppingBackend struct {
	storage.Backend
}

func (droppingBackend) Put(ctx context.Context, key, value string) error { return nil }

// corruptingBackend stores something other than what was written.
type corruptingBackend struct {
	storage.Backend
}

func (b corruptingBackend) Put(ctx context.Context, key, value string) error {
	return b.Backend.Put(ctx, key, "{not json")
}

var errBackendDown = errors.New("backend down")

// failingBackend fails the selected operations.
type failingBackend struct {
	storage.Backend
	failGet  bool
	failPut  bool
	failList bool
	puts     int
}

func (b *failingBackend) Get(ctx context.Context, key string) (string, error) {
	if b.failGet {
		return "", errBackendDown
	}
	return b.Backend.Get(ctx, key)
}

func (b *failingBackend) Put(ctx context.Context, key, value string) error {
	b.puts++
	if b.failPut {
		return errBackendDown
	}
	return b.Backend.Put(ctx, key, value)
}

func (b *failingBackend) Delete(ctx context.Context, key string) error {
	if b.failPut {
		return errBackendDown
	}
	return b.Backend.Delete(ctx, key)
}

func (b *failingBackend) List(ctx context.Context) ([]string, error) {
	if b.failList {
		return nil, errBackendDown
	}
	return b.Backend.List(ctx)
}

// sequenceIDs hands out id-1, id-2, ...
type sequenceIDs struct {
	n int
}

func (s *sequenceIDs) NewID() string {
	s.n++
	return fmt.Sprintf("id-%d", s.n)
}

func newValidationService(t *testing.T) *ValidationService {
	t.Helper()
	vs, err := NewValidationService()
	require.NoError(t, err)
	return vs
}

func mustKeys(t *testing.T, backend storage.Backend) []string {
	t.Helper()
	keys, err := backend.List(context.Background())
	require.NoError(t, err)
	return keys
}

package services

import (
	"context"
	"encoding/json"
	"testing"

	"rollout-config/src/models"
	"rollout-config/src/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseKeys(t *testing.T) {
	assert.Nil(t, ParseKeys(""))
	assert.Nil(t, ParseKeys(" , ,"))
	assert.Equal(t, []string{"exp1"}, ParseKeys("exp1"))
	assert.Equal(t, []string{"a", "b", "c"}, ParseKeys(" a,b , c,"))
}

func TestReadEntriesTagsOutcomes(t *testing.T) {
	ctx := context.Background()
	backend := storage.NewMemoryStore().Namespace("rollouts")
	require.NoError(t, backend.Put(ctx, "ok", `{"rollout":0.5,"comment":"half"}`))
	require.NoError(t, backend.Put(ctx, "corrupt", `not json`))
	require.NoError(t, backend.Put(ctx, "empty", ``))

	entries, err := readEntries(ctx, backend, []string{"ok", "corrupt", "empty", "absent"})
	require.NoError(t, err)

	assert.Equal(t, models.EntryOK, entries["ok"].State)
	assert.Equal(t, models.EntryCorrupt, entries["corrupt"].State)
	var parseErr *ParseError
	assert.ErrorAs(t, entries["corrupt"].Err, &parseErr)
	assert.Equal(t, "corrupt", parseErr.Key)
	assert.Equal(t, models.EntryMissing, entries["empty"].State)
	assert.Equal(t, models.EntryMissing, entries["absent"].State)

	out, err := json.Marshal(entries)
	require.NoError(t, err)
	assert.JSONEq(t,
		`{"ok":{"rollout":0.5,"comment":"half"},"corrupt":"Invalid JSON","empty":null,"absent":null}`,
		string(out))
}

func TestReadEntriesBackendErrors(t *testing.T) {
	ctx := context.Background()
	inner := storage.NewMemoryStore().Namespace("rollouts")
	require.NoError(t, inner.Put(ctx, "k", `{}`))

	_, err := readEntries(ctx, &failingBackend{Backend: inner, failList: true}, nil)
	assert.ErrorIs(t, err, errBackendDown)

	_, err = readEntries(ctx, &failingBackend{Backend: inner, failGet: true}, []string{"k"})
	assert.ErrorIs(t, err, errBackendDown)
}

func TestVerifyWrite(t *testing.T) {
	ctx := context.Background()
	backend := storage.NewMemoryStore().Namespace("whitelist")
	require.NoError(t, backend.Put(ctx, "k", `{"ipv4":"10.0.0.1"}`))

	value, err := verifyWrite(ctx, backend, "k")
	require.NoError(t, err)
	assert.JSONEq(t, `{"ipv4":"10.0.0.1"}`, string(value))

	_, err = verifyWrite(ctx, backend, "missing")
	require.Error(t, err)
	assert.True(t, IsStorageConsistencyError(err))
	assert.True(t, storage.IsKeyNotFoundError(err), "cause is kept")

	require.NoError(t, backend.Put(ctx, "bad", "{not json"))
	_, err = verifyWrite(ctx, backend, "bad")
	require.Error(t, err)
	assert.True(t, IsStorageConsistencyError(err))
	var parseErr *ParseError
	assert.ErrorAs(t, err, &parseErr, "corrupt read-back keeps the parse failure")
}

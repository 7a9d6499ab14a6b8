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

func newRolloutService(t *testing.T) (*RolloutService, storage.Backend) {
	t.Helper()
	backend := storage.NewMemoryStore().Namespace("rollouts")
	return NewRolloutService(backend, newValidationService(t)), backend
}

func TestRolloutPutThenList(t *testing.T) {
	rs, _ := newRolloutService(t)
	ctx := context.Background()

	stored, err := rs.Put(ctx, "exp1", json.RawMessage(`{ "rollout": 0.25, "comment": "trial" }`))
	require.NoError(t, err)
	assert.Equal(t, "exp1", stored.Key)
	assert.JSONEq(t, `{"rollout":0.25,"comment":"trial"}`, string(stored.Value))

	entries, err := rs.List(ctx, "exp1")
	require.NoError(t, err)
	require.Contains(t, entries, "exp1")
	assert.Equal(t, models.EntryOK, entries["exp1"].State)
	assert.JSONEq(t, `{"rollout":0.25,"comment":"trial"}`, string(entries["exp1"].Value))
}

func TestRolloutPutStoresValueAsGiven(t *testing.T) {
	rs, backend := newRolloutService(t)
	ctx := context.Background()

	// No range clamp and extra fields are kept.
	_, err := rs.Put(ctx, "exp1", json.RawMessage(`{"rollout": 42, "comment": "", "owner": "growth"}`))
	require.NoError(t, err)

	raw, err := backend.Get(ctx, "exp1")
	require.NoError(t, err)
	assert.Equal(t, `{"rollout":42,"comment":"","owner":"growth"}`, raw)
}

func TestRolloutPutOverwrites(t *testing.T) {
	rs, _ := newRolloutService(t)
	ctx := context.Background()

	_, err := rs.Put(ctx, "exp1", json.RawMessage(`{"rollout":0.1,"comment":"a"}`))
	require.NoError(t, err)
	stored, err := rs.Put(ctx, "exp1", json.RawMessage(`{"rollout":0.5,"comment":"b"}`))
	require.NoError(t, err)
	assert.JSONEq(t, `{"rollout":0.5,"comment":"b"}`, string(stored.Value))
}

func TestRolloutPutValidation(t *testing.T) {
	tests := []struct {
		name    string
		key     string
		value   string
		message string
	}{
		{name: "missing key", key: "", value: `{"rollout":0.1,"comment":""}`, message: "Missing key or value"},
		{name: "missing value", key: "exp1", value: ``, message: "Missing key or value"},
		{name: "missing comment", key: "exp1", value: `{"rollout":0.1}`, message: "Value must contain rollout and comment fields"},
		{name: "missing rollout", key: "exp1", value: `{"comment":"x"}`, message: "Value must contain rollout and comment fields"},
		{name: "null value", key: "exp1", value: `null`, message: "Value must contain rollout and comment fields"},
		{name: "array value", key: "exp1", value: `[{"rollout":0.1,"comment":""}]`, message: "Value must contain rollout and comment fields"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rs, backend := newRolloutService(t)

			var value json.RawMessage
			if tt.value != "" {
				value = json.RawMessage(tt.value)
			}

			_, err := rs.Put(context.Background(), tt.key, value)
			require.Error(t, err)
			assert.True(t, IsValidationError(err))
			assert.Equal(t, tt.message, err.Error())
			assert.Empty(t, mustKeys(t, backend), "backend must not be mutated")
		})
	}
}

func TestRolloutPutVerifiesWrite(t *testing.T) {
	backend := droppingBackend{Backend: storage.NewMemoryStore().Namespace("rollouts")}
	rs := NewRolloutService(backend, newValidationService(t))

	_, err := rs.Put(context.Background(), "exp1", json.RawMessage(`{"rollout":0.1,"comment":""}`))
	require.Error(t, err)
	assert.True(t, IsStorageConsistencyError(err))
	assert.Contains(t, err.Error(), `"exp1" not found`)
}

func TestRolloutPutBackendFailure(t *testing.T) {
	backend := &failingBackend{Backend: storage.NewMemoryStore().Namespace("rollouts"), failPut: true}
	rs := NewRolloutService(backend, newValidationService(t))

	_, err := rs.Put(context.Background(), "exp1", json.RawMessage(`{"rollout":0.1,"comment":""}`))
	require.Error(t, err)
	assert.ErrorIs(t, err, errBackendDown)
	assert.False(t, IsStorageConsistencyError(err))
	assert.False(t, IsValidationError(err))
}

func TestRolloutListAll(t *testing.T) {
	rs, backend := newRolloutService(t)
	ctx := context.Background()

	require.NoError(t, backend.Put(ctx, "good", `{"rollout":1,"comment":"full"}`))
	require.NoError(t, backend.Put(ctx, "bad", `{"rollout":`))

	entries, err := rs.List(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, models.EntryOK, entries["good"].State)
	assert.True(t, entries["bad"].Corrupt())

	out, err := json.Marshal(entries)
	require.NoError(t, err)
	assert.JSONEq(t, `{"good":{"rollout":1,"comment":"full"},"bad":"Invalid JSON"}`, string(out))
}

package storage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// runBackendContract exercises the Backend contract against any Store.
func runBackendContract(t *testing.T, store Store) {
	t.Helper()
	ctx := context.Background()

	rollouts := store.Namespace("rollouts")
	whitelist := store.Namespace("whitelist")

	t.Run("get missing key", func(t *testing.T) {
		_, err := rollouts.Get(ctx, "absent")
		require.Error(t, err)
		assert.True(t, IsKeyNotFoundError(err))
	})

	t.Run("put then get", func(t *testing.T) {
		require.NoError(t, rollouts.Put(ctx, "exp1", `{"rollout":0.25,"comment":"trial"}`))

		value, err := rollouts.Get(ctx, "exp1")
		require.NoError(t, err)
		assert.Equal(t, `{"rollout":0.25,"comment":"trial"}`, value)
	})

	t.Run("put overwrites", func(t *testing.T) {
		require.NoError(t, rollouts.Put(ctx, "exp2", `{"rollout":0.1,"comment":""}`))
		require.NoError(t, rollouts.Put(ctx, "exp2", `{"rollout":0.9,"comment":"ramp"}`))

		value, err := rollouts.Get(ctx, "exp2")
		require.NoError(t, err)
		assert.Equal(t, `{"rollout":0.9,"comment":"ramp"}`, value)
	})

	t.Run("namespaces are independent", func(t *testing.T) {
		_, err := whitelist.Get(ctx, "exp1")
		assert.True(t, IsKeyNotFoundError(err))

		require.NoError(t, whitelist.Put(ctx, "exp1", `{"ipv4":"10.0.0.1","ipv6":"","comment":""}`))
		value, err := rollouts.Get(ctx, "exp1")
		require.NoError(t, err)
		assert.Equal(t, `{"rollout":0.25,"comment":"trial"}`, value)
	})

	t.Run("list", func(t *testing.T) {
		keys, err := rollouts.List(ctx)
		require.NoError(t, err)
		assert.ElementsMatch(t, []string{"exp1", "exp2"}, keys)
	})

	t.Run("delete is idempotent", func(t *testing.T) {
		require.NoError(t, whitelist.Delete(ctx, "exp1"))
		require.NoError(t, whitelist.Delete(ctx, "exp1"))

		_, err := whitelist.Get(ctx, "exp1")
		assert.True(t, IsKeyNotFoundError(err))

		keys, err := whitelist.List(ctx)
		require.NoError(t, err)
		assert.Empty(t, keys)
	})

	t.Run("ping", func(t *testing.T) {
		assert.NoError(t, store.Ping(ctx))
	})
}

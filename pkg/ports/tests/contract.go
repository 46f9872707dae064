package tests

import (
	"context"
	"testing"

	"github.com/quinnjr/fish-dating-simulator/pkg/domain"
	"github.com/quinnjr/fish-dating-simulator/pkg/ports"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// PlayerStoreContract is a reusable test suite that verifies an adapter complies with
// ports.PlayerStore. The store must start empty.
func PlayerStoreContract(t *testing.T, store ports.PlayerStore) {
	t.Helper()
	ctx := context.Background()

	sample := func() *domain.PlayerState {
		p := domain.NewPlayerState()
		p.AddCatch(domain.BuiltinID(domain.Bubbles), "Sunny Shallows", domain.SizeLarge)
		p.AddCatch(domain.PluginID("coral"), "Coral's Pond", domain.SizeSmall)
		p.CommitDate(domain.BuiltinID(domain.Bubbles), 9)
		p.CommitDate(domain.PluginID("coral"), 4)
		p.Unlock("ACH_FIRST_CATCH")
		return p
	}

	t.Run("Load_NotFound", func(t *testing.T) {
		_, err := store.Load(ctx, "missing")
		assert.ErrorIs(t, err, domain.ErrSaveNotFound)
	})

	t.Run("Save_And_Load", func(t *testing.T) {
		state := sample()
		require.NoError(t, store.Save(ctx, "alpha", state))

		loaded, err := store.Load(ctx, "alpha")
		require.NoError(t, err)
		assert.Equal(t, state, loaded)
	})

	t.Run("Save_Isolates_Caller", func(t *testing.T) {
		state := sample()
		require.NoError(t, store.Save(ctx, "isolated", state))

		state.AddAffection(domain.BuiltinID(domain.Bubbles), 30)
		loaded, err := store.Load(ctx, "isolated")
		require.NoError(t, err)
		assert.Equal(t, 9, loaded.Relationship(domain.BuiltinID(domain.Bubbles)))

		loaded.Unlock("ACH_SOULMATE")
		again, err := store.Load(ctx, "isolated")
		require.NoError(t, err)
		assert.False(t, again.HasAchievement("ACH_SOULMATE"))
	})

	t.Run("Save_Overwrites", func(t *testing.T) {
		require.NoError(t, store.Save(ctx, "beta", domain.NewPlayerState()))
		next := sample()
		require.NoError(t, store.Save(ctx, "beta", next))

		loaded, err := store.Load(ctx, "beta")
		require.NoError(t, err)
		assert.Equal(t, 2, loaded.DatesCompleted)
	})

	t.Run("List", func(t *testing.T) {
		profiles, err := store.List(ctx)
		require.NoError(t, err)
		assert.Equal(t, []string{"alpha", "beta", "isolated"}, profiles)
	})

	t.Run("Delete", func(t *testing.T) {
		require.NoError(t, store.Delete(ctx, "alpha"))
		_, err := store.Load(ctx, "alpha")
		assert.ErrorIs(t, err, domain.ErrSaveNotFound)

		require.NoError(t, store.Delete(ctx, "alpha"), "deleting twice is not an error")
	})
}

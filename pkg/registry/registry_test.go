package registry_test

import (
	"testing"

	"github.com/quinnjr/fish-dating-simulator/pkg/domain"
	"github.com/quinnjr/fish-dating-simulator/pkg/registry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fish(id, name, pond string) *domain.FishDef {
	return &domain.FishDef{ID: id, Name: name, Species: "Test", PondName: pond}
}

func TestRegistry_FirstRegistrationWins(t *testing.T) {
	r := registry.NewRegistry()

	assert.True(t, r.Register(fish("coral", "First", "Reef")))
	assert.False(t, r.Register(fish("coral", "Second", "Elsewhere")))

	assert.Equal(t, 1, r.Count())
	got, ok := r.Get("coral")
	require.True(t, ok)
	assert.Equal(t, "First", got.Name)
}

func TestRegistry_InsertionOrder(t *testing.T) {
	r := registry.NewRegistry()
	for _, id := range []string{"zeta", "alpha", "mid"} {
		require.True(t, r.Register(fish(id, id, id+" pond")))
	}

	assert.Equal(t, []string{"zeta", "alpha", "mid"}, r.IDs())
	assert.Equal(t, []string{"zeta pond", "alpha pond", "mid pond"}, r.PondNames())

	all := r.All()
	require.Len(t, all, 3)
	assert.Equal(t, "alpha", all[1].ID)
}

func TestRegistry_FishByPond(t *testing.T) {
	r := registry.NewRegistry()
	r.Register(fish("a", "A", "Shared"))
	r.Register(fish("b", "B", "Shared"))
	r.Register(fish("c", "C", "Lonely"))

	got, ok := r.FishByPond("Shared")
	require.True(t, ok)
	assert.Equal(t, "a", got.ID)

	_, ok = r.FishByPond("Nowhere")
	assert.False(t, ok)
}

func TestRegistry_RejectsInvalid(t *testing.T) {
	r := registry.NewRegistry()
	assert.False(t, r.Register(nil))
	assert.False(t, r.Register(&domain.FishDef{}))
	assert.Zero(t, r.Count())
}

func TestRegistry_IDsIsCopy(t *testing.T) {
	r := registry.NewRegistry()
	r.Register(fish("a", "A", "P"))
	ids := r.IDs()
	ids[0] = "mutated"
	assert.Equal(t, []string{"a"}, r.IDs())
}

package domain_test

import (
	"testing"

	"github.com/quinnjr/fish-dating-simulator/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFishID_TextForm(t *testing.T) {
	tests := []struct {
		id   domain.FishID
		text string
	}{
		{domain.BuiltinID(domain.Bubbles), "bubbles"},
		{domain.BuiltinID(domain.Marina), "marina"},
		{domain.BuiltinID(domain.Gill), "gill"},
		{domain.PluginID("coral"), "plugin:coral"},
		{domain.PluginID("gill"), "plugin:gill"},
	}
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			assert.Equal(t, tt.text, tt.id.String())
			parsed, err := domain.ParseFishID(tt.text)
			require.NoError(t, err)
			assert.Equal(t, tt.id, parsed)
		})
	}
}

func TestFishID_Variants(t *testing.T) {
	b := domain.BuiltinID(domain.Gill)
	kind, ok := b.Builtin()
	assert.True(t, ok)
	assert.Equal(t, domain.Gill, kind)
	assert.False(t, b.IsPlugin())

	p := domain.PluginID("gill")
	assert.True(t, p.IsPlugin())
	assert.NotEqual(t, b, p, "a plugin may reuse a built-in name without colliding")

	assert.True(t, domain.FishID{}.IsZero())
	_, err := domain.FishID{}.MarshalText()
	assert.Error(t, err)
}

func TestParseFishID_Errors(t *testing.T) {
	for _, s := range []string{"", "plugin:", "nemo"} {
		_, err := domain.ParseFishID(s)
		assert.Error(t, err, s)
	}
}

package cli_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quinnjr/fish-dating-simulator/internal/achievements"
	"github.com/quinnjr/fish-dating-simulator/internal/cli"
	"github.com/quinnjr/fish-dating-simulator/internal/config"
	"github.com/quinnjr/fish-dating-simulator/pkg/domain"
)

const coralPlugin = `
local d = new_dialogue("Reef")
d:speaker("coral", "Coral")
d:text("start", "coral", "Hi!", "end")
d:end_node("end")
register_fish({ id = "coral", name = "Coral", species = "Clownfish", dates = { d } })
`

const brokenPlugin = `
local d = new_dialogue("Lost")
d:text("start", "", "Where am I?", "nowhere")
register_fish({ id = "lost", name = "Lost", species = "Eel", dates = { d } })
`

const tinyDocument = `
title: Tiny
nodes:
  - id: start
    text: Hello.
    next: end
  - id: end
`

func newApp(t *testing.T, plugins map[string]string) *cli.App {
	t.Helper()
	cfg := config.Default()
	cfg.SaveDir = t.TempDir()
	cfg.PluginsDir = t.TempDir()
	for name, src := range plugins {
		require.NoError(t, os.WriteFile(filepath.Join(cfg.PluginsDir, name), []byte(src), 0o600))
	}

	app, err := cli.NewApp(context.Background(), cfg, cli.Options{})
	require.NoError(t, err)
	t.Cleanup(func() { _ = app.Close() })
	return app
}

func TestDate_CommitsAndSaves(t *testing.T) {
	app := newApp(t, nil)
	ctx := context.Background()

	var out bytes.Buffer
	res, err := cli.Date(ctx, app, cli.DateOptions{Fish: "Bubbles"}, strings.NewReader(strings.Repeat("1\n", 64)), &out)
	require.NoError(t, err)
	assert.False(t, res.Aborted)

	assert.Contains(t, out.String(), "~ Date #1 with Bubbles ~")
	assert.Contains(t, out.String(), "Achievement unlocked: Testing the Waters")

	p := app.LoadPlayer(ctx)
	bubbles := domain.BuiltinID(domain.Bubbles)
	assert.Equal(t, 1, p.DateCount(bubbles))
	assert.Equal(t, max(res.Affection, 0), p.Relationship(bubbles))
	assert.True(t, p.HasAchievement(achievements.FirstDate))

	out.Reset()
	_, err = cli.Date(ctx, app, cli.DateOptions{Fish: "bubbles"}, strings.NewReader("q\n"), &out)
	require.NoError(t, err)
	assert.Contains(t, out.String(), "~ Date #2 with Bubbles ~")
	assert.NotContains(t, out.String(), "Achievement unlocked")
}

func TestDate_UnknownFish(t *testing.T) {
	app := newApp(t, nil)
	_, err := cli.Date(context.Background(), app, cli.DateOptions{Fish: "shark"}, strings.NewReader(""), &bytes.Buffer{})
	assert.ErrorContains(t, err, `unknown fish "shark"`)
}

func TestDate_PluginFish(t *testing.T) {
	app := newApp(t, map[string]string{"coral.lua": coralPlugin})

	var out bytes.Buffer
	res, err := cli.Date(context.Background(), app, cli.DateOptions{Fish: "coral"}, strings.NewReader("\n\n"), &out)
	require.NoError(t, err)
	assert.Equal(t, []string{"start", "end"}, res.Path)
	assert.Contains(t, out.String(), "Coral: Hi!")
}

func TestDate_FileIsNotSaved(t *testing.T) {
	app := newApp(t, nil)
	path := filepath.Join(t.TempDir(), "tiny.yaml")
	require.NoError(t, os.WriteFile(path, []byte(tinyDocument), 0o600))

	var out bytes.Buffer
	res, err := cli.Date(context.Background(), app, cli.DateOptions{File: path}, strings.NewReader("\n"), &out)
	require.NoError(t, err)
	assert.Equal(t, []string{"start", "end"}, res.Path)
	assert.Contains(t, out.String(), "Hello.")

	profiles, err := app.Sessions.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, profiles)
}

func TestPlugins_ListsCatalogAndScripts(t *testing.T) {
	app := newApp(t, map[string]string{"coral.lua": coralPlugin, "zz_bad.lua": "this is not lua"})

	var out bytes.Buffer
	cli.Plugins(&out, app)
	text := out.String()
	assert.Contains(t, text, "Bubbles")
	assert.Contains(t, text, "Clownfish")
	assert.Contains(t, text, "coral.lua")
	assert.Contains(t, text, "failed")
}

func TestValidate(t *testing.T) {
	t.Run("clean catalog", func(t *testing.T) {
		app := newApp(t, map[string]string{"coral.lua": coralPlugin})
		var out bytes.Buffer
		require.NoError(t, cli.Validate(&out, app, nil))
		assert.Contains(t, out.String(), "✓ plugin:coral date 1 (Reef)")
	})

	t.Run("broken plugin date", func(t *testing.T) {
		app := newApp(t, map[string]string{"lost.lua": brokenPlugin})
		var out bytes.Buffer
		err := cli.Validate(&out, app, nil)
		assert.ErrorIs(t, err, cli.ErrValidation)
		assert.Contains(t, out.String(), "✗ plugin:lost date 1 (Lost)")
	})

	t.Run("documents", func(t *testing.T) {
		app := newApp(t, nil)
		dir := t.TempDir()
		good := filepath.Join(dir, "good.yaml")
		require.NoError(t, os.WriteFile(good, []byte(tinyDocument), 0o600))

		var out bytes.Buffer
		require.NoError(t, cli.Validate(&out, app, []string{good}))
		assert.Contains(t, out.String(), "✓ "+good)

		err := cli.Validate(&out, app, []string{filepath.Join(dir, "missing.yaml")})
		assert.ErrorIs(t, err, cli.ErrValidation)
	})
}

func TestGraph(t *testing.T) {
	app := newApp(t, map[string]string{"coral.lua": coralPlugin})

	var out bytes.Buffer
	require.NoError(t, cli.Graph(&out, app, cli.GraphOptions{Fish: "coral", Date: 1}))
	assert.True(t, strings.HasPrefix(out.String(), "graph TD\n"))
	assert.Contains(t, out.String(), "start")

	assert.Error(t, cli.Graph(&out, app, cli.GraphOptions{Fish: "nobody"}))
}

func TestDocs_Raw(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, cli.Docs(&out, false, 80))
	assert.Equal(t, cli.Guide(), out.String())
	assert.Contains(t, out.String(), "register_fish")
}

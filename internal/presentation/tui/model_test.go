package tui

import (
	"bytes"
	"context"
	"math/rand/v2"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/quinnjr/fish-dating-simulator/internal/fishing"
	"github.com/quinnjr/fish-dating-simulator/internal/game"
	"github.com/quinnjr/fish-dating-simulator/pkg/adapters/memory"
	"github.com/quinnjr/fish-dating-simulator/pkg/characters"
	"github.com/quinnjr/fish-dating-simulator/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newModel(t *testing.T) Model {
	t.Helper()
	g, err := game.New(context.Background(), characters.NewCatalog(nil),
		game.WithStore(memory.NewStore(), ""),
		game.WithRand(rand.New(rand.NewPCG(1, 2))),
	)
	require.NoError(t, err)
	return New(context.Background(), g)
}

func press(t *testing.T, m Model, msg tea.KeyMsg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	model, ok := next.(Model)
	require.True(t, ok)
	return model, cmd
}

var (
	enter = tea.KeyMsg{Type: tea.KeyEnter}
	esc   = tea.KeyMsg{Type: tea.KeyEsc}
	down  = tea.KeyMsg{Type: tea.KeyDown}
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestModel_MainMenuView(t *testing.T) {
	m := newModel(t)
	out := m.View()
	assert.Contains(t, out, "FISH DATING SIMULATOR")
	assert.Contains(t, out, "Main Menu")
	assert.Contains(t, out, "1. Go Fishing")
	assert.Contains(t, out, "Day 1")
}

func TestModel_KeysDriveTheGame(t *testing.T) {
	m := newModel(t)

	m, _ = press(t, m, down)
	assert.Equal(t, 1, m.Game().MainMenu().Selected)

	m, cmd := press(t, m, runes("1"))
	assert.Equal(t, game.PondSelect, m.Game().Screen())
	assert.Nil(t, cmd)
	assert.Contains(t, m.View(), "Sunny Shallows")

	m, _ = press(t, m, esc)
	assert.Equal(t, game.MainMenu, m.Game().Screen())

	_, unbound := press(t, m, runes("x"))
	assert.Nil(t, unbound)
}

func TestModel_TicksOnlyWhileFishing(t *testing.T) {
	m := newModel(t)
	m, _ = press(t, m, enter) // Go Fishing
	m, cmd := press(t, m, enter)
	require.Equal(t, game.Fishing, m.Game().Screen())
	require.NotNil(t, cmd, "fishing starts the tick loop")
	assert.True(t, m.ticking)
	assert.Contains(t, m.View(), "Casting your line")

	for range 400 {
		next, cmd := m.Update(tickMsg(time.Now()))
		m = next.(Model)
		require.NotNil(t, cmd)
		if m.Game().Minigame().Phase() == fishing.Result {
			break
		}
	}
	assert.Equal(t, fishing.Result, m.Game().Minigame().Phase(), "reel timeout ends the attempt")
	assert.Contains(t, m.View(), "It got away")

	m, _ = press(t, m, enter)
	assert.Equal(t, game.PondSelect, m.Game().Screen())

	next, cmd := m.Update(tickMsg(time.Now()))
	assert.Nil(t, cmd, "tick loop stops off the fishing screen")
	assert.False(t, next.(Model).ticking)
}

func TestModel_DateView(t *testing.T) {
	m := newModel(t)
	require.NoError(t, m.Game().StartDate(domain.BuiltinID(domain.Bubbles)))

	out := m.View()
	assert.Contains(t, out, "Bubbles:")
	assert.Contains(t, out, "Date #1 with Bubbles")

	for range 20 {
		if m.Game().Date().Runner.Current().Kind == domain.ViewChoice {
			break
		}
		m, _ = press(t, m, enter)
	}
	require.Equal(t, domain.ViewChoice, m.Game().Date().Runner.Current().Kind)
	assert.Contains(t, m.View(), "> ")

	m, _ = press(t, m, esc)
	assert.Equal(t, game.DateResult, m.Game().Screen())
	assert.Contains(t, m.View(), "Your date with")
}

func TestModel_QuitAndNotices(t *testing.T) {
	m := newModel(t)
	_, cmd := press(t, m, tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())

	require.NoError(t, m.Game().StartDate(domain.BuiltinID(domain.Marina)))
	m, _ = press(t, m, esc)
	assert.Contains(t, m.View(), "Achievement unlocked: Testing the Waters")

	m, _ = press(t, m, enter)
	assert.Empty(t, m.notices, "notices clear on the next key")

	_, cmd = press(t, m, esc)
	require.NotNil(t, cmd, "back on the main menu quits")
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestPrintBanner(t *testing.T) {
	var buf bytes.Buffer
	PrintBanner(&buf, "1.2.3")
	assert.Contains(t, buf.String(), "F I S H")
	assert.Contains(t, buf.String(), "v1.2.3")
}

func TestNewRenderer(t *testing.T) {
	render, err := NewRenderer(60)
	require.NoError(t, err)
	out, err := render("# Plugins\n\nWrite `register_fish`.")
	require.NoError(t, err)
	assert.Contains(t, out, "Plugins")
	assert.Contains(t, out, "register_fish")
}

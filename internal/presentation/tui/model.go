// Package tui is the terminal front end: a bubbletea model over the game host.
package tui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/quinnjr/fish-dating-simulator/internal/achievements"
	"github.com/quinnjr/fish-dating-simulator/internal/game"
)

// FrameInterval is the minigame refresh rate.
const FrameInterval = time.Second / 30

// tickMsg drives the fishing minigame. It is only scheduled while a fishing attempt runs.
type tickMsg time.Time

// Model is the bubbletea model for a whole play session.
type Model struct {
	ctx  context.Context
	game *game.Game
	keys KeyMap
	help help.Model

	width   int
	height  int
	ticking bool
	notices []achievements.Achievement
}

// Option configures a Model.
type Option func(*Model)

// WithKeyMap replaces the default key bindings.
func WithKeyMap(k KeyMap) Option {
	return func(m *Model) {
		m.keys = k
	}
}

// New wraps g in a terminal model. ctx is passed to every save the game performs.
func New(ctx context.Context, g *game.Game, opts ...Option) Model {
	m := Model{
		ctx:   ctx,
		game:  g,
		keys:  DefaultKeyMap(),
		help:  help.New(),
		width: 80,
	}
	for _, opt := range opts {
		opt(&m)
	}
	return m
}

// Run starts the program on the alternate screen and blocks until the player quits.
func Run(ctx context.Context, g *game.Game, opts ...tea.ProgramOption) error {
	opts = append([]tea.ProgramOption{tea.WithAltScreen(), tea.WithContext(ctx)}, opts...)
	_, err := tea.NewProgram(New(ctx, g), opts...).Run()
	return err
}

// Game returns the wrapped host.
func (m Model) Game() *game.Game {
	return m.game
}

func tick() tea.Cmd {
	return tea.Tick(FrameInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.SetWindowTitle("Fish Dating Simulator")
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tickMsg:
		if m.game.Screen() != game.Fishing {
			m.ticking = false
			return m, nil
		}
		m.game.Tick(FrameInterval)
		return m, tick()

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			return m, tea.Quit
		}
		in, ok := m.input(msg)
		if !ok {
			return m, nil
		}
		m.notices = nil
		m.game.Update(m.ctx, in)
		m.notices = append(m.notices, m.game.TakeUnlocked()...)

		if m.game.Done() {
			return m, tea.Quit
		}
		if m.game.Screen() == game.Fishing && !m.ticking {
			m.ticking = true
			return m, tick()
		}
	}
	return m, nil
}

// input translates a key press into a game input.
func (m Model) input(msg tea.KeyMsg) (game.Input, bool) {
	switch {
	case key.Matches(msg, m.keys.Up):
		return game.Up, true
	case key.Matches(msg, m.keys.Down):
		return game.Down, true
	case key.Matches(msg, m.keys.Confirm):
		return game.Confirm, true
	case key.Matches(msg, m.keys.Back):
		return game.Back, true
	case key.Matches(msg, m.keys.Pick):
		return game.Select(int(msg.String()[0] - '1')), true
	}
	return game.Input{}, false
}

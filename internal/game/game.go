// Package game is the host that drives screens, the fishing minigame and dates.
//
// It is a synchronous state machine: each Update consumes one Input, and Tick advances the
// only timed element, the fishing minigame. The dialogue core never touches the PlayerState;
// the host commits a date's accumulated affection when the date concludes.
package game

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math/rand/v2"
	"time"

	"github.com/google/uuid"
	"github.com/quinnjr/fish-dating-simulator/internal/achievements"
	"github.com/quinnjr/fish-dating-simulator/internal/fishing"
	"github.com/quinnjr/fish-dating-simulator/internal/runtime"
	"github.com/quinnjr/fish-dating-simulator/pkg/characters"
	"github.com/quinnjr/fish-dating-simulator/pkg/domain"
	"github.com/quinnjr/fish-dating-simulator/pkg/observability"
	"github.com/quinnjr/fish-dating-simulator/pkg/ports"
)

// Catch describes the fish just landed.
type Catch struct {
	Fish domain.FishID
	Pond string
	Size domain.FishSize
}

// Date is an ongoing or just concluded date.
type Date struct {
	ID     string
	Fish   domain.FishID
	Def    *domain.FishDef
	Number int // zero-based date counter with this fish
	Runner *runtime.Runner
	Gained int       // affection accumulated so far
	Choice Menu      // populated while a choice is pending
	Start  time.Time // wall clock, for logs only
}

// Game is the whole host state. It is not safe for concurrent use.
type Game struct {
	screen  Screen
	player  *domain.PlayerState
	hasSave bool
	quit    bool

	catalog *characters.Catalog
	store   ports.PlayerStore
	profile string
	tracker *achievements.Tracker
	metrics *observability.Metrics
	logger  *slog.Logger
	rng     *rand.Rand

	menu     Menu
	ponds    []characters.Pond
	pondMenu Menu

	target   characters.Pond
	minigame *fishing.Minigame
	catch    *Catch

	dateable []domain.FishID
	dateMenu Menu
	date     *Date

	scroll   int
	unlocked []achievements.Achievement
	saveErr  error
}

// Option configures a Game.
type Option func(*Game)

// WithStore persists progress. Without a store the game keeps everything in memory.
func WithStore(store ports.PlayerStore, profile string) Option {
	return func(g *Game) {
		g.store = store
		if profile != "" {
			g.profile = profile
		}
	}
}

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) Option {
	return func(g *Game) {
		g.logger = logger
	}
}

// WithMetrics counts completed dates and choices.
func WithMetrics(m *observability.Metrics) Option {
	return func(g *Game) {
		g.metrics = m
	}
}

// WithRand sets the random source of the minigame.
func WithRand(rng *rand.Rand) Option {
	return func(g *Game) {
		g.rng = rng
	}
}

// WithTracker replaces the default achievement tracker.
func WithTracker(t *achievements.Tracker) Option {
	return func(g *Game) {
		g.tracker = t
	}
}

// New creates the host and restores the saved player.
// A missing save starts a new game; an unreadable one is logged and also starts a new game.
func New(ctx context.Context, catalog *characters.Catalog, opts ...Option) (*Game, error) {
	g := &Game{
		catalog: catalog,
		profile: ports.DefaultProfile,
		logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
		player:  domain.NewPlayerState(),
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.rng == nil {
		g.rng = rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 0))
	}
	if g.tracker == nil {
		t, err := achievements.NewTracker(achievements.Builtin, catalog.All, achievements.WithLogger(g.logger))
		if err != nil {
			return nil, fmt.Errorf("failed to build achievements: %w", err)
		}
		g.tracker = t
	}

	if g.store != nil {
		p, err := g.store.Load(ctx, g.profile)
		switch {
		case err == nil:
			g.player = p
			g.hasSave = true
		case errors.Is(err, domain.ErrSaveNotFound):
		default:
			g.logger.Warn("could not load save, starting a new game", "profile", g.profile, "err", err)
		}
	}

	g.toMainMenu()
	return g, nil
}

// Screen returns the active screen.
func (g *Game) Screen() Screen { return g.screen }

// Player exposes the progress record. Callers must not modify it.
func (g *Game) Player() *domain.PlayerState { return g.player }

// Catalog returns the character catalog.
func (g *Game) Catalog() *characters.Catalog { return g.catalog }

// Done reports whether the player chose to quit.
func (g *Game) Done() bool { return g.quit }

// MainMenu returns the main menu.
func (g *Game) MainMenu() Menu { return g.menu }

// PondMenu returns the pond list and its menu.
func (g *Game) PondMenu() ([]characters.Pond, Menu) { return g.ponds, g.pondMenu }

// Target returns the pond being fished.
func (g *Game) Target() characters.Pond { return g.target }

// Minigame returns the running fishing attempt, nil outside the Fishing screen.
func (g *Game) Minigame() *fishing.Minigame { return g.minigame }

// Catch returns the latest catch.
func (g *Game) Catch() *Catch { return g.catch }

// DateMenu returns the dateable fish and their menu.
func (g *Game) DateMenu() ([]domain.FishID, Menu) { return g.dateable, g.dateMenu }

// Date returns the ongoing or last concluded date.
func (g *Game) Date() *Date { return g.date }

// Scroll returns the first visible row of the collection.
func (g *Game) Scroll() int { return g.scroll }

// Achievements lists the tracked achievements.
func (g *Game) Achievements() []achievements.Achievement { return g.tracker.Catalog() }

// SaveError returns the last persistence failure, nil after a successful save.
func (g *Game) SaveError() error { return g.saveErr }

// TakeUnlocked returns the achievements unlocked since the previous call.
func (g *Game) TakeUnlocked() []achievements.Achievement {
	out := g.unlocked
	g.unlocked = nil
	return out
}

// Tick advances timed elements. Only the fishing minigame is timed.
func (g *Game) Tick(dt time.Duration) {
	if g.screen == Fishing && g.minigame != nil {
		g.minigame.Tick(dt)
	}
}

// Update applies one input to the active screen.
func (g *Game) Update(ctx context.Context, in Input) {
	switch g.screen {
	case MainMenu:
		g.updateMainMenu(ctx, in)
	case PondSelect:
		g.updatePondSelect(in)
	case Fishing:
		g.updateFishing(ctx, in)
	case CatchResult, DateResult:
		if in.Key == KeyConfirm || in.Key == KeyBack {
			g.afterCommit()
		}
	case Collection:
		g.updateCollection(in)
	case DateSelect:
		g.updateDateSelect(in)
	case Dating:
		g.updateDating(ctx, in)
	case GameOver:
		if in.Key == KeyConfirm {
			g.player = domain.NewPlayerState()
			g.save(ctx)
			g.toMainMenu()
		}
	}
}

func (g *Game) toMainMenu() {
	items := []string{ItemFish}
	if len(g.player.Collection) > 0 {
		items = append(items, ItemDate, ItemCollection)
	}
	items = append(items, ItemSave)
	if g.hasSave || len(g.player.Collection) > 0 {
		items = append(items, ItemNewGame)
	}
	items = append(items, ItemQuit)

	g.menu = newMenu(items...)
	g.minigame = nil
	g.screen = MainMenu
}

func (g *Game) updateMainMenu(ctx context.Context, in Input) {
	if in.Key == KeyBack {
		g.quit = true
		return
	}
	i, ok := g.menu.handle(in)
	if !ok {
		return
	}

	switch g.menu.Items[i] {
	case ItemFish:
		g.toPondSelect()
	case ItemDate:
		g.toDateSelect()
	case ItemCollection:
		g.scroll = 0
		g.screen = Collection
	case ItemSave:
		g.save(ctx)
	case ItemNewGame:
		g.player = domain.NewPlayerState()
		g.save(ctx)
		g.toMainMenu()
	case ItemQuit:
		g.quit = true
	}
}

func (g *Game) toPondSelect() {
	g.ponds = g.catalog.Ponds()
	names := make([]string, len(g.ponds))
	for i, p := range g.ponds {
		names[i] = p.Name
	}
	g.pondMenu = newMenu(names...)
	g.minigame = nil
	g.screen = PondSelect
}

func (g *Game) updatePondSelect(in Input) {
	if in.Key == KeyBack {
		g.toMainMenu()
		return
	}
	i, ok := g.pondMenu.handle(in)
	if !ok {
		return
	}

	g.target = g.ponds[i]
	difficulty := 0.5
	if def, found := g.catalog.Lookup(g.target.Fish); found {
		difficulty = def.Difficulty
	}
	g.minigame = fishing.New(difficulty, g.rng)
	g.screen = Fishing
}

func (g *Game) updateFishing(ctx context.Context, in Input) {
	if in.Key == KeyBack {
		g.toPondSelect()
		return
	}
	if in.Key != KeyConfirm {
		return
	}
	if g.minigame.Hook() {
		return
	}

	out, done := g.minigame.Outcome()
	if !done {
		return
	}
	if !out.Caught {
		g.toPondSelect()
		return
	}

	g.catch = &Catch{Fish: g.target.Fish, Pond: g.target.Name, Size: out.Size}
	g.player.AddCatch(g.target.Fish, g.target.Name, out.Size)
	g.player.AddAffection(g.target.Fish, 1)
	g.logger.Info("fish caught", "fish", g.target.Fish, "size", out.Size)
	g.commit(ctx)
	g.minigame = nil
	g.screen = CatchResult
}

func (g *Game) updateCollection(in Input) {
	switch in.Key {
	case KeyUp:
		g.scroll = max(g.scroll-1, 0)
	case KeyDown:
		g.scroll = min(g.scroll+1, max(len(g.catalog.All())-1, 0))
	case KeyConfirm, KeyBack:
		g.toMainMenu()
	}
}

func (g *Game) toDateSelect() {
	g.dateable = nil
	var items []string
	for _, id := range g.catalog.All() {
		if !g.player.HasCaught(id) {
			continue
		}
		score := g.player.Relationship(id)
		label := fmt.Sprintf("%s - %s [%d]", g.catalog.Name(id), domain.RelationshipLabel(score), score)
		if def, ok := g.catalog.Lookup(id); ok {
			label = fmt.Sprintf("%s (%s) - %s [%d]", def.Name, def.Species, domain.RelationshipLabel(score), score)
		}
		g.dateable = append(g.dateable, id)
		items = append(items, label)
	}
	if len(g.dateable) == 0 {
		g.toMainMenu()
		return
	}
	g.dateMenu = newMenu(items...)
	g.screen = DateSelect
}

func (g *Game) updateDateSelect(in Input) {
	if in.Key == KeyBack {
		g.toMainMenu()
		return
	}
	if i, ok := g.dateMenu.handle(in); ok {
		g.startDate(g.dateable[i])
	}
}

// StartDate jumps straight into a date with a known fish, bypassing the menus.
func (g *Game) StartDate(id domain.FishID) error {
	if _, ok := g.catalog.Lookup(id); !ok {
		return fmt.Errorf("unknown fish %s", id)
	}
	g.startDate(id)
	return nil
}

func (g *Game) startDate(id domain.FishID) {
	def, _ := g.catalog.Lookup(id)
	n := g.player.DateCount(id)
	d := &Date{
		ID:     uuid.NewString(),
		Fish:   id,
		Def:    def,
		Number: n,
		Runner: runtime.NewRunner(g.catalog.Dialogue(id, n), runtime.WithLogger(g.logger)),
		Start:  time.Now(),
	}
	g.date = d
	g.logger.Info("date started", "date", d.ID, "fish", id, "number", n)
	g.syncDate()
	g.screen = Dating
}

// syncDate folds pending affection changes into the running total and rebuilds the choice menu.
func (g *Game) syncDate() {
	d := g.date
	for _, ev := range d.Runner.DrainEvents() {
		if ev.Name == domain.AffectionVar {
			d.Gained += ev.Delta()
		}
	}
	view := d.Runner.Current()
	if view.Kind == domain.ViewChoice {
		d.Choice = newMenu(view.Choices...)
	} else {
		d.Choice = Menu{}
	}
}

func (g *Game) updateDating(ctx context.Context, in Input) {
	d := g.date
	view := d.Runner.Current()

	switch view.Kind {
	case domain.ViewEnded:
		if in.Key == KeyConfirm || in.Key == KeyBack {
			g.concludeDate(ctx, false)
		}
	case domain.ViewText:
		switch in.Key {
		case KeyConfirm:
			if err := d.Runner.Advance(); err != nil {
				g.logger.Debug("advance rejected", "date", d.ID, "err", err)
			}
			g.syncDate()
		case KeyBack:
			g.concludeDate(ctx, true)
		}
	case domain.ViewChoice:
		if in.Key == KeyBack {
			g.concludeDate(ctx, true)
			return
		}
		i, ok := d.Choice.handle(in)
		if !ok {
			return
		}
		if err := d.Runner.SelectChoice(i); err != nil {
			g.logger.Debug("choice rejected", "date", d.ID, "index", i, "err", err)
			return
		}
		g.metrics.ChoiceSelected()
		g.syncDate()
	}
}

// concludeDate commits the accumulated delta. Leaving early still counts as a date.
func (g *Game) concludeDate(ctx context.Context, aborted bool) {
	d := g.date
	g.player.CommitDate(d.Fish, d.Gained)
	g.metrics.DateCompleted()
	g.logger.Info("date finished",
		"date", d.ID,
		"fish", d.Fish,
		"affection", d.Gained,
		"aborted", aborted,
		"duration", time.Since(d.Start).Round(time.Millisecond),
	)
	g.commit(ctx)
	g.screen = DateResult
}

func (g *Game) afterCommit() {
	if g.player.HasWon() {
		g.screen = GameOver
		return
	}
	g.toMainMenu()
}

// commit checks achievements and saves.
func (g *Game) commit(ctx context.Context) {
	g.unlocked = append(g.unlocked, g.tracker.Check(g.player)...)
	g.save(ctx)
}

func (g *Game) save(ctx context.Context) {
	if g.store == nil {
		return
	}
	if err := g.store.Save(ctx, g.profile, g.player); err != nil {
		g.saveErr = err
		g.logger.Error("failed to save game", "profile", g.profile, "err", err)
		return
	}
	g.saveErr = nil
	g.hasSave = true
}

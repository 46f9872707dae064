// Package achievements unlocks milestones from the player's progress.
//
// Every achievement is an expr-lang rule evaluated against a Snapshot of the PlayerState.
// The host calls Tracker.Check after each catch and each concluded date.
package achievements

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
	"github.com/quinnjr/fish-dating-simulator/pkg/domain"
)

// Achievement ids.
const (
	FirstCatch = "ACH_FIRST_CATCH"
	CatchAll   = "ACH_CATCH_ALL"
	FirstDate  = "ACH_FIRST_DATE"
	Date10     = "ACH_DATE_10"
	Soulmate   = "ACH_SOULMATE"
	AllFriends = "ACH_ALL_FRIENDS"
	BigCatch   = "ACH_BIG_CATCH"
	Day30      = "ACH_DAY_30"
	Catch50    = "ACH_CATCH_50"
	PluginFish = "ACH_PLUGIN_FISH"
)

// FriendScore is the relationship score that counts as a friend.
const FriendScore = 6

// Achievement describes one milestone.
type Achievement struct {
	ID          string
	Name        string
	Description string
	Rule        string // expr-lang boolean over Snapshot
}

// Builtin is the default catalog, in display order.
var Builtin = []Achievement{
	{FirstCatch, "Gone Fishin'", "Catch your first fish.", "Catches >= 1"},
	{CatchAll, "Gotta Catch 'Em All", "Catch every species of fish.", "Fish > 0 && Caught == Fish"},
	{FirstDate, "Testing the Waters", "Go on your first date.", "Dates >= 1"},
	{Date10, "Serial Dater", "Go on 10 dates.", "Dates >= 10"},
	{Soulmate, "Fish Soulmate", "Reach soulmate status with any fish.", "Won"},
	{AllFriends, "Social Butterfly...fish", "Become friends with every fish.", "Fish > 0 && Friends == Fish"},
	{BigCatch, "The Big One", "Catch a large fish.", "Large > 0"},
	{Day30, "Dedicated Angler", "Play for 30 days.", "Day >= 30"},
	{Catch50, "Fish Hoarder", "Catch 50 fish total.", "Catches >= 50"},
	{PluginFish, "Modding Community", "Catch a plugin fish.", "PluginCatches > 0"},
}

// Snapshot is the environment the rules are evaluated against.
type Snapshot struct {
	Catches       int  // total catches, duplicates included
	Large         int  // large catches
	PluginCatches int  // catches of plugin fish
	Dates         int  // concluded dates
	Day           int  // current day
	Won           bool // soulmate with any fish
	Fish          int  // known characters
	Caught        int  // known characters caught at least once
	Friends       int  // known characters at FriendScore or above
}

// Capture summarizes a player against the known cast.
func Capture(p *domain.PlayerState, known []domain.FishID) Snapshot {
	s := Snapshot{
		Catches: len(p.Collection),
		Dates:   p.DatesCompleted,
		Day:     p.CurrentDay,
		Won:     p.HasWon(),
		Fish:    len(known),
	}
	for _, c := range p.Collection {
		if c.Size == domain.SizeLarge {
			s.Large++
		}
		if c.ID.IsPlugin() {
			s.PluginCatches++
		}
	}
	for _, id := range known {
		if p.HasCaught(id) {
			s.Caught++
		}
		if p.Relationship(id) >= FriendScore {
			s.Friends++
		}
	}
	return s
}

type rule struct {
	Achievement
	program *vm.Program
}

// Tracker evaluates the catalog and records unlocks on the PlayerState.
type Tracker struct {
	rules  []rule
	known  func() []domain.FishID
	logger *slog.Logger
}

// Option configures a Tracker.
type Option func(*Tracker)

// WithLogger logs unlocks at Info.
func WithLogger(logger *slog.Logger) Option {
	return func(t *Tracker) {
		t.logger = logger
	}
}

// NewTracker compiles the catalog. known lists the current cast and is called on every Check,
// so plugin characters loaded later still count.
func NewTracker(catalog []Achievement, known func() []domain.FishID, opts ...Option) (*Tracker, error) {
	t := &Tracker{
		known:  known,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(t)
	}

	for _, a := range catalog {
		program, err := expr.Compile(a.Rule, expr.Env(Snapshot{}), expr.AsBool())
		if err != nil {
			return nil, fmt.Errorf("invalid rule for %s: %w", a.ID, err)
		}
		t.rules = append(t.rules, rule{Achievement: a, program: program})
	}
	return t, nil
}

// Catalog returns the tracked achievements in display order.
func (t *Tracker) Catalog() []Achievement {
	out := make([]Achievement, len(t.rules))
	for i, r := range t.rules {
		out[i] = r.Achievement
	}
	return out
}

// Check unlocks every achievement whose rule now holds and returns the new ones.
func (t *Tracker) Check(p *domain.PlayerState) []Achievement {
	var known []domain.FishID
	if t.known != nil {
		known = t.known()
	}
	snap := Capture(p, known)

	var unlocked []Achievement
	for _, r := range t.rules {
		if p.HasAchievement(r.ID) {
			continue
		}
		out, err := expr.Run(r.program, snap)
		if err != nil {
			t.logger.Error("achievement rule failed", "id", r.ID, "err", err)
			continue
		}
		if ok, _ := out.(bool); ok && p.Unlock(r.ID) {
			t.logger.Info("achievement unlocked", "id", r.ID)
			unlocked = append(unlocked, r.Achievement)
		}
	}
	return unlocked
}

package domain

import (
	"fmt"
	"slices"
	"strings"
)

// SoulmateThreshold is the relationship score that wins the game.
const SoulmateThreshold = 41

// FishSize is the size class of a caught fish.
type FishSize int

const (
	SizeSmall FishSize = iota
	SizeMedium
	SizeLarge
)

func (s FishSize) String() string {
	switch s {
	case SizeMedium:
		return "Medium"
	case SizeLarge:
		return "Large"
	default:
		return "Small"
	}
}

func (s FishSize) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

func (s *FishSize) UnmarshalText(text []byte) error {
	switch strings.ToLower(string(text)) {
	case "small":
		*s = SizeSmall
	case "medium":
		*s = SizeMedium
	case "large":
		*s = SizeLarge
	default:
		return fmt.Errorf("unknown fish size %q", text)
	}
	return nil
}

// CaughtFish is one entry of the player's collection.
type CaughtFish struct {
	ID       FishID   `json:"id"`
	CaughtAt string   `json:"caught_at"`
	Size     FishSize `json:"size"`
}

// RelationshipLabel names the relationship level of a score.
func RelationshipLabel(score int) string {
	switch {
	case score <= 0:
		return "Stranger"
	case score <= 5:
		return "Acquaintance"
	case score <= 15:
		return "Friend"
	case score <= 25:
		return "Close Friend"
	case score < SoulmateThreshold:
		return "Romantic Interest"
	default:
		return "Soulmate"
	}
}

// PlayerState is the persistent save record.
// The dialogue core never touches it; the host commits a date's delta when the date concludes.
type PlayerState struct {
	Collection     []CaughtFish   `json:"fish_collection"`
	Relationships  map[FishID]int `json:"relationship_scores"`
	DateCounts     map[FishID]int `json:"date_counts"`
	CurrentDay     int            `json:"current_day"`
	DatesCompleted int            `json:"dates_completed"`
	Achievements   []string       `json:"achievements"`
}

// NewPlayerState returns the state of a fresh game.
func NewPlayerState() *PlayerState {
	return &PlayerState{
		Relationships: make(map[FishID]int),
		DateCounts:    make(map[FishID]int),
		CurrentDay:    1,
	}
}

// Normalize fills nil maps left by decoding an older or partial save.
func (p *PlayerState) Normalize() {
	if p.Relationships == nil {
		p.Relationships = make(map[FishID]int)
	}
	if p.DateCounts == nil {
		p.DateCounts = make(map[FishID]int)
	}
	if p.CurrentDay < 1 {
		p.CurrentDay = 1
	}
}

// AddCatch appends a fish to the collection.
func (p *PlayerState) AddCatch(id FishID, pond string, size FishSize) {
	p.Collection = append(p.Collection, CaughtFish{ID: id, CaughtAt: pond, Size: size})
}

// HasCaught reports whether the fish is in the collection.
func (p *PlayerState) HasCaught(id FishID) bool {
	return slices.ContainsFunc(p.Collection, func(c CaughtFish) bool { return c.ID == id })
}

// CatchCount counts the catches of a fish.
func (p *PlayerState) CatchCount(id FishID) int {
	n := 0
	for _, c := range p.Collection {
		if c.ID == id {
			n++
		}
	}
	return n
}

// Relationship returns the score with a fish, 0 if unknown.
func (p *PlayerState) Relationship(id FishID) int {
	return p.Relationships[id]
}

// AddAffection changes a relationship score, never letting it drop below zero.
func (p *PlayerState) AddAffection(id FishID, amount int) {
	p.Normalize()
	p.Relationships[id] = max(p.Relationships[id]+amount, 0)
}

// DateCount returns how many dates were completed with a fish.
func (p *PlayerState) DateCount(id FishID) int {
	return p.DateCounts[id]
}

// CommitDate records a concluded date and its accumulated affection delta.
func (p *PlayerState) CommitDate(id FishID, delta int) {
	p.AddAffection(id, delta)
	p.DateCounts[id]++
	p.DatesCompleted++
	p.CurrentDay++
}

// HasWon reports whether the player reached soulmate status with any fish.
func (p *PlayerState) HasWon() bool {
	for _, score := range p.Relationships {
		if score >= SoulmateThreshold {
			return true
		}
	}
	return false
}

// Closest returns the fish with the highest score. Ties resolve to the smallest id text.
func (p *PlayerState) Closest() (FishID, int, bool) {
	var (
		best  FishID
		score int
		found bool
	)
	for id, s := range p.Relationships {
		if !found || s > score || (s == score && id.String() < best.String()) {
			best, score, found = id, s, true
		}
	}
	return best, score, found
}

// HasAchievement reports whether an achievement id is unlocked.
func (p *PlayerState) HasAchievement(id string) bool {
	return slices.Contains(p.Achievements, id)
}

// Unlock records an achievement, reporting false if it was already unlocked.
func (p *PlayerState) Unlock(id string) bool {
	if p.HasAchievement(id) {
		return false
	}
	p.Achievements = append(p.Achievements, id)
	return true
}

package domain

import (
	"fmt"
	"math"
	"strings"
)

// Affection thresholds that select the mood art of a character.
const (
	HappyThreshold   = 20
	NeutralThreshold = 10
)

// Color is an RGBA color with components in 0..1.
type Color struct {
	R float64 `json:"r"`
	G float64 `json:"g"`
	B float64 `json:"b"`
	A float64 `json:"a"`
}

// White is the default render color.
var White = Color{R: 1, G: 1, B: 1, A: 1}

// Hex renders the color as #rrggbb, ignoring alpha.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", channel(c.R), channel(c.G), channel(c.B))
}

func channel(v float64) int {
	return int(math.Round(math.Max(0, math.Min(1, v)) * 255))
}

// FishDef is the complete definition of a dateable character, built-in or plugin-sourced.
// It is built once and never mutated afterwards.
type FishDef struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Species     string  `json:"species"`
	Description string  `json:"description"`
	Difficulty  float64 `json:"difficulty"` // 0 = easy, 1 = hard
	Color       Color   `json:"color"`

	ArtHappy   string `json:"art_happy"`
	ArtNeutral string `json:"art_neutral"`
	ArtSad     string `json:"art_sad"`
	ArtSmall   string `json:"art_small"`

	DateLocation string `json:"date_location"`
	DateSceneArt string `json:"date_scene_art"`
	PondName     string `json:"pond_name"`

	// Dialogues holds one tree per date number, rotated modulo its length.
	Dialogues []*Tree `json:"-"`
}

// ArtForAffection picks the mood art for a relationship score.
func (f *FishDef) ArtForAffection(affection int) string {
	switch {
	case affection > HappyThreshold:
		return f.ArtHappy
	case affection > NeutralThreshold:
		return f.ArtNeutral
	default:
		return f.ArtSad
	}
}

// DialogueForDate returns the tree for the given date number.
// Characters without dialogues get a short generated date.
func (f *FishDef) DialogueForDate(dateNumber int) *Tree {
	if len(f.Dialogues) == 0 {
		return FallbackDialogue(f.Name)
	}
	if dateNumber < 0 {
		dateNumber = 0
	}
	return f.Dialogues[dateNumber%len(f.Dialogues)]
}

// FallbackDialogue generates a minimal date for a character that ships no dialogue.
func FallbackDialogue(name string) *Tree {
	speakerID := strings.ToLower(name)
	return NewTreeUnchecked(
		"Date with "+name,
		"start",
		[]Speaker{{ID: speakerID, DisplayName: name}, {ID: "player", DisplayName: "You"}},
		[]Node{
			Text("start", speakerID, fmt.Sprintf("Hi there! I'm %s. Thanks for taking me out!", name), "q1"),
			Choice("q1", name+" smiles at you.",
				ChoiceOption{Text: "This is nice!", Target: "ending", Deltas: map[string]int{AffectionVar: 3}},
				ChoiceOption{Text: "Let's do this again sometime.", Target: "ending", Deltas: map[string]int{AffectionVar: 2}},
			),
			Text("ending", speakerID, "I had a great time! See you around!", "end"),
			End("end"),
		},
	)
}

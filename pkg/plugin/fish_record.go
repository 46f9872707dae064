package plugin

import (
	"fmt"

	"github.com/mitchellh/mapstructure"
	"github.com/quinnjr/fish-dating-simulator/internal/dto"
	"github.com/quinnjr/fish-dating-simulator/pkg/domain"
)

// Defaults applied to optional record fields.
const (
	DefaultDescription  = "A mysterious fish."
	DefaultDifficulty   = 0.5
	DefaultArt          = "  ><(((o>"
	DefaultArtSmall     = "><>"
	DefaultDateLocation = "The Deep"
	DefaultDateSceneArt = "  ~~~~~~~~\n  ~ ~ ~ ~ ~\n  ~~~~~~~~"
)

// DecodeFishRecord turns a script-supplied record into a character definition.
//
// id, name and species are required strings. Every other field falls back to its default when
// absent or of the wrong type. Dialogues that fail validation are kept in unchecked form and
// reported in warnings.
func DecodeFishRecord(raw map[string]any) (def *domain.FishDef, warnings []error, err error) {
	var rec dto.FishRecord
	// Wrongly typed fields stay nil and are handled below.
	_ = mapstructure.Decode(raw, &rec)

	required := []struct {
		key string
		val *string
	}{{"id", rec.ID}, {"name", rec.Name}, {"species", rec.Species}}
	for _, r := range required {
		if r.val != nil {
			continue
		}
		if _, present := raw[r.key]; present {
			return nil, nil, &RecordError{Field: r.key, Reason: "must be a string"}
		}
		return nil, nil, &RecordError{Field: r.key, Reason: "missing required field"}
	}
	if *rec.ID == "" {
		return nil, nil, &RecordError{Field: "id", Reason: "must not be empty"}
	}

	def = &domain.FishDef{
		ID:           *rec.ID,
		Name:         *rec.Name,
		Species:      *rec.Species,
		Description:  stringOr(rec.Description, DefaultDescription),
		Difficulty:   clamp01(floatOr(rec.Difficulty, DefaultDifficulty)),
		Color:        parseColor(rec.Color),
		ArtHappy:     stringOr(rec.ArtHappy, DefaultArt),
		ArtNeutral:   stringOr(rec.ArtNeutral, DefaultArt),
		ArtSad:       stringOr(rec.ArtSad, DefaultArt),
		ArtSmall:     stringOr(rec.ArtSmall, DefaultArtSmall),
		DateLocation: stringOr(rec.DateLocation, DefaultDateLocation),
		DateSceneArt: stringOr(rec.DateSceneArt, DefaultDateSceneArt),
		PondName:     stringOr(rec.PondName, *rec.Name+"'s Pond"),
	}

	for i, item := range rec.Dates {
		dd, ok := item.(*DialogueDef)
		if !ok {
			continue
		}
		tree, verr := dd.ToTree()
		if verr != nil {
			warnings = append(warnings, fmt.Errorf("date %d: %w", i+1, verr))
			tree = dd.ToTreeUnchecked()
		}
		def.Dialogues = append(def.Dialogues, tree)
	}
	return def, warnings, nil
}

func stringOr(v *string, fallback string) string {
	if v == nil {
		return fallback
	}
	return *v
}

func floatOr(v *float64, fallback float64) float64 {
	if v == nil {
		return fallback
	}
	return *v
}

func clamp01(v float64) float64 {
	return max(0, min(1, v))
}

// parseColor accepts a 3 or 4 element list; non-numeric components become 1.
func parseColor(items []any) domain.Color {
	if len(items) < 3 {
		return domain.White
	}
	component := func(i int) float64 {
		if i >= len(items) {
			return 1
		}
		switch n := items[i].(type) {
		case float64:
			return n
		case int:
			return float64(n)
		case int64:
			return float64(n)
		}
		return 1
	}
	return domain.Color{R: component(0), G: component(1), B: component(2), A: component(3)}
}

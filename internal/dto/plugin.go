package dto

// FishRecord is the raw shape of a character submitted by a plugin script.
// Pointer fields distinguish "absent or wrongly typed" (nil) from zero values.
// It uses "mapstructure" tags matching the keys scripts write.
type FishRecord struct {
	ID          *string `mapstructure:"id"`
	Name        *string `mapstructure:"name"`
	Species     *string `mapstructure:"species"`
	Description *string `mapstructure:"description"`

	Difficulty *float64 `mapstructure:"difficulty"`
	Color      []any    `mapstructure:"color"`

	ArtHappy   *string `mapstructure:"art_happy"`
	ArtNeutral *string `mapstructure:"art_neutral"`
	ArtSad     *string `mapstructure:"art_sad"`
	ArtSmall   *string `mapstructure:"art_small"`

	DateLocation *string `mapstructure:"date_location"`
	DateSceneArt *string `mapstructure:"date_scene_art"`
	PondName     *string `mapstructure:"pond_name"`

	Dates []any `mapstructure:"dates"`
}

// ChoiceOption is the raw shape of one answer passed to a choice node.
type ChoiceOption struct {
	Text      *string            `mapstructure:"text"`
	Next      *string            `mapstructure:"next"`
	Affection *float64           `mapstructure:"affection"`
	Vars      map[string]float64 `mapstructure:"vars"`
}

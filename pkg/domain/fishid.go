package domain

import (
	"fmt"
	"strings"
)

// PluginPrefix marks the text form of a plugin-sourced FishID.
const PluginPrefix = "plugin:"

// Builtin enumerates the characters compiled into the game.
type Builtin uint8

const (
	notBuiltin Builtin = iota
	Bubbles
	Marina
	Gill
)

// Builtins lists the compiled-in characters in pond order.
var Builtins = []Builtin{Bubbles, Marina, Gill}

func (b Builtin) String() string {
	switch b {
	case Bubbles:
		return "bubbles"
	case Marina:
		return "marina"
	case Gill:
		return "gill"
	}
	return ""
}

// FishID identifies a character: either one of the closed set of builtins or a plugin id resolved
// through the registry. The zero value is invalid.
type FishID struct {
	builtin Builtin
	plugin  string
}

// BuiltinID returns the id of a compiled-in character.
func BuiltinID(b Builtin) FishID {
	return FishID{builtin: b}
}

// PluginID returns the id of a plugin-sourced character.
func PluginID(id string) FishID {
	return FishID{plugin: id}
}

// ParseFishID parses the text form produced by String.
func ParseFishID(s string) (FishID, error) {
	if rest, ok := strings.CutPrefix(s, PluginPrefix); ok {
		if rest == "" {
			return FishID{}, fmt.Errorf("empty plugin fish id")
		}
		return PluginID(rest), nil
	}
	for _, b := range Builtins {
		if b.String() == s {
			return BuiltinID(b), nil
		}
	}
	return FishID{}, fmt.Errorf("unknown fish id %q", s)
}

// Builtin reports the compiled-in character this id refers to.
func (f FishID) Builtin() (Builtin, bool) {
	return f.builtin, f.builtin != notBuiltin
}

// Plugin reports the registry id this id refers to.
func (f FishID) Plugin() (string, bool) {
	return f.plugin, f.builtin == notBuiltin && f.plugin != ""
}

// IsPlugin reports whether the character comes from a plugin.
func (f FishID) IsPlugin() bool {
	_, ok := f.Plugin()
	return ok
}

// IsZero reports whether f is the invalid zero value.
func (f FishID) IsZero() bool {
	return f.builtin == notBuiltin && f.plugin == ""
}

func (f FishID) String() string {
	if f.builtin != notBuiltin {
		return f.builtin.String()
	}
	if f.plugin == "" {
		return ""
	}
	return PluginPrefix + f.plugin
}

// MarshalText lets FishID key JSON maps in the save file.
func (f FishID) MarshalText() ([]byte, error) {
	if f.IsZero() {
		return nil, fmt.Errorf("marshal zero fish id")
	}
	return []byte(f.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (f *FishID) UnmarshalText(text []byte) error {
	id, err := ParseFishID(string(text))
	if err != nil {
		return err
	}
	*f = id
	return nil
}

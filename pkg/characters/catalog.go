package characters

import (
	"fmt"
	"strings"

	"github.com/quinnjr/fish-dating-simulator/pkg/domain"
	"github.com/quinnjr/fish-dating-simulator/pkg/registry"
)

// Pond is a fishing spot and the character that lives there.
type Pond struct {
	Name string
	Fish domain.FishID
}

// Catalog puts built-in and plugin characters behind one accessor.
// Built-ins always come first; plugin characters follow in registry order.
type Catalog struct {
	builtins map[domain.Builtin]*domain.FishDef
	reg      *registry.Registry
}

// NewCatalog creates a catalog over the compiled-in cast and reg. reg may be nil.
func NewCatalog(reg *registry.Registry) *Catalog {
	if reg == nil {
		reg = registry.NewRegistry()
	}
	return &Catalog{builtins: builtinDefs(), reg: reg}
}

// Registry returns the plugin registry backing the catalog.
func (c *Catalog) Registry() *registry.Registry {
	return c.reg
}

// Lookup resolves a character definition.
func (c *Catalog) Lookup(id domain.FishID) (*domain.FishDef, bool) {
	if b, ok := id.Builtin(); ok {
		def, found := c.builtins[b]
		return def, found
	}
	if pid, ok := id.Plugin(); ok {
		return c.reg.Get(pid)
	}
	return nil, false
}

// All lists every known character.
func (c *Catalog) All() []domain.FishID {
	ids := make([]domain.FishID, 0, len(domain.Builtins)+c.reg.Count())
	for _, b := range domain.Builtins {
		ids = append(ids, domain.BuiltinID(b))
	}
	for _, pid := range c.reg.IDs() {
		ids = append(ids, domain.PluginID(pid))
	}
	return ids
}

// Ponds lists fishing spots: built-in ponds first, then plugin ponds.
func (c *Catalog) Ponds() []Pond {
	var ponds []Pond
	for _, id := range c.All() {
		if def, ok := c.Lookup(id); ok {
			ponds = append(ponds, Pond{Name: def.PondName, Fish: id})
		}
	}
	return ponds
}

// Name returns the display name, falling back to the raw id for unknown plugins.
func (c *Catalog) Name(id domain.FishID) string {
	if def, ok := c.Lookup(id); ok {
		return def.Name
	}
	if pid, ok := id.Plugin(); ok {
		return pid
	}
	return id.String()
}

// Dialogue returns the tree for the given date number.
// An unknown character gets a generated date named after its id.
func (c *Catalog) Dialogue(id domain.FishID, dateNumber int) *domain.Tree {
	if def, ok := c.Lookup(id); ok {
		return def.DialogueForDate(dateNumber)
	}
	return domain.FallbackDialogue(c.Name(id))
}

// Resolve parses a user-supplied id. Besides the canonical text form it accepts a bare plugin
// id and built-in display names in any case.
func (c *Catalog) Resolve(s string) (domain.FishID, error) {
	if id, err := domain.ParseFishID(strings.ToLower(s)); err == nil && !id.IsPlugin() {
		return id, nil
	}
	if id, err := domain.ParseFishID(s); err == nil {
		if _, ok := c.Lookup(id); ok {
			return id, nil
		}
	}
	if _, ok := c.reg.Get(s); ok {
		return domain.PluginID(s), nil
	}
	return domain.FishID{}, fmt.Errorf("unknown fish %q", s)
}

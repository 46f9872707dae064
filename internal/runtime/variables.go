package runtime

import (
	"maps"
	"slices"

	"github.com/quinnjr/fish-dating-simulator/pkg/domain"
)

// Variables is the named integer store of one dialogue session.
// Values default to zero. The only mutation path is apply, driven by choice selection.
type Variables struct {
	values  map[string]int
	pending []domain.VariableChanged
}

func newVariables() *Variables {
	return &Variables{values: make(map[string]int)}
}

// Get returns the current value of a variable, 0 if it was never set.
func (v *Variables) Get(name string) int {
	return v.values[name]
}

// Snapshot returns a copy of every variable that has been written.
func (v *Variables) Snapshot() map[string]int {
	return maps.Clone(v.values)
}

// Pending returns the number of undrained events.
func (v *Variables) Pending() int {
	return len(v.pending)
}

// apply adds delta to a variable and queues an event when the value actually changes.
func (v *Variables) apply(name string, delta int) {
	old := v.values[name]
	next := old + delta
	v.values[name] = next
	if next != old {
		v.pending = append(v.pending, domain.VariableChanged{Name: name, OldValue: old, NewValue: next})
	}
}

// applyAll applies a delta map in lexical order of variable names so that event order never
// depends on map iteration.
func (v *Variables) applyAll(deltas map[string]int) {
	for _, name := range slices.Sorted(maps.Keys(deltas)) {
		v.apply(name, deltas[name])
	}
}

// poll removes and returns the oldest queued event.
func (v *Variables) poll() (domain.VariableChanged, bool) {
	if len(v.pending) == 0 {
		return domain.VariableChanged{}, false
	}
	ev := v.pending[0]
	v.pending[0] = domain.VariableChanged{}
	v.pending = v.pending[1:]
	return ev, true
}

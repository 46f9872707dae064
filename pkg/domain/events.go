package domain

import "fmt"

// VariableChanged records one mutation of a dialogue variable.
// It is appended whenever a choice changes a variable's value and drained once by the host.
type VariableChanged struct {
	Name     string `json:"name"`
	OldValue int    `json:"old_value"`
	NewValue int    `json:"new_value"`
}

// Delta returns the signed change carried by the event.
func (e VariableChanged) Delta() int {
	return e.NewValue - e.OldValue
}

func (e VariableChanged) String() string {
	return fmt.Sprintf("%s: %d -> %d", e.Name, e.OldValue, e.NewValue)
}

// AffectionVar is the variable the game host sums into a relationship score.
// The dialogue core treats it like any other name.
const AffectionVar = "affection"

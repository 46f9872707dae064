package plugin

import (
	"errors"
	"fmt"
)

// ErrBudgetExceeded aborts a script that ran more VM instructions than its budget allows.
var ErrBudgetExceeded = errors.New("operation budget exceeded")

// ErrNoRegistrations is reported for a script that finished without registering anything.
var ErrNoRegistrations = errors.New("script registered no fish")

// RecordError describes why a submitted character record was rejected.
type RecordError struct {
	Field  string
	Reason string
}

func (e *RecordError) Error() string {
	return fmt.Sprintf("field '%s': %s", e.Field, e.Reason)
}

// ScriptError wraps a failure that stopped a plugin script.
type ScriptError struct {
	Script string
	Err    error
}

func (e *ScriptError) Error() string {
	return fmt.Sprintf("plugin %s: %v", e.Script, e.Err)
}

func (e *ScriptError) Unwrap() error {
	return e.Err
}

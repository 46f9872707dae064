package domain

import (
	"errors"
	"fmt"
)

// ErrInvalidOperation is returned when a Runner step is called from a state that does not accept it
// (e.g. Advance while a choice is pending).
var ErrInvalidOperation = errors.New("invalid operation")

// ErrIndexOutOfRange is returned when a choice index does not exist in the current choice list.
var ErrIndexOutOfRange = errors.New("choice index out of range")

// ErrSaveNotFound is returned when no player save exists in the store.
var ErrSaveNotFound = errors.New("save not found")

// Graph validation failure kinds. Match them with errors.Is.
var (
	ErrEmptyGraph     = errors.New("graph has no nodes")
	ErrStartMissing   = errors.New("start node not present")
	ErrDuplicateNode  = errors.New("duplicate node id")
	ErrUnknownNext    = errors.New("unknown next node")
	ErrUnknownTarget  = errors.New("unknown choice target")
	ErrUnknownSpeaker = errors.New("unknown speaker")
	ErrUnknownType    = errors.New("unknown node type")
)

// GraphError describes one referential-integrity problem found while building a Tree.
type GraphError struct {
	Kind   error  // One of the Err* graph kinds
	NodeID string // Node that holds the bad reference (empty for graph-level problems)
	Ref    string // The offending id
}

func (e *GraphError) Error() string {
	switch {
	case e.NodeID == "" && e.Ref == "":
		return e.Kind.Error()
	case e.NodeID == "":
		return fmt.Sprintf("%v: %q", e.Kind, e.Ref)
	default:
		return fmt.Sprintf("node %q: %v %q", e.NodeID, e.Kind, e.Ref)
	}
}

func (e *GraphError) Unwrap() error {
	return e.Kind
}

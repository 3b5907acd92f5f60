package automaton

import (
	"errors"
	"fmt"
)

// Predefined error types.
var (
	// ErrMalformedDescription is the class error for every textual
	// description parse failure; match it with errors.Is to catch any of
	// the more specific parse errors below.
	ErrMalformedDescription = errors.New("malformed automaton description")

	// ErrFieldCount indicates that a description has fewer than the four
	// mandatory fields (states, alphabet, start state, accept states).
	ErrFieldCount = errors.New("description needs states, alphabet, start and accept-state fields")
	// ErrTransitionRecord indicates a transition record missing its comma
	// or arrow separator.
	ErrTransitionRecord = errors.New("transition record must look like source,symbol->destination")
	// ErrDuplicateTransition indicates two transitions from the same state
	// on the same symbol with different destinations.
	ErrDuplicateTransition = errors.New("conflicting duplicate transition")

	// ErrStateRequired indicates that at least one state is required.
	ErrStateRequired = errors.New("at least one state is required")
	// ErrStartStateRequired indicates that a start state is required.
	ErrStartStateRequired = errors.New("start state is required")
	// ErrStartStateUnknown indicates that the start state does not exist.
	ErrStartStateUnknown = errors.New("start state does not exist")
	// ErrAcceptStateUnknown indicates that an accept state does not exist.
	ErrAcceptStateUnknown = errors.New("accept state does not exist")
	// ErrTransitionStateUnknown indicates that a transition references a
	// state that does not exist.
	ErrTransitionStateUnknown = errors.New("transition references a state that does not exist")
	// ErrTransitionSymbolUnknown indicates that a transition references a
	// symbol outside the declared alphabet.
	ErrTransitionSymbolUnknown = errors.New("transition references a symbol outside the alphabet")

	// ErrInvalidDefinition is the class error for YAML definition failures.
	ErrInvalidDefinition = errors.New("invalid automaton definition")
)

// DescriptionError wraps a parse failure with the offending top-level field
// index and, for transition records, the record text. A Field of -1 means
// the failure concerns the description as a whole.
type DescriptionError struct {
	Field  int
	Record string
	Err    error
}

func (e *DescriptionError) Error() string {
	switch {
	case e.Record != "":
		return fmt.Sprintf("field %d (%q): %v", e.Field, e.Record, e.Err)
	case e.Field >= 0:
		return fmt.Sprintf("field %d: %v", e.Field, e.Err)
	default:
		return fmt.Sprintf("description: %v", e.Err)
	}
}

func (e *DescriptionError) Unwrap() error {
	return e.Err
}

// Is matches ErrMalformedDescription for every DescriptionError, so callers
// can test for the whole class without knowing the specific cause.
func (e *DescriptionError) Is(target error) bool {
	return target == ErrMalformedDescription
}

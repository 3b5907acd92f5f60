package automaton

import (
	"fmt"
	"strings"

	"github.com/amp-labs/amp-automata/set"
)

// Textual description format tokens.
const (
	fieldSeparator = ";"
	itemSeparator  = ","
	arrowToken     = "->"

	// The mandatory leading fields: states, alphabet, start state, accept states.
	minFieldCount = 4
)

// Parse builds an Automaton from its textual description.
//
// The format is semicolon-separated:
//
//	states ";" alphabet ";" start ";" accepts (";" transition)*
//
// where states, alphabet and accepts are comma-separated lists (accepts may
// be empty) and each transition record reads source,symbol->destination.
// Labels and symbols are opaque strings without embedded separators.
//
// Any malformed input is reported as a DescriptionError matching
// ErrMalformedDescription; nothing is silently coerced.
func Parse(text string) (*Automaton, error) {
	a, err := parseDescription(text)
	if err != nil {
		parsesTotal.WithLabelValues(outcomeError).Inc()

		return nil, err
	}

	parsesTotal.WithLabelValues(outcomeSuccess).Inc()

	return a, nil
}

func parseDescription(text string) (*Automaton, error) {
	fields := strings.Split(text, fieldSeparator)
	if len(fields) < minFieldCount {
		return nil, &DescriptionError{
			Field: -1,
			Err:   fmt.Errorf("%w: got %d", ErrFieldCount, len(fields)),
		}
	}

	states := set.NewStringSet(splitItems(fields[0])...)
	alphabet := set.NewOrderedStringSet(splitItems(fields[1])...)
	start := fields[2]
	accepting := set.NewStringSet(splitItems(fields[3])...)

	transitions := make(map[transitionKey]string)

	for i, record := range fields[minFieldCount:] {
		if record == "" {
			continue
		}

		field := i + minFieldCount

		source, rest, ok := strings.Cut(record, itemSeparator)
		if !ok {
			return nil, &DescriptionError{Field: field, Record: record, Err: ErrTransitionRecord}
		}

		symbol, destination, ok := strings.Cut(rest, arrowToken)
		if !ok {
			return nil, &DescriptionError{Field: field, Record: record, Err: ErrTransitionRecord}
		}

		key := transitionKey{State: source, Symbol: symbol}

		if previous, exists := transitions[key]; exists && previous != destination {
			return nil, &DescriptionError{
				Field:  field,
				Record: record,
				Err: fmt.Errorf("%w: (%s, %s) maps to both %s and %s",
					ErrDuplicateTransition, source, symbol, previous, destination),
			}
		}

		transitions[key] = destination
	}

	a, err := newAutomaton(states, alphabet, start, accepting, transitions)
	if err != nil {
		return nil, &DescriptionError{Field: -1, Err: err}
	}

	return a, nil
}

// splitItems splits a comma-separated list field. An empty field is an empty
// list, not a list containing the empty string.
func splitItems(field string) []string {
	if field == "" {
		return nil
	}

	return strings.Split(field, itemSeparator)
}

package automaton

import (
	"fmt"

	commonerrors "github.com/amp-labs/amp-automata/errors"
	"github.com/amp-labs/amp-automata/set"
)

// Builder provides a fluent API for constructing automata programmatically.
// Build validates the accumulated configuration with the same eager checks
// as the textual parser and reports every violation at once.
type Builder struct {
	states      []string
	alphabet    []string
	start       string
	accepting   []string
	transitions []transitionRecord
}

type transitionRecord struct {
	From   string
	Symbol string
	To     string
}

// NewBuilder creates a new automaton builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// WithStates adds state labels.
func (b *Builder) WithStates(states ...string) *Builder {
	b.states = append(b.states, states...)

	return b
}

// WithAlphabet adds input symbols. Declaration order is preserved and
// determines iteration order during product construction and emptiness
// checking.
func (b *Builder) WithAlphabet(symbols ...string) *Builder {
	b.alphabet = append(b.alphabet, symbols...)

	return b
}

// WithStart sets the start state.
func (b *Builder) WithStart(state string) *Builder {
	b.start = state

	return b
}

// WithAccepting adds accept states.
func (b *Builder) WithAccepting(states ...string) *Builder {
	b.accepting = append(b.accepting, states...)

	return b
}

// AddTransition adds a deterministic transition from a state on a symbol to
// a destination state.
func (b *Builder) AddTransition(from, symbol, to string) *Builder {
	b.transitions = append(b.transitions, transitionRecord{From: from, Symbol: symbol, To: to})

	return b
}

// Build constructs the immutable automaton. It fails when two registered
// transitions conflict (same state and symbol, different destinations) or
// when any automaton invariant is violated.
func (b *Builder) Build() (*Automaton, error) {
	coll := &commonerrors.Collection{}
	transitions := make(map[transitionKey]string, len(b.transitions))

	for _, record := range b.transitions {
		key := transitionKey{State: record.From, Symbol: record.Symbol}

		if previous, exists := transitions[key]; exists && previous != record.To {
			coll.Add(fmt.Errorf("%w: (%s, %s) maps to both %s and %s",
				ErrDuplicateTransition, record.From, record.Symbol, previous, record.To))

			continue
		}

		transitions[key] = record.To
	}

	if coll.HasError() {
		return nil, coll.GetError()
	}

	return newAutomaton(
		set.NewStringSet(b.states...),
		set.NewOrderedStringSet(b.alphabet...),
		b.start,
		set.NewStringSet(b.accepting...),
		transitions,
	)
}

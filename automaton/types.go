// Package automaton implements deterministic finite automata: construction
// from a compact textual description or a YAML definition, a reachable-pairs
// product construction for language intersection, and breadth-first emptiness
// checking. Two language specifications are "consistent" when the
// intersection of their languages is non-empty.
package automaton

import (
	"fmt"
	"sort"
	"strings"

	commonerrors "github.com/amp-labs/amp-automata/errors"
	"github.com/amp-labs/amp-automata/set"
)

// transitionKey identifies a deterministic transition by its source state
// and input symbol.
type transitionKey struct {
	State  string
	Symbol string
}

// Automaton is an immutable deterministic finite automaton.
//
// The transition map may be partial: a missing (state, symbol) entry means
// "no move possible" and is a normal condition, not a fault. Product
// construction and emptiness checking both rely on that reading.
type Automaton struct {
	states      *set.StringSet
	alphabet    *set.OrderedStringSet
	start       string
	accepting   *set.StringSet
	transitions map[transitionKey]string
}

// newAutomaton assembles an Automaton and eagerly validates its invariants:
// the start state must exist, accept states must be a subset of the states,
// and every transition must reference known states and a declared symbol.
func newAutomaton(
	states *set.StringSet,
	alphabet *set.OrderedStringSet,
	start string,
	accepting *set.StringSet,
	transitions map[transitionKey]string,
) (*Automaton, error) {
	a := &Automaton{
		states:      states,
		alphabet:    alphabet,
		start:       start,
		accepting:   accepting,
		transitions: transitions,
	}

	if err := a.validate(); err != nil {
		return nil, err
	}

	return a, nil
}

// validate collects every invariant violation rather than stopping at the
// first, so a caller sees all problems with a hand-written description at
// once. The alphabet may legitimately be empty (the product of automata
// with disjoint alphabets has no symbols at all).
func (a *Automaton) validate() error {
	coll := &commonerrors.Collection{}

	if a.states.Size() == 0 {
		coll.Add(ErrStateRequired)
	}

	switch {
	case a.start == "":
		coll.Add(ErrStartStateRequired)
	case !a.states.Contains(a.start):
		coll.Add(fmt.Errorf("%w: %s", ErrStartStateUnknown, a.start))
	}

	for _, state := range a.accepting.SortedEntries() {
		if !a.states.Contains(state) {
			coll.Add(fmt.Errorf("%w: %s", ErrAcceptStateUnknown, state))
		}
	}

	for key, destination := range a.transitions {
		if !a.states.Contains(key.State) {
			coll.Add(fmt.Errorf("%w: %s", ErrTransitionStateUnknown, key.State))
		}

		if !a.alphabet.Contains(key.Symbol) {
			coll.Add(fmt.Errorf("%w: %s", ErrTransitionSymbolUnknown, key.Symbol))
		}

		if !a.states.Contains(destination) {
			coll.Add(fmt.Errorf("%w: %s", ErrTransitionStateUnknown, destination))
		}
	}

	return coll.GetError()
}

// States returns all state labels in natural sort order.
func (a *Automaton) States() []string {
	return a.states.NaturalSortedEntries()
}

// Alphabet returns the input symbols in declaration order.
func (a *Automaton) Alphabet() []string {
	return a.alphabet.Entries()
}

// Start returns the start state label.
func (a *Automaton) Start() string {
	return a.start
}

// AcceptStates returns the accept state labels in natural sort order.
// The result may be empty; an automaton without accept states recognizes
// the empty language.
func (a *Automaton) AcceptStates() []string {
	return a.accepting.NaturalSortedEntries()
}

// IsAccepting reports whether the given state is an accept state.
func (a *Automaton) IsAccepting(state string) bool {
	return a.accepting.Contains(state)
}

// Step looks up the transition for (state, symbol). The second return value
// is false when no transition is defined, which models a partial automaton
// rather than an implicit reject-state completion.
func (a *Automaton) Step(state, symbol string) (string, bool) {
	destination, ok := a.transitions[transitionKey{State: state, Symbol: symbol}]

	return destination, ok
}

// Description renders the automaton in the compact textual format accepted
// by Parse. States and accept states are emitted in natural sort order and
// transitions in lexicographic order, so the output is deterministic.
func (a *Automaton) Description() string {
	records := make([]string, 0, len(a.transitions))
	for key, destination := range a.transitions {
		records = append(records, key.State+itemSeparator+key.Symbol+arrowToken+destination)
	}

	sort.Strings(records)

	fields := []string{
		strings.Join(a.states.NaturalSortedEntries(), itemSeparator),
		strings.Join(a.alphabet.Entries(), itemSeparator),
		a.start,
		strings.Join(a.accepting.NaturalSortedEntries(), itemSeparator),
	}
	fields = append(fields, records...)

	return strings.Join(fields, fieldSeparator)
}

// String implements fmt.Stringer using the textual description format.
func (a *Automaton) String() string {
	return a.Description()
}

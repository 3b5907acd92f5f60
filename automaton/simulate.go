package automaton

// Accepts reports whether the automaton accepts the given input word, one
// symbol per argument. A symbol with no defined transition from the current
// state rejects the word immediately (partial-automaton semantics); symbols
// outside the alphabet behave the same way. The empty word is accepted
// exactly when the start state is an accept state.
func (a *Automaton) Accepts(symbols ...string) bool {
	current := a.start

	for _, symbol := range symbols {
		next, ok := a.Step(current, symbol)
		if !ok {
			return false
		}

		current = next
	}

	return a.accepting.Contains(current)
}

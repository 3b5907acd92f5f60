package descio

import (
	"github.com/amp-labs/amp-automata/automaton"
)

// LoadAutomaton reads a description file and parses it into an automaton.
func LoadAutomaton(path string) (*automaton.Automaton, error) {
	description, err := ReadFile(path)
	if err != nil {
		return nil, err
	}

	return automaton.Parse(description)
}

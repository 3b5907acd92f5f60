package automaton

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Definition is the YAML form of an automaton description. It is friendlier
// than the compact textual format for definitions kept in configuration
// files or embedded assets.
//
// Example:
//
//	name: ends-in-one
//	states: [t0, t1]
//	alphabet: ["0", "1"]
//	start: t0
//	accepting: [t1]
//	transitions:
//	  - {from: t0, symbol: "0", to: t0}
//	  - {from: t0, symbol: "1", to: t1}
//	  - {from: t1, symbol: "0", to: t0}
//	  - {from: t1, symbol: "1", to: t1}
type Definition struct {
	Name        string                 `yaml:"name"`
	States      []string               `yaml:"states"`
	Alphabet    []string               `yaml:"alphabet"`
	Start       string                 `yaml:"start"`
	Accepting   []string               `yaml:"accepting"`
	Transitions []DefinitionTransition `yaml:"transitions"`
}

// DefinitionTransition is one deterministic transition of a Definition.
type DefinitionTransition struct {
	From   string `yaml:"from"`
	Symbol string `yaml:"symbol"`
	To     string `yaml:"to"`
}

// ParseDefinition decodes a YAML automaton definition. Decoding errors wrap
// ErrInvalidDefinition.
func ParseDefinition(data []byte) (*Definition, error) {
	var def Definition

	if err := yaml.Unmarshal(data, &def); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidDefinition, err)
	}

	return &def, nil
}

// LoadDefinitionFile reads and decodes a YAML automaton definition file.
func LoadDefinitionFile(path string) (*Definition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read definition file: %w", err)
	}

	return ParseDefinition(data)
}

// Automaton builds the immutable automaton described by the definition,
// applying the same validation as the textual parser. Validation failures
// wrap ErrInvalidDefinition.
func (d *Definition) Automaton() (*Automaton, error) {
	builder := NewBuilder().
		WithStates(d.States...).
		WithAlphabet(d.Alphabet...).
		WithStart(d.Start).
		WithAccepting(d.Accepting...)

	for _, transition := range d.Transitions {
		builder.AddTransition(transition.From, transition.Symbol, transition.To)
	}

	a, err := builder.Build()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidDefinition, err)
	}

	return a, nil
}

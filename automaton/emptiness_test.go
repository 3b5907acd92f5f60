package automaton

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsEmpty(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		description string
		expected    bool
	}{
		{
			name:        "accepting start state is non-empty",
			description: "q0;0;q0;q0;",
			expected:    false,
		},
		{
			name:        "no accept states is empty",
			description: "q0;0,1;q0;;q0,0->q0;q0,1->q0",
			expected:    true,
		},
		{
			name:        "reachable accept state is non-empty",
			description: "q0,q1;0;q0;q1;q0,0->q1",
			expected:    false,
		},
		{
			name:        "unreachable accept state is empty",
			description: "q0,q1,q2;0;q0;q2;q0,0->q1;q1,0->q0",
			expected:    true,
		},
		{
			name:        "cycle without accept states terminates and is empty",
			description: "q0,q1;0,1;q0;;q0,0->q1;q0,1->q1;q1,0->q0;q1,1->q0",
			expected:    true,
		},
		{
			name:        "accept state behind a long chain is non-empty",
			description: "q0,q1,q2,q3;0;q0;q3;q0,0->q1;q1,0->q2;q2,0->q3",
			expected:    false,
		},
		{
			name:        "no transitions and non-accepting start is empty",
			description: "q0,q1;0;q0;q1;",
			expected:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			a := mustParse(t, tt.description)

			assert.Equal(t, tt.expected, a.IsEmpty(context.Background()))
		})
	}
}

func TestIsEmpty_AgreesWithSimulation(t *testing.T) {
	t.Parallel()

	descriptions := []string{
		descAcceptsAll,
		descEndsInZero,
		descEndsInOne,
		descEvenLength,
		"q0;0,1;q0;;q0,0->q0;q0,1->q0",
	}

	for _, description := range descriptions {
		a := mustParse(t, description)

		anyAccepted := false

		for _, word := range allWords([]string{"0", "1"}, 5) {
			if a.Accepts(word...) {
				anyAccepted = true

				break
			}
		}

		// For these small automata, any accepted word shows up within
		// five symbols, so simulation and reachability must agree.
		assert.Equal(t, !anyAccepted, a.IsEmpty(context.Background()), "description %s", description)
	}
}

package automaton

import (
	"context"
	"encoding/binary"
	"hash"
	"log/slog"

	"go.opentelemetry.io/otel/attribute"

	"github.com/amp-labs/amp-automata/hashing"
	"github.com/amp-labs/amp-automata/set"
)

// StatePair is an ordered pair of state labels drawn from the two source
// automata of a product construction. It is a value type with structural
// equality and content hashing, so it can be stored in a set.Set directly.
type StatePair struct {
	A string
	B string
}

// UpdateHash writes the pair's contents to the hash. Each label is
// length-framed so adjacent labels cannot run together ("ab","c" must not
// hash like "a","bc").
func (p StatePair) UpdateHash(h hash.Hash) error {
	for _, label := range []string{p.A, p.B} {
		if err := binary.Write(h, binary.LittleEndian, uint64(len(label))); err != nil {
			return err
		}

		if _, err := h.Write([]byte(label)); err != nil {
			return err
		}
	}

	return nil
}

// Equals reports structural equality of the two pairs; order matters.
func (p StatePair) Equals(other StatePair) bool {
	return p.A == other.A && p.B == other.B
}

// Label renders the pair as a single product-state label.
func (p StatePair) Label() string {
	return "(" + p.A + itemSeparator + p.B + ")"
}

// Intersect builds the product automaton whose language is L(a) ∩ L(b).
//
// The construction is on-the-fly breadth-first over state pairs: only pairs
// reachable from (a.start, b.start) are materialized, never the full
// Cartesian product. The product alphabet is the intersection of the two
// source alphabets; symbols outside it are meaningless for the combined
// automaton and are never explored. A product transition on a symbol exists
// only when both source automata define a move on it — a missing transition
// in either side blocks the step.
//
// The inputs are not aliased or modified; the returned automaton is fully
// owned by the caller.
func Intersect(ctx context.Context, a, b *Automaton) (*Automaton, error) {
	ctx, span := startIntersectSpan(ctx, a, b)
	defer span.End()

	sharedAlphabet := a.alphabet.Intersection(b.alphabet)

	startPair := StatePair{A: a.start, B: b.start}

	visited := set.NewSet[StatePair](hashing.XXH3)
	if err := visited.Add(startPair); err != nil {
		recordSpanError(span, err)

		return nil, err
	}

	states := set.NewStringSet()
	accepting := set.NewStringSet()
	transitions := make(map[transitionKey]string)

	queue := []StatePair{startPair}

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		states.Add(current.Label())

		if a.accepting.Contains(current.A) && b.accepting.Contains(current.B) {
			accepting.Add(current.Label())
		}

		for _, symbol := range sharedAlphabet.Entries() {
			nextA, ok := a.Step(current.A, symbol)
			if !ok {
				continue
			}

			nextB, ok := b.Step(current.B, symbol)
			if !ok {
				continue
			}

			next := StatePair{A: nextA, B: nextB}
			transitions[transitionKey{State: current.Label(), Symbol: symbol}] = next.Label()

			seen, err := visited.Contains(next)
			if err != nil {
				recordSpanError(span, err)

				return nil, err
			}

			if !seen {
				if err := visited.Add(next); err != nil {
					recordSpanError(span, err)

					return nil, err
				}

				queue = append(queue, next)
			}
		}
	}

	product, err := newAutomaton(states, sharedAlphabet, startPair.Label(), accepting, transitions)
	if err != nil {
		recordSpanError(span, err)

		return nil, err
	}

	productStates.Observe(float64(states.Size()))

	span.SetAttributes(
		attribute.Int("product_states", states.Size()),
		attribute.Int("product_alphabet", sharedAlphabet.Size()),
		attribute.Int("product_transitions", len(transitions)),
	)

	slog.DebugContext(ctx, "Product automaton constructed",
		"states", states.Size(),
		"alphabet", sharedAlphabet.Size(),
		"accepting", accepting.Size(),
		"transitions", len(transitions),
	)

	return product, nil
}

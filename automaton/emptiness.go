package automaton

import (
	"context"
	"log/slog"

	"go.opentelemetry.io/otel/attribute"

	"github.com/amp-labs/amp-automata/set"
)

// IsEmpty reports whether the automaton's language is empty, i.e. whether no
// accepting state is reachable from the start state by any finite string.
//
// The check is a breadth-first reachability search with an explicit work
// queue; it returns false the moment an accepting state is dequeued, without
// exploring the rest of the state space. The search terminates because each
// state is expanded at most once over a finite state space.
func (a *Automaton) IsEmpty(ctx context.Context) bool {
	ctx, span := startEmptinessSpan(ctx, a)
	defer span.End()

	visited := set.NewStringSet()
	queue := []string{a.start}

	for len(queue) > 0 {
		state := queue[0]
		queue = queue[1:]

		// Acceptance is checked before the visited test so that an
		// accepting start state short-circuits on the first dequeue.
		if a.accepting.Contains(state) {
			emptinessChecksTotal.WithLabelValues(resultNonEmpty).Inc()
			span.SetAttributes(attribute.Bool("empty", false))

			slog.DebugContext(ctx, "Accepting state reachable",
				"state", state,
				"visited", visited.Size(),
			)

			return false
		}

		if visited.Contains(state) {
			continue
		}

		visited.Add(state)

		for _, symbol := range a.alphabet.Entries() {
			if next, ok := a.Step(state, symbol); ok && !visited.Contains(next) {
				queue = append(queue, next)
			}
		}
	}

	emptinessChecksTotal.WithLabelValues(resultEmpty).Inc()
	span.SetAttributes(attribute.Bool("empty", true))

	slog.DebugContext(ctx, "No accepting state reachable", "visited", visited.Size())

	return true
}

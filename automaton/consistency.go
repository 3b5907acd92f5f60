package automaton

import (
	"context"
	"fmt"
	"log/slog"
)

// IsConsistent reports whether two textual automaton descriptions are
// mutually satisfiable: true when at least one input string is accepted by
// both automata, false when the intersection of their languages is empty.
//
// It is a pure function of its two inputs: parse both descriptions, build
// the product automaton, and test the product for emptiness. Parse failures
// propagate as DescriptionErrors.
func IsConsistent(ctx context.Context, descriptionA, descriptionB string) (bool, error) {
	ctx, span := startConsistencySpan(ctx)
	defer span.End()

	a, err := Parse(descriptionA)
	if err != nil {
		consistencyChecksTotal.WithLabelValues(outcomeError, resultNone).Inc()
		recordSpanError(span, err)

		return false, fmt.Errorf("first description: %w", err)
	}

	b, err := Parse(descriptionB)
	if err != nil {
		consistencyChecksTotal.WithLabelValues(outcomeError, resultNone).Inc()
		recordSpanError(span, err)

		return false, fmt.Errorf("second description: %w", err)
	}

	product, err := Intersect(ctx, a, b)
	if err != nil {
		consistencyChecksTotal.WithLabelValues(outcomeError, resultNone).Inc()
		recordSpanError(span, err)

		return false, err
	}

	consistent := !product.IsEmpty(ctx)

	result := resultInconsistent
	if consistent {
		result = resultConsistent
	}

	consistencyChecksTotal.WithLabelValues(outcomeSuccess, result).Inc()

	slog.DebugContext(ctx, "Consistency check completed",
		"consistent", consistent,
		"product_states", product.states.Size(),
	)

	return consistent, nil
}

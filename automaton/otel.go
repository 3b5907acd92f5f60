package automaton

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "automaton"

// startIntersectSpan creates the span for a product construction.
// Uses the global tracer initialized by github.com/amp-labs/amp-automata/telemetry.
// The caller is responsible for calling span.End().
//
//nolint:spancheck // Span lifecycle managed by caller (factory pattern)
func startIntersectSpan(ctx context.Context, a, b *Automaton) (context.Context, trace.Span) {
	tracer := otel.Tracer(tracerName)
	ctx, span := tracer.Start(ctx, "automaton.intersect")
	span.SetAttributes(
		attribute.Int("a_states", a.states.Size()),
		attribute.Int("a_alphabet", a.alphabet.Size()),
		attribute.Int("b_states", b.states.Size()),
		attribute.Int("b_alphabet", b.alphabet.Size()),
	)

	return ctx, span
}

// startEmptinessSpan creates the span for an emptiness check.
// The caller is responsible for calling span.End().
//
//nolint:spancheck // Span lifecycle managed by caller (factory pattern)
func startEmptinessSpan(ctx context.Context, a *Automaton) (context.Context, trace.Span) {
	tracer := otel.Tracer(tracerName)
	ctx, span := tracer.Start(ctx, "automaton.is_empty")
	span.SetAttributes(
		attribute.Int("states", a.states.Size()),
		attribute.Int("alphabet", a.alphabet.Size()),
	)

	return ctx, span
}

// startConsistencySpan creates the root span for a consistency decision.
// The caller is responsible for calling span.End().
//
//nolint:spancheck // Span lifecycle managed by caller (factory pattern)
func startConsistencySpan(ctx context.Context) (context.Context, trace.Span) {
	tracer := otel.Tracer(tracerName)

	return tracer.Start(ctx, "automaton.is_consistent")
}

// recordSpanError records an error on the span and marks its status.
func recordSpanError(span trace.Span, err error) {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
}

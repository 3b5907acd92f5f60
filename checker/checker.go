// Package checker runs consistency checks over batches of automaton
// description pairs on a bounded worker pool.
package checker

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"github.com/alitto/pond/v2"
	"github.com/google/uuid"
	"go.uber.org/atomic"

	"github.com/amp-labs/amp-automata/automaton"
)

const defaultWorkerCount = 10

// Pair is one pair of automaton descriptions to check against each other.
type Pair struct {
	Name         string
	DescriptionA string
	DescriptionB string
}

// Result is the outcome of checking a single pair. When Err is non-nil the
// Consistent field is meaningless.
type Result struct {
	Pair       Pair
	Consistent bool
	Err        error
}

// Checker fans consistency checks out over a worker pool. Each pair is
// independent, so batches scale with the worker count.
type Checker struct {
	pool   pond.Pool
	logger *slog.Logger
}

// Option configures a Checker.
type Option func(*Checker)

// WithLogger sets the logger used for batch summaries. Defaults to
// slog.Default.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Checker) {
		c.logger = logger
	}
}

// New creates a Checker backed by a pool of the given size. A non-positive
// worker count falls back to the default.
func New(workers int, opts ...Option) *Checker {
	if workers <= 0 {
		workers = defaultWorkerCount
	}

	c := &Checker{
		pool:   pond.NewPool(workers),
		logger: slog.Default(),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// CheckPairs checks every pair concurrently and returns results in input
// order. Individual failures are reported per pair rather than aborting the
// batch, but a canceled context stops scheduling further work.
func (c *Checker) CheckPairs(ctx context.Context, pairs []Pair) []Result {
	runID := uuid.NewString()
	started := time.Now()

	consistent := atomic.NewInt64(0)
	inconsistent := atomic.NewInt64(0)
	failed := atomic.NewInt64(0)

	results := make([]Result, len(pairs))
	tasks := make([]pond.Task, len(pairs))

	for i, pair := range pairs {
		tasks[i] = c.pool.Submit(func() {
			results[i] = c.checkOne(ctx, pair, consistent, inconsistent, failed)
		})
	}

	for _, task := range tasks {
		_ = task.Wait()
	}

	c.logger.InfoContext(ctx, "Consistency check batch complete",
		"runId", runID,
		"pairs", len(pairs),
		"consistent", consistent.Load(),
		"inconsistent", inconsistent.Load(),
		"failed", failed.Load(),
		"duration", time.Since(started),
	)

	return results
}

func (c *Checker) checkOne(
	ctx context.Context, pair Pair,
	consistent, inconsistent, failed *atomic.Int64,
) Result {
	if err := ctx.Err(); err != nil {
		failed.Inc()

		return Result{Pair: pair, Err: err}
	}

	ok, err := automaton.IsConsistent(ctx, pair.DescriptionA, pair.DescriptionB)
	if err != nil {
		failed.Inc()

		return Result{Pair: pair, Err: fmt.Errorf("pair %s: %w", pair.Name, err)}
	}

	if ok {
		consistent.Inc()
	} else {
		inconsistent.Inc()
	}

	return Result{Pair: pair, Consistent: ok}
}

// Close stops the worker pool and waits for in-flight checks to finish.
func (c *Checker) Close() {
	c.pool.StopAndWait()
}

// AllPairs builds every unordered pair of the named descriptions. Names are
// sorted first so the pair order is deterministic.
func AllPairs(descriptions map[string]string) []Pair {
	names := make([]string, 0, len(descriptions))
	for name := range descriptions {
		names = append(names, name)
	}

	slices.Sort(names)

	var pairs []Pair

	for i, a := range names {
		for _, b := range names[i+1:] {
			pairs = append(pairs, Pair{
				Name:         a + "/" + b,
				DescriptionA: descriptions[a],
				DescriptionB: descriptions[b],
			})
		}
	}

	return pairs
}

package engine

import (
	"context"
	"iter"
	"math"
	"time"

	"github.com/katalvlaran/tandupscan/record"
	"github.com/katalvlaran/tandupscan/score"
	"github.com/katalvlaran/tandupscan/segment"
	"github.com/katalvlaran/tandupscan/smt"
	"github.com/katalvlaran/tandupscan/topn"
)

// Run validates cfg, builds the SMT and scoring strategy, enumerates every
// segment-pair into the collector, and hands the timed RunSummary to sink.
//
// Results whose cost is +Inf (every root state was infeasible) are never
// inserted into the collector; an all-infeasible run legitimately yields
// an empty summary, not an error.
func Run(cfg RunConfig, sink Sink) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	start := time.Now()

	tree, err := smt.New(len(cfg.Sequences), cfg.Mutation)
	if err != nil {
		return err
	}
	scorer, err := score.New(cfg.Strategy, tree, cfg.Sequences, cfg.Mutation)
	if err != nil {
		return err
	}

	collector := topn.New(cfg.NoResults)
	l := uint64(len(cfg.Sequences[0]))

	for _, k := range segment.Lengths(l, cfg.LengthParams) {
		for _, p := range segment.Positions(l, k) {
			cost, err := scorer.CostFor(p, k)
			if err != nil {
				return err
			}
			if math.IsInf(cost, 1) {
				continue
			}
			collector.Add(record.Result{Start: p, Length: k, Cost: cost})
		}
	}

	summary := record.RunSummary{
		Results: collector.Results(),
		Elapsed: time.Since(start),
	}
	return sink.Store(summary)
}

// runAllConfig holds RunAll's optional settings, built from defaults plus
// any RunAllOption the caller supplies (teacher's functional-option
// convention, e.g. builder.BuilderOption/newBuilderConfig).
type runAllConfig struct {
	ctx context.Context
}

// RunAllOption customizes RunAll. As a rule, option constructors never
// panic at runtime.
type RunAllOption func(*runAllConfig)

// WithContext supplies a context.Context that RunAll checks for
// cancellation only between RunConfigs, never inside a single Run's inner
// k/p loop (§5: "cancelable only between run configurations"). Passing a
// context already canceled before the first RunConfig is pulled makes
// RunAll return its Err() without running anything.
func WithContext(ctx context.Context) RunAllOption {
	return func(c *runAllConfig) { c.ctx = ctx }
}

// newRunAllConfig returns a runAllConfig initialized with defaults
// (context.Background, i.e. never cancels), then applies each opt in
// order.
func newRunAllConfig(opts ...RunAllOption) *runAllConfig {
	cfg := &runAllConfig{ctx: context.Background()}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// RunAll pulls RunConfig values from configs and runs each in turn,
// sequentially, stopping and returning the first error encountered. Every
// RunConfig that completes produces exactly one summary.
//
// If WithContext supplied a context, RunAll checks it immediately before
// starting each RunConfig (including the first); once it is Done, RunAll
// returns ctx.Err() without starting the next configuration. A RunConfig
// already in progress is never interrupted.
func RunAll(configs iter.Seq[RunConfig], sink Sink, opts ...RunAllOption) error {
	cfg := newRunAllConfig(opts...)
	for rc := range configs {
		if err := cfg.ctx.Err(); err != nil {
			return err
		}
		if err := Run(rc, sink); err != nil {
			return err
		}
	}
	return nil
}

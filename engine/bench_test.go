package engine_test

import (
	"testing"

	"github.com/katalvlaran/tandupscan/alphabet"
	"github.com/katalvlaran/tandupscan/engine"
	"github.com/katalvlaran/tandupscan/record"
	"github.com/katalvlaran/tandupscan/score"
	"github.com/katalvlaran/tandupscan/segment"
)

type discardSink struct{}

func (discardSink) Store(record.RunSummary) error { return nil }

// benchmarkRun runs one full scan over k sequences of length l with strat.
func benchmarkRun(b *testing.B, strat score.Strategy, k, l int) {
	seqs := make([][]alphabet.State, k)
	states := []alphabet.State{alphabet.A, alphabet.C, alphabet.G, alphabet.T}
	for i := range seqs {
		seq := make([]alphabet.State, l)
		for j := range seq {
			seq[j] = states[(i+j)%len(states)]
		}
		seqs[i] = seq
	}
	cfg := engine.RunConfig{
		Sequences:    seqs,
		Mutation:     alphabet.DefaultMutationCost(),
		LengthParams: segment.Params{MinLen: 1, MaxLen: uint64(l), Step: 1},
		NoResults:    10,
		Strategy:     strat,
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := engine.Run(cfg, discardSink{}); err != nil {
			b.Fatalf("Run failed: %v", err)
		}
	}
}

func BenchmarkRun_Standard_K2L50(b *testing.B) { benchmarkRun(b, score.Standard, 2, 50) }
func BenchmarkRun_Window_K2L50(b *testing.B)   { benchmarkRun(b, score.Window, 2, 50) }

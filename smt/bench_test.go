package smt_test

import (
	"testing"

	"github.com/katalvlaran/tandupscan/alphabet"
	"github.com/katalvlaran/tandupscan/smt"
)

// benchmarkCostFor builds a K-sequence tree once and repeatedly scores a
// fixed column, mirroring how engine.Run reuses a single Tree across every
// segment-pair in a scan.
func benchmarkCostFor(b *testing.B, k int) {
	tree, err := smt.New(k, alphabet.DefaultMutationCost())
	if err != nil {
		b.Fatalf("smt.New failed: %v", err)
	}

	column := make([]alphabet.State, 2*k)
	states := []alphabet.State{alphabet.A, alphabet.C, alphabet.G, alphabet.T}
	for i := range column {
		column[i] = states[i%len(states)]
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := tree.CostFor(column); err != nil {
			b.Fatalf("CostFor failed: %v", err)
		}
	}
}

// BenchmarkCostFor_K2 benchmarks the smallest tree shape (one pair of sequences).
func BenchmarkCostFor_K2(b *testing.B) {
	benchmarkCostFor(b, 2)
}

// BenchmarkCostFor_K8 benchmarks a medium-sized tree (8 sequences, 16 leaves).
func BenchmarkCostFor_K8(b *testing.B) {
	benchmarkCostFor(b, 8)
}

// BenchmarkCostFor_K32 benchmarks a larger tree (32 sequences, 64 leaves).
func BenchmarkCostFor_K32(b *testing.B) {
	benchmarkCostFor(b, 32)
}

// BenchmarkNew measures the one-time cost of building the topology, which
// engine.Run pays once per run rather than once per segment-pair.
func BenchmarkNew(b *testing.B) {
	mu := alphabet.DefaultMutationCost()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := smt.New(16, mu); err != nil {
			b.Fatalf("smt.New failed: %v", err)
		}
	}
}

package smt_test

import (
	"fmt"

	"github.com/katalvlaran/tandupscan/alphabet"
	"github.com/katalvlaran/tandupscan/smt"
)

// ExampleTree_CostFor builds a 2-sequence SMT and scores one column where
// the duplicate half differs from the original by a single substitution.
func ExampleTree_CostFor() {
	tree, err := smt.New(2, alphabet.DefaultMutationCost())
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	column := []alphabet.State{alphabet.A, alphabet.C, alphabet.A, alphabet.G}
	cost, err := tree.CostFor(column)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Printf("%.4f\n", cost)
	// The single substitution (sequence 2: C -> G) is cheaper to explain as
	// two independent terminal-branch mutations from a shared ancestor "A"
	// than as a mutation on either root-to-child (duplication) edge, so the
	// pre-speciation cost is 0.
	// Output:
	// 0.0000
}

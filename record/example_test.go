package record_test

import (
	"os"

	"github.com/katalvlaran/tandupscan/record"
)

// ExampleWriteText writes a two-result summary in the fixed §6 format.
func ExampleWriteText() {
	summary := record.RunSummary{
		Results: []record.Result{
			{Start: 0, Length: 1, Cost: 0},
			{Start: 1, Length: 1, Cost: 0},
		},
	}
	_ = record.WriteText(os.Stdout, summary)
	// Output:
	//        start      length        cost
	//            0            1   0.00000000
	//            1            1   0.00000000
}

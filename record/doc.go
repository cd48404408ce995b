// Package record implements the external-interface boundary: the Result and
// RunSummary value types, the fixed %12d/%12.8f textual format external
// comparators and regression tests rely on, and an ε-tolerant multiset
// equivalence check between two summaries.
//
// What:
//
//   - Result: one (start,length,cost) triple, with a total order of cost
//     ascending, then length, then start.
//   - RunSummary: the top-N results of a run plus its elapsed duration.
//   - WriteText/ReadText: the fixed header-plus-rows textual format.
//   - Equivalent: the ε-parameterized multiset comparator.
//
// Why:
//   - Results are plain value types copied into the collector; nothing in
//     this package owns a reference back into a run's SMT or sequences.
//   - The textual format is deliberately rigid (exact column widths, exact
//     precision) so external tools built against old runs keep parsing new
//     ones, and so the write/read round-trip is mechanically checkable.
//
// Errors:
//
//	ErrMalformedRecord - a data row did not parse as "%d %d %f" after
//	                     whitespace-splitting.
//	ErrMalformedHeader - the header line did not match the fixed header text.
package record

package commands

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/tandupscan/alphabet"
	"github.com/katalvlaran/tandupscan/engine"
	"github.com/katalvlaran/tandupscan/record"
	"github.com/katalvlaran/tandupscan/score"
	"github.com/katalvlaran/tandupscan/segment"
)

var (
	seqFlags     []string
	strategyFlag string
	minLenFlag   uint64
	maxLenFlag   uint64
	stepFlag     uint64
	topFlag      int
	outFlag      string
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Scores every candidate segment-pair and reports the top results",
	Long: `run builds one engine.RunConfig from --seq, --strategy, --min-len,
--max-len, --step and --top, executes it, and writes the resulting
record.RunSummary as a fixed-width text table to stdout or --out.`,
	RunE: runRunE,
}

func init() {
	AddCommand(runCmd)
	runCmd.Flags().StringArrayVar(&seqFlags, "seq", nil, "one aligned sequence (A/C/G/T/-/IUPAC letters); repeat for each species (at least 2 required)")
	runCmd.Flags().StringVar(&strategyFlag, "strategy", "standard", "scoring strategy: standard, window, patterns, window-patterns")
	runCmd.Flags().Uint64Var(&minLenFlag, "min-len", 1, "minimum candidate segment length")
	runCmd.Flags().Uint64Var(&maxLenFlag, "max-len", 0, "maximum candidate segment length (0 means no explicit cap beyond half the sequence length)")
	runCmd.Flags().Uint64Var(&stepFlag, "step", 1, "step between candidate segment lengths")
	runCmd.Flags().IntVar(&topFlag, "top", 10, "number of lowest-cost results to keep")
	runCmd.Flags().StringVarP(&outFlag, "out", "o", "", "output file path (default: stdout)")
}

func runRunE(cmd *cobra.Command, args []string) error {
	if len(seqFlags) < 2 {
		return fmt.Errorf("tandupscan run: at least two --seq flags are required, got %d", len(seqFlags))
	}

	seqs := make([][]alphabet.State, len(seqFlags))
	for i, letters := range seqFlags {
		states := make([]alphabet.State, len(letters))
		for j := 0; j < len(letters); j++ {
			st, err := alphabet.ParseLetter(letters[j])
			if err != nil {
				return fmt.Errorf("tandupscan run: --seq %d, position %d: %w", i, j, err)
			}
			states[j] = st
		}
		seqs[i] = states
	}

	strategy, err := score.ParseStrategy(strategyFlag)
	if err != nil {
		return fmt.Errorf("tandupscan run: --strategy %q: %w", strategyFlag, err)
	}

	maxLen := maxLenFlag
	if maxLen == 0 {
		maxLen = uint64(len(seqs[0]))
	}

	cfg := engine.RunConfig{
		Sequences:    seqs,
		Alphabet:     observedAlphabet(seqs),
		Mutation:     alphabet.DefaultMutationCost(),
		LengthParams: segment.Params{MinLen: minLenFlag, MaxLen: maxLen, Step: stepFlag},
		NoResults:    topFlag,
		Strategy:     strategy,
	}

	slog.Info("tandupscan run starting",
		"sequences", len(seqs),
		"length", len(seqs[0]),
		"strategy", strategy.String(),
		"top", topFlag,
	)

	out := os.Stdout
	if outFlag != "" {
		f, err := os.Create(outFlag)
		if err != nil {
			return fmt.Errorf("tandupscan run: %w", err)
		}
		defer f.Close()
		out = f
	}

	sink := &writerSink{w: out}
	if err := engine.Run(cfg, sink); err != nil {
		return fmt.Errorf("tandupscan run: %w", err)
	}

	slog.Info("tandupscan run finished", "results", sink.lastCount, "elapsed", sink.lastElapsed)
	return nil
}

// observedAlphabet returns the distinct alphabet.State values appearing
// across seqs, in first-appearance order: the RunConfig.Alphabet field the
// engine carries but never interprets, populated here from what this scan
// actually draws from rather than a synthetic full IUPAC listing.
func observedAlphabet(seqs [][]alphabet.State) []alphabet.State {
	seen := make(map[alphabet.State]bool)
	var out []alphabet.State
	for _, seq := range seqs {
		for _, s := range seq {
			if !seen[s] {
				seen[s] = true
				out = append(out, s)
			}
		}
	}
	return out
}

// writerSink is the CLI's engine.Sink: it serializes every RunSummary it
// receives through record.WriteText to w, and remembers the last summary's
// size and elapsed time for the closing log line.
type writerSink struct {
	w           *os.File
	lastCount   int
	lastElapsed string
}

func (s *writerSink) Store(summary record.RunSummary) error {
	s.lastCount = len(summary.Results)
	s.lastElapsed = summary.Elapsed.String()
	return record.WriteText(s.w, summary)
}

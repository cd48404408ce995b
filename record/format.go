package record

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// header is the fixed textual header line.
const header = "       start      length        cost"

// rowFormat is the fixed per-record format: two %12d columns and one
// %12.8f column, space-separated.
const rowFormat = "%12d %12d %12.8f\n"

// WriteText writes summary.Results in their given order as the fixed
// textual format: one header line, then one "%12d %12d %12.8f" row per
// result. Elapsed is not part of the persisted format and is not written.
//
// Callers that want the ascending-by-cost ordering the format's doc
// comment promises ("printed in ascending order, best first") should pass
// a summary whose Results already come from topn.Collector.Results, which
// guarantees that order.
func WriteText(w io.Writer, summary RunSummary) error {
	if _, err := fmt.Fprintln(w, header); err != nil {
		return err
	}
	for _, r := range summary.Results {
		if _, err := fmt.Fprintf(w, rowFormat, r.Start, r.Length, r.Cost); err != nil {
			return err
		}
	}
	return nil
}

// ReadText parses the fixed textual format back into a RunSummary. Parsing
// tolerates any run of whitespace between fields. The returned summary's
// Elapsed is always zero: elapsed duration is not part of the persisted
// record.
func ReadText(r io.Reader) (RunSummary, error) {
	scanner := bufio.NewScanner(r)

	if !scanner.Scan() {
		return RunSummary{}, fmt.Errorf("%w: missing header", ErrMalformedHeader)
	}
	headerFields := strings.Fields(scanner.Text())
	if len(headerFields) != 3 || headerFields[0] != "start" || headerFields[1] != "length" || headerFields[2] != "cost" {
		return RunSummary{}, fmt.Errorf("%w: %q", ErrMalformedHeader, scanner.Text())
	}

	var results []Result
	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) != 3 {
			return RunSummary{}, fmt.Errorf("%w: %q", ErrMalformedRecord, line)
		}

		start, err := strconv.ParseUint(fields[0], 10, 64)
		if err != nil {
			return RunSummary{}, fmt.Errorf("%w: start %q: %v", ErrMalformedRecord, fields[0], err)
		}
		length, err := strconv.ParseUint(fields[1], 10, 64)
		if err != nil {
			return RunSummary{}, fmt.Errorf("%w: length %q: %v", ErrMalformedRecord, fields[1], err)
		}
		cost, err := strconv.ParseFloat(fields[2], 64)
		if err != nil {
			return RunSummary{}, fmt.Errorf("%w: cost %q: %v", ErrMalformedRecord, fields[2], err)
		}

		results = append(results, Result{Start: start, Length: length, Cost: cost})
	}
	if err := scanner.Err(); err != nil {
		return RunSummary{}, err
	}

	return RunSummary{Results: results}, nil
}

/*
PURPOSE:
  Extracts structured loss curves from the captured stdout of CTGAN-style
  training runs. Each sub-run is delimited by #START#/#END# markers and is
  keyed by the dataset identifier printed on the line after #START#.

REQUIREMENTS:
  User-specified:
  - Parse `Epoch <n> ... Loss G: <f>, ... Loss D: <f>` lines into tables.
  - Preserve input row order; never sort or deduplicate epochs.
  - Later blocks with the same identifier replace earlier ones.

  Implementation-discovered:
  - The three fields must be pulled from one pass over each line. Filtering
    the line set once per column silently misaligns rows whenever a line is
    missing a field, so a missing field has to fail loudly instead.
  - Loss values are parsed from the raw captured text (strconv.ParseFloat),
    which also accepts scientific notation the way the logs print it.

ARCHITECTURE INTEGRATION:
  - Called by: internal/engine (losses pipeline)
  - Consumed by: internal/output (CSV export, table rendering)
  - Depends on: stdlib only (regexp, strconv, strings)

ERROR HANDLING:
  - Zero blocks is not an error; returns an empty Result.
  - A malformed epoch line fails the whole call with ErrMalformedEpochLine,
    wrapped with the block's dataset identifier and the offending line.

IMPLEMENTATION RULES:
  - Pure function of its input: no I/O, no logging, no shared state.
  - Safe to call concurrently on different inputs.

USAGE:
  result, err := losslog.Parse(capturedStdout)
  for id, table := range result { ... }

SELF-HEALING INSTRUCTIONS:
  - If the trainer's line format changes, update the three field patterns
    below and the fixtures in losslog_test.go together.

RELATED FILES:
  - internal/losslog/summary.go - descriptive statistics over a Table.
  - internal/output/csv.go - Epoch/Loss_G/Loss_D CSV export.

MAINTENANCE:
  - Update when new marker conventions or loss columns appear in the logs.
*/

package losslog

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// ErrMalformedEpochLine reports an epoch line that is missing one of its
// three required fields or carries a value that does not parse.
var ErrMalformedEpochLine = errors.New("malformed epoch line")

// Record is one observation from a training log: the epoch index plus the
// generator and discriminator loss reported for it.
type Record struct {
	Epoch int     `json:"epoch"`
	LossG float64 `json:"loss_g"`
	LossD float64 `json:"loss_d"`
}

// Table is the ordered loss curve of a single sub-run. Rows appear in the
// exact order their epoch lines appeared in the captured output.
type Table []Record

// Result maps a dataset identifier to the loss table extracted from its
// sub-run block.
type Result map[string]Table

// Epochs returns the epoch column in row order.
func (t Table) Epochs() []int {
	out := make([]int, len(t))
	for i, r := range t {
		out[i] = r.Epoch
	}
	return out
}

// GeneratorLosses returns the Loss_G column in row order.
func (t Table) GeneratorLosses() []float64 {
	out := make([]float64, len(t))
	for i, r := range t {
		out[i] = r.LossG
	}
	return out
}

// DiscriminatorLosses returns the Loss_D column in row order.
func (t Table) DiscriminatorLosses() []float64 {
	out := make([]float64, len(t))
	for i, r := range t {
		out[i] = r.LossD
	}
	return out
}

var (
	// One sub-run: start marker, identifier line, multi-line body, end marker.
	// (?s) lets the non-greedy body capture span line breaks.
	blockPattern = regexp.MustCompile(`(?s)#START#\n(.+?)\n(.+?)#END#`)

	epochPattern = regexp.MustCompile(`Epoch (\d+)`)
	lossGPattern = regexp.MustCompile(`Loss G: (.+?),`)
	lossDPattern = regexp.MustCompile(`Loss D: (.+)`)
)

// Parse extracts every sub-run block from captured training output and
// returns the per-dataset loss tables. Input with no blocks yields an empty
// Result and no error. If any epoch line inside a block is malformed the
// whole call fails; no partially aligned tables are ever returned.
func Parse(input string) (Result, error) {
	result := make(Result)

	for _, match := range blockPattern.FindAllStringSubmatch(input, -1) {
		id := strings.TrimSpace(match[1])

		table, err := parseBody(match[2])
		if err != nil {
			return nil, fmt.Errorf("block %q: %w", id, err)
		}

		// Last block wins when an identifier repeats.
		result[id] = table
	}

	return result, nil
}

// parseBody walks the block body line by line. Only lines starting with the
// literal prefix "Epoch" are parsed; everything else is trainer noise.
func parseBody(body string) (Table, error) {
	var table Table

	for _, line := range strings.Split(body, "\n") {
		if !strings.HasPrefix(line, "Epoch") {
			continue
		}

		rec, err := parseEpochLine(line)
		if err != nil {
			return nil, err
		}
		table = append(table, rec)
	}

	return table, nil
}

// parseEpochLine extracts all three fields from a single line. Everything
// must parse or the row is rejected; accepting a partial row here is what
// would corrupt column alignment downstream.
func parseEpochLine(line string) (Record, error) {
	m := epochPattern.FindStringSubmatch(line)
	if m == nil {
		return Record{}, fmt.Errorf("%w %q: no epoch number", ErrMalformedEpochLine, line)
	}
	epoch, err := strconv.Atoi(m[1])
	if err != nil {
		return Record{}, fmt.Errorf("%w %q: epoch %q: %v", ErrMalformedEpochLine, line, m[1], err)
	}

	m = lossGPattern.FindStringSubmatch(line)
	if m == nil {
		return Record{}, fmt.Errorf("%w %q: no generator loss (Loss G)", ErrMalformedEpochLine, line)
	}
	lossG, err := strconv.ParseFloat(strings.TrimSpace(m[1]), 64)
	if err != nil {
		return Record{}, fmt.Errorf("%w %q: generator loss %q is not a number", ErrMalformedEpochLine, line, m[1])
	}

	m = lossDPattern.FindStringSubmatch(line)
	if m == nil {
		return Record{}, fmt.Errorf("%w %q: no discriminator loss (Loss D)", ErrMalformedEpochLine, line)
	}
	lossD, err := strconv.ParseFloat(strings.TrimSpace(m[1]), 64)
	if err != nil {
		return Record{}, fmt.Errorf("%w %q: discriminator loss %q is not a number", ErrMalformedEpochLine, line, m[1])
	}

	return Record{Epoch: epoch, LossG: lossG, LossD: lossD}, nil
}

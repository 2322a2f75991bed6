/*
PURPOSE:
  Descriptive statistics over a parsed loss table, for the experiment report
  and the CLI summary view.

REQUIREMENTS:
  User-specified:
  - Per sub-run: row count, epoch span, final losses.
  - Mean/min/max/stddev of both loss columns.

  Implementation-discovered:
  - An empty table is a legal input (a block can contain zero epoch lines);
    it summarizes to the zero value rather than an error.

ARCHITECTURE INTEGRATION:
  - Called by: internal/engine (losses pipeline), internal/output (JSON lines)
  - Depends on: github.com/montanaflynn/stats

ERROR HANDLING:
  - stats errors are propagated wrapped; they cannot occur for the non-empty
    inputs this package hands over, but the signature keeps them visible.

USAGE:
  s, err := losslog.Summarize(table)

RELATED FILES:
  - internal/output/json.go - serializes summaries to JSON lines.

MAINTENANCE:
  - Extend Summary when the report needs more curve statistics.
*/

package losslog

import (
	"fmt"

	"github.com/montanaflynn/stats"
)

// Summary describes one sub-run's loss curve.
type Summary struct {
	Rows       int     `json:"rows"`
	FirstEpoch int     `json:"first_epoch"`
	FinalEpoch int     `json:"final_epoch"`
	FinalLossG float64 `json:"final_loss_g"`
	FinalLossD float64 `json:"final_loss_d"`
	MeanLossG  float64 `json:"mean_loss_g"`
	MeanLossD  float64 `json:"mean_loss_d"`
	MinLossG   float64 `json:"min_loss_g"`
	MinLossD   float64 `json:"min_loss_d"`
	MaxLossG   float64 `json:"max_loss_g"`
	MaxLossD   float64 `json:"max_loss_d"`
	StdevLossG float64 `json:"stdev_loss_g"`
	StdevLossD float64 `json:"stdev_loss_d"`
}

// Summarize computes the curve statistics for one table. An empty table
// yields a zero Summary and no error.
func Summarize(t Table) (Summary, error) {
	if len(t) == 0 {
		return Summary{}, nil
	}

	s := Summary{
		Rows:       len(t),
		FirstEpoch: t[0].Epoch,
		FinalEpoch: t[len(t)-1].Epoch,
		FinalLossG: t[len(t)-1].LossG,
		FinalLossD: t[len(t)-1].LossD,
	}

	lossG := t.GeneratorLosses()
	lossD := t.DiscriminatorLosses()

	var err error
	for _, c := range []struct {
		name string
		data []float64
		mean *float64
		min  *float64
		max  *float64
		dev  *float64
	}{
		{"generator", lossG, &s.MeanLossG, &s.MinLossG, &s.MaxLossG, &s.StdevLossG},
		{"discriminator", lossD, &s.MeanLossD, &s.MinLossD, &s.MaxLossD, &s.StdevLossD},
	} {
		if *c.mean, err = stats.Mean(c.data); err != nil {
			return Summary{}, fmt.Errorf("%s loss mean: %w", c.name, err)
		}
		if *c.min, err = stats.Min(c.data); err != nil {
			return Summary{}, fmt.Errorf("%s loss min: %w", c.name, err)
		}
		if *c.max, err = stats.Max(c.data); err != nil {
			return Summary{}, fmt.Errorf("%s loss max: %w", c.name, err)
		}
		if *c.dev, err = stats.StandardDeviation(c.data); err != nil {
			return Summary{}, fmt.Errorf("%s loss stddev: %w", c.name, err)
		}
	}

	return s, nil
}
